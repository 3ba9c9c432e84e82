package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/f3rmion/yuanfen/internal/bazi"
	"github.com/f3rmion/yuanfen/internal/config"
	"github.com/f3rmion/yuanfen/internal/store"
	"github.com/f3rmion/yuanfen/internal/yuanfen"
	"github.com/f3rmion/yuanfen/internal/zodiac"
	"github.com/mattn/go-runewidth"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var profilesCmd = &cobra.Command{
	Use:     "profiles",
	Aliases: []string{"profile", "p"},
	Short:   "Manage saved birth profiles",
	Long: `Save the birth dates of people you want to compare, then rank them
against your own chart.

Profiles live in a SQLite database in the config directory (see --db).`,
}

var profilesAddCmd = &cobra.Command{
	Use:   "add <name> <birth date>",
	Short: "Save a profile",
	Example: `  yuanfen profiles add alice "1992-11-02 21:00"
  yuanfen profiles add bob "March 10 1984" --note "met at work"`,
	Args: cobra.ExactArgs(2),
	RunE: runProfilesAdd,
}

var profilesListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List saved profiles",
	Args:    cobra.NoArgs,
	RunE:    runProfilesList,
}

var profilesShowCmd = &cobra.Command{
	Use:   "show <name | id>",
	Short: "Show a saved profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfilesShow,
}

var profilesRemoveCmd = &cobra.Command{
	Use:     "remove <name | id>",
	Aliases: []string{"rm"},
	Short:   "Delete a saved profile",
	Args:    cobra.ExactArgs(1),
	RunE:    runProfilesRemove,
}

var profilesRankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank saved profiles by Yuan Fen against you",
	Long: `Score every saved profile against your configured birth date and list
the best matches first.

Year filters narrow the candidates before scoring:
  --sanhe     same San He trinity as your birth-year animal
  --liuhe     your Liu He secret-friend animal
  --harmony   a harmonious birth-year element`,
	Args: cobra.NoArgs,
	RunE: runProfilesRank,
}

var profilesImportCmd = &cobra.Command{
	Use:   "import <file | ->",
	Short: "Import profiles from a JSON Lines file",
	Long: `Import one profile per line. Each line is an object with a name and
either a free-form "birth" string or year, month, day and optional hour
fields:

  {"name": "alice", "birth": "1992-11-02 21:00"}
  {"name": "bob", "year": 1984, "month": 3, "day": 10, "note": "work"}

Lines with an invalid date or an existing name are skipped and reported.
Use - to read from standard input.`,
	Args: cobra.ExactArgs(1),
	RunE: runProfilesImport,
}

var (
	profileNote string

	listYears []int

	rankMin     int
	rankTop     int
	rankSanHe   bool
	rankLiuHe   bool
	rankHarmony bool
)

func init() {
	rootCmd.AddCommand(profilesCmd)
	profilesCmd.AddCommand(profilesAddCmd, profilesListCmd, profilesShowCmd,
		profilesRemoveCmd, profilesRankCmd, profilesImportCmd)

	profilesAddCmd.Flags().StringVarP(&profileNote, "note", "n", "", "free-form note")

	profilesListCmd.Flags().IntSliceVar(&listYears, "year", nil, "only profiles born in these years")
	addFormatFlags(profilesListCmd)
	addFormatFlags(profilesShowCmd)

	profilesRankCmd.Flags().IntVar(&rankMin, "min", -1, "minimum Yuan Fen score (default from config)")
	profilesRankCmd.Flags().IntVar(&rankTop, "top", -1, "number of matches to show (default from config, 0 = all)")
	profilesRankCmd.Flags().BoolVar(&rankSanHe, "sanhe", false, "only San He trinity years")
	profilesRankCmd.Flags().BoolVar(&rankLiuHe, "liuhe", false, "only Liu He secret-friend years")
	profilesRankCmd.Flags().BoolVar(&rankHarmony, "harmony", false, "only harmonious year elements")
	addFormatFlags(profilesRankCmd)
}

// withStore loads the config, opens the database and runs fn.
func withStore(fn func(cfg *config.Config, db *store.DB) error) error {
	cfg, err := loadUserConfig()
	if err != nil {
		return err
	}
	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()
	return fn(cfg, db)
}

func runProfilesAdd(cmd *cobra.Command, args []string) error {
	birth, err := bazi.ParseBirth(args[1])
	if err != nil {
		return err
	}
	return withStore(func(_ *config.Config, db *store.DB) error {
		p, err := db.Add(cmd.Context(), args[0], birth, profileNote)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s), born %s\n", p.Name, p.ID, p.BirthData)
		return nil
	})
}

func runProfilesList(cmd *cobra.Command, args []string) error {
	return withStore(func(_ *config.Config, db *store.DB) error {
		var profiles []store.Profile
		var err error
		if len(listYears) > 0 {
			profiles, err = db.ListByYears(cmd.Context(), listYears...)
		} else {
			profiles, err = db.List(cmd.Context())
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if format := outputFormat(cmd); format != "text" {
			return encode(out, format, profiles)
		}

		if len(profiles) == 0 {
			fmt.Fprintln(out, "No profiles. Add one with: yuanfen profiles add <name> <birth date>")
			return nil
		}
		for _, p := range profiles {
			fmt.Fprintf(out, "%s  %s  %-7s %s\n",
				runewidth.FillRight(runewidth.Truncate(p.Name, 20, "…"), 20),
				p.BirthData, zodiac.AnimalOfYear(p.Year), p.Note)
		}
		return nil
	})
}

func runProfilesShow(cmd *cobra.Command, args []string) error {
	return withStore(func(_ *config.Config, db *store.DB) error {
		p, err := db.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if format := outputFormat(cmd); format != "text" {
			return encode(out, format, p)
		}

		c, err := bazi.NewChart(p.BirthData)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Name:       %s\n", p.Name)
		fmt.Fprintf(out, "ID:         %s\n", p.ID)
		fmt.Fprintf(out, "Born:       %s\n", p.BirthData)
		fmt.Fprintf(out, "Pillars:    %s %s %s %s\n", c.Year.Hanzi(), c.Month.Hanzi(), c.Day.Hanzi(), c.Hour.Hanzi())
		fmt.Fprintf(out, "Day Master: %s (%s)\n", c.DayMaster, c.DayMasterPolarity)
		fmt.Fprintf(out, "Zodiac:     %s %s\n", zodiac.ElementOfYear(p.Year), zodiac.AnimalOfYear(p.Year))
		if p.Note != "" {
			fmt.Fprintf(out, "Note:       %s\n", p.Note)
		}
		fmt.Fprintf(out, "Added:      %s\n", p.Created().Format("2006-01-02 15:04"))
		return nil
	})
}

func runProfilesRemove(cmd *cobra.Command, args []string) error {
	return withStore(func(_ *config.Config, db *store.DB) error {
		if err := db.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
		return nil
	})
}

func runProfilesRank(cmd *cobra.Command, args []string) error {
	return withStore(func(cfg *config.Config, db *store.DB) error {
		ctx := cmd.Context()
		me, err := resolvePerson(ctx, cfg, "")
		if err != nil {
			return err
		}

		cands, err := db.Candidates(ctx, cfg.Me.Name)
		if err != nil {
			return err
		}
		year := me.Birth.Year
		if rankSanHe {
			cands = yuanfen.SanHeMatches(year, cands)
		}
		if rankLiuHe {
			cands = yuanfen.LiuHeMatches(year, cands)
		}
		if rankHarmony {
			cands = yuanfen.FilterByElementHarmony(year, cands)
		}

		minScore, top := rankMin, rankTop
		if minScore < 0 {
			minScore = cfg.MinScore
		}
		if top < 0 {
			top = cfg.Top
		}

		ranker := yuanfen.NewRanker(nil, cfg.Concurrency)
		ranked, err := ranker.FilterByYuanFen(ctx, me.Birth, cands, minScore)
		if err != nil {
			if len(ranked) == 0 {
				return err
			}
			log.Warn().Err(err).Msg("some profiles could not be scored")
		}
		if top > 0 && len(ranked) > top {
			ranked = ranked[:top]
		}
		log.Debug().Int("candidates", len(cands)).Int("ranked", len(ranked)).Msg("ranked profiles")

		out := cmd.OutOrStdout()
		if format := outputFormat(cmd); format != "text" {
			return encode(out, format, ranked)
		}

		if len(ranked) == 0 {
			fmt.Fprintf(out, "No profiles score %d or more.\n", minScore)
			return nil
		}
		for i, r := range ranked {
			fmt.Fprintf(out, "%2d. %s %3d  %-18s %s & %s\n",
				i+1, runewidth.FillRight(runewidth.Truncate(r.Name, 20, "…"), 20), r.Score.Total,
				r.Score.Tier.Recommendation(), r.Score.Zodiac.First, r.Score.Zodiac.Second)
		}
		return nil
	})
}

func runProfilesImport(cmd *cobra.Command, args []string) error {
	var r io.Reader = cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening profiles: %w", err)
		}
		defer f.Close()
		r = f
	}

	return withStore(func(_ *config.Config, db *store.DB) error {
		res, err := db.Import(cmd.Context(), r)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Imported %d profile(s)\n", res.Added)
		for _, s := range res.Skipped {
			fmt.Fprintf(out, "  skipped %s\n", s)
		}
		return err
	})
}
