package cmd

import (
	"fmt"
	"time"

	"github.com/f3rmion/yuanfen/internal/auspicious"
	"github.com/f3rmion/yuanfen/internal/bazi"
	"github.com/f3rmion/yuanfen/internal/report"
	"github.com/spf13/cobra"
)

var hoursCmd = &cobra.Command{
	Use:   "hours [date]",
	Short: "Show the day's element energy and auspicious hours",
	Long: `Show a daily insight for a day master: the element's strength on the
date, favourable activities and the best double-hours of the day.

The date defaults to today. The hour used for the "right now"
recommendation is the current hour, or --at.

Examples:
  yuanfen hours
  yuanfen hours 2024-06-03 --at 14
  yuanfen hours --profile alice --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHours,
}

var (
	hoursProfile string
	hoursAt      int
)

func init() {
	rootCmd.AddCommand(hoursCmd)
	hoursCmd.Flags().StringVarP(&hoursProfile, "profile", "p", "", "birth date or saved profile (default is me)")
	hoursCmd.Flags().IntVar(&hoursAt, "at", -1, "clock hour for the recommendation (default is now)")
	addFormatFlags(hoursCmd)
}

// hoursOutput is the structured form of a daily insight.
type hoursOutput struct {
	auspicious.Insight `yaml:",inline"`
	Recommendation     string `json:"recommendation" yaml:"recommendation"`
}

func runHours(cmd *cobra.Command, args []string) error {
	cfg, err := loadUserConfig()
	if err != nil {
		return err
	}

	p, err := resolvePerson(cmd.Context(), cfg, hoursProfile)
	if err != nil {
		return err
	}
	c, err := bazi.NewChart(p.Birth)
	if err != nil {
		return err
	}

	now := time.Now()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	if len(args) > 0 {
		d, err := bazi.ParseBirth(args[0])
		if err != nil {
			return fmt.Errorf("invalid date: %w", err)
		}
		day = time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.Local)
	}

	hour := hoursAt
	if hour < 0 {
		hour = now.Hour()
	}
	if hour > 23 {
		return fmt.Errorf("%w: %d", bazi.ErrInvalidHour, hour)
	}

	o := hoursOutput{
		Insight:        auspicious.Daily(c, day, auspicious.DayRand(day)),
		Recommendation: auspicious.Recommendation(c.DayMaster, hour),
	}

	out := cmd.OutOrStdout()
	if format := outputFormat(cmd); format != "text" {
		return encode(out, format, o)
	}

	text, err := report.NewRenderer(cfg.Locale).Insight(report.InsightData{
		Name:           p.Name,
		Insight:        o.Insight,
		Recommendation: o.Recommendation,
	})
	if err != nil {
		return err
	}
	fmt.Fprint(out, text)
	return nil
}
