package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/f3rmion/yuanfen/internal/compat"
	"github.com/f3rmion/yuanfen/internal/zodiac"
	"github.com/spf13/cobra"
)

var quickCmd = &cobra.Command{
	Use:   "quick <year> <year>",
	Short: "Quick compatibility from two birth years",
	Long: `Estimate compatibility from birth years alone, blending the zodiac
animals (60%) and the year elements (40%). Years are taken as plain
Gregorian years without the February new-year boundary.

Example:
  yuanfen quick 1990 1992`,
	Args: cobra.ExactArgs(2),
	RunE: runQuick,
}

func init() {
	rootCmd.AddCommand(quickCmd)
	addFormatFlags(quickCmd)
}

// quickOutput is the structured form of a quick check.
type quickOutput struct {
	compat.Quick `yaml:",inline"`
	Traits       [2]zodiac.Traits `json:"traits" yaml:"traits"`
}

func runQuick(cmd *cobra.Command, args []string) error {
	var years [2]int
	for i, a := range args {
		y, err := strconv.Atoi(a)
		if err != nil {
			return fmt.Errorf("invalid year %q: %w", a, err)
		}
		years[i] = y
	}

	q := compat.QuickCheck(years[0], years[1])
	traits := [2]zodiac.Traits{zodiac.TraitsOf(q.Animal1), zodiac.TraitsOf(q.Animal2)}

	out := cmd.OutOrStdout()
	if format := outputFormat(cmd); format != "text" {
		return encode(out, format, quickOutput{Quick: q, Traits: traits})
	}

	verdict := "not compatible"
	if q.Compatible {
		verdict = "compatible"
	}
	fmt.Fprintf(out, "%d %s %s & %d %s %s: %d/100, %s\n",
		years[0], q.Element1, q.Animal1, years[1], q.Element2, q.Animal2, q.Score, verdict)
	for _, t := range traits {
		fmt.Fprintf(out, "  %s %s: %s\n", t.Animal, t.Hanzi, strings.Join(t.Positive, ", "))
	}
	return nil
}
