package cmd

import (
	"fmt"

	"github.com/f3rmion/yuanfen/internal/bazi"
	"github.com/f3rmion/yuanfen/internal/report"
	"github.com/f3rmion/yuanfen/internal/zodiac"
	"github.com/spf13/cobra"
)

var chartCmd = &cobra.Command{
	Use:   "chart [birth date | profile]",
	Short: "Show the Four Pillars chart for a birth date",
	Long: `Compute the Four Pillars (year, month, day and hour) for a birth date and
show the hidden stems, element balance, day master and the element that
would best even out the chart.

The argument is a free-form date or the name or ID of a saved profile.
Without an argument your own configured birth date is used. A date
without a clock time is taken at 12:00.

Examples:
  yuanfen chart "1990-06-15 14:00"
  yuanfen chart "June 15, 1990 2pm" --json
  yuanfen chart alice --yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runChart,
}

func init() {
	rootCmd.AddCommand(chartCmd)
	addFormatFlags(chartCmd)
}

// chartOutput is the structured form of a chart.
type chartOutput struct {
	Name       string          `json:"name,omitempty" yaml:"name,omitempty"`
	Chart      bazi.Chart      `json:"chart" yaml:"chart"`
	Weak       []bazi.Element  `json:"weak_elements" yaml:"weak_elements"`
	Balanced   bool            `json:"balanced" yaml:"balanced"`
	Strengthen *bazi.Element   `json:"strengthen,omitempty" yaml:"strengthen,omitempty"`
	Attributes bazi.Attributes `json:"day_master_attributes" yaml:"day_master_attributes"`
	Zodiac     zodiac.Traits   `json:"zodiac" yaml:"zodiac"`
	Partners   []bazi.Animal   `json:"compatible_animals" yaml:"compatible_animals"`
}

func runChart(cmd *cobra.Command, args []string) error {
	cfg, err := loadUserConfig()
	if err != nil {
		return err
	}

	var ref string
	if len(args) > 0 {
		ref = args[0]
	}
	p, err := resolvePerson(cmd.Context(), cfg, ref)
	if err != nil {
		return err
	}

	c, err := bazi.NewChart(p.Birth)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	format := outputFormat(cmd)
	if format != "text" {
		o := chartOutput{
			Name:       p.Name,
			Chart:      c,
			Weak:       c.WeakElements(),
			Balanced:   c.Balanced(),
			Attributes: c.DayMaster.Attributes(),
			Zodiac:     zodiac.TraitsOf(c.Year.Animal),
			Partners:   zodiac.Compatible(c.Year.Animal),
		}
		if e, ok := c.ElementToStrengthen(); ok {
			o.Strengthen = &e
		}
		return encode(out, format, o)
	}

	text, err := report.NewRenderer(cfg.Locale).Chart(p.Name, c)
	if err != nil {
		return err
	}
	fmt.Fprint(out, text)
	return nil
}
