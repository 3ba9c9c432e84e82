package report

var defaultTemplates = map[string]string{
	ChartTemplate:   chartTemplate,
	MatchTemplate:   matchTemplate,
	InsightTemplate: insightTemplate,
}

const chartTemplate = `
{{- if .Name}}{{.Name}}, born {{else}}Born {{end}}{{date .BirthDate}} at {{printf "%02d:00" .Chart.Birth.Hour}}

{{range .Pillars -}}
{{pad .Label 6}} {{.Pillar.Hanzi}}  {{pad .Pinyin 10}} {{pad (print .Pillar.Stem " " .Pillar.Branch) 12}} {{pad (print .Pillar.Animal) 8}} {{.Pillar.StemElement}}/{{.Pillar.BranchElement}}{{if .Hidden}}  hidden {{.Hidden}}{{end}}
{{end}}
Day Master: {{.Chart.DayMaster}} {{.Chart.DayMaster.Hanzi}} ({{pinyin .Chart.DayMaster.Hanzi}}), {{.Chart.DayMasterPolarity}}

Element balance:
{{range .Balance -}}
{{pad (print .Element) 6}} {{printf "%4.1f" .Weight}}  {{bar .Weight}}
{{end}}
Dominant: {{.Chart.Dominant}}  Weakest: {{.Chart.Weakest}}  Balanced: {{if .Chart.Balanced}}yes{{else}}no{{end}}
{{- if .Weak}}
Weak elements: {{range $i, $e := .Weak}}{{if $i}}, {{end}}{{$e}}{{end}}{{end}}
{{- if .Strengthen}}
Strengthen: {{.Strengthen}}{{end}}
Day Master favours the {{.Attributes.Direction}}, {{.Attributes.Season}}, {{join .Attributes.Colors ", "}}
{{with .Zodiac}}
Year of the {{.Animal}} {{.Hanzi}}, {{$.Chart.Year.Polarity}} {{$.Chart.Year.StemElement}}
{{.Personality}}
Traits: {{join .Positive ", "}}
Watch for: {{join .Negative ", "}}
Lucky numbers: {{range $i, $n := .LuckyNumbers}}{{if $i}}, {{end}}{{$n}}{{end}}  Lucky colours: {{join .LuckyColors ", "}}
{{- end}}
Best partners: {{range $i, $a := .Partners}}{{if $i}}, {{end}}{{$a}}{{end}}
`

const matchTemplate = `
{{- .Name1}} & {{.Name2}}
Yuan Fen {{.Score.Total}}/100, {{.Score.Tier.Recommendation}}

  Zodiac   {{printf "%3d" .Score.Breakdown.Zodiac}}  {{.Score.Zodiac.First}} & {{.Score.Zodiac.Second}} ({{.Score.Zodiac.Relationship}})
  Element  {{printf "%3d" .Score.Breakdown.Element}}  {{.Score.Elements.First}} & {{.Score.Elements.Second}} ({{.Score.Elements.Relation}})
           {{.Score.Elements.Description}}
           {{.Score.Elements.Advice}}
  BaZi     {{printf "%3d" .Score.Breakdown.BaZi}}  day masters {{.Score.Chart1.DayMaster}} & {{.Score.Chart2.DayMaster}}, {{.Score.BaZi.PillarHarmonies}} shared and {{.Score.BaZi.PillarClashes}} clashing branches
  Special  {{printf "%3d" .Score.Breakdown.Special}}
{{- if .Age}}
  Age      {{.Age}}{{end}}
{{- if .Score.Strengths}}

Strengths:
{{range .Score.Strengths}}  + {{.}}
{{end}}{{end}}
{{- if .Score.Challenges}}
Challenges:
{{range .Score.Challenges}}  - {{.}}
{{end}}{{end}}
{{- with .Reading}}
{{.Headline}}
{{.Overview}}

{{range .Strengths}}  + {{.}}
{{end}}{{range .Challenges}}  - {{.}}
{{end}}
{{.Advice}}
{{end}}`

const insightTemplate = `
{{- with .Insight}}{{if $.Name}}{{$.Name}}, {{end}}{{date .Date}}
{{.Element}} energy {{.Strength}}/100

{{.Text}}

Communication: {{.Communication}}
Energy: {{.Energy}}
Favourable: {{join .Favorable ", "}}

Auspicious hours:
{{range .Times}}  {{pad .Range 14}} {{.Hanzi}}  {{pad (print .Strength) 9}} {{.Activity}}
{{end}}{{end}}
{{.Recommendation}}
`
