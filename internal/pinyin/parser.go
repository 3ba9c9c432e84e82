// Package pinyin gives pinyin readings for the Hanzi of stems, branches and
// elements.
package pinyin

import (
	"strings"

	"github.com/f3rmion/yuanfen/internal/bazi"
	gopinyin "github.com/mozillazg/go-pinyin"
)

// Tone is a Mandarin tone number, 1-4, or 5 for the neutral tone.
type Tone int

const (
	ToneUnknown Tone = iota
	Tone1
	Tone2
	Tone3
	Tone4
	Tone5
)

// Parser handles pinyin conversion.
type Parser struct {
	args gopinyin.Args
}

// NewParser creates a new pinyin parser.
func NewParser() *Parser {
	args := gopinyin.NewArgs()
	args.Style = gopinyin.Tone // Returns tone marks: zhōng
	args.Heteronym = true      // Return all possible readings
	return &Parser{args: args}
}

// Reading is the pronunciation of one symbol.
type Reading struct {
	Hanzi  string `json:"hanzi" yaml:"hanzi"`
	Pinyin string `json:"pinyin" yaml:"pinyin"` // with tone marks, e.g. "jiǎ"
	Plain  string `json:"plain" yaml:"plain"`   // without tone marks, e.g. "jia"
	Tone   Tone   `json:"tone" yaml:"tone"`
}

// GetPinyin returns all pinyin readings for a character.
func (p *Parser) GetPinyin(char string) []string {
	result := gopinyin.Pinyin(char, p.args)
	if len(result) == 0 {
		return nil
	}
	return result[0]
}

// Read returns the primary reading of a single character. Characters
// without a reading come back with only Hanzi set.
func (p *Parser) Read(char string) Reading {
	r := Reading{Hanzi: char}
	readings := p.GetPinyin(char)
	if len(readings) == 0 {
		return r
	}
	r.Pinyin = readings[0]
	r.Tone, r.Plain = extractTone(r.Pinyin)
	return r
}

// Phrase returns the tone-marked reading of every character in s, joined
// by spaces. Characters without a reading are skipped.
func (p *Parser) Phrase(s string) string {
	var parts []string
	for _, r := range s {
		if reading := p.Read(string(r)); reading.Pinyin != "" {
			parts = append(parts, reading.Pinyin)
		}
	}
	return strings.Join(parts, " ")
}

// Stem returns the reading of a Heavenly Stem.
func (p *Parser) Stem(s bazi.Stem) Reading { return p.Read(s.Hanzi()) }

// Branch returns the reading of an Earthly Branch.
func (p *Parser) Branch(b bazi.Branch) Reading { return p.Read(b.Hanzi()) }

// Element returns the reading of an element.
func (p *Parser) Element(e bazi.Element) Reading { return p.Read(e.Hanzi()) }

// Pillar returns the reading of a pillar's two characters, e.g. "gēng wǔ".
func (p *Parser) Pillar(pl bazi.Pillar) string { return p.Phrase(pl.Hanzi()) }

// extractTone extracts the tone number and returns the pinyin without tone marks.
func extractTone(pinyin string) (Tone, string) {
	tone := ToneUnknown
	var result strings.Builder

	for _, r := range pinyin {
		if mark, ok := toneMarks[r]; ok {
			result.WriteRune(mark.base)
			tone = mark.tone
		} else {
			result.WriteRune(r)
		}
	}

	// If no tone mark found, it's neutral tone (5)
	if tone == ToneUnknown {
		tone = Tone5
	}

	return tone, result.String()
}

var toneMarks = map[rune]struct {
	base rune
	tone Tone
}{
	'ā': {'a', Tone1}, 'á': {'a', Tone2}, 'ǎ': {'a', Tone3}, 'à': {'a', Tone4},
	'ē': {'e', Tone1}, 'é': {'e', Tone2}, 'ě': {'e', Tone3}, 'è': {'e', Tone4},
	'ī': {'i', Tone1}, 'í': {'i', Tone2}, 'ǐ': {'i', Tone3}, 'ì': {'i', Tone4},
	'ō': {'o', Tone1}, 'ó': {'o', Tone2}, 'ǒ': {'o', Tone3}, 'ò': {'o', Tone4},
	'ū': {'u', Tone1}, 'ú': {'u', Tone2}, 'ǔ': {'u', Tone3}, 'ù': {'u', Tone4},
	'ǖ': {'ü', Tone1}, 'ǘ': {'ü', Tone2}, 'ǚ': {'ü', Tone3}, 'ǜ': {'ü', Tone4},
}
