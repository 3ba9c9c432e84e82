// Package reading turns a Yuan Fen score into a written compatibility
// reading.
package reading

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/f3rmion/yuanfen/internal/bazi"
	"github.com/f3rmion/yuanfen/internal/yuanfen"
)

// Reading is a narrative compatibility summary.
type Reading struct {
	Headline   string   `json:"headline" yaml:"headline"`
	Overview   string   `json:"overview" yaml:"overview"`
	Strengths  []string `json:"strengths" yaml:"strengths"`
	Challenges []string `json:"challenges" yaml:"challenges"`
	Advice     string   `json:"advice" yaml:"advice"`
}

// Input is what a reading is written from.
type Input struct {
	Animal1, Animal2   bazi.Animal
	Element1, Element2 bazi.Element
	Total              int
}

// FromScore extracts the reading input from a Yuan Fen score.
func FromScore(s yuanfen.Score) Input {
	return Input{
		Animal1:  s.Zodiac.First,
		Animal2:  s.Zodiac.Second,
		Element1: s.Elements.First,
		Element2: s.Elements.Second,
		Total:    s.Total,
	}
}

// Generate writes the reading for s. The headline and advice are drawn with
// rng; a nil rng always takes the first template.
func Generate(s yuanfen.Score, rng *rand.Rand) Reading {
	return Write(FromScore(s), rng)
}

// Write writes the reading for in.
func Write(in Input, rng *rand.Rand) Reading {
	tier := yuanfen.TierOf(in.Total)
	rel := bazi.RelationBetween(in.Element1, in.Element2)
	key := pairOf(in.Animal1, in.Animal2)

	r := Reading{
		Headline: pick(rng, headlines[tier]),
		Overview: fmt.Sprintf("The %s and %s pairing scores %d out of 100 on the Yuan Fen scale, "+
			"indicating a %s cosmic connection. "+
			"Your elemental pairing of %s and %s creates a %s dynamic.",
			in.Animal1, in.Animal2, in.Total,
			strings.ToLower(tier.String()),
			in.Element1, in.Element2, strings.ToLower(rel.String())),
		Advice: pick(rng, advice[tier]),
	}

	if s, ok := pairStrengths[key]; ok {
		r.Strengths = append(r.Strengths, s...)
	} else {
		r.Strengths = append(r.Strengths, genericStrengths[tier]...)
	}
	r.Strengths = append(r.Strengths, relationTexts[rel].strength)

	if c, ok := pairChallenges[key]; ok {
		r.Challenges = append(r.Challenges, c...)
	} else {
		r.Challenges = append(r.Challenges, genericChallenges[tier]...)
	}
	r.Challenges = append(r.Challenges, relationTexts[rel].challenge)

	return r
}

// Headlines returns the headline templates for a tier.
func Headlines(t yuanfen.Tier) []string { return headlines[t] }

// Advice returns the advice templates for a tier.
func Advice(t yuanfen.Tier) []string { return advice[t] }

func pick(rng *rand.Rand, options []string) string {
	if rng == nil {
		return options[0]
	}
	return options[rng.IntN(len(options))]
}
