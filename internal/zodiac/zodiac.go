// Package zodiac classifies pairs of zodiac animals and scores them.
package zodiac

import (
	"github.com/f3rmion/yuanfen/internal/bazi"
	"github.com/f3rmion/yuanfen/internal/calendar"
)

// Relationship is the traditional grouping two animals fall into.
type Relationship int

const (
	Neutral Relationship = iota
	Trinity
	SecretFriend
	Clash
)

var relationshipNames = [...]string{
	Neutral:      "Neutral",
	Trinity:      "San He Trinity",
	SecretFriend: "Liu He Pair",
	Clash:        "Conflicting",
}

func (r Relationship) String() string { return relationshipNames[r] }

// MarshalText encodes the relationship by name.
func (r Relationship) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// Bonus is the adjustment a relationship applies to the matrix score.
func (r Relationship) Bonus() int {
	switch r {
	case Trinity:
		return 15
	case SecretFriend:
		return 12
	case Clash:
		return -10
	default:
		return 0
	}
}

// trinities are the four San He groups and the element each one forms.
var trinities = [4]struct {
	members [3]bazi.Animal
	element bazi.Element
}{
	{[3]bazi.Animal{bazi.Rat, bazi.Dragon, bazi.Monkey}, bazi.Water},
	{[3]bazi.Animal{bazi.Ox, bazi.Snake, bazi.Rooster}, bazi.Metal},
	{[3]bazi.Animal{bazi.Tiger, bazi.Horse, bazi.Dog}, bazi.Fire},
	{[3]bazi.Animal{bazi.Rabbit, bazi.Goat, bazi.Pig}, bazi.Wood},
}

// secretFriends maps each animal to its Liu He partner.
var secretFriends = [...]bazi.Animal{
	bazi.Rat:     bazi.Ox,
	bazi.Ox:      bazi.Rat,
	bazi.Tiger:   bazi.Pig,
	bazi.Rabbit:  bazi.Dog,
	bazi.Dragon:  bazi.Rooster,
	bazi.Snake:   bazi.Monkey,
	bazi.Horse:   bazi.Goat,
	bazi.Goat:    bazi.Horse,
	bazi.Monkey:  bazi.Snake,
	bazi.Rooster: bazi.Dragon,
	bazi.Dog:     bazi.Rabbit,
	bazi.Pig:     bazi.Tiger,
}

var _ = [1]struct{}{}[len(secretFriends)-bazi.NumAnimals]

// scores is the symmetric pairwise compatibility matrix in animal order.
var scores = [bazi.NumAnimals][bazi.NumAnimals]int{
	bazi.Rat:     {55, 95, 45, 40, 97, 60, 25, 50, 98, 35, 65, 70},
	bazi.Ox:      {95, 50, 30, 55, 35, 96, 45, 28, 75, 97, 50, 65},
	bazi.Tiger:   {45, 30, 48, 60, 72, 35, 96, 55, 25, 42, 98, 93},
	bazi.Rabbit:  {40, 55, 60, 52, 58, 68, 62, 95, 50, 27, 94, 97},
	bazi.Dragon:  {97, 35, 72, 58, 38, 78, 65, 55, 96, 93, 26, 62},
	bazi.Snake:   {60, 96, 35, 68, 78, 53, 58, 62, 94, 98, 48, 24},
	bazi.Horse:   {25, 45, 96, 62, 65, 58, 50, 95, 55, 38, 97, 68},
	bazi.Goat:    {50, 28, 55, 95, 55, 62, 95, 54, 73, 42, 32, 96},
	bazi.Monkey:  {98, 75, 25, 50, 96, 94, 55, 73, 51, 60, 58, 33},
	bazi.Rooster: {35, 97, 42, 27, 93, 98, 38, 42, 60, 36, 45, 52},
	bazi.Dog:     {65, 50, 98, 94, 26, 48, 97, 32, 58, 45, 49, 72},
	bazi.Pig:     {70, 65, 93, 97, 62, 24, 68, 96, 33, 52, 72, 47},
}

// MatrixScore is the raw pairwise score of two animals.
func MatrixScore(a, b bazi.Animal) int {
	return scores[a][b]
}

// IsTrinity reports whether both animals belong to the same San He group.
// An animal is in its own group.
func IsTrinity(a, b bazi.Animal) bool {
	return trinityIndex(a) == trinityIndex(b)
}

// IsSecretFriend reports whether a and b form a Liu He pair.
func IsSecretFriend(a, b bazi.Animal) bool {
	return secretFriends[a] == b
}

// IsClash reports whether a and b sit opposite each other, six years apart.
func IsClash(a, b bazi.Animal) bool {
	return ClashPartner(a) == b
}

// TrinityGroup returns the San He group containing a.
func TrinityGroup(a bazi.Animal) [3]bazi.Animal {
	return trinities[trinityIndex(a)].members
}

// TrinityElement returns the element formed by a's San He group.
func TrinityElement(a bazi.Animal) bazi.Element {
	return trinities[trinityIndex(a)].element
}

// SecretFriendOf returns a's Liu He partner.
func SecretFriendOf(a bazi.Animal) bazi.Animal {
	return secretFriends[a]
}

// ClashPartner returns the animal opposite a.
func ClashPartner(a bazi.Animal) bazi.Animal {
	return bazi.Animal((int(a) + 6) % bazi.NumAnimals)
}

func trinityIndex(a bazi.Animal) int {
	// Groups are the animals congruent mod 4.
	return int(a) % 4
}

// Classify returns the relationship of a and b. Trinity takes precedence
// over secret friend, which takes precedence over clash.
func Classify(a, b bazi.Animal) Relationship {
	switch {
	case IsTrinity(a, b):
		return Trinity
	case IsSecretFriend(a, b):
		return SecretFriend
	case IsClash(a, b):
		return Clash
	default:
		return Neutral
	}
}

// Match is the scored relationship between two animals.
type Match struct {
	First        bazi.Animal  `json:"first" yaml:"first"`
	Second       bazi.Animal  `json:"second" yaml:"second"`
	Relationship Relationship `json:"relationship" yaml:"relationship"`
	BaseScore    int          `json:"base_score" yaml:"base_score"`
	Bonus        int          `json:"bonus" yaml:"bonus"`
	Score        int          `json:"score" yaml:"score"`
	TraitScore   int          `json:"trait_score" yaml:"trait_score"`
}

// Compare scores a against b: the matrix score plus the relationship bonus,
// clamped to [0, 100]. TraitScore applies the same bonus to BasicScore and
// is informational only.
func Compare(a, b bazi.Animal) Match {
	rel := Classify(a, b)
	base := MatrixScore(a, b)
	return Match{
		First:        a,
		Second:       b,
		Relationship: rel,
		BaseScore:    base,
		Bonus:        rel.Bonus(),
		Score:        clamp(base+rel.Bonus(), 0, 100),
		TraitScore:   clamp(BasicScore(a, b)+rel.Bonus(), 0, 100),
	}
}

// baseYear is a Rat year.
const baseYear = 1924

// AnimalOfYear returns the animal of a Gregorian year, without the
// February boundary applied by the year pillar.
func AnimalOfYear(year int) bazi.Animal {
	return bazi.Animal(calendar.FloorMod(year-baseYear, bazi.NumAnimals))
}

// ElementOfYear returns the element of a Gregorian year from its last digit:
// 0-1 Metal, 2-3 Water, 4-5 Wood, 6-7 Fire, 8-9 Earth.
func ElementOfYear(year int) bazi.Element {
	switch calendar.FloorMod(year, 10) {
	case 0, 1:
		return bazi.Metal
	case 2, 3:
		return bazi.Water
	case 4, 5:
		return bazi.Wood
	case 6, 7:
		return bazi.Fire
	default:
		return bazi.Earth
	}
}

// PolarityOfYear is Yang for even years and Yin for odd ones.
func PolarityOfYear(year int) bazi.Polarity {
	return bazi.Polarity(calendar.FloorMod(year, 2))
}

// FullElementOfYear names the polarity and element of a year, e.g.
// "Yang Metal" for 1990.
func FullElementOfYear(year int) string {
	return PolarityOfYear(year).String() + " " + ElementOfYear(year).String()
}

// ElementOfMonth returns the seasonal element of a Gregorian month.
func ElementOfMonth(month int) bazi.Element {
	switch month {
	case 2, 3, 4:
		return bazi.Wood
	case 5, 6, 7:
		return bazi.Fire
	case 8, 9, 10:
		return bazi.Metal
	case 11, 12, 1:
		return bazi.Water
	default:
		return bazi.Earth
	}
}

// ElementOfHour returns the element of a clock hour. The transitional
// hours 7-8, 13-14 and 19-20 are Earth.
func ElementOfHour(hour int) bazi.Element {
	switch {
	case hour == 23 || (hour >= 0 && hour <= 2):
		return bazi.Water
	case hour >= 3 && hour <= 6:
		return bazi.Wood
	case hour >= 9 && hour <= 12:
		return bazi.Fire
	case hour >= 15 && hour <= 18:
		return bazi.Metal
	case hour == 21 || hour == 22:
		return bazi.Water
	default:
		return bazi.Earth
	}
}

// AgeCompatibility describes what a difference in birth years means.
type AgeCompatibility struct {
	Compatible bool   `json:"compatible" yaml:"compatible"`
	Note       string `json:"note" yaml:"note"`
}

// CompareAges interprets the difference between two birth years.
func CompareAges(yearDiff int) AgeCompatibility {
	if yearDiff < 0 {
		yearDiff = -yearDiff
	}
	switch {
	case yearDiff <= 1:
		return AgeCompatibility{true, "Similar life stages and experiences"}
	case yearDiff == 4 || yearDiff == 8:
		return AgeCompatibility{true, "San He harmony - natural understanding"}
	case yearDiff == 6:
		return AgeCompatibility{false, "Conflicting signs - requires extra effort"}
	case yearDiff == 3 || yearDiff == 9:
		return AgeCompatibility{true, "Harmonious age difference"}
	default:
		return AgeCompatibility{true, "Neutral age compatibility"}
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
