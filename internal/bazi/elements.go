package bazi

import "fmt"

var generates = [...]Element{
	Wood:  Fire,
	Fire:  Earth,
	Earth: Metal,
	Metal: Water,
	Water: Wood,
}

var controls = [...]Element{
	Wood:  Earth,
	Earth: Water,
	Water: Fire,
	Fire:  Metal,
	Metal: Wood,
}

// Attributes are the traditional correspondences of an element.
type Attributes struct {
	Direction  string   `json:"direction" yaml:"direction"`
	Season     string   `json:"season" yaml:"season"`
	Colors     []string `json:"colors" yaml:"colors"`
	Activities []string `json:"activities" yaml:"activities"`
	Foods      []string `json:"foods" yaml:"foods"`
}

var elementAttributes = [...]Attributes{
	Wood: {
		Direction:  "East",
		Season:     "Spring",
		Colors:     []string{"Green", "Teal"},
		Activities: []string{"Nature walks", "Gardening", "Creative projects", "Morning activities"},
		Foods:      []string{"Green vegetables", "Sprouts", "Sour foods", "Spring foods"},
	},
	Fire: {
		Direction:  "South",
		Season:     "Summer",
		Colors:     []string{"Red", "Orange", "Purple"},
		Activities: []string{"Dancing", "Social events", "Outdoor activities", "Passionate pursuits"},
		Foods:      []string{"Spicy foods", "Red foods", "Bitter foods", "Barbecue"},
	},
	Earth: {
		Direction:  "Center",
		Season:     "Late Summer",
		Colors:     []string{"Yellow", "Brown", "Beige"},
		Activities: []string{"Cooking", "Building projects", "Meditation", "Grounding activities"},
		Foods:      []string{"Root vegetables", "Sweet foods", "Yellow foods", "Grains"},
	},
	Metal: {
		Direction:  "West",
		Season:     "Autumn",
		Colors:     []string{"White", "Gold", "Silver"},
		Activities: []string{"Organization", "Precision work", "Autumn activities", "Structured exercise"},
		Foods:      []string{"White foods", "Pungent foods", "Rice", "Protein-rich foods"},
	},
	Water: {
		Direction:  "North",
		Season:     "Winter",
		Colors:     []string{"Black", "Blue", "Navy"},
		Activities: []string{"Swimming", "Reflection", "Winter activities", "Intuitive practices"},
		Foods:      []string{"Seafood", "Salty foods", "Black foods", "Soups and liquids"},
	},
}

var (
	_ = [1]struct{}{}[len(generates)-NumElements]
	_ = [1]struct{}{}[len(controls)-NumElements]
	_ = [1]struct{}{}[len(elementAttributes)-NumElements]
)

// Generates returns the element e nourishes in the generating cycle.
func (e Element) Generates() Element { return generates[e] }

// Controls returns the element e restrains in the controlling cycle.
func (e Element) Controls() Element { return controls[e] }

// GeneratedBy returns the element that nourishes e.
func (e Element) GeneratedBy() Element { return generatedBy(e) }

// ControlledBy returns the element that restrains e.
func (e Element) ControlledBy() Element { return controlledBy(e) }

// Weakens returns the element e drains: the reverse of the generating cycle.
func (e Element) Weakens() Element { return generatedBy(e) }

// Insults returns the element e counter-attacks: the reverse of the
// controlling cycle.
func (e Element) Insults() Element { return controlledBy(e) }

// Attributes returns the correspondences of e. Slices are shared.
func (e Element) Attributes() Attributes { return elementAttributes[e] }

func generatedBy(e Element) Element {
	for _, src := range Elements {
		if generates[src] == e {
			return src
		}
	}
	panic("bazi: generating cycle is not a permutation")
}

func controlledBy(e Element) Element {
	for _, src := range Elements {
		if controls[src] == e {
			return src
		}
	}
	panic("bazi: controlling cycle is not a permutation")
}

// Relation classifies how one element acts on another.
type Relation int

const (
	SameElement Relation = iota
	Generating
	BeingGenerated
	Controlling
	BeingControlled
)

var relationNames = [...]string{
	SameElement:     "Same Element",
	Generating:      "Generating",
	BeingGenerated:  "Being Generated",
	Controlling:     "Controlling",
	BeingControlled: "Being Controlled",
}

func (r Relation) String() string { return relationNames[r] }

// MarshalText encodes the relation by name.
func (r Relation) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// RelationBetween returns how a relates to b. Any pair of distinct elements
// is either adjacent in the generating cycle or linked by control, so the
// last case is always BeingControlled.
func RelationBetween(a, b Element) Relation {
	switch {
	case a == b:
		return SameElement
	case a.Generates() == b:
		return Generating
	case b.Generates() == a:
		return BeingGenerated
	case a.Controls() == b:
		return Controlling
	default:
		return BeingControlled
	}
}

// HarmoniousThreshold is the element compatibility score at or above which
// an element pair counts as harmonious.
const HarmoniousThreshold = 70

// elementCompat is directional: rows are the first person's element.
var elementCompat = [NumElements][NumElements]int{
	Wood:  {70, 95, 30, 25, 85},
	Fire:  {85, 68, 93, 28, 20},
	Earth: {25, 87, 72, 94, 32},
	Metal: {30, 22, 86, 66, 92},
	Water: {90, 26, 28, 88, 74},
}

// ElementCompatibility is the directional score (0-100) of pairing a with b.
func ElementCompatibility(a, b Element) int {
	return elementCompat[a][b]
}

// ElementPair is the element compatibility of two people.
type ElementPair struct {
	First       Element  `json:"first" yaml:"first"`
	Second      Element  `json:"second" yaml:"second"`
	Score       int      `json:"score" yaml:"score"`
	Relation    Relation `json:"relation" yaml:"relation"`
	Harmonious  bool     `json:"harmonious" yaml:"harmonious"`
	Description string   `json:"description" yaml:"description"`
	Advice      string   `json:"advice" yaml:"advice"`
}

// PairElements scores a against b.
func PairElements(a, b Element) ElementPair {
	score := ElementCompatibility(a, b)
	rel := RelationBetween(a, b)
	return ElementPair{
		First:       a,
		Second:      b,
		Score:       score,
		Relation:    rel,
		Harmonious:  score >= HarmoniousThreshold,
		Description: describePair(a, b, rel),
		Advice:      pairAdvice[rel],
	}
}

func describePair(a, b Element, rel Relation) string {
	switch rel {
	case SameElement:
		return fmt.Sprintf("Both partners share %s energy, creating deep understanding and similar approaches to life.", a)
	case Generating:
		return fmt.Sprintf("%s generates %s, creating a naturally supportive and nourishing dynamic where one partner energizes the other.", a, b)
	case BeingGenerated:
		return fmt.Sprintf("%s generates %s, providing natural support and nourishment to the relationship.", b, a)
	case Controlling:
		return fmt.Sprintf("%s controls %s, which can create structure but may also lead to feelings of restriction.", a, b)
	default:
		return fmt.Sprintf("%s controls %s, requiring conscious effort to maintain balance and mutual respect.", b, a)
	}
}

var pairAdvice = [...]string{
	SameElement:     "Embrace your similarities but ensure you maintain individual growth and don't become too set in your ways.",
	Generating:      "The generating partner should be mindful not to give too much, while the receiving partner should show appreciation and reciprocate.",
	BeingGenerated:  "Show gratitude for the support received and find ways to give back to maintain balance in the relationship.",
	Controlling:     "The controlling partner should practice flexibility, while the controlled partner should communicate their needs clearly.",
	BeingControlled: "Focus on finding the positive aspects of this dynamic. Structure and boundaries can be beneficial when balanced with freedom.",
}
