package zodiac

import "github.com/f3rmion/yuanfen/internal/bazi"

// Traits describes the character and affinities of a zodiac animal.
type Traits struct {
	Animal       bazi.Animal   `json:"animal" yaml:"animal"`
	Hanzi        string        `json:"hanzi" yaml:"hanzi"`
	Element      bazi.Element  `json:"element" yaml:"element"`
	Polarity     bazi.Polarity `json:"polarity" yaml:"polarity"`
	Personality  string        `json:"personality" yaml:"personality"`
	Positive     []string      `json:"positive" yaml:"positive"`
	Negative     []string      `json:"negative" yaml:"negative"`
	LuckyNumbers []int         `json:"lucky_numbers" yaml:"lucky_numbers"`
	LuckyColors  []string      `json:"lucky_colors" yaml:"lucky_colors"`
	Best         []bazi.Animal `json:"best" yaml:"best"`
	Good         []bazi.Animal `json:"good" yaml:"good"`
	Challenging  []bazi.Animal `json:"challenging" yaml:"challenging"`
}

// Scores assigned by BasicScore.
const (
	BasicBest        = 95
	BasicGood        = 75
	BasicChallenging = 35
	BasicNeutral     = 55
)

var traits = [bazi.NumAnimals]Traits{
	bazi.Rat: {
		Hanzi:        "鼠",
		Personality:  "Quick-witted and resourceful, Rats are natural problem-solvers who thrive in social situations. They are charming and persuasive, with a knack for seeing opportunities others miss.",
		Positive:     []string{"Intelligent", "Adaptable", "Quick-witted", "Charming", "Artistic", "Sociable"},
		Negative:     []string{"Opportunistic", "Manipulative", "Suspicious", "Petty", "Greedy"},
		LuckyNumbers: []int{2, 3},
		LuckyColors:  []string{"Blue", "Gold", "Green"},
		Best:         []bazi.Animal{bazi.Dragon, bazi.Monkey},
		Good:         []bazi.Animal{bazi.Ox},
		Challenging:  []bazi.Animal{bazi.Horse, bazi.Rooster},
	},
	bazi.Ox: {
		Hanzi:        "牛",
		Personality:  "Steadfast and reliable, Oxen are the pillars of strength in any relationship. They value tradition, hard work, and loyalty above all else.",
		Positive:     []string{"Diligent", "Dependable", "Strong", "Determined", "Honest", "Patient"},
		Negative:     []string{"Stubborn", "Conservative", "Slow", "Inflexible", "Materialistic"},
		LuckyNumbers: []int{1, 9},
		LuckyColors:  []string{"Red", "Blue", "Purple"},
		Best:         []bazi.Animal{bazi.Rat, bazi.Snake, bazi.Rooster},
		Good:         []bazi.Animal{bazi.Monkey},
		Challenging:  []bazi.Animal{bazi.Tiger, bazi.Dragon, bazi.Goat},
	},
	bazi.Tiger: {
		Hanzi:        "虎",
		Personality:  "Bold and adventurous, Tigers are natural leaders who live life on their own terms. They are passionate lovers who bring excitement and intensity to relationships.",
		Positive:     []string{"Brave", "Confident", "Competitive", "Charismatic", "Passionate", "Independent"},
		Negative:     []string{"Impulsive", "Reckless", "Arrogant", "Short-tempered", "Rebellious"},
		LuckyNumbers: []int{1, 3, 4},
		LuckyColors:  []string{"Blue", "Grey", "Orange"},
		Best:         []bazi.Animal{bazi.Horse, bazi.Dog},
		Good:         []bazi.Animal{bazi.Pig, bazi.Dragon},
		Challenging:  []bazi.Animal{bazi.Ox, bazi.Snake, bazi.Monkey},
	},
	bazi.Rabbit: {
		Hanzi:        "兔",
		Personality:  "Graceful and kind-hearted, Rabbits create harmonious environments wherever they go. They are romantic partners who value peace, beauty, and emotional connection.",
		Positive:     []string{"Gentle", "Compassionate", "Artistic", "Elegant", "Peaceful", "Sincere"},
		Negative:     []string{"Superficial", "Stubborn", "Overly Cautious", "Pessimistic", "Detached"},
		LuckyNumbers: []int{3, 4, 6},
		LuckyColors:  []string{"Red", "Pink", "Purple", "Blue"},
		Best:         []bazi.Animal{bazi.Goat, bazi.Pig},
		Good:         []bazi.Animal{bazi.Dog, bazi.Snake},
		Challenging:  []bazi.Animal{bazi.Rooster, bazi.Rat},
	},
	bazi.Dragon: {
		Hanzi:        "龙",
		Personality:  "Magnificent and powerful, Dragons are natural born leaders who inspire others. They are passionate and intense partners who seek equally strong companions.",
		Positive:     []string{"Charismatic", "Intelligent", "Confident", "Enthusiastic", "Ambitious", "Lucky"},
		Negative:     []string{"Arrogant", "Demanding", "Impatient", "Dogmatic", "Intolerant"},
		LuckyNumbers: []int{1, 6, 7},
		LuckyColors:  []string{"Gold", "Silver", "Grey"},
		Best:         []bazi.Animal{bazi.Rat, bazi.Monkey, bazi.Rooster},
		Good:         []bazi.Animal{bazi.Tiger, bazi.Snake},
		Challenging:  []bazi.Animal{bazi.Ox, bazi.Dog, bazi.Dragon},
	},
	bazi.Snake: {
		Hanzi:        "蛇",
		Personality:  "Mysterious and elegant, Snakes possess deep wisdom and intuition. They are intense, passionate partners who form deep emotional bonds with their chosen ones.",
		Positive:     []string{"Wise", "Enigmatic", "Intuitive", "Refined", "Calm", "Sophisticated"},
		Negative:     []string{"Jealous", "Suspicious", "Cunning", "Possessive", "Cold"},
		LuckyNumbers: []int{2, 8, 9},
		LuckyColors:  []string{"Black", "Red", "Yellow"},
		Best:         []bazi.Animal{bazi.Ox, bazi.Rooster},
		Good:         []bazi.Animal{bazi.Dragon, bazi.Rabbit},
		Challenging:  []bazi.Animal{bazi.Tiger, bazi.Pig},
	},
	bazi.Horse: {
		Hanzi:        "马",
		Personality:  "Free-spirited and energetic, Horses love adventure and independence. They are warm and enthusiastic partners who need space and freedom in relationships.",
		Positive:     []string{"Energetic", "Independent", "Cheerful", "Warm-hearted", "Talented", "Free-spirited"},
		Negative:     []string{"Impatient", "Irresponsible", "Self-centered", "Anxious", "Restless"},
		LuckyNumbers: []int{2, 3, 7},
		LuckyColors:  []string{"Yellow", "Green"},
		Best:         []bazi.Animal{bazi.Tiger, bazi.Goat, bazi.Dog},
		Good:         []bazi.Animal{bazi.Dragon},
		Challenging:  []bazi.Animal{bazi.Rat, bazi.Ox, bazi.Rooster},
	},
	bazi.Goat: {
		Hanzi:        "羊",
		Personality:  "Gentle and artistic, Goats are sensitive souls who appreciate beauty and harmony. They are nurturing partners who create warm, loving relationships.",
		Positive:     []string{"Creative", "Gentle", "Compassionate", "Calm", "Artistic", "Thoughtful"},
		Negative:     []string{"Pessimistic", "Indecisive", "Over-sensitive", "Weak-willed", "Dependent"},
		LuckyNumbers: []int{3, 4, 9},
		LuckyColors:  []string{"Green", "Red", "Purple"},
		Best:         []bazi.Animal{bazi.Rabbit, bazi.Horse, bazi.Pig},
		Good:         []bazi.Animal{bazi.Monkey},
		Challenging:  []bazi.Animal{bazi.Ox, bazi.Dog},
	},
	bazi.Monkey: {
		Hanzi:        "猴",
		Personality:  "Clever and playful, Monkeys are masters of wit and charm. They are entertaining partners who keep relationships exciting and unpredictable.",
		Positive:     []string{"Clever", "Versatile", "Energetic", "Witty", "Innovative", "Sociable"},
		Negative:     []string{"Cunning", "Manipulative", "Restless", "Vain", "Irresponsible"},
		LuckyNumbers: []int{1, 7, 8},
		LuckyColors:  []string{"White", "Blue", "Gold"},
		Best:         []bazi.Animal{bazi.Rat, bazi.Dragon},
		Good:         []bazi.Animal{bazi.Ox, bazi.Goat},
		Challenging:  []bazi.Animal{bazi.Tiger, bazi.Pig},
	},
	bazi.Rooster: {
		Hanzi:        "鸡",
		Personality:  "Confident and meticulous, Roosters are perfectionists who value honesty and hard work. They are loyal partners who expect the same dedication they give.",
		Positive:     []string{"Observant", "Hardworking", "Courageous", "Resourceful", "Confident", "Honest"},
		Negative:     []string{"Critical", "Boastful", "Perfectionist", "Conservative", "Selfish"},
		LuckyNumbers: []int{5, 7, 8},
		LuckyColors:  []string{"Gold", "Brown", "Yellow"},
		Best:         []bazi.Animal{bazi.Ox, bazi.Snake, bazi.Dragon},
		Good:         []bazi.Animal{bazi.Monkey},
		Challenging:  []bazi.Animal{bazi.Rat, bazi.Rabbit, bazi.Horse, bazi.Rooster},
	},
	bazi.Dog: {
		Hanzi:        "狗",
		Personality:  "Loyal and honest, Dogs are the most faithful companions. They are devoted partners who value trust and commitment above all else in relationships.",
		Positive:     []string{"Loyal", "Honest", "Faithful", "Responsible", "Courageous", "Just"},
		Negative:     []string{"Anxious", "Stubborn", "Critical", "Pessimistic", "Conservative"},
		LuckyNumbers: []int{3, 4, 9},
		LuckyColors:  []string{"Red", "Green", "Purple"},
		Best:         []bazi.Animal{bazi.Tiger, bazi.Horse, bazi.Rabbit},
		Good:         []bazi.Animal{bazi.Rat, bazi.Snake},
		Challenging:  []bazi.Animal{bazi.Dragon, bazi.Goat, bazi.Rooster},
	},
	bazi.Pig: {
		Hanzi:        "猪",
		Personality:  "Generous and kind-hearted, Pigs are optimistic souls who see the best in everyone. They are loving partners who create warm, nurturing relationships.",
		Positive:     []string{"Compassionate", "Generous", "Diligent", "Honest", "Tolerant", "Optimistic"},
		Negative:     []string{"Naive", "Gullible", "Materialistic", "Lazy", "Self-indulgent"},
		LuckyNumbers: []int{2, 5, 8},
		LuckyColors:  []string{"Yellow", "Grey", "Brown"},
		Best:         []bazi.Animal{bazi.Rabbit, bazi.Goat},
		Good:         []bazi.Animal{bazi.Tiger, bazi.Rat},
		Challenging:  []bazi.Animal{bazi.Snake, bazi.Monkey, bazi.Pig},
	},
}

// TraitsOf returns the traits of a. The animal's element and polarity are
// those of its branch. Slices are shared and must not be modified.
func TraitsOf(a bazi.Animal) Traits {
	t := traits[a]
	t.Animal = a
	t.Element = a.Branch().Element()
	t.Polarity = bazi.Polarity(int(a) % 2)
	return t
}

// BasicScore is a's own view of b: 95 for a best match, 75 for a good one,
// 35 for a challenging one and 55 otherwise. It is not symmetric.
func BasicScore(a, b bazi.Animal) int {
	t := traits[a]
	switch {
	case containsAnimal(t.Best, b):
		return BasicBest
	case containsAnimal(t.Good, b):
		return BasicGood
	case containsAnimal(t.Challenging, b):
		return BasicChallenging
	default:
		return BasicNeutral
	}
}

// SamePolarity reports whether a and b share Yin or Yang energy.
func SamePolarity(a, b bazi.Animal) bool {
	return int(a)%2 == int(b)%2
}

// Compatible lists the animals recommended for a: its Liu He partner, then
// San He partners missing from its best and good lists, then the best and
// good lists themselves.
func Compatible(a bazi.Animal) []bazi.Animal {
	t := traits[a]
	list := make([]bazi.Animal, 0, len(t.Best)+len(t.Good)+3)
	list = append(list, t.Best...)
	list = append(list, t.Good...)

	for _, p := range TrinityGroup(a) {
		if p != a && !containsAnimal(list, p) {
			list = append([]bazi.Animal{p}, list...)
		}
	}
	if p := SecretFriendOf(a); !containsAnimal(list, p) {
		list = append([]bazi.Animal{p}, list...)
	}
	return list
}

func containsAnimal(list []bazi.Animal, a bazi.Animal) bool {
	for _, x := range list {
		if x == a {
			return true
		}
	}
	return false
}
