package reading

import (
	"github.com/f3rmion/yuanfen/internal/bazi"
	"github.com/f3rmion/yuanfen/internal/yuanfen"
)

var headlines = [...][]string{
	yuanfen.Excellent: {
		"A Match Written in the Stars",
		"Destined Souls Unite",
		"Cosmic Harmony Awaits",
		"The Universe Smiles Upon You",
		"A Rare Celestial Connection",
	},
	yuanfen.VeryGood: {
		"Strong Cosmic Alignment",
		"Promising Celestial Bond",
		"Harmonious Energy Flow",
		"A Beautiful Balance",
		"Bright Stars Align",
	},
	yuanfen.Good: {
		"Potential for Deep Connection",
		"Growing Together Through Balance",
		"Complementary Energies",
		"A Journey of Discovery",
		"Building Bridges Between Stars",
	},
	yuanfen.Challenging: {
		"Opposites Can Attract",
		"Growth Through Differences",
		"A Test of Compatibility",
		"Learning Through Contrast",
		"Finding Balance in Diversity",
	},
	yuanfen.Difficult: {
		"A Challenging Path Ahead",
		"Significant Differences to Navigate",
		"Requires Exceptional Effort",
		"The Stars Present Obstacles",
		"A Difficult Cosmic Journey",
	},
}

var advice = [...][]string{
	yuanfen.Excellent: {
		"Your natural compatibility is a gift - nurture it with communication and appreciation",
		"This strong foundation allows you to weather any storm together",
		"Use your natural harmony to build something truly special and lasting",
		"While compatibility is high, never take each other for granted",
	},
	yuanfen.VeryGood: {
		"You have excellent potential - focus on building on your natural strengths",
		"Your differences are minor and can add interesting dimensions to your relationship",
		"Open communication will help you maximize your strong compatibility",
		"This is a promising match that can deepen with time and effort",
	},
	yuanfen.Good: {
		"Success requires conscious effort to understand and appreciate each other",
		"Focus on your shared values while respecting your differences",
		"Regular communication and compromise will strengthen your bond",
		"Your relationship can grow stronger through mutual understanding",
	},
	yuanfen.Challenging: {
		"This match requires significant effort and understanding from both partners",
		"Focus on finding common ground and respecting fundamental differences",
		"Success is possible but demands patience, communication, and compromise",
		"Consider whether you're both willing to work through the challenges",
	},
	yuanfen.Difficult: {
		"This pairing faces significant obstacles that require exceptional commitment",
		"Both partners must be willing to grow and change for the relationship to work",
		"Consider whether the relationship brings out the best in both of you",
		"Sometimes the wisest path is to remain friends rather than romantic partners",
	},
}

// Level-wide fallbacks when a zodiac pair has no text of its own.
var (
	genericStrengths = [...][]string{
		yuanfen.Excellent: {"Natural understanding and compatibility", "Complementary energies that enhance each other"},
		yuanfen.VeryGood:  {"Natural understanding and compatibility", "Complementary energies that enhance each other"},
		yuanfen.Good:      {"Potential for growth through mutual understanding", "Opportunities to learn from each other's differences"},
	}
	genericChallenges = [...][]string{
		yuanfen.Excellent:   {"May become too comfortable and stop growing", "Need to maintain individual identities"},
		yuanfen.VeryGood:    {"May become too comfortable and stop growing", "Need to maintain individual identities"},
		yuanfen.Good:        {"Requires consistent effort to understand differences", "May need to compromise on fundamental approaches"},
		yuanfen.Challenging: {"Fundamental differences in values and approach to life", "Requires exceptional patience and understanding"},
		yuanfen.Difficult:   {"Fundamental differences in values and approach to life", "Requires exceptional patience and understanding"},
	}
)

const numTiers = int(yuanfen.Excellent) + 1

var (
	_ = [1]struct{}{}[len(headlines)-numTiers]
	_ = [1]struct{}{}[len(advice)-numTiers]
	_ = [1]struct{}{}[len(genericStrengths)-numTiers]
	_ = [1]struct{}{}[len(genericChallenges)-numTiers]
)

type relationText struct {
	strength, challenge string
}

var relationTexts = [...]relationText{
	bazi.SameElement: {
		"Deep understanding of each other's core nature and energy",
		"May compete for the same resources or fall into similar patterns",
	},
	bazi.Generating: {
		"One partner naturally supports and energizes the other, creating harmonious flow",
		"The supporting partner may sometimes feel drained if balance is not maintained",
	},
	bazi.BeingGenerated: {
		"One partner receives natural nourishment and support from the other",
		"The nourished partner must remember to give back and not become dependent",
	},
	bazi.Controlling: {
		"Can provide necessary structure and boundaries to the relationship",
		"One partner may feel dominated or restricted by the other's energy",
	},
	bazi.BeingControlled: {
		"Teaches important lessons about flexibility and adaptation",
		"May feel overpowered or limited without conscious effort to maintain balance",
	},
}

var _ = [1]struct{}{}[len(relationTexts)-5]

// pair is an unordered zodiac pair, stored lowest animal first.
type pair [2]bazi.Animal

func pairOf(a, b bazi.Animal) pair {
	if b < a {
		a, b = b, a
	}
	return pair{a, b}
}

// pairStrengths covers the trinity and secret friend pairs that have their
// own text.
var pairStrengths = map[pair][]string{
	pairOf(bazi.Rat, bazi.Dragon): {
		"Both are ambitious and intelligent, creating a powerhouse partnership",
		"Natural understanding of each other's drive for success",
		"Excellent communication and mutual respect",
	},
	pairOf(bazi.Rat, bazi.Monkey): {
		"Share quick wit and clever problem-solving abilities",
		"Dynamic and exciting relationship full of adventure",
		"Strong mental connection and playful energy",
	},
	pairOf(bazi.Tiger, bazi.Horse): {
		"Both love freedom and adventure, creating exciting experiences together",
		"Passionate and energetic relationship",
		"Mutual respect for independence and personal space",
	},
	pairOf(bazi.Tiger, bazi.Dog): {
		"Deep loyalty and trust form the foundation",
		"Shared values of honesty and justice",
		"Protective and supportive of each other's dreams",
	},
	pairOf(bazi.Rabbit, bazi.Goat): {
		"Create a peaceful, artistic, and harmonious home together",
		"Both appreciate beauty and emotional connection",
		"Gentle understanding and nurturing relationship",
	},
	pairOf(bazi.Rabbit, bazi.Pig): {
		"Share optimism and kindness toward each other",
		"Create a loving and supportive partnership",
		"Both value peace and emotional security",
	},
	pairOf(bazi.Ox, bazi.Snake): {
		"Deep intellectual connection and mutual respect",
		"Both value stability and long-term planning",
		"Calm, sophisticated partnership built on trust",
	},
	pairOf(bazi.Ox, bazi.Rooster): {
		"Hardworking and dedicated to shared goals",
		"Practical approach to life and relationships",
		"Strong foundation built on honesty and reliability",
	},
	pairOf(bazi.Rat, bazi.Ox): {
		"Perfect balance of innovation and stability",
		"Rat brings excitement while Ox provides security",
		"Complementary strengths create powerful synergy",
	},
	pairOf(bazi.Tiger, bazi.Pig): {
		"Tiger's passion balanced by Pig's gentleness",
		"Mutual admiration and genuine affection",
		"Support each other's dreams and aspirations",
	},
	pairOf(bazi.Rabbit, bazi.Dog): {
		"Dog's loyalty complements Rabbit's need for security",
		"Both value honesty and emotional connection",
		"Create a safe, loving environment together",
	},
	pairOf(bazi.Dragon, bazi.Rooster): {
		"Dragon's charisma enhanced by Rooster's attention to detail",
		"Both are confident and capable",
		"Admire and respect each other's strengths",
	},
	pairOf(bazi.Snake, bazi.Monkey): {
		"Snake's wisdom balanced by Monkey's cleverness",
		"Intellectually stimulating partnership",
		"Keep each other mentally engaged and entertained",
	},
	pairOf(bazi.Horse, bazi.Goat): {
		"Horse provides adventure while Goat creates harmony",
		"Complementary approach to life and love",
		"Freedom balanced with emotional connection",
	},
}

// pairChallenges covers every clash pair.
var pairChallenges = map[pair][]string{
	pairOf(bazi.Rat, bazi.Horse): {
		"Fundamentally different approaches to life and freedom",
		"Rat seeks security while Horse craves independence",
		"May struggle with trust and commitment issues",
	},
	pairOf(bazi.Ox, bazi.Goat): {
		"Ox's rigidity clashes with Goat's need for flexibility",
		"Different values regarding responsibility and spontaneity",
		"Communication style differences can cause friction",
	},
	pairOf(bazi.Tiger, bazi.Monkey): {
		"Both compete for dominance and attention",
		"Tiger's directness conflicts with Monkey's cunning",
		"Trust issues and power struggles are common",
	},
	pairOf(bazi.Rabbit, bazi.Rooster): {
		"Rooster's critical nature wounds sensitive Rabbit",
		"Different communication styles cause misunderstandings",
		"Rabbit needs peace while Rooster stirs things up",
	},
	pairOf(bazi.Dragon, bazi.Dog): {
		"Dragon's arrogance irritates Dog's sense of justice",
		"Dog questions Dragon's grand schemes",
		"Fundamental differences in worldview and values",
	},
	pairOf(bazi.Snake, bazi.Pig): {
		"Snake's suspicion conflicts with Pig's trusting nature",
		"Different approaches to social life and relationships",
		"Pig's openness clashes with Snake's secretive nature",
	},
}
