package auspicious

import "github.com/f3rmion/yuanfen/internal/bazi"

// Activities describes how an element likes to spend time with others.
type Activities struct {
	Favorable     []string `json:"favorable" yaml:"favorable"`
	Unfavorable   []string `json:"unfavorable" yaml:"unfavorable"`
	Communication string   `json:"communication" yaml:"communication"`
	Energy        string   `json:"energy" yaml:"energy"`
}

var elementActivities = [...]Activities{
	bazi.Wood: {
		Favorable:     []string{"Creative conversations", "Planning future dates", "Outdoor activities", "Starting new relationships", "Brainstorming together"},
		Unfavorable:   []string{"Making final commitments", "Confrontational discussions", "Rigid planning"},
		Communication: "Be open and growth-oriented",
		Energy:        "Expansive and creative",
	},
	bazi.Fire: {
		Favorable:     []string{"Passionate conversations", "Expressing emotions", "Bold declarations", "Social gatherings", "Physical activities"},
		Unfavorable:   []string{"Cold analysis", "Pessimistic topics", "Passive-aggressive behavior"},
		Communication: "Be direct and enthusiastic",
		Energy:        "Dynamic and transformative",
	},
	bazi.Earth: {
		Favorable:     []string{"Building trust", "Deep conversations", "Sharing meals", "Making commitments", "Practical planning"},
		Unfavorable:   []string{"Impulsive decisions", "Frequent changes", "Unstable situations"},
		Communication: "Be patient and nurturing",
		Energy:        "Stable and grounding",
	},
	bazi.Metal: {
		Favorable:     []string{"Honest discussions", "Setting boundaries", "Quality time", "Intellectual debates", "Clear communication"},
		Unfavorable:   []string{"Emotional manipulation", "Vague commitments", "Disorganized activities"},
		Communication: "Be precise and authentic",
		Energy:        "Focused and refined",
	},
	bazi.Water: {
		Favorable:     []string{"Intuitive connection", "Emotional sharing", "Going with the flow", "Deep listening", "Reflective activities"},
		Unfavorable:   []string{"Forcing outcomes", "Rigid schedules", "Surface-level chat"},
		Communication: "Flow with conversations naturally",
		Energy:        "Adaptive and intuitive",
	},
}

var dailyInsights = [...][]string{
	bazi.Wood: {
		"Your creative energy is strong today. Great time to explore new connections and share your ideas.",
		"Growth-oriented conversations will flourish. Be open to new possibilities in your relationships.",
		"Your natural flexibility shines today. Adapt to changing plans and go with the flow.",
		"Social energy is high. Reach out to matches and initiate engaging conversations.",
		"Plant seeds for future connections. Your charm and optimism are particularly magnetic.",
	},
	bazi.Fire: {
		"Your passionate nature is amplified today. Express yourself boldly and authentically.",
		"Dynamic energy surrounds you. Perfect for exciting dates and heartfelt declarations.",
		"Your charisma is at its peak. Don't hold back from showing your true feelings.",
		"Transformative conversations await. Your enthusiasm can ignite deep connections.",
		"Bold energy today. Take the initiative and let your light shine brightly.",
	},
	bazi.Earth: {
		"Stability and trust are your strengths today. Focus on building solid foundations.",
		"Your nurturing energy creates safe spaces. Perfect for deep, meaningful conversations.",
		"Patience and reliability attract the right connections. Stay grounded and authentic.",
		"Your steady presence is comforting. Ideal for making commitments and long-term plans.",
		"Grounding energy flows through you. Share meals and create lasting memories.",
	},
	bazi.Metal: {
		"Clarity and precision guide you today. Honest communication strengthens bonds.",
		"Your refined taste and standards attract quality connections. Be authentic.",
		"Focused energy helps you see through superficiality. Trust your discernment.",
		"Structured conversations bring results. Set clear intentions and boundaries.",
		"Your integrity shines. Perfect for meaningful, authentic interactions.",
	},
	bazi.Water: {
		"Flow with conversations today. Your intuition guides you to the right connections.",
		"Deep emotional currents run strong. Listen to your inner wisdom.",
		"Adaptive energy serves you well. Be flexible and receptive to others.",
		"Your reflective nature attracts kindred spirits. Share your depths carefully.",
		"Intuitive insights are powerful today. Trust your feelings and go with the flow.",
	},
}

var activityTemplates = [...][numPeriods]string{
	bazi.Wood: {
		Morning:   "Start fresh conversations and plan new adventures",
		Afternoon: "Engage in creative activities together",
		Evening:   "Share dreams and future visions",
		Night:     "Reflect on growth and possibilities",
	},
	bazi.Fire: {
		Morning:   "Express yourself with confidence",
		Afternoon: "Engage in passionate discussions",
		Evening:   "Perfect for romantic dates and bold moves",
		Night:     "Let emotions flow naturally",
	},
	bazi.Earth: {
		Morning:   "Build foundations with steady communication",
		Afternoon: "Share a meal and create comfort",
		Evening:   "Deep conversations about commitment",
		Night:     "Nurture emotional bonds",
	},
	bazi.Metal: {
		Morning:   "Clear, honest communication",
		Afternoon: "Engage in intellectual pursuits",
		Evening:   "Quality time with focused attention",
		Night:     "Refine understanding and set intentions",
	},
	bazi.Water: {
		Morning:   "Listen to intuition about connections",
		Afternoon: "Go with the flow of conversation",
		Evening:   "Deep, reflective sharing",
		Night:     "Emotional intimacy flows naturally",
	},
}

// phaseModifiers scale the daily strength of each element by lunar phase.
var phaseModifiers = [numPhases][bazi.NumElements]float64{
	NewMoon:  {bazi.Wood: 1.1, bazi.Fire: 0.9, bazi.Earth: 1.0, bazi.Metal: 0.9, bazi.Water: 1.2},
	Waxing:   {bazi.Wood: 1.2, bazi.Fire: 1.1, bazi.Earth: 1.0, bazi.Metal: 0.9, bazi.Water: 1.0},
	FullMoon: {bazi.Wood: 1.0, bazi.Fire: 1.2, bazi.Earth: 1.0, bazi.Metal: 1.1, bazi.Water: 1.1},
	Waning:   {bazi.Wood: 0.9, bazi.Fire: 0.9, bazi.Earth: 1.1, bazi.Metal: 1.2, bazi.Water: 1.0},
}

var (
	_ = [1]struct{}{}[len(elementActivities)-bazi.NumElements]
	_ = [1]struct{}{}[len(dailyInsights)-bazi.NumElements]
	_ = [1]struct{}{}[len(activityTemplates)-bazi.NumElements]
)
