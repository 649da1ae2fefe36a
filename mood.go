package main

import (
	"regexp"
	"strings"
)

// ============================================================================
// MOOD CATALOG
// ============================================================================
// Every mood the classifier can return has exactly one entry here. The
// neutral entry is never returned by DetectMood; it is what the UI falls
// back to when nothing matched.

// Mood identifies one of the fixed catalog entries
type Mood string

const (
	MoodNone        Mood = "" // No keyword matched
	MoodLove        Mood = "love"
	MoodHappy       Mood = "happy"
	MoodSad         Mood = "sad"
	MoodThriller    Mood = "thriller"
	MoodFantasy     Mood = "fantasy"
	MoodSciFi       Mood = "sciFi"
	MoodMystery     Mood = "mystery"
	MoodInspiration Mood = "inspiration"
	MoodNeutral     Mood = "neutral"
)

// Gradient describes the aura painted behind the view
type Gradient struct {
	Kind  string   // "linear" or "radial"
	Angle string   // Direction or position, e.g. "135deg" or "circle at 20% 20%"
	Stops []string // Hex colors from start to end
}

// String renders the gradient as a CSS-style descriptor
func (g Gradient) String() string {
	parts := append([]string{g.Angle}, g.Stops...)
	return g.Kind + "-gradient(" + strings.Join(parts, ",") + ")"
}

// MoodDefinition holds the display attributes for one mood
type MoodDefinition struct {
	ID    Mood
	Emoji string
	Light string // Accent used with the light theme
	Dark  string // Accent used with the dark theme
	Aura  Gradient
	Quote string
}

var moodCatalog = map[Mood]MoodDefinition{
	MoodLove: {
		ID:    MoodLove,
		Emoji: "💞",
		Light: "#ffdbe6",
		Dark:  "#ff2d6f",
		Aura:  Gradient{Kind: "radial", Angle: "circle at 20% 20%", Stops: []string{"#ffd1dc", "#ffffff"}},
		Quote: "Love is the quiet music between two heartbeats. 💗",
	},
	MoodHappy: {
		ID:    MoodHappy,
		Emoji: "🌈",
		Light: "#fff9c4",
		Dark:  "#ffd600",
		Aura:  Gradient{Kind: "linear", Angle: "135deg", Stops: []string{"#fff9c4", "#fff3a6", "#ffe082"}},
		Quote: "Happiness is a warm page turned with a smile. ☀️",
	},
	MoodSad: {
		ID:    MoodSad,
		Emoji: "💧",
		Light: "#bbdefb",
		Dark:  "#1565c0",
		Aura:  Gradient{Kind: "radial", Angle: "circle at 40% 60%", Stops: []string{"#bbdefb", "#e3f2fd"}},
		Quote: "Sometimes tears water stories that words cannot. 💧",
	},
	MoodThriller: {
		ID:    MoodThriller,
		Emoji: "💀",
		Light: "#e1bee7",
		Dark:  "#6a1b9a",
		Aura:  Gradient{Kind: "linear", Angle: "135deg", Stops: []string{"#e1bee7", "#9575cd", "#6a1b9a"}},
		Quote: "The darkest pages often hide the brightest twist. ⚡",
	},
	MoodFantasy: {
		ID:    MoodFantasy,
		Emoji: "🧚‍♀️",
		Light: "#d1c4e9",
		Dark:  "#7e57c2",
		Aura:  Gradient{Kind: "linear", Angle: "135deg", Stops: []string{"#d1c4e9", "#9575cd"}},
		Quote: "Dreams are just stories that escaped reality. ✨",
	},
	MoodSciFi: {
		ID:    MoodSciFi,
		Emoji: "🚀",
		Light: "#b2ebf2",
		Dark:  "#00acc1",
		Aura:  Gradient{Kind: "radial", Angle: "circle at 20% 80%", Stops: []string{"#b2ebf2", "#80deea"}},
		Quote: "In the galaxy of imagination, every page is a star. 🌌",
	},
	MoodMystery: {
		ID:    MoodMystery,
		Emoji: "🕵️",
		Light: "#e0f7fa",
		Dark:  "#37474f",
		Aura:  Gradient{Kind: "linear", Angle: "135deg", Stops: []string{"#cfd8dc", "#37474f"}},
		Quote: "The unknown is the best story hook. 🕯️",
	},
	MoodInspiration: {
		ID:    MoodInspiration,
		Emoji: "✨",
		Light: "#e8f5e9",
		Dark:  "#2e7d32",
		Aura:  Gradient{Kind: "linear", Angle: "135deg", Stops: []string{"#e8f5e9", "#b9f6ca"}},
		Quote: "A single idea can light a thousand pages. ✨",
	},
	MoodNeutral: {
		ID:    MoodNeutral,
		Emoji: "✨",
		Light: "#f5f5f5",
		Dark:  "#9e9e9e",
		Aura:  Gradient{Kind: "linear", Angle: "135deg", Stops: []string{"#fafafa", "#e0e0e0"}},
		Quote: "Every story begins with a spark of curiosity. ✨",
	},
}

// LookupMood returns the catalog entry for id.
// The returned definition is a copy; callers cannot alter the catalog.
func LookupMood(id Mood) (MoodDefinition, bool) {
	def, ok := moodCatalog[id]
	if !ok {
		return MoodDefinition{}, false
	}
	def.Aura.Stops = append([]string(nil), def.Aura.Stops...)
	return def, true
}

// MoodOrNeutral resolves id, substituting the neutral entry for MoodNone
func MoodOrNeutral(id Mood) MoodDefinition {
	if def, ok := LookupMood(id); ok {
		return def
	}
	def, _ := LookupMood(MoodNeutral)
	return def
}

// ============================================================================
// MOOD CLASSIFIER
// ============================================================================

// moodPattern pairs a mood with the keywords that select it
type moodPattern struct {
	mood    Mood
	pattern *regexp.Regexp
}

// Order matters: the first matching group wins, so "mystery" lands on
// thriller before the mystery group is ever consulted.
var moodPatterns = []moodPattern{
	{MoodLove, regexp.MustCompile(`love|romance|heart|kiss`)},
	{MoodHappy, regexp.MustCompile(`happy|joy|fun|smile|cheer`)},
	{MoodSad, regexp.MustCompile(`sad|tear|lonely|cry|melancholy`)},
	{MoodThriller, regexp.MustCompile(`thriller|mystery|crime|suspense`)},
	{MoodFantasy, regexp.MustCompile(`fantasy|magic|dragon|wizard|fairy`)},
	{MoodSciFi, regexp.MustCompile(`space|galaxy|future|robot|sci`)},
	{MoodMystery, regexp.MustCompile(`mystery|detective|clue|whodunit`)},
	{MoodInspiration, regexp.MustCompile(`inspire|inspiration|motivate|uplift`)},
}

// DetectMood maps free text to the first mood whose keywords it contains.
// Keywords match anywhere in the text, including inside longer words.
func DetectMood(text string) Mood {
	if strings.TrimSpace(text) == "" {
		return MoodNone
	}
	t := strings.ToLower(text)
	for _, p := range moodPatterns {
		if p.pattern.MatchString(t) {
			return p.mood
		}
	}
	return MoodNone
}
