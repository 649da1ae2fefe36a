package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectMood(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Mood
	}{
		{"love keyword", "love", MoodLove},
		{"romance keyword", "A Regency Romance", MoodLove},
		{"heart keyword", "heart of darkness", MoodLove},
		{"kiss keyword", "the KISS quotient", MoodLove},
		{"happy", "happy days", MoodHappy},
		{"joy", "the joy luck club", MoodHappy},
		{"sad", "a sad tale", MoodSad},
		{"melancholy", "Melancholy of Resistance", MoodSad},
		{"thriller", "crime and punishment", MoodThriller},
		{"mystery goes to thriller first", "a mystery", MoodThriller},
		{"fantasy", "a tale of dragons and magic", MoodFantasy},
		{"sci-fi", "robots in space", MoodSciFi},
		{"mystery group", "the detective", MoodMystery},
		{"whodunit", "a proper whodunit", MoodMystery},
		{"inspiration", "books to motivate me", MoodInspiration},
		{"no match", "travel guide to portugal", MoodNone},
		{"empty", "", MoodNone},
		{"whitespace", "   \t\n", MoodNone},
		{"substring match", "science of cooking", MoodSciFi},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DetectMood(tc.text))
		})
	}
}

func TestDetectMood_FirstGroupWins(t *testing.T) {
	assert.Equal(t, MoodLove, DetectMood("happy love story"))
	assert.Equal(t, MoodLove, DetectMood("love and happiness"))
	assert.Equal(t, MoodHappy, DetectMood("a cheerful crime"))
	assert.Equal(t, MoodThriller, DetectMood("detective suspense"))
}

func TestDetectMood_OnlyLoveKeywords(t *testing.T) {
	for _, text := range []string{"love", "romance", "heart", "kiss", "kiss my heart", "ROMANCE LOVE"} {
		assert.Equal(t, MoodLove, DetectMood(text), text)
	}
}

func TestMoodCatalog_Complete(t *testing.T) {
	ids := []Mood{
		MoodLove, MoodHappy, MoodSad, MoodThriller, MoodFantasy,
		MoodSciFi, MoodMystery, MoodInspiration, MoodNeutral,
	}
	require.Len(t, moodCatalog, len(ids))

	for _, id := range ids {
		def, ok := LookupMood(id)
		require.True(t, ok, id)
		assert.Equal(t, id, def.ID)
		assert.NotEmpty(t, def.Emoji)
		assert.NotEmpty(t, def.Quote)
		assert.Regexp(t, `^#[0-9a-f]{6}$`, def.Light)
		assert.Regexp(t, `^#[0-9a-f]{6}$`, def.Dark)
		assert.NotEmpty(t, def.Aura.Stops)
	}

	// Every classifier group resolves to a catalog entry
	for _, p := range moodPatterns {
		_, ok := LookupMood(p.mood)
		assert.True(t, ok, p.mood)
	}
}

func TestLookupMood_ReturnsCopy(t *testing.T) {
	def, ok := LookupMood(MoodFantasy)
	require.True(t, ok)
	def.Aura.Stops[0] = "#000000"
	def.Quote = "changed"

	again, _ := LookupMood(MoodFantasy)
	assert.Equal(t, "#d1c4e9", again.Aura.Stops[0])
	assert.Equal(t, "Dreams are just stories that escaped reality. ✨", again.Quote)
}

func TestMoodOrNeutral(t *testing.T) {
	assert.Equal(t, MoodNeutral, MoodOrNeutral(MoodNone).ID)
	assert.Equal(t, "Every story begins with a spark of curiosity. ✨", MoodOrNeutral(MoodNone).Quote)
	assert.Equal(t, MoodSad, MoodOrNeutral(MoodSad).ID)

	_, ok := LookupMood(MoodNone)
	assert.False(t, ok)
}

func TestGradientString(t *testing.T) {
	def := MoodOrNeutral(MoodFantasy)
	assert.Equal(t, "linear-gradient(135deg,#d1c4e9,#9575cd)", def.Aura.String())

	love := MoodOrNeutral(MoodLove)
	assert.Equal(t, "radial-gradient(circle at 20% 20%,#ffd1dc,#ffffff)", love.Aura.String())
}
