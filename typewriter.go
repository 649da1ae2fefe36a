package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rivo/uniseg"
)

// typewriterTickMsg advances the reveal that carries the same tag
type typewriterTickMsg struct {
	tag int
}

// Typewriter reveals a quote one grapheme cluster per tick.
// Start bumps the tag, so ticks scheduled for an earlier quote are ignored
// and a restarted reveal never mixes in characters of the previous one.
type Typewriter struct {
	interval  time.Duration
	target    []string // Grapheme clusters of the quote
	revealed  string
	pos       int
	tag       int
	animating bool
}

func NewTypewriter(interval time.Duration) Typewriter {
	return Typewriter{interval: interval}
}

// Start truncates the visible text and begins revealing text
func (t *Typewriter) Start(text string) tea.Cmd {
	t.tag++
	t.target = splitGraphemes(text)
	t.revealed = ""
	t.pos = 0
	t.animating = len(t.target) > 0
	if !t.animating {
		return nil
	}
	return t.tick()
}

// Update appends one cluster for a current tick and schedules the next
func (t Typewriter) Update(msg tea.Msg) (Typewriter, tea.Cmd) {
	tick, ok := msg.(typewriterTickMsg)
	if !ok || tick.tag != t.tag || !t.animating {
		return t, nil
	}

	if t.pos < len(t.target) {
		t.revealed += t.target[t.pos]
		t.pos++
	}
	if t.pos >= len(t.target) {
		t.animating = false
		return t, nil
	}
	return t, t.tick()
}

// View returns the text revealed so far
func (t Typewriter) View() string {
	return t.revealed
}

// Done reports whether the whole target is visible
func (t Typewriter) Done() bool {
	return !t.animating
}

func (t Typewriter) tick() tea.Cmd {
	tag := t.tag
	return tea.Tick(t.interval, func(time.Time) tea.Msg {
		return typewriterTickMsg{tag: tag}
	})
}

func splitGraphemes(s string) []string {
	var out []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}
