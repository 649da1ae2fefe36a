package main

import (
	"math/rand/v2"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	burstLanes        = 2                      // Rows reserved above the footer
	burstTickInterval = 100 * time.Millisecond // How often expired glyphs are swept
	burstMinLifetime  = 2400 * time.Millisecond
	burstLifeJitter   = 1000 * time.Millisecond
)

// burstTickMsg sweeps expired particles of the burst with the same tag
type burstTickMsg struct {
	tag int
	at  time.Time
}

// particle is one decorative glyph floating in the burst lane
type particle struct {
	Glyph   string
	X       int  // Column in the lane
	Row     int  // Lane row, 0 is the top one
	Big     bool // Rendered bold
	Faint   bool // Rendered dimmed
	Expires time.Time
}

// Burst owns the glyphs spawned on each search.
// Every particle carries its own expiry and the sweep loop stops once the
// lane is empty, so repeated searches never grow state without bound.
type Burst struct {
	rng       *rand.Rand
	particles []particle
	tag       int
}

func NewBurst(rng *rand.Rand) Burst {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>7|1))
	}
	return Burst{rng: rng}
}

// Spawn adds count glyphs across the middle 60% of a lane width cells wide
func (b *Burst) Spawn(now time.Time, glyph string, count, width int) tea.Cmd {
	glyphWidth := runewidth.StringWidth(glyph)
	if glyphWidth == 0 {
		glyphWidth = 1
	}

	for i := 0; i < count; i++ {
		x := int(float64(width)*0.2 + b.rng.Float64()*float64(width)*0.6)
		if x+glyphWidth > width {
			x = max(0, width-glyphWidth)
		}
		size := 12 + b.rng.IntN(28)
		opacity := 0.6 + b.rng.Float64()*0.4
		life := burstMinLifetime + time.Duration(b.rng.Float64()*float64(burstLifeJitter))

		b.particles = append(b.particles, particle{
			Glyph:   glyph,
			X:       x,
			Row:     b.rng.IntN(burstLanes),
			Big:     size >= 26,
			Faint:   opacity < 0.8,
			Expires: now.Add(life),
		})
	}

	// A fresh loop replaces any sweep already running
	b.tag++
	return b.tick()
}

// Update drops expired particles and keeps sweeping while any remain
func (b Burst) Update(msg tea.Msg) (Burst, tea.Cmd) {
	tick, ok := msg.(burstTickMsg)
	if !ok || tick.tag != b.tag {
		return b, nil
	}

	b.particles = b.sweep(tick.at)
	if len(b.particles) == 0 {
		return b, nil
	}
	return b, b.tick()
}

// Active reports how many glyphs are still visible
func (b Burst) Active() int {
	return len(b.particles)
}

// View draws the lane rows, each padded to width
func (b Burst) View(width int) string {
	rows := make([]string, burstLanes)
	for r := range rows {
		rows[r] = b.renderRow(r, width)
	}
	return strings.Join(rows, "\n")
}

func (b Burst) renderRow(row, width int) string {
	var inRow []particle
	for _, p := range b.particles {
		if p.Row == row {
			inRow = append(inRow, p)
		}
	}
	sort.Slice(inRow, func(i, j int) bool { return inRow[i].X < inRow[j].X })

	var sb strings.Builder
	col := 0
	for _, p := range inRow {
		w := runewidth.StringWidth(p.Glyph)
		// Overlapping glyphs would break the line width
		if p.X < col || p.X+w > width {
			continue
		}
		sb.WriteString(strings.Repeat(" ", p.X-col))
		style := lipgloss.NewStyle().Bold(p.Big).Faint(p.Faint)
		sb.WriteString(style.Render(p.Glyph))
		col = p.X + w
	}
	if col < width {
		sb.WriteString(strings.Repeat(" ", width-col))
	}
	return sb.String()
}

func (b Burst) sweep(now time.Time) []particle {
	kept := b.particles[:0:0]
	for _, p := range b.particles {
		if now.Before(p.Expires) {
			kept = append(kept, p)
		}
	}
	return kept
}

func (b Burst) tick() tea.Cmd {
	tag := b.tag
	return tea.Tick(burstTickInterval, func(t time.Time) tea.Msg {
		return burstTickMsg{tag: tag, at: t}
	})
}
