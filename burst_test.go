package main

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var burstEpoch = time.Date(2024, 2, 14, 12, 0, 0, 0, time.UTC)

func seededBurst() Burst {
	return NewBurst(rand.New(rand.NewPCG(7, 9)))
}

func TestBurst_SpawnPlacesGlyphsInTheMiddle(t *testing.T) {
	b := seededBurst()
	cmd := b.Spawn(burstEpoch, "💞", 14, 100)
	require.NotNil(t, cmd)
	require.Equal(t, 14, b.Active())

	for _, p := range b.particles {
		assert.Equal(t, "💞", p.Glyph)
		assert.GreaterOrEqual(t, p.X, 20)
		assert.Less(t, p.X, 80)
		assert.GreaterOrEqual(t, p.Row, 0)
		assert.Less(t, p.Row, burstLanes)

		life := p.Expires.Sub(burstEpoch)
		assert.GreaterOrEqual(t, life, burstMinLifetime)
		assert.LessOrEqual(t, life, burstMinLifetime+burstLifeJitter)
	}
}

func TestBurst_NeutralCount(t *testing.T) {
	b := seededBurst()
	b.Spawn(burstEpoch, "✨", 10, 80)
	assert.Equal(t, 10, b.Active())
}

func TestBurst_AllGlyphsExpire(t *testing.T) {
	b := seededBurst()
	b.Spawn(burstEpoch, "🐉", 14, 100)

	// Nothing can expire before the minimum lifetime
	b, cmd := b.Update(burstTickMsg{tag: b.tag, at: burstEpoch.Add(time.Second)})
	assert.Equal(t, 14, b.Active())
	assert.NotNil(t, cmd)

	b, cmd = b.Update(burstTickMsg{tag: b.tag, at: burstEpoch.Add(burstMinLifetime + burstLifeJitter)})
	assert.Equal(t, 0, b.Active())
	assert.Nil(t, cmd, "sweep loop should stop once the lane is empty")
}

func TestBurst_StaleTickIgnored(t *testing.T) {
	b := seededBurst()
	b.Spawn(burstEpoch, "🌈", 5, 100)
	old := b.tag
	b.Spawn(burstEpoch.Add(time.Second), "🌈", 5, 100)
	require.Equal(t, 10, b.Active())

	b, cmd := b.Update(burstTickMsg{tag: old, at: burstEpoch.Add(time.Hour)})
	assert.Equal(t, 10, b.Active())
	assert.Nil(t, cmd)
}

func TestBurst_RepeatedSearchesStayBounded(t *testing.T) {
	b := seededBurst()
	now := burstEpoch
	for i := 0; i < 50; i++ {
		b.Spawn(now, "🚀", 14, 100)
		now = now.Add(5 * time.Second)
		b, _ = b.Update(burstTickMsg{tag: b.tag, at: now})
	}
	assert.Equal(t, 0, b.Active())
}

func TestBurst_ViewKeepsLaneWidth(t *testing.T) {
	b := seededBurst()
	b.Spawn(burstEpoch, "💀", 14, 60)

	rows := strings.Split(b.View(60), "\n")
	require.Len(t, rows, burstLanes)
	for _, row := range rows {
		assert.Equal(t, 60, lipgloss.Width(row))
	}

	empty := NewBurst(nil)
	assert.Equal(t, strings.Repeat(" ", 10)+"\n"+strings.Repeat(" ", 10), empty.View(10))
}

func TestBurst_NarrowWidthStaysInside(t *testing.T) {
	b := seededBurst()
	b.Spawn(burstEpoch, "🧚", 14, 3)
	for _, p := range b.particles {
		assert.LessOrEqual(t, p.X+2, 3)
	}
}
