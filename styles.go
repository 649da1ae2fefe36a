package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// ============================================================================
// STYLING SYSTEM
// ============================================================================
// Two inputs decide every color on screen: the theme flag and the detected
// mood. A mood always wins over the theme defaults; the theme only picks
// which of the mood's two accents is used.

// Palette is the resolved set of colors for one frame
type Palette struct {
	Foreground lipgloss.Color // Body text
	Muted      lipgloss.Color // Secondary text (authors, years, hints)
	HeaderBg   lipgloss.Color
	HeaderFg   lipgloss.Color
	FooterBg   lipgloss.Color
	FooterFg   lipgloss.Color
	Accent     lipgloss.Color // Card borders, spinner glow
	Aura       Gradient       // Background strip
}

var (
	// Ambient backgrounds used when no mood is set
	lightAura = Gradient{Kind: "linear", Angle: "180deg", Stops: []string{"#ffffff", "#f7fbff"}}
	darkAura  = Gradient{Kind: "linear", Angle: "180deg", Stops: []string{"#050014", "#000000"}}
)

// paletteFor resolves the colors for the theme flag and mood
func paletteFor(dark bool, mood Mood) Palette {
	p := Palette{
		Foreground: "#0b1220",
		Muted:      "#5b6475",
		HeaderBg:   "#f0f4ff",
		HeaderFg:   "#0b1220",
		FooterBg:   "#f0f4ff",
		FooterFg:   "#0b1220",
		Accent:     lipgloss.Color(MoodOrNeutral(MoodNone).Light),
		Aura:       lightAura,
	}
	if dark {
		p = Palette{
			Foreground: "#ffffff",
			Muted:      "#a0a8b8",
			HeaderBg:   "#111111",
			HeaderFg:   "#ffffff",
			FooterBg:   "#111111",
			FooterFg:   "#ffffff",
			Accent:     lipgloss.Color(MoodOrNeutral(MoodNone).Light),
			Aura:       darkAura,
		}
	}

	def, ok := LookupMood(mood)
	if !ok {
		return p
	}

	// Mood overrides: aura, header/footer and accent
	p.Aura = def.Aura
	if dark {
		p.HeaderBg, p.HeaderFg = lipgloss.Color(def.Dark), "#ffffff"
		p.Accent = lipgloss.Color(def.Dark)
	} else {
		p.HeaderBg, p.HeaderFg = lipgloss.Color(def.Light), "#000000"
		p.Accent = lipgloss.Color(def.Light)
	}
	p.FooterBg, p.FooterFg = p.HeaderBg, p.HeaderFg
	return p
}

// detectDarkTheme resolves the configured theme name to the theme flag
func detectDarkTheme(theme string) bool {
	switch theme {
	case ThemeDark:
		return true
	case ThemeAuto:
		return termenv.HasDarkBackground()
	default:
		return false
	}
}

// ============================================================================
// AURA
// ============================================================================

// renderAura paints the gradient as a strip of width colored cells.
// Radial gradients have no terminal equivalent and are drawn linearly.
func renderAura(g Gradient, width int) string {
	if width <= 0 {
		return ""
	}
	stops := make([]colorful.Color, 0, len(g.Stops))
	for _, hex := range g.Stops {
		c, err := colorful.Hex(hex)
		if err != nil {
			continue
		}
		stops = append(stops, c)
	}
	if len(stops) == 0 {
		return strings.Repeat(" ", width)
	}

	var sb strings.Builder
	for i := 0; i < width; i++ {
		c := blendAt(stops, float64(i)/float64(max(width-1, 1)))
		sb.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render(" "))
	}
	return sb.String()
}

// blendAt returns the color at position t (0..1) along evenly spaced stops
func blendAt(stops []colorful.Color, t float64) colorful.Color {
	if len(stops) == 1 {
		return stops[0]
	}
	seg := t * float64(len(stops)-1)
	i := int(seg)
	if i >= len(stops)-1 {
		return stops[len(stops)-1]
	}
	return stops[i].BlendLuv(stops[i+1], seg-float64(i)).Clamped()
}

// ============================================================================
// COMPONENT STYLES
// ============================================================================

// styleSet groups the styles derived from one palette
type styleSet struct {
	header     lipgloss.Style
	footer     lipgloss.Style
	card       lipgloss.Style
	cardActive lipgloss.Style
	cardTitle  lipgloss.Style
	cardMeta   lipgloss.Style
	cover      lipgloss.Style
	empty      lipgloss.Style
	loading    lipgloss.Style
	alert      lipgloss.Style
	help       lipgloss.Style
}

const cardWidth = 30 // Outer width of a result card including border

// newStyleSet derives every component style from one palette.
// Header and footer span the full width so the mood color reads as a band.
func newStyleSet(p Palette, width int) styleSet {
	return styleSet{
		// header is the top band: app title, mood and theme icon
		header: lipgloss.NewStyle().
			Bold(true).             // Title weight
			Foreground(p.HeaderFg). // Black or white against the mood color
			Background(p.HeaderBg). // Mood color, or the theme's neutral band
			Padding(0, 2).          // 2 spaces left/right
			Width(width),           // Fill the terminal width

		// footer carries the quote the typewriter is revealing
		footer: lipgloss.NewStyle().
			Italic(true).           // Quotes read as quotes
			Foreground(p.FooterFg). // Same pairing as the header
			Background(p.FooterBg).
			Padding(0, 2).
			Width(width),

		// card frames one search hit in the result grid
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()). // Soft corners for idle cards
			BorderForeground(p.Accent).       // Mood accent ties cards to the header
			Padding(0, 1).                    // 1 space between border and text
			Width(cardWidth - 2),             // Border takes one cell each side

		// cardActive marks the card under the browse cursor
		cardActive: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()). // Heavier frame than idle cards
			BorderForeground(p.Foreground). // Plain text color stands out from the accent
			Padding(0, 1).
			Width(cardWidth - 2),

		cardTitle: lipgloss.NewStyle().Bold(true).Foreground(p.Foreground),
		cardMeta:  lipgloss.NewStyle().Foreground(p.Muted),                 // Author and year, dimmed
		cover:     lipgloss.NewStyle().Foreground(p.Accent).Underline(true), // Looks like a link

		// empty is the hint shown before the first search or after no hits
		empty: lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true).
			Width(width).
			Align(lipgloss.Center). // Centered under the query field
			MarginTop(1),

		// loading shows the spinner while a search is in flight
		loading: lipgloss.NewStyle().
			Foreground(p.Accent). // Glows in the mood color
			Bold(true).
			Width(width).
			Align(lipgloss.Center).
			MarginTop(1),

		// alert is the modal network error box
		alert: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).         // Double line reads as a dialog
			BorderForeground(lipgloss.Color("203")). // Red-orange
			Foreground(p.Foreground).
			Padding(1, 3), // Room around the message and the OK hint

		help: lipgloss.NewStyle().Foreground(p.Muted).Padding(0, 2),
	}
}

// ============================================================================
// COLOR LEGEND
// ============================================================================
// #0b1220 / #ffffff  body text on light / dark
// #5b6475 / #a0a8b8  muted text on light / dark
// #f0f4ff / #111111  header and footer band with no mood
// 203                alert border (red-orange)
// Mood colors come from the catalog in mood.go: Light for the light theme,
// Dark for the dark theme.
