package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const cardHeight = 6 // Four text lines plus the border

// View stacks the header, query field, body, burst lane and footer
func (m *model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	p := m.palette()
	st := newStyleSet(p, m.width)

	body := m.viewport.View()
	// The alert replaces the body until it is dismissed
	if m.alert != "" {
		body = m.renderAlert(st)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(st),
		renderAura(p.Aura, m.width),
		m.input.View(),
		"",
		body,
		m.burst.View(m.width),
		renderAura(p.Aura, m.width),
		m.renderFooter(st),
		st.help.Render(m.help.View(modeKeys{keys: m.keys, mode: m.currentMode()})),
	)
}

// renderHeader shows the title with the current mood and theme icon
func (m *model) renderHeader(st styleSet) string {
	title := "📚 Book Finder"
	if def, ok := LookupMood(m.mood); ok {
		title = fmt.Sprintf("%s   %s %s", title, def.Emoji, def.ID)
	}
	if m.dark {
		title += "  🌙"
	} else {
		title += "  ☀️"
	}
	return st.header.Render(title)
}

// renderFooter shows the quote revealed so far, or the neutral quote
func (m *model) renderFooter(st styleSet) string {
	quote := m.typewriter.View()
	if quote == "" {
		quote = MoodOrNeutral(MoodNone).Quote
	}
	return st.footer.Render(quote)
}

// renderAlert centers the alert box in the space the body would take
func (m *model) renderAlert(st styleSet) string {
	box := st.alert.Render(fmt.Sprintf("⚠️  %s\n\n[ enter ] OK", m.alert))
	return lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center, box)
}

// ============================================================================
// RESULTS
// ============================================================================

// renderResults draws the loading block, the card grid or the empty hint
func (m *model) renderResults() string {
	st := newStyleSet(m.palette(), m.width)

	if m.loading {
		return st.loading.Render(m.spinner.View() + " Tuning into your emotion…")
	}
	if len(m.books) == 0 {
		return st.empty.Render("Search for a mood or title and let feeling find a book ✨")
	}

	cols := m.columns()
	var rows []string
	for start := 0; start < len(m.books); start += cols {
		end := min(start+cols, len(m.books))
		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			selected := m.mode == modeBrowse && i == m.cursor
			cards = append(cards, m.renderCard(st, m.books[i], selected))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return strings.Join(rows, "\n")
}

// renderCard draws one book as a fixed-size card
func (m *model) renderCard(st styleSet, b Book, selected bool) string {
	inner := cardWidth - 4 // Border and padding
	title := b.Title
	if title == "" {
		title = "Untitled"
	}

	var cover string
	if id, ok := b.Cover(); ok {
		// Keep the tail of the URL, it is the part that tells covers apart
		cover = st.cover.Render(fitTail(m.client.CoverURL(id, "M"), inner))
	} else {
		emoji := MoodOrNeutral(m.mood).Emoji
		cover = st.cardMeta.Render(fit(emoji+" no cover", inner))
	}

	lines := []string{
		cover,
		st.cardTitle.Render(fit(title, inner)),
		st.cardMeta.Render(fit(b.Author(), inner)),
		st.cardMeta.Render(fit(b.Year(), inner)),
	}

	style := st.card
	if selected {
		style = st.cardActive
	}
	return style.Render(strings.Join(lines, "\n"))
}

// fit truncates s to w terminal cells
func fit(s string, w int) string {
	return runewidth.Truncate(s, w, "…")
}

// fitTail truncates s to w terminal cells by dropping from the front
func fitTail(s string, w int) string {
	if runewidth.StringWidth(s) <= w {
		return s
	}
	rs := []rune(s)
	for len(rs) > 0 && runewidth.StringWidth(string(rs))+1 > w {
		rs = rs[1:]
	}
	return "…" + string(rs)
}

// ============================================================================
// MARKDOWN PAGES
// ============================================================================

// renderDetails refreshes the cached details page
func (m *model) renderDetails() {
	d := m.details
	switch {
	case d.loading:
		m.details.rendered = fmt.Sprintf("🔄 Loading details for %s...", d.book.Title)
	case d.err != nil:
		m.details.rendered = fmt.Sprintf("❌ Could not load details: %v\n\nPress esc to go back", d.err)
	case d.work != nil:
		coverURL := ""
		if id, ok := d.book.Cover(); ok {
			coverURL = m.client.CoverURL(id, "M")
		}
		md := detailsMarkdown(d.book, *d.work, coverURL)
		styled, err := renderWithStyle(md, m.dark, m.width-4)
		if err != nil {
			m.details.rendered = md
			return
		}
		m.details.rendered = styled
	}
}

// renderHelp refreshes the cached help page
func (m *model) renderHelp() {
	md := helpMarkdown()
	styled, err := renderWithStyle(md, m.dark, m.width-4)
	if err != nil {
		m.helpRendered = md
		return
	}
	m.helpRendered = styled
}
