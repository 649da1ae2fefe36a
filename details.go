package main

import (
	"fmt"
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/charmbracelet/glamour"
)

const maxSubjects = 8 // Subjects listed under a description

// cleanDescription turns a work description into plain markdown.
// Open Library descriptions are mostly markdown but often carry stray HTML:
// links become markdown links, line breaks become newlines, any other tag
// is dropped and entities are decoded.
func cleanDescription(raw string) string {
	if !strings.ContainsAny(raw, "<&") {
		return strings.TrimSpace(raw)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return strings.TrimSpace(raw)
	}

	doc.Find("script, style, iframe, noscript").Remove()
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("p, div, li").Each(func(i int, s *goquery.Selection) {
		s.AppendHtml("\n\n")
	})
	doc.Find("a").Each(func(i int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		href, ok := s.Attr("href")
		if !ok || href == "" || text == "" {
			s.ReplaceWithHtml(html.EscapeString(text))
			return
		}
		s.ReplaceWithHtml(html.EscapeString(fmt.Sprintf("[%s](%s)", text, href)))
	})

	return strings.TrimSpace(doc.Text())
}

// detailsMarkdown builds the details page for a search hit
func detailsMarkdown(book Book, work WorkDetails, coverURL string) string {
	var md strings.Builder

	title := work.Title
	if title == "" {
		title = book.Title
	}
	md.WriteString(fmt.Sprintf("# %s\n\n", title))
	md.WriteString(fmt.Sprintf("*%s · %s*\n\n", book.Author(), book.Year()))

	if desc := cleanDescription(work.Description); desc != "" {
		md.WriteString(desc)
		md.WriteString("\n\n")
	} else {
		md.WriteString("_No description available._\n\n")
	}

	if len(work.Subjects) > 0 {
		subjects := work.Subjects
		if len(subjects) > maxSubjects {
			subjects = subjects[:maxSubjects]
		}
		md.WriteString(fmt.Sprintf("**Subjects:** %s\n\n", strings.Join(subjects, ", ")))
	}

	if coverURL != "" {
		md.WriteString(fmt.Sprintf("🖼️ Cover: %s\n", coverURL))
	}
	return md.String()
}

// renderWithStyle renders markdown with the glamour style matching the theme
func renderWithStyle(md string, dark bool, width int) (string, error) {
	style := "light"
	if dark {
		style = "dark"
	}
	if width < 20 {
		width = 20
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}

// helpMarkdown documents the keys and the moods the classifier knows
func helpMarkdown() string {
	var md strings.Builder
	md.WriteString("# 📚 Book Finder\n\n")
	md.WriteString("Type a mood or a title and press **enter**. The words you type pick a mood, ")
	md.WriteString("the mood paints the screen, and Open Library finds the books.\n\n")

	md.WriteString("## Keys\n\n")
	md.WriteString("- **enter**: search (or open details while browsing)\n")
	md.WriteString("- **tab**: move between the search field and the result cards\n")
	md.WriteString("- **arrows / hjkl**: move between cards, scroll details\n")
	md.WriteString("- **esc**: go back\n")
	md.WriteString("- **ctrl+t**: switch between light and dark 🌗\n")
	md.WriteString("- **ctrl+c**: quit\n\n")

	md.WriteString("## Moods\n\n")
	md.WriteString("The first group that matches wins.\n\n")
	for _, p := range moodPatterns {
		def := MoodOrNeutral(p.mood)
		md.WriteString(fmt.Sprintf("- %s **%s**: `%s`\n", def.Emoji, p.mood, p.pattern.String()))
	}
	md.WriteString("\n> " + MoodOrNeutral(MoodNone).Quote + "\n")
	return md.String()
}
