package main

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case searchResultsMsg:
		return m.handleSearchResults(msg)
	case searchErrorMsg:
		return m.handleSearchError(msg)
	case workLoadedMsg:
		return m.handleWorkLoaded(msg)
	case workErrorMsg:
		return m.handleWorkError(msg)

	case typewriterTickMsg:
		m.typewriter, cmd = m.typewriter.Update(msg)
		return m, cmd

	case burstTickMsg:
		m.burst, cmd = m.burst.Update(msg)
		return m, cmd

	case spinner.TickMsg:
		// Let the spin loop die once nothing is loading
		if !m.loading {
			return m, nil
		}
		m.spinner, cmd = m.spinner.Update(msg)
		m.refreshBody()
		return m, cmd
	}

	// Cursor blink and anything else the query field understands
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Handle key messages
func (m *model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.shutdown()
		return m, tea.Quit
	}

	// The alert swallows everything until it is dismissed
	if m.alert != "" {
		return m.handleAlertKey(msg)
	}

	if key.Matches(msg, m.keys.Theme) {
		return m.handleToggleTheme()
	}

	switch m.mode {
	case modeBrowse:
		return m.handleBrowseKey(msg)
	case modeDetails, modeHelp:
		return m.handlePagerKey(msg)
	default:
		return m.handleSearchKey(msg)
	}
}

func (m *model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Search):
		return m.handleSearch()

	case key.Matches(msg, m.keys.Focus):
		if len(m.books) == 0 || m.loading {
			return m, nil
		}
		m.mode = modeBrowse
		m.input.Blur()
		m.refreshBody()
		return m, nil

	case msg.String() == "f1":
		return m.handleOpenHelp()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(0, 1)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1, 0)
	case key.Matches(msg, m.keys.Open):
		return m.handleOpenDetails()
	case key.Matches(msg, m.keys.Help):
		return m.handleOpenHelp()
	case key.Matches(msg, m.keys.Back):
		m.mode = modeSearch
		m.refreshBody()
		return m, m.input.Focus()
	}
	return m, nil
}

// handlePagerKey scrolls the details and help pages
func (m *model) handlePagerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) {
		back := modeBrowse
		if m.mode == modeHelp {
			back = m.prevMode
		}
		if back == modeBrowse && len(m.books) == 0 {
			back = modeSearch
		}
		m.mode = back
		m.refreshBody()
		if back == modeSearch {
			return m, m.input.Focus()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *model) handleAlertKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Dismiss) {
		m.alert = ""
		m.refreshBody()
	}
	return m, nil
}

// ============================================================================
// SEARCH ORCHESTRATION
// ============================================================================

// handleSearch starts a search for the current query.
// A blank query does nothing at all. Otherwise state resets first, then the
// mood drives the quote and burst, then one request goes out.
func (m *model) handleSearch() (tea.Model, tea.Cmd) {
	query := m.input.Value()
	if isBlank(query) {
		return m, nil
	}

	// Last search wins: the one in flight is cancelled and its reply dropped
	if m.cancelSearch != nil {
		m.cancelSearch()
	}
	m.searchSeq++

	m.loading = true
	m.books = nil
	m.cursor = 0
	m.mood = DetectMood(query)
	def := MoodOrNeutral(m.mood)
	m.quote = def.Quote

	m.log.WithField("query", query).WithField("mood", string(def.ID)).Info("search started")

	cmds := []tea.Cmd{m.typewriter.Start(m.quote)}
	if m.cfg.EnableBurst {
		count := 10
		if m.mood != MoodNone {
			count = 14
		}
		cmds = append(cmds, m.burst.Spawn(m.now(), def.Emoji, count, m.width))
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.cancelSearch = cancel
	cmds = append(cmds,
		searchBooks(ctx, m.client, m.searchSeq, query, m.cfg.ResultLimit),
		m.spinner.Tick,
	)

	m.refreshBody()
	m.viewport.GotoTop()
	return m, tea.Batch(cmds...)
}

func (m *model) handleSearchResults(msg searchResultsMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.searchSeq {
		m.log.WithField("query", msg.query).Debug("dropping superseded results")
		return m, nil
	}
	m.finishSearch()

	books := msg.books
	if len(books) > m.cfg.ResultLimit {
		books = books[:m.cfg.ResultLimit]
	}
	m.books = books
	m.cursor = 0

	m.refreshBody()
	m.viewport.GotoTop()
	return m, nil
}

func (m *model) handleSearchError(msg searchErrorMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.searchSeq {
		m.log.WithField("query", msg.query).Debug("dropping superseded failure")
		return m, nil
	}
	m.finishSearch()

	m.log.WithError(msg.err).WithField("query", msg.query).Error("search failed")
	m.books = nil
	m.alert = networkErrorText
	m.refreshBody()
	return m, nil
}

// finishSearch clears the loading flag whichever way the request settled
func (m *model) finishSearch() {
	m.loading = false
	if m.cancelSearch != nil {
		m.cancelSearch()
		m.cancelSearch = nil
	}
}

func (m *model) shutdown() {
	if m.cancelSearch != nil {
		m.cancelSearch()
		m.cancelSearch = nil
	}
}

// ============================================================================
// DETAILS AND HELP
// ============================================================================

var errNoWork = errors.New("this result has no work record")

func (m *model) handleOpenDetails() (tea.Model, tea.Cmd) {
	if m.cursor < 0 || m.cursor >= len(m.books) {
		return m, nil
	}
	book := m.books[m.cursor]

	m.details = detailsState{book: book, loading: true, seq: m.details.seq + 1}
	m.mode = modeDetails

	var cmd tea.Cmd
	if book.Key == "" {
		m.details.loading = false
		m.details.err = errNoWork
	} else {
		cmd = fetchWork(context.Background(), m.client, m.details.seq, book.Key)
	}

	m.renderDetails()
	m.refreshBody()
	m.viewport.GotoTop()
	return m, cmd
}

func (m *model) handleWorkLoaded(msg workLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.details.seq {
		return m, nil
	}
	work := msg.work
	m.details.loading = false
	m.details.work = &work
	m.renderDetails()
	m.refreshBody()
	return m, nil
}

func (m *model) handleWorkError(msg workErrorMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.details.seq {
		return m, nil
	}
	m.log.WithError(msg.err).WithField("work", m.details.book.Key).Warn("details failed")
	m.details.loading = false
	m.details.err = msg.err
	m.renderDetails()
	m.refreshBody()
	return m, nil
}

func (m *model) handleOpenHelp() (tea.Model, tea.Cmd) {
	m.prevMode = m.mode
	m.mode = modeHelp
	m.input.Blur()
	m.renderHelp()
	m.refreshBody()
	m.viewport.GotoTop()
	return m, nil
}

// ============================================================================
// THEME, LAYOUT AND NAVIGATION
// ============================================================================

func (m *model) handleToggleTheme() (tea.Model, tea.Cmd) {
	m.dark = !m.dark
	// Markdown pages bake colors in, so they are rendered again
	if m.mode == modeDetails {
		m.renderDetails()
	}
	if m.mode == modeHelp {
		m.renderHelp()
	}
	m.refreshBody()
	return m, nil
}

func (m *model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	if !m.ready {
		m.viewport = viewport.New(msg.Width, m.bodyHeight())
		m.ready = true
	} else {
		m.viewport.Width = msg.Width
		m.viewport.Height = m.bodyHeight()
	}

	m.input.Width = max(msg.Width-6, 10)
	m.help.Width = msg.Width

	switch m.mode {
	case modeDetails:
		m.renderDetails()
	case modeHelp:
		m.renderHelp()
	}
	m.refreshBody()
	return m, nil
}

// refreshBody pushes the body for the current mode into the viewport
func (m *model) refreshBody() {
	if !m.ready {
		return
	}
	switch m.mode {
	case modeDetails:
		m.viewport.SetContent(m.details.rendered)
	case modeHelp:
		m.viewport.SetContent(m.helpRendered)
	default:
		m.viewport.SetContent(m.renderResults())
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
