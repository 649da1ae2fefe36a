package main

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
)

// UI modes
const (
	modeSearch  = "search"  // Query field focused
	modeBrowse  = "browse"  // Moving between result cards
	modeDetails = "details" // Reading one book's details
	modeHelp    = "help"    // Help screen
	modeAlert   = "alert"   // Modal alert, only reported to the help line
)

const networkErrorText = "Network error while fetching books."

// detailsState tracks the details page of the selected card
type detailsState struct {
	book     Book
	work     *WorkDetails
	err      error
	loading  bool
	seq      int
	rendered string
}

// ============================================================================
// MAIN APPLICATION MODEL
// ============================================================================

// model holds all the state for the finder.
// Fields are only changed from Update, one message at a time.
type model struct {
	cfg    Config
	client bookSearcher
	log    *logrus.Logger

	// Components
	input      textinput.Model // Query field
	viewport   viewport.Model  // Scrollable body (cards, details, help)
	spinner    spinner.Model   // Loading indicator
	help       help.Model      // Key hints
	keys       keyMap
	typewriter Typewriter
	burst      Burst

	// Search state
	books        []Book // Replaced wholesale by every search
	loading      bool
	mood         Mood   // MoodNone until a search classifies something
	quote        string // Quote the typewriter is revealing
	searchSeq    int
	cancelSearch context.CancelFunc

	// Presentation state
	dark         bool
	mode         string
	prevMode     string // Mode to return to from help
	alert        string // Blocking notice, empty when none
	cursor       int    // Selected card in browse mode
	details      detailsState
	helpRendered string

	width  int
	height int
	ready  bool
	now    func() time.Time
}

// initialModel creates the model with the starting state
func initialModel(cfg Config, client bookSearcher, log *logrus.Logger, burst Burst) *model {
	ti := textinput.New()
	ti.Placeholder = "Type mood or title, e.g. love, fantasy, thriller, travel"
	ti.CharLimit = 200
	ti.Width = 60
	ti.Prompt = "🔎 "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")) // Pink prompt
	ti.Focus()

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	return &model{
		cfg:        cfg,
		client:     client,
		log:        log,
		input:      ti,
		spinner:    sp,
		help:       help.New(),
		keys:       defaultKeyMap(),
		typewriter: NewTypewriter(cfg.QuoteInterval),
		burst:      burst,
		dark:       detectDarkTheme(cfg.Theme),
		mode:       modeSearch,
		now:        time.Now,
	}
}

// Init starts the cursor blinking in the query field
func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

// currentMode reports the mode the key hints should describe
func (m *model) currentMode() string {
	if m.alert != "" {
		return modeAlert
	}
	return m.mode
}

// palette resolves colors for the current theme and mood
func (m *model) palette() Palette {
	return paletteFor(m.dark, m.mood)
}

// bodyHeight is what is left for the viewport after the fixed rows
func (m *model) bodyHeight() int {
	// header, aura, input, gap, burst lanes, aura, footer, help
	chrome := 1 + 1 + 1 + 1 + burstLanes + 1 + 1 + 1
	return max(m.height-chrome, 3)
}
