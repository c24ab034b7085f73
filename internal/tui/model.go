// Package tui is the terminal front end. It renders the application state
// and drives every store operation from keyboard input.
package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/flirtshaala/flirtshaala/internal/logger"
	"github.com/flirtshaala/flirtshaala/internal/model"
	"github.com/flirtshaala/flirtshaala/internal/store"
)

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenSignup
	screenHome
	screenUpload
	screenHistory
	screenPremium
	screenSettings
)

// Indexes into the auth form inputs.
const (
	fieldEmail = iota
	fieldPassword
	fieldName
)

// Model is the Bubble Tea model for the whole application.
type Model struct {
	store  *store.Store
	images model.ImageStore
	logger *logger.Logger

	screen screen
	theme  Theme

	// Snapshot of the store state, refreshed after every dispatch.
	state model.AppState

	// Auth form (login uses email+password, signup adds name).
	fields []textinput.Model
	focus  int

	// Home screen paste input.
	chatInput textinput.Model

	// Upload screen file path input.
	pathInput textinput.Model

	spinner spinner.Model
	busy    bool

	// History cursor.
	cursor int

	errMsg    string
	statusMsg string

	width  int
	height int
}

// New builds the initial model. The store should already be hydrated.
func New(st *store.Store, images model.ImageStore, log *logger.Logger) Model {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 120
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 120
	password.EchoMode = textinput.EchoPassword

	name := textinput.New()
	name.Placeholder = "name"
	name.CharLimit = 120

	chatInput := textinput.New()
	chatInput.Placeholder = "paste their message here..."
	chatInput.CharLimit = 500

	pathInput := textinput.New()
	pathInput.Placeholder = "path to screenshot (png)"
	pathInput.CharLimit = 300

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		store:     st,
		images:    images,
		logger:    log,
		theme:     defaultTheme(),
		state:     st.State(),
		fields:    []textinput.Model{email, password, name},
		chatInput: chatInput,
		pathInput: pathInput,
		spinner:   sp,
	}
	if m.state.IsAuthenticated {
		m.screen = screenHome
	} else {
		m.screen = screenWelcome
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// refresh re-reads the store snapshot after a dispatch.
func (m *Model) refresh() {
	m.state = m.store.State()
}

// resetAuthForm clears the form inputs and focuses the email field.
func (m *Model) resetAuthForm() {
	for i := range m.fields {
		m.fields[i].SetValue("")
		m.fields[i].Blur()
	}
	m.fields[fieldEmail].Focus()
	m.focus = fieldEmail
	m.errMsg = ""
}
