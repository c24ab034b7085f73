package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/flirtshaala/flirtshaala/internal/model"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case loginResultMsg:
		m.busy = false
		m.refresh()
		if msg.err != nil {
			m.errMsg = loginErrorText(msg.err)
			return m, nil
		}
		m.screen = screenHome
		m.resetAuthForm()
		return m, nil

	case signupResultMsg:
		m.busy = false
		m.refresh()
		if msg.err != nil {
			m.errMsg = signupErrorText(msg.err)
			return m, nil
		}
		m.screen = screenHome
		m.resetAuthForm()
		return m, nil

	case replyResultMsg:
		m.busy = false
		m.refresh()
		if msg.err != nil {
			m.errMsg = "Could not generate a reply. Try again."
		}
		return m, nil

	case screenshotResultMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = "Could not read that screenshot: " + msg.err.Error()
			return m, nil
		}
		m.pathInput.SetValue("")
		m.screen = screenHome
		m.statusMsg = "Screenshot processed"
		return m, m.addMessage(msg.text, model.OriginScreenshot, msg.uri)

	case purchaseResultMsg:
		m.busy = false
		m.refresh()
		if msg.err != nil {
			m.errMsg = "Purchase failed. No charge was made."
			return m, nil
		}
		m.statusMsg = "Welcome to Premium! Ads are gone."
		m.screen = screenHome
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.screen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenSignup:
		return m.updateSignup(msg)
	case screenHome:
		return m.updateHome(msg)
	case screenUpload:
		return m.updateUpload(msg)
	case screenHistory:
		return m.updateHistory(msg)
	case screenPremium:
		return m.updatePremium(msg)
	case screenSettings:
		return m.updateSettings(msg)
	}
	return m, nil
}

func (m Model) updateWelcome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "l", "enter":
		m.screen = screenLogin
		m.resetAuthForm()
	case "s":
		m.screen = screenSignup
		m.resetAuthForm()
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEsc:
		m.screen = screenWelcome
		return m, nil
	case tea.KeyTab, tea.KeyDown:
		return m.focusField((m.focus + 1) % 2), nil
	case tea.KeyShiftTab, tea.KeyUp:
		return m.focusField((m.focus + 1) % 2), nil
	case tea.KeyEnter:
		if m.focus == fieldEmail {
			return m.focusField(fieldPassword), nil
		}
		email := strings.TrimSpace(m.fields[fieldEmail].Value())
		password := m.fields[fieldPassword].Value()
		if email == "" || password == "" {
			m.errMsg = "Please fill in all fields"
			return m, nil
		}
		m.busy = true
		m.errMsg = ""
		return m, tea.Batch(m.spinner.Tick, m.loginCmd(email, password))
	}

	return m.updateFocusedField(msg)
}

func (m Model) updateSignup(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEsc:
		m.screen = screenWelcome
		return m, nil
	case tea.KeyTab, tea.KeyDown:
		return m.focusField((m.focus + 1) % 3), nil
	case tea.KeyShiftTab, tea.KeyUp:
		return m.focusField((m.focus + 2) % 3), nil
	case tea.KeyEnter:
		if m.focus < fieldName {
			return m.focusField(m.focus + 1), nil
		}
		email := strings.TrimSpace(m.fields[fieldEmail].Value())
		password := m.fields[fieldPassword].Value()
		name := strings.TrimSpace(m.fields[fieldName].Value())
		if email == "" || password == "" {
			m.errMsg = "Please fill in email and password"
			return m, nil
		}
		m.busy = true
		m.errMsg = ""
		return m, tea.Batch(m.spinner.Tick, m.signupCmd(email, password, name))
	}

	return m.updateFocusedField(msg)
}

func (m Model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEnter:
		text := strings.TrimSpace(m.chatInput.Value())
		if text == "" {
			return m, nil
		}
		m.chatInput.SetValue("")
		m.store.SetCurrentChat(context.Background(), "")
		m.errMsg = ""
		m.statusMsg = ""
		return m, m.addMessage(text, model.OriginPaste, "")
	case tea.KeyEsc:
		m.chatInput.Blur()
		return m, nil
	}

	if !m.chatInput.Focused() {
		switch msg.String() {
		case "i":
			m.chatInput.Focus()
			return m, nil
		case "u":
			m.screen = screenUpload
			m.pathInput.Focus()
			m.errMsg = ""
			return m, nil
		case "h":
			m.screen = screenHistory
			m.cursor = 0
			return m, nil
		case "p":
			if m.state.User != nil && !m.state.User.IsPremium {
				m.screen = screenPremium
			}
			return m, nil
		case "g":
			m.screen = screenSettings
			return m, nil
		case "q":
			return m, tea.Quit
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	m.store.SetCurrentChat(context.Background(), m.chatInput.Value())
	m.refresh()
	return m, cmd
}

func (m Model) updateUpload(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEsc:
		m.screen = screenHome
		m.errMsg = ""
		return m, nil
	case tea.KeyEnter:
		path := strings.TrimSpace(m.pathInput.Value())
		if path == "" {
			return m, nil
		}
		m.busy = true
		m.errMsg = ""
		return m, tea.Batch(m.spinner.Tick, m.screenshotCmd(path))
	}

	var cmd tea.Cmd
	m.pathInput, cmd = m.pathInput.Update(msg)
	return m, cmd
}

func (m Model) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	history := m.state.ChatHistory

	switch msg.String() {
	case "esc", "q":
		m.screen = screenHome
		return m, nil
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(history)-1 {
			m.cursor++
		}
		return m, nil
	case "d", "x":
		if m.cursor < len(history) {
			m.store.DeleteChatMessage(context.Background(), history[m.cursor].ID)
			m.refresh()
			if m.cursor >= len(m.state.ChatHistory) && m.cursor > 0 {
				m.cursor--
			}
		}
		return m, nil
	case "r":
		// Regenerate the reply for the selected message.
		if m.cursor < len(history) && !m.busy {
			m.busy = true
			return m, tea.Batch(m.spinner.Tick, m.replyCmd(history[m.cursor].ID))
		}
		return m, nil
	case "C":
		m.store.ClearChatHistory(context.Background())
		m.refresh()
		m.cursor = 0
		return m, nil
	}
	return m, nil
}

func (m Model) updatePremium(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}

	switch msg.String() {
	case "esc", "q", "n":
		m.screen = screenHome
		return m, nil
	case "enter", "y":
		m.busy = true
		m.errMsg = ""
		return m, tea.Batch(m.spinner.Tick, m.purchaseCmd())
	}
	return m, nil
}

func (m Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.screen = screenHome
		return m, nil
	case "o":
		m.store.Logout(context.Background())
		m.refresh()
		m.screen = screenWelcome
		m.resetAuthForm()
		m.statusMsg = ""
		return m, nil
	}
	return m, nil
}

// focusField moves keyboard focus to the given auth form field.
func (m Model) focusField(i int) Model {
	for j := range m.fields {
		m.fields[j].Blur()
	}
	m.fields[i].Focus()
	m.focus = i
	return m
}

// updateFocusedField forwards the key to whichever form input has focus.
func (m Model) updateFocusedField(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.fields[m.focus], cmd = m.fields[m.focus].Update(msg)
	return m, cmd
}

func loginErrorText(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, model.ErrInvalidCredentials) {
		return "Invalid email or password"
	}
	return "Login failed: " + err.Error()
}

func signupErrorText(err error) string {
	if err == nil {
		return ""
	}
	switch {
	case errors.Is(err, model.ErrEmailTaken):
		return "That email is already registered"
	case errors.Is(err, model.ErrInvalidCredentials):
		return "Please fill in email and password"
	}
	return "Signup failed: " + err.Error()
}
