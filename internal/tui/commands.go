package tui

import (
	"context"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/flirtshaala/flirtshaala/internal/model"
)

// Result messages delivered back to Update after an async store operation.
type (
	loginResultMsg struct{ err error }

	signupResultMsg struct{ err error }

	replyResultMsg struct {
		messageID string
		err       error
	}

	// screenshotResultMsg carries the whole upload+OCR pipeline outcome:
	// the stored image URI and the extracted chat text.
	screenshotResultMsg struct {
		uri  string
		text string
		err  error
	}

	purchaseResultMsg struct{ err error }
)

func (m Model) loginCmd(email, password string) tea.Cmd {
	return func() tea.Msg {
		return loginResultMsg{err: m.store.Login(context.Background(), email, password)}
	}
}

func (m Model) signupCmd(email, password, name string) tea.Cmd {
	return func() tea.Msg {
		return signupResultMsg{err: m.store.Signup(context.Background(), email, password, name)}
	}
}

func (m Model) replyCmd(messageID string) tea.Cmd {
	return func() tea.Msg {
		return replyResultMsg{
			messageID: messageID,
			err:       m.store.GenerateWittyReply(context.Background(), messageID),
		}
	}
}

// screenshotCmd uploads the image file, then runs OCR on the stored copy.
func (m Model) screenshotCmd(path string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		f, err := os.Open(path)
		if err != nil {
			return screenshotResultMsg{err: err}
		}
		defer f.Close()

		key := uuid.NewString() + filepath.Ext(path)
		uri, err := m.images.Upload(ctx, key, f)
		if err != nil {
			return screenshotResultMsg{err: err}
		}

		text, err := m.store.ExtractTextFromImage(ctx, uri)
		if err != nil {
			return screenshotResultMsg{uri: uri, err: err}
		}

		return screenshotResultMsg{uri: uri, text: text}
	}
}

func (m Model) purchaseCmd() tea.Cmd {
	return func() tea.Msg {
		return purchaseResultMsg{err: m.store.UpgradeToPremium(context.Background())}
	}
}

// addMessage records a new chat message and kicks off reply generation.
func (m *Model) addMessage(text string, origin model.Origin, imageURI string) tea.Cmd {
	id := m.store.AddChatMessage(context.Background(), text, origin, imageURI)
	m.refresh()
	m.busy = true
	return tea.Batch(m.spinner.Tick, m.replyCmd(id))
}
