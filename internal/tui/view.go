package tui

import (
	"fmt"
	"strings"

	"github.com/flirtshaala/flirtshaala/internal/model"
)

const appTitle = "Flirtshaala"

func (m Model) View() string {
	var body string
	switch m.screen {
	case screenWelcome:
		body = m.viewWelcome()
	case screenLogin:
		body = m.viewAuthForm("Log in", 2, "enter: next/submit · tab: switch field · esc: back")
	case screenSignup:
		body = m.viewAuthForm("Sign up", 3, "enter: next/submit · tab: switch field · esc: back")
	case screenHome:
		body = m.viewHome()
	case screenUpload:
		body = m.viewUpload()
	case screenHistory:
		body = m.viewHistory()
	case screenPremium:
		body = m.viewPremium()
	case screenSettings:
		body = m.viewSettings()
	}

	if m.state.ShowAds {
		body += "\n" + m.theme.AdBanner.Render("Ad · Upgrade to Premium for an ad-free experience")
	}

	return m.theme.Container.Render(body)
}

func (m Model) viewWelcome() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render(appTitle))
	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render("Your AI wingman for witty replies"))
	b.WriteString("\n\n")
	b.WriteString("Paste a chat message or drop a screenshot,\nand get a reply worth sending.\n")
	b.WriteString(m.theme.Help.Render("l: log in · s: sign up · q: quit"))
	return b.String()
}

func (m Model) viewAuthForm(title string, fieldCount int, help string) string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render(appTitle) + "  " + m.theme.Subtitle.Render(title))
	b.WriteString("\n\n")
	for i := 0; i < fieldCount; i++ {
		b.WriteString(m.fields[i].View())
		b.WriteString("\n")
	}
	if m.busy {
		b.WriteString("\n" + m.spinner.View() + " working...")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + m.theme.Error.Render(m.errMsg))
	}
	b.WriteString(m.theme.Help.Render(help))
	return b.String()
}

func (m Model) viewHome() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render(appTitle))
	if m.state.User != nil {
		b.WriteString("  " + m.theme.Subtitle.Render("hi "+m.state.User.Name))
		if m.state.User.IsPremium {
			b.WriteString(" " + m.theme.PremiumTag.Render("★ premium"))
		}
	}
	b.WriteString("\n\n")

	b.WriteString(m.renderRecentMessages(3))

	b.WriteString(m.chatInput.View())
	b.WriteString("\n")

	if m.busy {
		b.WriteString(m.spinner.View() + " thinking of something witty...\n")
	}
	if m.errMsg != "" {
		b.WriteString(m.theme.Error.Render(m.errMsg) + "\n")
	}
	if m.statusMsg != "" {
		b.WriteString(m.theme.Status.Render(m.statusMsg) + "\n")
	}

	help := "i: type · enter: send · u: upload screenshot · h: history · g: settings · q: quit"
	if m.state.User != nil && !m.state.User.IsPremium {
		help = "i: type · enter: send · u: upload · h: history · p: go premium · g: settings · q: quit"
	}
	b.WriteString(m.theme.Help.Render(help))
	return b.String()
}

// renderRecentMessages shows the newest n messages, oldest first.
func (m Model) renderRecentMessages(n int) string {
	history := m.state.ChatHistory
	if len(history) == 0 {
		return m.theme.Subtitle.Render("No messages yet. Paste one below to get started.") + "\n\n"
	}
	if len(history) > n {
		history = history[:n]
	}

	var b strings.Builder
	for i := len(history) - 1; i >= 0; i-- {
		b.WriteString(m.renderMessage(history[i], false))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderMessage(msg model.ChatMessage, selected bool) string {
	text := msg.Text
	if selected {
		text = m.theme.Selected.Render("▸ ") + text
	}

	var b strings.Builder
	b.WriteString(m.theme.Message.Render(text))
	b.WriteString("\n")

	meta := fmt.Sprintf("%s · %s", msg.Origin, msg.Timestamp.Format("Jan 2 15:04"))
	b.WriteString(m.theme.Meta.Render(meta))
	b.WriteString("\n")

	switch {
	case msg.IsProcessing:
		b.WriteString(m.theme.Reply.Render(m.spinner.View() + " generating reply..."))
		b.WriteString("\n")
	case msg.WittyReply != "":
		b.WriteString(m.theme.Reply.Render("↳ " + msg.WittyReply))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewUpload() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Upload a screenshot"))
	b.WriteString("\n\n")
	b.WriteString("Point at a chat screenshot and it will be read for you.\n\n")
	b.WriteString(m.pathInput.View())
	b.WriteString("\n")
	if m.busy {
		b.WriteString("\n" + m.spinner.View() + " reading screenshot...")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + m.theme.Error.Render(m.errMsg))
	}
	b.WriteString(m.theme.Help.Render("enter: upload · esc: back"))
	return b.String()
}

func (m Model) viewHistory() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Chat history"))
	b.WriteString("  " + m.theme.Subtitle.Render(fmt.Sprintf("%d message(s)", len(m.state.ChatHistory))))
	b.WriteString("\n\n")

	if len(m.state.ChatHistory) == 0 {
		b.WriteString(m.theme.Subtitle.Render("Nothing here yet."))
		b.WriteString("\n")
	}
	for i, msg := range m.state.ChatHistory {
		b.WriteString(m.renderMessage(msg, i == m.cursor))
		b.WriteString("\n")
	}

	if m.busy {
		b.WriteString(m.spinner.View() + " generating reply...\n")
	}
	b.WriteString(m.theme.Help.Render("↑/↓: select · r: regenerate reply · d: delete · C: clear all · esc: back"))
	return b.String()
}

func (m Model) viewPremium() string {
	var b strings.Builder
	b.WriteString(m.theme.PremiumTag.Render("★ Flirtshaala Premium"))
	b.WriteString("\n\n")
	b.WriteString("• No ads, ever\n")
	b.WriteString("• Priority reply generation\n")
	b.WriteString("\n")
	if m.busy {
		b.WriteString(m.spinner.View() + " processing purchase...\n")
	}
	if m.errMsg != "" {
		b.WriteString(m.theme.Error.Render(m.errMsg) + "\n")
	}
	b.WriteString(m.theme.Help.Render("y/enter: upgrade · n/esc: not now"))
	return b.String()
}

func (m Model) viewSettings() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Settings"))
	b.WriteString("\n\n")
	if u := m.state.User; u != nil {
		b.WriteString(m.theme.Label.Render("Account") + "\n")
		b.WriteString("  " + u.Name + " <" + u.Email + ">\n")
		plan := "Free"
		if u.IsPremium {
			plan = "Premium ★"
		}
		b.WriteString("  Plan: " + plan + "\n")
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render("o: log out · esc: back"))
	return b.String()
}
