package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// LoginState is what the login screen needs to render
type LoginState struct {
	UsernameField string // rendered text input
	PasswordField string
	Loading       bool
	SpinnerFrame  string
	Error         string
}

// RenderLogin renders the sign-in form
func (r *Renderer) RenderLogin(s LoginState) string {
	var b strings.Builder

	b.WriteString(r.styles.AppTitle.Render("Bankey"))
	b.WriteString("\n")
	b.WriteString(r.styles.Subtitle.Render("Your premium source for all\nthings banking!"))
	b.WriteString("\n")

	divider := r.styles.Divider.Render(strings.Repeat("─", 38))
	fields := lipgloss.JoinVertical(lipgloss.Left, s.UsernameField, divider, s.PasswordField)
	b.WriteString(r.styles.FormBox.Render(fields))
	b.WriteString("\n")

	if s.Loading {
		b.WriteString(r.styles.ButtonBusy.Render(s.SpinnerFrame + " Signing In"))
	} else {
		b.WriteString(r.styles.Button.Render("Sign In"))
	}

	if s.Error != "" {
		b.WriteString("\n")
		b.WriteString(r.styles.Error.Render(s.Error))
	}

	return b.String()
}
