package views

import (
	"strings"
)

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Styles exposes the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// RenderHome renders the placeholder screen shown after onboarding
func (r *Renderer) RenderHome(username string) string {
	var b strings.Builder
	b.WriteString(r.styles.Welcome.Render("Welcome"))
	if username != "" {
		b.WriteString("\n")
		b.WriteString(r.styles.Subtitle.Render("Signed in as " + username))
	}
	b.WriteString("\n")
	b.WriteString(r.styles.Button.Render("Logout"))
	return b.String()
}

// Frame wraps screen content with the status line and key help
func (r *Renderer) Frame(content, status, help string) string {
	var b strings.Builder
	b.WriteString(content)
	if status != "" {
		b.WriteString("\n")
		b.WriteString(r.styles.Status.Render(status))
	}
	if help != "" {
		b.WriteString("\n")
		b.WriteString(r.styles.Help.Render(help))
	}
	return r.styles.Main.Render(b.String())
}
