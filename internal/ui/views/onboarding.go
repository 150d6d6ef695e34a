package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"bankey/internal/domain"
)

// OnboardingState is what the onboarding screen needs to render
type OnboardingState struct {
	Page         domain.Page
	Index        int
	Count        int
	ShowPrevious bool
	ShowNext     bool
	ShowDone     bool
}

var heroArt = map[string]string{
	"delorean": `
    ______
  _/_|[][]\____
 |  _    _   _ |
 '-(_)--(_)-(_)'`,
	"world": `
    .-""-.
   /  .--.\
  |  (    )|
   \  '--'/
    '-..-'`,
	"thumbs": `
     _
    | |
  __| |____
 (___      |
 (___      |
  (________/`,
}

// HeroArt returns the picture for an image reference, or a labelled frame
// when there is no art for it
func HeroArt(image string) string {
	if art, ok := heroArt[image]; ok {
		return strings.TrimPrefix(art, "\n")
	}
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		Padding(1, 3).
		Render(image)
}

// RenderOnboarding renders one onboarding page with its navigation controls
func (r *Renderer) RenderOnboarding(s OnboardingState) string {
	var b strings.Builder

	b.WriteString(lipgloss.PlaceHorizontal(50, lipgloss.Right, r.styles.SkipButton.Render("Skip (s)")))
	b.WriteString("\n\n")

	hero := r.styles.Hero.Render(HeroArt(s.Page.Image))
	b.WriteString(lipgloss.PlaceHorizontal(50, lipgloss.Center, hero))
	b.WriteString("\n")
	b.WriteString(r.styles.PageTitle.Render(s.Page.Title))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(50, lipgloss.Center, r.renderDots(s.Index, s.Count)))
	b.WriteString("\n\n")

	left := ""
	if s.ShowPrevious {
		left = r.styles.NavButton.Render("← Previous")
	}
	right := ""
	switch {
	case s.ShowNext:
		right = r.styles.NavButton.Render("Next →")
	case s.ShowDone:
		right = r.styles.NavButton.Render("Done ⏎")
	}
	gap := 50 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	b.WriteString(left + strings.Repeat(" ", gap) + right)

	return b.String()
}

func (r *Renderer) renderDots(index, count int) string {
	dots := make([]string, count)
	for i := range dots {
		if i == index {
			dots[i] = r.styles.DotActive.Render("●")
		} else {
			dots[i] = r.styles.DotInactive.Render("○")
		}
	}
	return strings.Join(dots, " ")
}
