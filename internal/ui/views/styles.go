package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	AppTitle    lipgloss.Style
	Subtitle    lipgloss.Style
	FormBox     lipgloss.Style
	Divider     lipgloss.Style
	Button      lipgloss.Style
	ButtonBusy  lipgloss.Style
	Error       lipgloss.Style
	Hero        lipgloss.Style
	PageTitle   lipgloss.Style
	NavButton   lipgloss.Style
	SkipButton  lipgloss.Style
	DotActive   lipgloss.Style
	DotInactive lipgloss.Style
	Welcome     lipgloss.Style
	Status      lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		AppTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			MarginBottom(1),
		FormBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1).
			Width(40),
		Divider: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Button: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("63")).
			Padding(0, 2).
			MarginTop(1),
		ButtonBusy: lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("60")).
			Padding(0, 2).
			MarginTop(1),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")). // red
			MarginTop(1),
		Hero: lipgloss.NewStyle().
			Foreground(lipgloss.Color("51")).
			MarginBottom(1),
		PageTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Width(50).
			Align(lipgloss.Center),
		NavButton:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true), // yellow
		SkipButton:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		DotActive:   lipgloss.NewStyle().Foreground(lipgloss.Color("231")),
		DotInactive: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Welcome: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("78")). // green
			MarginBottom(1),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Help: lipgloss.NewStyle().Faint(true).MarginTop(1),
		Main: lipgloss.NewStyle().Padding(1, 2),
	}
}
