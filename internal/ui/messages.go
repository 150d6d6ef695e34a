package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// signInCompleteMsg ends the loading indicator of a successful sign-in
type signInCompleteMsg struct {
	attemptID string
}

// signInAfter delivers signInCompleteMsg once delay has passed
func signInAfter(delay time.Duration, attemptID string) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg { return signInCompleteMsg{attemptID: attemptID} }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return signInCompleteMsg{attemptID: attemptID}
	})
}
