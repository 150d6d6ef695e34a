package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventPageChanged        EventType = "PageChanged"
	EventOnboardingFinished EventType = "OnboardingFinished"
	EventLoginAttempted     EventType = "LoginAttempted"
	EventLoginSucceeded     EventType = "LoginSucceeded"
	EventLogoutRequested    EventType = "LogoutRequested"
	EventConfigLoaded       EventType = "ConfigLoaded"
	EventConfigSaved        EventType = "ConfigSaved"
	EventError              EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// PageChangedEvent is emitted when the onboarding pager moves to another page
type PageChangedEvent struct {
	Index  int
	PageID string
}

func (e PageChangedEvent) Type() EventType { return EventPageChanged }

// OnboardingFinishedEvent is emitted when onboarding is completed or skipped
type OnboardingFinishedEvent struct {
	Reason FinishReason
}

func (e OnboardingFinishedEvent) Type() EventType { return EventOnboardingFinished }

// LoginAttemptedEvent is emitted for every sign-in submission, whatever the outcome
type LoginAttemptedEvent struct {
	AttemptID string
	Outcome   string
}

func (e LoginAttemptedEvent) Type() EventType { return EventLoginAttempted }

// LoginSucceededEvent is emitted when the credentials matched
type LoginSucceededEvent struct {
	AttemptID string
	Username  string
}

func (e LoginSucceededEvent) Type() EventType { return EventLoginSucceeded }

// LogoutRequestedEvent is emitted when the user logs out from the home screen
type LogoutRequestedEvent struct{}

func (e LogoutRequestedEvent) Type() EventType { return EventLogoutRequested }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path      string
	PageCount int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
