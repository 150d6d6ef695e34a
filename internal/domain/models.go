package domain

// Page represents a single onboarding slide
type Page struct {
	ID    string
	Image string // image reference, rendered as a labelled hero block
	Title string
}

// Credentials holds the contents of the login form fields.
// A nil field means the field was absent, which is distinct from empty.
type Credentials struct {
	Username *string
	Password *string
}

// NewCredentials builds credentials from two present field values
func NewCredentials(username, password string) Credentials {
	return Credentials{Username: &username, Password: &password}
}

// FinishReason explains why onboarding ended
type FinishReason string

const (
	FinishDone    FinishReason = "done"
	FinishSkipped FinishReason = "skipped"
)
