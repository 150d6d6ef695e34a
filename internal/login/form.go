package login

import (
	"errors"

	"bankey/internal/domain"
)

// ErrSubmitInProgress is returned when submitting while a sign-in is loading
var ErrSubmitInProgress = errors.New("login: sign-in already in progress")

// FormState is the state of the login form
type FormState int

const (
	FormIdle FormState = iota
	FormError
	FormLoading
)

func (s FormState) String() string {
	switch s {
	case FormIdle:
		return "idle"
	case FormError:
		return "error"
	case FormLoading:
		return "loading"
	default:
		return "unknown"
	}
}

// Form tracks what the login screen shows: nothing, an error message, or
// the loading indicator after a successful check.
type Form struct {
	validator *Validator
	state     FormState
	message   string
}

// NewForm creates an idle form
func NewForm(validator *Validator) *Form {
	return &Form{validator: validator}
}

// State returns the current form state
func (f *Form) State() FormState { return f.state }

// ErrorMessage returns the message to show, or "" when no error is visible
func (f *Form) ErrorMessage() string {
	if f.state != FormError {
		return ""
	}
	return f.message
}

// Submit hides any previous error and validates creds.
// On a failed outcome the form shows its message; on success it is loading.
func (f *Form) Submit(creds domain.Credentials) (Outcome, error) {
	if f.state == FormLoading {
		return Outcome{}, ErrSubmitInProgress
	}

	f.state = FormIdle
	f.message = ""

	outcome, err := f.validator.Validate(creds)
	if err != nil {
		return Outcome{}, err
	}

	if outcome.OK() {
		f.state = FormLoading
	} else {
		f.state = FormError
		f.message = outcome.Message
	}
	return outcome, nil
}

// Reset returns the form to idle
func (f *Form) Reset() {
	f.state = FormIdle
	f.message = ""
}
