// Package login validates sign-in attempts and tracks the login form state.
package login

import (
	"errors"
	"fmt"

	"bankey/internal/domain"
)

const (
	MessageEmptyInput         = "Username / Password cannot be empty"
	MessageInvalidCredentials = "Incorrect Username / Password"
)

// ErrMissingCredentials is returned when neither field was supplied at all
var ErrMissingCredentials = errors.New("login: username and password must not both be absent")

// OutcomeKind tags a validation result
type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeEmptyInput
	OutcomeInvalidCredentials
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeEmptyInput:
		return "empty_input"
	case OutcomeInvalidCredentials:
		return "invalid_credentials"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}

// Outcome is the result of one sign-in attempt. Message is empty on success.
type Outcome struct {
	Kind    OutcomeKind
	Message string
}

// OK reports whether the attempt succeeded
func (o Outcome) OK() bool { return o.Kind == OutcomeSuccess }

// Validator checks submitted login fields
type Validator struct {
	checker Checker
}

// NewValidator creates a validator backed by checker.
// A nil checker falls back to DefaultChecker.
func NewValidator(checker Checker) *Validator {
	if checker == nil {
		checker = DefaultChecker()
	}
	return &Validator{checker: checker}
}

// Validate classifies one attempt. Fields are not trimmed, so whitespace
// counts as input. Every call is independent.
func (v *Validator) Validate(creds domain.Credentials) (Outcome, error) {
	if creds.Username == nil && creds.Password == nil {
		return Outcome{}, ErrMissingCredentials
	}

	if creds.Username == nil || creds.Password == nil || *creds.Username == "" || *creds.Password == "" {
		return Outcome{Kind: OutcomeEmptyInput, Message: MessageEmptyInput}, nil
	}

	ok, err := v.checker.Check(*creds.Username, *creds.Password)
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to check credentials: %w", err)
	}
	if !ok {
		return Outcome{Kind: OutcomeInvalidCredentials, Message: MessageInvalidCredentials}, nil
	}

	return Outcome{Kind: OutcomeSuccess}, nil
}
