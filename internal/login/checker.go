package login

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Checker decides whether a username/password pair is accepted
type Checker interface {
	Check(username, password string) (bool, error)
}

// CheckerFunc adapts a plain function to Checker
type CheckerFunc func(username, password string) (bool, error)

// Check calls f
func (f CheckerFunc) Check(username, password string) (bool, error) {
	return f(username, password)
}

// StaticChecker accepts exactly one literal, case-sensitive pair
type StaticChecker struct {
	Username string
	Password string
}

// DefaultChecker returns the stock demo account
func DefaultChecker() StaticChecker {
	return StaticChecker{Username: "Bob", Password: "bob"}
}

// Check compares both fields literally
func (c StaticChecker) Check(username, password string) (bool, error) {
	return username == c.Username && password == c.Password, nil
}

// BcryptChecker accepts one username whose password matches a bcrypt hash
type BcryptChecker struct {
	Username string
	Hash     string
}

// Check compares the username literally and the password against the hash
func (c BcryptChecker) Check(username, password string) (bool, error) {
	if username != c.Username {
		return false, nil
	}
	err := bcrypt.CompareHashAndPassword([]byte(c.Hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("failed to compare password hash: %w", err)
}

// HashPassword produces a bcrypt hash suitable for BcryptChecker
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}
