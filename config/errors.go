package config

import (
	"errors"
	"fmt"
	"strings"

	"ccconfig/config/validation"
)

// Error kinds. Match them with errors.Is; the concrete error carries context.
var (
	ErrMalformedStore            = errors.New("profile store is malformed")
	ErrInvalidStore              = errors.New("profile store is invalid")
	ErrProfileNotFound           = errors.New("profile not found")
	ErrProfileAlreadyExists      = errors.New("profile already exists")
	ErrCannotRemoveActiveProfile = errors.New("cannot remove the active profile")
	ErrPersistence               = errors.New("profile store could not be persisted")
	ErrInvalidInput              = validation.ErrInvalidInput
)

// StoreError reports a problem with the store document as a whole
type StoreError struct {
	Path     string
	Problems []validation.Problem
	Err      error // one of the sentinel kinds
	Cause    error
}

func (e *StoreError) Error() string {
	var b strings.Builder
	b.WriteString(e.Err.Error())
	if e.Path != "" {
		fmt.Fprintf(&b, " (%s)", e.Path)
	}
	switch {
	case len(e.Problems) == 1:
		b.WriteString(": ")
		b.WriteString(e.Problems[0].String())
	case len(e.Problems) > 1:
		b.WriteString(":")
		for _, p := range e.Problems {
			b.WriteString("\n  - ")
			b.WriteString(p.String())
		}
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap exposes both the kind and the underlying cause
func (e *StoreError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// ProfileError reports a problem with one named profile
type ProfileError struct {
	Name string
	Err  error
}

func (e *ProfileError) Error() string {
	return fmt.Sprintf("%s: %q", e.Err.Error(), e.Name)
}

func (e *ProfileError) Unwrap() error {
	return e.Err
}

func persistenceError(path string, cause error) error {
	return &StoreError{Path: path, Err: ErrPersistence, Cause: cause}
}

func malformedError(path string, problems []validation.Problem, cause error) error {
	return &StoreError{Path: path, Problems: problems, Err: ErrMalformedStore, Cause: cause}
}

func invalidError(path string, problems []validation.Problem) error {
	return &StoreError{Path: path, Problems: problems, Err: ErrInvalidStore}
}
