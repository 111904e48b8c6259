package validation

import (
	"errors"
	"fmt"
	"strings"

	"ccconfig/internal/utils"
)

// ErrInvalidInput marks a rejected user-supplied value
var ErrInvalidInput = errors.New("invalid input")

// ValidateName checks a new profile name. Any non-blank name is accepted;
// uniqueness is checked against the store.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: profile name cannot be empty", ErrInvalidInput)
	}
	return nil
}

// ValidateToken checks an auth token
func ValidateToken(token string) error {
	if strings.TrimSpace(token) == "" {
		return fmt.Errorf("%w: token cannot be empty", ErrInvalidInput)
	}
	return nil
}

// ValidateBaseURL checks an optional base URL; empty means "use the default".
func ValidateBaseURL(url string) error {
	if url != "" && !utils.ValidateURL(url) {
		return fmt.Errorf("%w: invalid URL format %q (expected an http or https URL with a host)", ErrInvalidInput, url)
	}
	return nil
}
