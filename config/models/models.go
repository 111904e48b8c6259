package models

import "encoding/json"

// Environment variable names. They double as the JSON keys of a Profile.
const (
	EnvAuthToken = "ANTHROPIC_AUTH_TOKEN"
	EnvBaseURL   = "ANTHROPIC_BASE_URL"
	EnvModel     = "ANTHROPIC_MODEL"
)

const (
	// DefaultProfileName is the profile synthesised for a fresh store.
	// It may hold no credentials at all.
	DefaultProfileName = "default"
	// DefaultBaseURL is used when a profile is added without a base URL.
	DefaultBaseURL = "https://api.anthropic.com"
)

// EnvKeys lists the profile fields in the order they are exported.
var EnvKeys = []string{EnvAuthToken, EnvBaseURL, EnvModel}

// Profile is one named bundle of credentials and endpoint settings.
// Keys the tool does not know are kept in Extra and written back unchanged.
type Profile struct {
	AuthToken string `json:"ANTHROPIC_AUTH_TOKEN,omitempty" yaml:"ANTHROPIC_AUTH_TOKEN,omitempty"`
	BaseURL   string `json:"ANTHROPIC_BASE_URL,omitempty" yaml:"ANTHROPIC_BASE_URL,omitempty"`
	Model     string `json:"ANTHROPIC_MODEL,omitempty" yaml:"ANTHROPIC_MODEL,omitempty"`

	Extra map[string]json.RawMessage `json:"-" yaml:"-"`
}

// Get returns the field stored under an environment variable name.
func (p Profile) Get(key string) string {
	switch key {
	case EnvAuthToken:
		return p.AuthToken
	case EnvBaseURL:
		return p.BaseURL
	case EnvModel:
		return p.Model
	}
	return ""
}

// Store is the whole on-disk document
type Store struct {
	Current  string             `json:"current" yaml:"current"`
	Profiles map[string]Profile `json:"profiles" yaml:"profiles"`

	// Extra holds unknown top-level keys of a hand-edited file
	Extra map[string]json.RawMessage `json:"-" yaml:"-"`
}

// NewDefaultStore returns the store written when no file exists yet.
func NewDefaultStore() *Store {
	return &Store{
		Current: DefaultProfileName,
		Profiles: map[string]Profile{
			DefaultProfileName: {},
		},
	}
}

// AddProfileInput is what a caller supplies to create a profile
type AddProfileInput struct {
	Name    string
	Token   string
	BaseURL string // optional, DefaultBaseURL when empty
	Model   string // optional
}
