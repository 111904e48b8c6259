package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

const (
	keyCurrent  = "current"
	keyProfiles = "profiles"
)

// field maps an environment variable name to the Profile field holding it
func (p *Profile) field(key string) *string {
	switch key {
	case EnvAuthToken:
		return &p.AuthToken
	case EnvBaseURL:
		return &p.BaseURL
	case EnvModel:
		return &p.Model
	}
	return nil
}

// UnmarshalJSON decodes the known fields and keeps every other key in Extra.
func (p *Profile) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	*p = Profile{}
	for key, raw := range fields {
		target := p.field(key)
		if target == nil {
			if p.Extra == nil {
				p.Extra = make(map[string]json.RawMessage)
			}
			p.Extra[key] = raw
			continue
		}
		if err := json.Unmarshal(raw, target); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

// MarshalJSON writes the non-empty known fields merged with Extra, keys sorted.
func (p Profile) MarshalJSON() ([]byte, error) {
	fields := make(map[string]json.RawMessage, len(p.Extra)+len(EnvKeys))
	for key, raw := range p.Extra {
		fields[key] = raw
	}
	for _, key := range EnvKeys {
		delete(fields, key)
		value := p.Get(key)
		if value == "" {
			continue
		}
		raw, err := EncodeJSON(value, "")
		if err != nil {
			return nil, err
		}
		fields[key] = raw
	}
	return EncodeJSON(fields, "")
}

// UnmarshalJSON decodes current and profiles and keeps every other key in Extra.
func (s *Store) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	*s = Store{}
	for key, raw := range fields {
		var err error
		switch key {
		case keyCurrent:
			err = json.Unmarshal(raw, &s.Current)
		case keyProfiles:
			err = json.Unmarshal(raw, &s.Profiles)
		default:
			if s.Extra == nil {
				s.Extra = make(map[string]json.RawMessage)
			}
			s.Extra[key] = raw
		}
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

// MarshalJSON writes current and profiles merged with Extra, keys sorted.
func (s Store) MarshalJSON() ([]byte, error) {
	fields := make(map[string]json.RawMessage, len(s.Extra)+2)
	for key, raw := range s.Extra {
		fields[key] = raw
	}

	current, err := EncodeJSON(s.Current, "")
	if err != nil {
		return nil, err
	}
	profiles, err := EncodeJSON(s.Profiles, "")
	if err != nil {
		return nil, err
	}
	fields[keyCurrent] = current
	fields[keyProfiles] = profiles
	return EncodeJSON(fields, "")
}

// EncodeJSON encodes v without HTML escaping and without a trailing newline.
// A non-empty indent produces indented output.
func EncodeJSON(v any, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
