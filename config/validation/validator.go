// Package validation holds the pure rules a profile store and user input must satisfy.
// Nothing here touches the filesystem.
package validation

import (
	"fmt"
	"sort"
	"strings"

	"ccconfig/config/models"

	"github.com/tidwall/gjson"
)

// Problem is a single rule violation
type Problem struct {
	Profile string // empty for document-level problems
	Field   string
	Message string
}

func (p Problem) String() string {
	var b strings.Builder
	if p.Profile != "" {
		fmt.Fprintf(&b, "profile %q: ", p.Profile)
	}
	if p.Field != "" {
		b.WriteString(p.Field)
		b.WriteString(" ")
	}
	b.WriteString(p.Message)
	return b.String()
}

// CheckDocument checks that raw bytes have the shape of a store document:
// a JSON object with a string "current", an object "profiles" whose entries
// are objects with string-valued profile fields.
func CheckDocument(data []byte) []Problem {
	if !gjson.ValidBytes(data) {
		return []Problem{{Message: "is not valid JSON"}}
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return []Problem{{Message: "top level must be a JSON object"}}
	}

	var problems []Problem

	current := root.Get("current")
	switch {
	case !current.Exists():
		problems = append(problems, Problem{Field: "current", Message: "is missing"})
	case current.Type != gjson.String:
		problems = append(problems, Problem{Field: "current", Message: "must be a string"})
	}

	profiles := root.Get("profiles")
	switch {
	case !profiles.Exists():
		problems = append(problems, Problem{Field: "profiles", Message: "is missing"})
	case !profiles.IsObject():
		problems = append(problems, Problem{Field: "profiles", Message: "must be an object"})
	default:
		seen := make(map[string]bool)
		profiles.ForEach(func(key, value gjson.Result) bool {
			name := key.String()
			if seen[name] {
				problems = append(problems, Problem{Profile: name, Message: "is defined more than once"})
			}
			seen[name] = true

			if !value.IsObject() {
				problems = append(problems, Problem{Profile: name, Message: "must be an object"})
				return true
			}
			value.ForEach(func(field, v gjson.Result) bool {
				if isProfileField(field.String()) && v.Type != gjson.String {
					problems = append(problems, Problem{Profile: name, Field: field.String(), Message: "must be a string"})
				}
				return true
			})
			return true
		})
	}

	return problems
}

func isProfileField(key string) bool {
	for _, k := range models.EnvKeys {
		if k == key {
			return true
		}
	}
	return false
}

// CheckStore checks the store invariants: current names an existing profile
// and every profile satisfies the rules for its kind.
func CheckStore(store models.Store) []Problem {
	var problems []Problem

	if store.Current == "" {
		problems = append(problems, Problem{Field: "current", Message: "is missing"})
	}
	if store.Profiles == nil {
		problems = append(problems, Problem{Field: "profiles", Message: "is missing"})
		return problems
	}
	if store.Current != "" {
		if _, ok := store.Profiles[store.Current]; !ok {
			problems = append(problems, Problem{
				Field:   "current",
				Message: fmt.Sprintf("refers to unknown profile %q", store.Current),
			})
		}
	}

	names := make([]string, 0, len(store.Profiles))
	for name := range store.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		problems = append(problems, CheckProfile(name, store.Profiles[name])...)
	}
	return problems
}

// CheckProfile applies the profile-kind rules. The default profile must have
// base URL and token both set or both empty; any other profile needs both.
func CheckProfile(name string, profile models.Profile) []Problem {
	if name == "" {
		return []Problem{{Message: "profile name cannot be empty"}}
	}

	hasBaseURL := strings.TrimSpace(profile.BaseURL) != ""
	hasToken := strings.TrimSpace(profile.AuthToken) != ""

	if name == models.DefaultProfileName {
		if hasBaseURL != hasToken {
			return []Problem{{
				Profile: name,
				Message: fmt.Sprintf("%s and %s must be set together or not at all", models.EnvBaseURL, models.EnvAuthToken),
			}}
		}
		return nil
	}

	var problems []Problem
	if !hasBaseURL {
		problems = append(problems, Problem{Profile: name, Field: models.EnvBaseURL, Message: "cannot be empty"})
	}
	if !hasToken {
		problems = append(problems, Problem{Profile: name, Field: models.EnvAuthToken, Message: "cannot be empty"})
	}
	return problems
}
