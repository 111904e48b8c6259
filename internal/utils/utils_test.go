package utils

import (
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestMaskToken(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected string
	}{
		{
			name:     "Empty token",
			token:    "",
			expected: "***",
		},
		{
			name:     "Short token (4 chars)",
			token:    "1234",
			expected: "***",
		},
		{
			name:     "Short token (7 chars)",
			token:    "1234567",
			expected: "***",
		},
		{
			name:     "Exactly 8 chars",
			token:    "12345678",
			expected: "12345678",
		},
		{
			name:     "Normal token (12 chars)",
			token:    "123456789012",
			expected: "1234****9012",
		},
		{
			name:     "Anthropic style token",
			token:    "sk-ant-aaaa1111bbbb2222",
			expected: "sk-a***************2222",
		},
		{
			name:     "Multibyte characters at both cut points",
			token:    "ab€d-secret-wxyé",
			expected: "ab€d********wxyé",
		},
		{
			name:     "Seven multibyte characters is short",
			token:    "ééééééé",
			expected: "***",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MaskToken(tt.token)
			if got != tt.expected {
				t.Errorf("MaskToken(%q) = %q, want %q", tt.token, got, tt.expected)
			}
		})
	}
}

func TestMaskTokenSecure(t *testing.T) {
	t.Run("Masked token should not contain middle characters", func(t *testing.T) {
		token := "sk-ant-supersecrettoken123"
		masked := MaskToken(token)

		if strings.Contains(masked, "supersecret") {
			t.Errorf("Masked token contains sensitive middle part: %q", masked)
		}
		if !strings.HasPrefix(masked, "sk-a") {
			t.Errorf("Masked token should start with first 4 chars: %q", masked)
		}
		if !strings.HasSuffix(masked, "n123") {
			t.Errorf("Masked token should end with last 4 chars: %q", masked)
		}
	})
}

func TestPropertyMaskTokenShape(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("long tokens keep length and both 4-char ends", prop.ForAll(
		func(token string) bool {
			masked := MaskToken(token)
			return len(masked) == len(token) &&
				masked[:4] == token[:4] &&
				masked[len(masked)-4:] == token[len(token)-4:] &&
				strings.Trim(masked[4:len(masked)-4], "*") == ""
		},
		gen.AlphaString().Map(func(s string) string { return "sk-ant-" + s + "tail" }),
	))

	properties.Property("masking keeps valid UTF-8 and the rune count", prop.ForAll(
		func(token string) bool {
			masked := MaskToken(token)
			if !utf8.ValidString(masked) {
				return false
			}
			n := utf8.RuneCountInString(token)
			return n < 8 || utf8.RuneCountInString(masked) == n
		},
		gen.UnicodeString(unicode.Greek).Map(func(s string) string { return "κλειδί-" + s + "-τέλος" }),
	))

	properties.Property("short tokens collapse to the placeholder", prop.ForAll(
		func(token string) bool {
			return MaskToken(token) == tokenPlaceholder
		},
		gen.AlphaString().Map(func(s string) string {
			if len(s) > 7 {
				return s[:7]
			}
			return s
		}),
	))

	properties.TestingRun(t)
}

func BenchmarkMaskToken(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = MaskToken("sk-ant-aaaa1111bbbb2222")
	}
}

// TestValidateURL tests the ValidateURL function with various URL formats
func TestValidateURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected bool
	}{
		// Valid URLs
		{
			name:     "Valid HTTPS URL",
			url:      "https://api.example.com",
			expected: true,
		},
		{
			name:     "Valid HTTP URL",
			url:      "http://api.example.com",
			expected: true,
		},
		{
			name:     "Valid URL with port",
			url:      "https://api.example.com:8080",
			expected: true,
		},
		{
			name:     "Valid URL with path",
			url:      "https://api.example.com/v1/chat",
			expected: true,
		},
		{
			name:     "Valid URL with trailing slash",
			url:      "https://api.example.com/",
			expected: true,
		},
		{
			name:     "Valid localhost URL",
			url:      "http://localhost:8080",
			expected: true,
		},
		{
			name:     "Valid IP address URL",
			url:      "http://192.168.1.1:3000",
			expected: true,
		},
		// Invalid URLs
		{
			name:     "Empty string",
			url:      "",
			expected: false,
		},
		{
			name:     "No scheme",
			url:      "api.example.com",
			expected: false,
		},
		{
			name:     "No host",
			url:      "https://",
			expected: false,
		},
		{
			name:     "Invalid scheme - ftp",
			url:      "ftp://files.example.com",
			expected: false,
		},
		{
			name:     "Invalid scheme - file",
			url:      "file:///path/to/file",
			expected: false,
		},
		{
			name:     "Just scheme",
			url:      "https",
			expected: false,
		},
		{
			name:     "Malformed URL",
			url:      "not a url at all",
			expected: false,
		},
		{
			name:     "Missing colon after scheme",
			url:      "https//example.com",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateURL(tt.url)
			if got != tt.expected {
				t.Errorf("ValidateURL(%q) = %v, want %v", tt.url, got, tt.expected)
			}
		})
	}
}


// TestExtractHost tests the ExtractHost function
func TestExtractHost(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{
			name:     "Simple HTTPS URL",
			url:      "https://api.example.com",
			expected: "api.example.com",
		},
		{
			name:     "URL with port",
			url:      "https://api.example.com:8080",
			expected: "api.example.com:8080",
		},
		{
			name:     "URL with path",
			url:      "https://api.example.com/v1/chat",
			expected: "api.example.com",
		},
		{
			name:     "Localhost URL",
			url:      "http://localhost:3000",
			expected: "localhost:3000",
		},
		{
			name:     "IP address URL",
			url:      "http://192.168.1.1:8080",
			expected: "192.168.1.1:8080",
		},
		{
			name:     "URL with query params",
			url:      "https://api.example.com?key=value",
			expected: "api.example.com",
		},
		// Invalid URLs should return empty string
		{
			name:     "Empty string",
			url:      "",
			expected: "",
		},
		{
			name:     "Invalid URL - no scheme",
			url:      "api.example.com",
			expected: "",
		},
		{
			name:     "Malformed URL",
			url:      "not a url",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractHost(tt.url)
			if got != tt.expected {
				t.Errorf("ExtractHost(%q) = %q, want %q", tt.url, got, tt.expected)
			}
		})
	}
}
