package utils

import "strings"

// tokenPlaceholder is shown in place of tokens too short to partially reveal.
const tokenPlaceholder = "***"

// MaskToken masks an auth token for display. Tokens of 8 or more characters
// keep their first and last 4 characters; anything shorter is replaced by a
// fixed placeholder so its length is not leaked either. Lengths count runes.
func MaskToken(token string) string {
	runes := []rune(token)
	if len(runes) < 8 {
		return tokenPlaceholder
	}
	return string(runes[:4]) + strings.Repeat("*", len(runes)-8) + string(runes[len(runes)-4:])
}
