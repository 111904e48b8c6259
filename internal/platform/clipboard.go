package platform

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Clipboard copies text for the user
type Clipboard interface {
	Available() bool
	Copy(text string) error
}

// SystemClipboard uses pbcopy, clip, xclip, xsel or wl-copy as found
type SystemClipboard struct{}

// Available reports whether a clipboard helper was found
func (SystemClipboard) Available() bool {
	return !clipboard.Unsupported
}

// Copy places text on the clipboard
func (SystemClipboard) Copy(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}
