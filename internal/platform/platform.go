// Package platform isolates the OS-specific parts of the tool: how env
// commands are spelled, how text reaches the clipboard and how files are
// opened in the user's editor.
package platform

import (
	"runtime"
)

// Family groups operating systems by shell syntax
type Family int

const (
	Unix Family = iota
	Windows
)

func (f Family) String() string {
	if f == Windows {
		return "windows"
	}
	return "unix"
}

// FamilyOf maps a GOOS value to its family
func FamilyOf(goos string) Family {
	if goos == "windows" {
		return Windows
	}
	return Unix
}

// DisplayName is the human name of an OS/arch pair
func DisplayName(goos, goarch string) string {
	switch goos {
	case "darwin":
		return "macOS"
	case "linux":
		return "Linux"
	case "windows":
		switch goarch {
		case "amd64", "arm64":
			return "Windows 64"
		default:
			return "Windows 32"
		}
	default:
		return goos
	}
}

// Platform bundles the capabilities of the host OS
type Platform struct {
	GOOS      string
	Family    Family
	Name      string
	Shell     Shell
	Clipboard Clipboard
	Opener    Opener
}

// Detect returns the Platform for the running process
func Detect() *Platform {
	return New(runtime.GOOS, runtime.GOARCH)
}

// New builds the Platform for a given OS/arch with the real clipboard and opener
func New(goos, goarch string) *Platform {
	family := FamilyOf(goos)
	return &Platform{
		GOOS:      goos,
		Family:    family,
		Name:      DisplayName(goos, goarch),
		Shell:     ShellFor(family),
		Clipboard: SystemClipboard{},
		Opener:    NewCommandOpener(goos),
	}
}

// ClipboardInstallHint tells Linux users which package provides clipboard
// access. It is empty elsewhere.
func (p *Platform) ClipboardInstallHint() string {
	if p.GOOS != "linux" {
		return ""
	}
	return "sudo apt-get install xclip  # or sudo apt-get install xsel"
}
