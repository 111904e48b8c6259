package tui

import (
	"ccconfig/internal/probe"
)

// ProfilesLoadedMsg is sent when the store has been read
type ProfilesLoadedMsg struct {
	Current  string
	Profiles []Entry
}

// ProfileSwitchedMsg is sent when the active profile has changed
type ProfileSwitchedMsg struct {
	Name string
	Err  error
}

// ProfileAddedMsg is sent when a profile has been added
type ProfileAddedMsg struct {
	Name string
	Err  error
}

// ProfileDeletedMsg is sent when a profile has been removed
type ProfileDeletedMsg struct {
	Name string
	Err  error
}

// PingResultMsg is sent when a connectivity probe completes
type PingResultMsg struct {
	Result *probe.Result
	Err    error
}

// StoreChangedMsg is sent when the store file changes on disk
type StoreChangedMsg struct{}

// errMsg is an error message type
type errMsg string
