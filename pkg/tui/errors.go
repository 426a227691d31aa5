package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C or Escape).
	ErrAborted = errors.New("tui: aborted")
	// ErrNoTabs is returned when a tab bar has nothing to navigate.
	ErrNoTabs = errors.New("tui: tab bar has no tabs")
)
