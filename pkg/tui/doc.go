// Package tui brings the focus helpers to the terminal. A TabBar is a row of
// focusable tabs driven by a Navigator that decodes arrow, Home and End keys
// through survey's terminal reader; PromptDriver wraps survey prompts so
// flows such as PromptEmail can be scripted in tests.
package tui
