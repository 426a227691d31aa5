package tui

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/goliatone/go-formkit/pkg/focus"
)

// Key names reported by KeyName besides the focus navigation keys.
const (
	KeyEnter     = "Enter"
	KeyEscape    = "Escape"
	KeyInterrupt = "Interrupt"
	KeyTab       = "Tab"
)

// KeyReader yields decoded key presses.
type KeyReader interface {
	ReadRune() (rune, int, error)
}

// KeyName maps a rune read from the terminal to a KeyboardEvent.key style
// name. Printable runes map to themselves.
func KeyName(r rune) string {
	switch r {
	case terminal.KeyArrowLeft:
		return focus.KeyArrowLeft
	case terminal.KeyArrowRight:
		return focus.KeyArrowRight
	case terminal.SpecialKeyHome:
		return focus.KeyHome
	case terminal.SpecialKeyEnd:
		return focus.KeyEnd
	case terminal.KeyEnter, '\n':
		return KeyEnter
	case terminal.KeyEscape:
		return KeyEscape
	case terminal.KeyInterrupt:
		return KeyInterrupt
	case terminal.KeyTab:
		return KeyTab
	default:
		return string(r)
	}
}

// TerminalKeys reads raw keys from the process terminal.
type TerminalKeys struct {
	reader *terminal.RuneReader
}

// OpenTerminalKeys switches stdin to raw mode. Callers must Close to restore
// the terminal.
func OpenTerminalKeys() (*TerminalKeys, error) {
	reader := terminal.NewRuneReader(terminal.Stdio{In: os.Stdin, Out: os.Stdout, Err: os.Stderr})
	if err := reader.SetTermMode(); err != nil {
		return nil, fmt.Errorf("tui: set terminal mode: %w", err)
	}
	return &TerminalKeys{reader: reader}, nil
}

// ReadRune reads one key press.
func (k *TerminalKeys) ReadRune() (rune, int, error) {
	return k.reader.ReadRune()
}

// Close restores the terminal mode.
func (k *TerminalKeys) Close() error {
	if k == nil || k.reader == nil {
		return nil
	}
	return k.reader.RestoreTermMode()
}
