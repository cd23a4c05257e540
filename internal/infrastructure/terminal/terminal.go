// Package terminal inspects the controlling terminal before the TUI starts.
package terminal

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/x/term"
)

// Minimum terminal cells per grid cell: a bordered panel needs one cell of
// content inside its frame.
const (
	MinCellCols = 4
	MinCellRows = 3
)

var (
	// ErrNotTerminal is returned when the interactive grid is started without a TTY.
	ErrNotTerminal = errors.New("stdin/stdout is not a terminal")
	// ErrTooSmall is returned when the window cannot show every grid cell.
	ErrTooSmall = errors.New("terminal too small for the grid")
)

// Size is a terminal size in character cells.
type Size struct {
	Cols int
	Rows int
}

// IsTerminal reports whether fd refers to a terminal.
func IsTerminal(fd uintptr) bool {
	return term.IsTerminal(fd)
}

// GetSize returns the window size of the terminal behind fd.
func GetSize(fd uintptr) (Size, error) {
	w, h, err := term.GetSize(fd)
	if err != nil {
		return Size{}, fmt.Errorf("get window size: %w", err)
	}
	return Size{Cols: w, Rows: h}, nil
}

// RequireTTY fails unless both stdin and stdout are terminals.
func RequireTTY() error {
	if !IsTerminal(os.Stdin.Fd()) || !IsTerminal(os.Stdout.Fd()) {
		return ErrNotTerminal
	}
	return nil
}

// MinSize is the smallest window that shows a rows x cols grid, plus
// reserved lines below it (the toolbar).
func MinSize(rows, cols, reserved int) Size {
	return Size{Cols: cols * MinCellCols, Rows: rows*MinCellRows + reserved}
}

// CheckFits fails with ErrTooSmall when s is smaller than MinSize.
func CheckFits(s Size, rows, cols, reserved int) error {
	need := MinSize(rows, cols, reserved)
	if s.Cols < need.Cols || s.Rows < need.Rows {
		return fmt.Errorf("%w: %dx%d grid needs %dx%d cells, have %dx%d",
			ErrTooSmall, rows, cols, need.Cols, need.Rows, s.Cols, s.Rows)
	}
	return nil
}
