// Package term owns the tty: raw mode, the alternate screen, buffered ANSI
// output and the raw byte stream the key decoder consumes.
package term

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Surface is the concrete terminal. It implements key.Source for input and
// the drawing calls the render loop needs for output.
type Surface struct {
	out      *bufio.Writer
	inFd     int
	outFd    int
	oldState *term.State
	in       chan byte
}

// Open puts the terminal into raw mode, switches to the alternate screen and
// starts the input pump. Callers must Close to restore the terminal.
func Open() (*Surface, error) {
	inFd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(inFd)
	if err != nil {
		return nil, fmt.Errorf("enter raw mode: %w", err)
	}

	s := &Surface{
		out:      bufio.NewWriter(os.Stdout),
		inFd:     inFd,
		outFd:    int(os.Stdout.Fd()),
		oldState: oldState,
		in:       make(chan byte, 16),
	}

	s.out.WriteString("\x1b[?1049h") // alternate screen
	s.out.WriteString("\x1b[2J")     // clear
	s.out.WriteString("\x1b[H")      // home
	s.out.WriteString("\x1b[?25l")   // hide cursor
	s.out.Flush()

	// Pump stdin byte by byte into a channel so the decoder can do its
	// timeout-bounded reads with a plain select.
	go func() {
		buf := make([]byte, 1)
		for {
			n, err := os.Stdin.Read(buf)
			if err != nil {
				close(s.in)
				return
			}
			if n == 1 {
				s.in <- buf[0]
			}
		}
	}()

	return s, nil
}

// Close leaves the alternate screen and restores the terminal state.
func (s *Surface) Close() error {
	s.out.WriteString("\x1b[?25h")   // show cursor
	s.out.WriteString("\x1b[?1049l") // leave alternate screen
	s.out.Flush()
	if s.oldState != nil {
		if err := term.Restore(s.inFd, s.oldState); err != nil {
			return fmt.Errorf("restore terminal: %w", err)
		}
		s.oldState = nil
	}
	return nil
}

// ReadByte blocks for the next input byte.
func (s *Surface) ReadByte() (byte, error) {
	b, ok := <-s.in
	if !ok {
		return 0, io.EOF
	}
	return b, nil
}

// ReadByteTimeout waits up to d for a byte; ok=false reports a timeout.
func (s *Surface) ReadByteTimeout(d time.Duration) (byte, bool, error) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case b, ok := <-s.in:
		if !ok {
			return 0, false, io.EOF
		}
		return b, true, nil
	case <-timer.C:
		return 0, false, nil
	}
}

// Size returns the terminal dimensions, re-queried each call so a resize is
// picked up on the next frame. Falls back to 80x24 when the query fails.
func (s *Surface) Size() (width, height int) {
	w, h, err := term.GetSize(s.outFd)
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	return w, h
}

// MoveTo positions the cursor at a zero-based row and column.
func (s *Surface) MoveTo(row, col int) {
	fmt.Fprintf(s.out, "\x1b[%d;%dH", row+1, col+1)
}

// ClearLine erases from the cursor to the end of the line.
func (s *Surface) ClearLine() {
	s.out.WriteString("\x1b[K")
}

// ClearScreen erases the whole screen.
func (s *Surface) ClearScreen() {
	s.out.WriteString("\x1b[2J")
}

// WriteStyled renders text through a lipgloss style at the cursor.
func (s *Surface) WriteStyled(text string, style lipgloss.Style) {
	s.out.WriteString(style.Render(text))
}

// SetCursorVisible toggles the hardware cursor.
func (s *Surface) SetCursorVisible(visible bool) {
	if visible {
		s.out.WriteString("\x1b[?25h")
	} else {
		s.out.WriteString("\x1b[?25l")
	}
}

// Flush pushes buffered output to the terminal.
func (s *Surface) Flush() error {
	return s.out.Flush()
}
