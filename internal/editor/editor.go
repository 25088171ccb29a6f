// Package editor implements the single-row text edit session: a rune buffer
// with a cursor, word motions, a bounded local undo/redo history and a
// horizontal scroll window.
package editor

import "unicode"

// maxHistory bounds the local undo ring; the oldest entry is dropped when a
// new one would exceed it.
const maxHistory = 50

// scrollMargin keeps a few characters of context visible to the right of the
// cursor when the buffer is wider than the window.
const scrollMargin = 5

// Command is the closed set of inputs a session understands.
type Command int

const (
	CmdInsert Command = iota
	CmdDeleteBackward
	CmdDeleteForward
	CmdMoveLeft
	CmdMoveRight
	CmdMoveHome
	CmdMoveEnd
	CmdWordLeft
	CmdWordRight
	CmdUndo
	CmdRedo
	CmdCommit
	CmdCancel
)

// revision is one undo slot: the buffer text plus the cursor position it was
// last observed at, so undo puts the cursor back where the edit happened.
type revision struct {
	text string
	pos  int
}

// Session is one in-progress edit of a task text or week title.
type Session struct {
	buf     []rune
	pos     int
	history []revision
	histPos int
}

// NewSession starts editing text. atStart places the cursor at column zero
// (the vim-style I entry point); otherwise it starts at the end.
func NewSession(text string, atStart bool) *Session {
	buf := []rune(text)
	pos := len(buf)
	if atStart {
		pos = 0
	}
	return &Session{
		buf:     buf,
		pos:     pos,
		history: []revision{{text: text, pos: pos}},
	}
}

// Text returns the current buffer contents.
func (s *Session) Text() string { return string(s.buf) }

// Pos returns the cursor offset, always within [0, len].
func (s *Session) Pos() int { return s.pos }

// HistoryLen reports how many undo slots exist, current state included.
func (s *Session) HistoryLen() int { return len(s.history) }

// Apply runs one command. done reports that the session ended; committed
// distinguishes Commit (keep the text) from Cancel (discard it).
func (s *Session) Apply(cmd Command, r rune) (done, committed bool) {
	switch cmd {
	case CmdInsert:
		s.record()
		s.buf = append(s.buf[:s.pos], append([]rune{r}, s.buf[s.pos:]...)...)
		s.pos++
		s.push()
	case CmdDeleteBackward:
		if s.pos > 0 {
			s.record()
			s.buf = append(s.buf[:s.pos-1], s.buf[s.pos:]...)
			s.pos--
			s.push()
		}
	case CmdDeleteForward:
		if s.pos < len(s.buf) {
			s.record()
			s.buf = append(s.buf[:s.pos], s.buf[s.pos+1:]...)
			s.push()
		}
	case CmdMoveLeft:
		if s.pos > 0 {
			s.pos--
		}
	case CmdMoveRight:
		if s.pos < len(s.buf) {
			s.pos++
		}
	case CmdMoveHome:
		s.pos = 0
	case CmdMoveEnd:
		s.pos = len(s.buf)
	case CmdWordLeft:
		for s.pos > 0 && unicode.IsSpace(s.buf[s.pos-1]) {
			s.pos--
		}
		for s.pos > 0 && !unicode.IsSpace(s.buf[s.pos-1]) {
			s.pos--
		}
	case CmdWordRight:
		for s.pos < len(s.buf) && !unicode.IsSpace(s.buf[s.pos]) {
			s.pos++
		}
		for s.pos < len(s.buf) && unicode.IsSpace(s.buf[s.pos]) {
			s.pos++
		}
	case CmdUndo:
		if s.histPos > 0 {
			s.histPos--
			s.restore(s.history[s.histPos])
		}
	case CmdRedo:
		if s.histPos < len(s.history)-1 {
			s.histPos++
			s.restore(s.history[s.histPos])
		}
	case CmdCommit:
		return true, true
	case CmdCancel:
		return true, false
	}
	return false, false
}

// record refreshes the current slot's cursor position just before a
// mutation, so undoing back to it lands where the edit was made.
func (s *Session) record() {
	s.history = s.history[:s.histPos+1]
	s.history[s.histPos].pos = s.pos
}

// push appends the post-mutation state and advances the pointer, dropping
// the oldest slot once the ring is full.
func (s *Session) push() {
	s.history = append(s.history, revision{text: string(s.buf), pos: s.pos})
	s.histPos = len(s.history) - 1
	if len(s.history) > maxHistory {
		s.history = s.history[1:]
		s.histPos--
	}
}

func (s *Session) restore(rev revision) {
	s.buf = []rune(rev.text)
	s.pos = rev.pos
	if s.pos > len(s.buf) {
		s.pos = len(s.buf)
	}
}

// Window returns the visible slice of the buffer for a display width and the
// cursor column within it. The window scrolls only as far as needed to keep
// the cursor inside, with scrollMargin characters of right context.
func (s *Session) Window(width int) (string, int) {
	if width <= 0 {
		return "", 0
	}
	start := s.pos - width + scrollMargin
	if start < 0 {
		start = 0
	}
	// Very narrow windows can push the start past the cursor.
	if start > s.pos {
		start = s.pos
	}
	end := start + width
	if end > len(s.buf) {
		end = len(s.buf)
	}
	return string(s.buf[start:end]), s.pos - start
}
