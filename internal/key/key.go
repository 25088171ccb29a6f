// Package key turns the raw terminal byte stream into logical key tokens.
//
// Escape introduces the only ambiguity in the stream: a lone ESC, an
// Alt-modified rune (ESC b), or a CSI sequence (ESC [ ...). The decoder
// resolves it with a short non-blocking follow-up read; no byte within the
// timeout means the ESC stood alone.
package key

import "time"

// Kind classifies a decoded key token.
type Kind int

const (
	KindRune Kind = iota
	KindEnter
	KindTab
	KindShiftTab
	KindBackspace
	KindDelete
	KindUp
	KindDown
	KindLeft
	KindRight
	KindHome
	KindEnd
	KindWordLeft
	KindWordRight
	KindCtrl
	KindAlt
	KindEsc
)

// Key is one decoded keypress. Rune is set for KindRune (the printable
// character), KindCtrl (the lowercase letter, so Ctrl+U carries 'u') and
// KindAlt (the rune that followed ESC).
type Key struct {
	Kind Kind
	Rune rune
}

// Source supplies raw bytes. ReadByte blocks; ReadByteTimeout reports
// ok=false when no byte arrived before the deadline.
type Source interface {
	ReadByte() (byte, error)
	ReadByteTimeout(d time.Duration) (byte, bool, error)
}

// EscapeTimeout bounds the wait for bytes following an ESC.
const EscapeTimeout = 50 * time.Millisecond
