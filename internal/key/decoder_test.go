package key

import (
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// script feeds a fixed byte sequence; an exhausted script reads as a timeout
// on the non-blocking path and EOF on the blocking one.
type script struct {
	bytes []byte
}

func (s *script) ReadByte() (byte, error) {
	if len(s.bytes) == 0 {
		return 0, io.EOF
	}
	b := s.bytes[0]
	s.bytes = s.bytes[1:]
	return b, nil
}

func (s *script) ReadByteTimeout(time.Duration) (byte, bool, error) {
	if len(s.bytes) == 0 {
		return 0, false, nil
	}
	b := s.bytes[0]
	s.bytes = s.bytes[1:]
	return b, true, nil
}

func decodeOne(t *testing.T, bytes ...byte) Key {
	t.Helper()
	k, err := NewDecoder(&script{bytes: bytes}).Next()
	require.NoError(t, err)
	return k
}

func TestLoneEscapeResolvesOnTimeout(t *testing.T) {
	assert.Equal(t, Key{Kind: KindEsc}, decodeOne(t, 0x1b))
}

func TestArrowSequences(t *testing.T) {
	assert.Equal(t, Key{Kind: KindLeft}, decodeOne(t, 0x1b, '[', 'D'))
	assert.Equal(t, Key{Kind: KindRight}, decodeOne(t, 0x1b, '[', 'C'))
	assert.Equal(t, Key{Kind: KindUp}, decodeOne(t, 0x1b, '[', 'A'))
	assert.Equal(t, Key{Kind: KindDown}, decodeOne(t, 0x1b, '[', 'B'))
}

func TestAltRunes(t *testing.T) {
	assert.Equal(t, Key{Kind: KindAlt, Rune: 'u'}, decodeOne(t, 0x1b, 'u'))
	assert.Equal(t, Key{Kind: KindAlt, Rune: 'r'}, decodeOne(t, 0x1b, 'r'))
	assert.Equal(t, Key{Kind: KindAlt, Rune: 'b'}, decodeOne(t, 0x1b, 'b'))
	assert.Equal(t, Key{Kind: KindAlt, Rune: 'f'}, decodeOne(t, 0x1b, 'f'))
}

func TestHomeEndDeleteVariants(t *testing.T) {
	assert.Equal(t, Key{Kind: KindHome}, decodeOne(t, 0x1b, '[', '1', '~'))
	assert.Equal(t, Key{Kind: KindHome}, decodeOne(t, 0x1b, '[', '7', '~'))
	assert.Equal(t, Key{Kind: KindHome}, decodeOne(t, 0x1b, '[', 'H'))
	assert.Equal(t, Key{Kind: KindEnd}, decodeOne(t, 0x1b, '[', '4', '~'))
	assert.Equal(t, Key{Kind: KindEnd}, decodeOne(t, 0x1b, '[', '8', '~'))
	assert.Equal(t, Key{Kind: KindEnd}, decodeOne(t, 0x1b, '[', 'F'))
	assert.Equal(t, Key{Kind: KindDelete}, decodeOne(t, 0x1b, '[', '3', '~'))
}

func TestWordJumpSequences(t *testing.T) {
	assert.Equal(t, Key{Kind: KindWordLeft}, decodeOne(t, 0x1b, '[', '1', ';', '9', 'D'))
	assert.Equal(t, Key{Kind: KindWordRight}, decodeOne(t, 0x1b, '[', '1', ';', '9', 'C'))
	assert.Equal(t, Key{Kind: KindWordLeft}, decodeOne(t, 0x1b, '[', '1', ';', '5', 'D'))
	assert.Equal(t, Key{Kind: KindWordRight}, decodeOne(t, 0x1b, '[', '1', ';', '3', 'C'))
}

func TestShiftTab(t *testing.T) {
	assert.Equal(t, Key{Kind: KindShiftTab}, decodeOne(t, 0x1b, '[', 'Z'))
}

func TestControlAndEditingBytes(t *testing.T) {
	assert.Equal(t, Key{Kind: KindCtrl, Rune: 'u'}, decodeOne(t, 0x15))
	assert.Equal(t, Key{Kind: KindCtrl, Rune: 'r'}, decodeOne(t, 0x12))
	assert.Equal(t, Key{Kind: KindCtrl, Rune: 'a'}, decodeOne(t, 0x01))
	assert.Equal(t, Key{Kind: KindCtrl, Rune: 'e'}, decodeOne(t, 0x05))
	assert.Equal(t, Key{Kind: KindEnter}, decodeOne(t, '\r'))
	assert.Equal(t, Key{Kind: KindEnter}, decodeOne(t, '\n'))
	assert.Equal(t, Key{Kind: KindTab}, decodeOne(t, '\t'))
	assert.Equal(t, Key{Kind: KindBackspace}, decodeOne(t, 0x7f))
	assert.Equal(t, Key{Kind: KindBackspace}, decodeOne(t, 0x08))
}

func TestUnknownSequenceIsDiscarded(t *testing.T) {
	// Page Up (ESC [ 5 ~) is not part of the command set; the decoder must
	// swallow it and keep going until something it knows arrives.
	k := decodeOne(t, 0x1b, '[', '5', '~', 'x')
	assert.Equal(t, Key{Kind: KindRune, Rune: 'x'}, k)
}

func TestNonPrintableBytesAreIgnored(t *testing.T) {
	k := decodeOne(t, 0x80, 0xff, 'y')
	assert.Equal(t, Key{Kind: KindRune, Rune: 'y'}, k)
}

func TestPrintableRange(t *testing.T) {
	assert.Equal(t, Key{Kind: KindRune, Rune: ' '}, decodeOne(t, 0x20))
	assert.Equal(t, Key{Kind: KindRune, Rune: '~'}, decodeOne(t, 0x7e))
}

func TestReadErrorPropagates(t *testing.T) {
	_, err := NewDecoder(&script{}).Next()
	assert.ErrorIs(t, err, io.EOF)
}
