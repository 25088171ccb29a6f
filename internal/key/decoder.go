package key

import "time"

// Decoder reads bytes from a Source and emits one Key per call to Next.
type Decoder struct {
	src     Source
	timeout time.Duration
}

func NewDecoder(src Source) *Decoder {
	return &Decoder{src: src, timeout: EscapeTimeout}
}

// Next blocks until a recognized key arrives. Unrecognized sequences are
// consumed and dropped without emitting anything.
func (d *Decoder) Next() (Key, error) {
	for {
		b, err := d.src.ReadByte()
		if err != nil {
			return Key{}, err
		}
		switch {
		case b == 0x1b:
			k, ok, err := d.afterEscape()
			if err != nil {
				return Key{}, err
			}
			if ok {
				return k, nil
			}
		case b == '\r' || b == '\n':
			return Key{Kind: KindEnter}, nil
		case b == '\t':
			return Key{Kind: KindTab}, nil
		case b == 0x7f || b == 0x08:
			return Key{Kind: KindBackspace}, nil
		case b >= 0x20 && b <= 0x7e:
			return Key{Kind: KindRune, Rune: rune(b)}, nil
		case b >= 0x01 && b <= 0x1a:
			return Key{Kind: KindCtrl, Rune: rune('a' + b - 1)}, nil
		default:
			// Outside the printable range and the control set; drop it.
		}
	}
}

// afterEscape resolves what an ESC byte introduced. ok=false means the
// sequence was recognized as noise and should be discarded.
func (d *Decoder) afterEscape() (Key, bool, error) {
	b, ok, err := d.src.ReadByteTimeout(d.timeout)
	if err != nil {
		return Key{}, false, err
	}
	if !ok {
		// Nothing followed: the ESC stood alone.
		return Key{Kind: KindEsc}, true, nil
	}
	if b == '[' {
		return d.afterCSI()
	}
	if b >= 0x20 && b <= 0x7e {
		return Key{Kind: KindAlt, Rune: rune(b)}, true, nil
	}
	return Key{}, false, nil
}

// afterCSI consumes a CSI body: parameter bytes (digits and ';') up to a
// final byte, then maps the whole sequence to a token.
func (d *Decoder) afterCSI() (Key, bool, error) {
	var params []byte
	var final byte
	for {
		b, ok, err := d.src.ReadByteTimeout(d.timeout)
		if err != nil {
			return Key{}, false, err
		}
		if !ok {
			// Truncated sequence; discard what we have.
			return Key{}, false, nil
		}
		if (b >= '0' && b <= '9') || b == ';' {
			params = append(params, b)
			continue
		}
		final = b
		break
	}
	p := string(params)

	switch final {
	case 'A':
		if p == "" {
			return Key{Kind: KindUp}, true, nil
		}
	case 'B':
		if p == "" {
			return Key{Kind: KindDown}, true, nil
		}
	case 'C':
		if p == "" {
			return Key{Kind: KindRight}, true, nil
		}
		if modifiedMove(p) {
			return Key{Kind: KindWordRight}, true, nil
		}
	case 'D':
		if p == "" {
			return Key{Kind: KindLeft}, true, nil
		}
		if modifiedMove(p) {
			return Key{Kind: KindWordLeft}, true, nil
		}
	case 'Z':
		return Key{Kind: KindShiftTab}, true, nil
	case 'H':
		return Key{Kind: KindHome}, true, nil
	case 'F':
		return Key{Kind: KindEnd}, true, nil
	case '~':
		switch p {
		case "1", "7":
			return Key{Kind: KindHome}, true, nil
		case "4", "8":
			return Key{Kind: KindEnd}, true, nil
		case "3":
			return Key{Kind: KindDelete}, true, nil
		}
	}
	return Key{}, false, nil
}

// modifiedMove recognizes the "1;<mod>" parameter form terminals send for
// Option/Alt/Ctrl-modified arrows, e.g. ESC [ 1 ; 9 D on macOS.
func modifiedMove(p string) bool {
	switch p {
	case "1;3", "1;5", "1;9":
		return true
	}
	return false
}
