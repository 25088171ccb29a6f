package editor

import "github.com/lstephensFederation/lolTasks/internal/key"

// Translate maps a decoded key token to an edit command. ok=false means the
// key has no meaning in an edit session and is ignored.
func Translate(k key.Key) (cmd Command, r rune, ok bool) {
	switch k.Kind {
	case key.KindRune:
		return CmdInsert, k.Rune, true
	case key.KindEnter:
		return CmdCommit, 0, true
	case key.KindEsc:
		return CmdCancel, 0, true
	case key.KindBackspace:
		return CmdDeleteBackward, 0, true
	case key.KindDelete:
		return CmdDeleteForward, 0, true
	case key.KindLeft:
		return CmdMoveLeft, 0, true
	case key.KindRight:
		return CmdMoveRight, 0, true
	case key.KindHome:
		return CmdMoveHome, 0, true
	case key.KindEnd:
		return CmdMoveEnd, 0, true
	case key.KindWordLeft:
		return CmdWordLeft, 0, true
	case key.KindWordRight:
		return CmdWordRight, 0, true
	case key.KindCtrl:
		switch k.Rune {
		case 'a':
			return CmdMoveHome, 0, true
		case 'e':
			return CmdMoveEnd, 0, true
		}
	case key.KindAlt:
		switch k.Rune {
		case 'u':
			return CmdUndo, 0, true
		case 'r':
			return CmdRedo, 0, true
		case 'b':
			return CmdWordLeft, 0, true
		case 'f':
			return CmdWordRight, 0, true
		}
	}
	return 0, 0, false
}
