package storage

// State is the three-way cyclic task status.
type State int

const (
	Todo State = iota
	Pending
	Done
)

// PrefixWidth is the fixed visual width of a rendered state symbol,
// brackets and trailing space included. Edit-row offsets depend on it.
const PrefixWidth = 4

// stateInfo is indexed by State; adding a state without a row here fails to
// compile, which keeps the cycle exhaustive.
var stateInfo = [...]struct {
	label  string
	symbol string
	next   State
	prev   State
}{
	Todo:    {label: "TO-DO", symbol: "[ ] ", next: Pending, prev: Done},
	Pending: {label: "PENDING", symbol: "[~] ", next: Done, prev: Todo},
	Done:    {label: "COMPLETED", symbol: "[x] ", next: Todo, prev: Pending},
}

// Label returns the on-disk encoding of the state.
func (s State) Label() string { return stateInfo[s].label }

// Symbol returns the 4-character display prefix for the state.
func (s State) Symbol() string { return stateInfo[s].symbol }

// Next returns the state one step forward in the cycle.
func (s State) Next() State { return stateInfo[s].next }

// Prev returns the state one step backward in the cycle.
func (s State) Prev() State { return stateInfo[s].prev }

// ParseState maps a stored label back to its state. Unknown labels fall back
// to Todo so a hand-edited store cannot take the app down.
func ParseState(label string) State {
	for s := range stateInfo {
		if stateInfo[s].label == label {
			return State(s)
		}
	}
	return Todo
}
