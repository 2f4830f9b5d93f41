package core

// Selection is the player's selection state: either nothing is selected,
// or exactly one position is.
type Selection struct {
	pos    Pos
	active bool
}

// NoneSelected returns the empty selection.
func NoneSelected() Selection {
	return Selection{}
}

// OneSelected returns a selection holding p.
func OneSelected(p Pos) Selection {
	return Selection{pos: p, active: true}
}

// Active reports whether a position is selected.
func (s Selection) Active() bool {
	return s.active
}

// Pos returns the selected position and whether there is one.
func (s Selection) Pos() (Pos, bool) {
	return s.pos, s.active
}

// Is reports whether p is the selected position.
func (s Selection) Is(p Pos) bool {
	return s.active && s.pos == p
}

// String returns "none" or the selected position.
func (s Selection) String() string {
	if !s.active {
		return "none"
	}
	return s.pos.String()
}

// Intent is what a select event asks the engine to do.
type Intent uint8

const (
	IntentNone     Intent = iota // ignored: out of bounds
	IntentSelect                 // nothing was selected; remember p
	IntentDeselect               // p was already selected; clear
	IntentRetarget               // p is not adjacent; move the selection
	IntentSwap                   // adjacent and different types; swap then spread
	IntentReject                 // adjacent but same type; no-op swap refused
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "None"
	case IntentSelect:
		return "Select"
	case IntentDeselect:
		return "Deselect"
	case IntentRetarget:
		return "Retarget"
	case IntentSwap:
		return "Swap"
	case IntentReject:
		return "Reject"
	default:
		return "Unknown"
	}
}

// Transition applies a select(p) event to the selection state. It is pure:
// the board is only read, and the caller performs any swap the intent asks
// for. The returned selection is the state after the event.
func Transition(sel Selection, p Pos, b *Board) (Selection, Intent) {
	if !b.InBounds(p) {
		return sel, IntentNone
	}

	cur, ok := sel.Pos()
	if !ok {
		return OneSelected(p), IntentSelect
	}

	switch {
	case cur == p:
		return NoneSelected(), IntentDeselect
	case Adjacent(cur, p):
		if b.At(cur).SameType(b.At(p)) {
			return sel, IntentReject
		}
		return OneSelected(p), IntentSwap
	default:
		return OneSelected(p), IntentRetarget
	}
}
