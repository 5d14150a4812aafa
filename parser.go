package line

import "fmt"

type ParserState int

const (
	StateNormal ParserState = iota
	// StateEscape: an escape byte was read, the introducer has not been.
	StateEscape
	// StateCSI: escape and introducer read, waiting on the final byte.
	StateCSI
)

type EventKind int

const (
	EventInsertChar EventKind = iota
	EventDeleteBeforeCursor
	EventSubmit
	EventCursorLeft
	EventCursorRight
	EventHistoryPrev
	EventHistoryNext
	EventCompletionRequest
)

var eventKindNames = [...]string{
	EventInsertChar:         "InsertChar",
	EventDeleteBeforeCursor: "DeleteBeforeCursor",
	EventSubmit:             "Submit",
	EventCursorLeft:         "CursorLeft",
	EventCursorRight:        "CursorRight",
	EventHistoryPrev:        "HistoryPrev",
	EventHistoryNext:        "HistoryNext",
	EventCompletionRequest:  "CompletionRequest",
}

func (k EventKind) String() string {
	if k >= 0 && int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

type Event struct {
	Kind EventKind
	// Char is only meaningful for EventInsertChar.
	Char byte
}

func (e Event) String() string {
	if e.Kind == EventInsertChar {
		return fmt.Sprintf("InsertChar(%q)", e.Char)
	}
	return e.Kind.String()
}

const (
	keyBackspace = 0x08
	keyTab       = '\t'
	keyNewline   = '\n'
	keyReturn    = '\r'
	keyEscape    = 0x1b
	keyDelete    = 0x7f
)

// Parse feeds one input byte through the decoder. The returned bool reports
// whether an event was produced. Escape sequences other than the four arrow
// keys are consumed without producing anything; an escape byte in the middle
// of one starts over.
func Parse(state ParserState, b byte) (ParserState, Event, bool) {
	switch state {
	case StateEscape:
		switch b {
		case '[', 'O':
			return StateCSI, Event{}, false
		case keyEscape:
			return StateEscape, Event{}, false
		default:
			return StateNormal, Event{}, false
		}
	case StateCSI:
		if b == keyEscape {
			return StateEscape, Event{}, false
		}
		if b >= 0x20 && b <= 0x3f { // parameters and intermediates: "0-9;?" etc.
			return StateCSI, Event{}, false
		}
		switch b {
		case 'A': // ^[[A: Arrow up
			return StateNormal, Event{Kind: EventHistoryPrev}, true
		case 'B': // ^[[B: Arrow down
			return StateNormal, Event{Kind: EventHistoryNext}, true
		case 'C': // ^[[C: Arrow right
			return StateNormal, Event{Kind: EventCursorRight}, true
		case 'D': // ^[[D: Arrow left
			return StateNormal, Event{Kind: EventCursorLeft}, true
		}
		return StateNormal, Event{}, false
	}

	switch b {
	case keyNewline, keyReturn:
		return StateNormal, Event{Kind: EventSubmit}, true
	case keyBackspace, keyDelete:
		return StateNormal, Event{Kind: EventDeleteBeforeCursor}, true
	case keyEscape:
		return StateEscape, Event{}, false
	case keyTab:
		return StateNormal, Event{Kind: EventCompletionRequest}, true
	}
	return StateNormal, Event{Kind: EventInsertChar, Char: b}, true
}
