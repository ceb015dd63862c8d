package term

type EventKind int

const (
	EventOther EventKind = iota
	EventSubmit
	EventBackspace
	EventText
)

func (k EventKind) String() string {
	switch k {
	case EventSubmit:
		return "submit"
	case EventBackspace:
		return "backspace"
	case EventText:
		return "text"
	default:
		return "other"
	}
}

// Event is one discrete key event from the input source. Text is only set for
// EventText and may hold more than one character (paste, composed input).
type Event struct {
	Kind EventKind
	Text string
}

func Submit() Event { return Event{Kind: EventSubmit} }

func Backspace() Event { return Event{Kind: EventBackspace} }

func Text(text string) Event { return Event{Kind: EventText, Text: text} }

func Other() Event { return Event{Kind: EventOther} }
