package term

import (
	"context"

	"github.com/Neev4n/termshell/pkg/shell"
)

// Submitter is the session surface the dispatcher drives.
type Submitter interface {
	Submit(ctx context.Context, line string) shell.Result
	Prompt() string
	Pending() string
	AppendPending(text string) string
	PopPending() (rune, bool)
	ClearPending()
}

// Dispatcher turns key events into session edits and display writes. Events
// must be handled one at a time; Handle blocks while a submitted command runs.
type Dispatcher struct {
	session Submitter
	sink    Sink
}

func NewDispatcher(session Submitter, sink Sink) *Dispatcher {
	return &Dispatcher{session: session, sink: sink}
}

// Start writes the first prompt.
func (d *Dispatcher) Start() {
	d.sink.AppendNormal(d.session.Prompt())
}

// Handle reports whether the event was consumed. Unhandled events are left to
// the host's default behaviour.
func (d *Dispatcher) Handle(ctx context.Context, ev Event) bool {
	switch ev.Kind {
	case EventSubmit:
		d.submit(ctx)
		return true

	case EventBackspace:
		if _, ok := d.session.PopPending(); !ok {
			return false
		}
		d.sink.RemoveLastNormal()
		return true

	case EventText:
		d.sink.AppendNormal(d.session.AppendPending(ev.Text))
		return true

	default:
		return false
	}
}

func (d *Dispatcher) submit(ctx context.Context) {
	d.sink.AppendNormal("\n")

	res := d.session.Submit(ctx, d.session.Pending())

	switch res.Kind {
	case shell.ResultOutput:
		d.sink.AppendNormal(res.Text)
	case shell.ResultError:
		d.sink.AppendError(res.Text)
	}

	if res.Stderr != "" {
		d.sink.AppendError(res.Stderr)
	}

	d.sink.AppendNormal(d.session.Prompt())
	d.session.ClearPending()
}
