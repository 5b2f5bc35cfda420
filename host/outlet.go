package host

import (
	"fmt"

	"github.com/katalvlaran/lobjects/atom"
)

// Outlet receives the messages an object sends out of one of its outlets.
type Outlet interface {
	Send(msg atom.Message)
}

// OutletFunc adapts a function to the Outlet interface.
type OutletFunc func(msg atom.Message)

// Send calls f(msg).
func (f OutletFunc) Send(msg atom.Message) { f(msg) }

// Event is one recorded outlet message.
type Event struct {
	Object  string
	Outlet  int
	Message atom.Message
}

// String renders the event as "object[outlet] message".
func (e Event) String() string {
	return fmt.Sprintf("%s[%d] %s", e.Object, e.Outlet, e.Message)
}

// Recorder collects outlet traffic in arrival order.
// The zero value is ready to use.
type Recorder struct {
	events []Event
}

// Tap returns an Outlet that records under the given object name and
// outlet number.
func (r *Recorder) Tap(object string, outlet int) Outlet {
	return OutletFunc(func(msg atom.Message) {
		r.events = append(r.events, Event{Object: object, Outlet: outlet, Message: msg})
	})
}

// Events returns the recorded events.
func (r *Recorder) Events() []Event { return r.events }

// Messages returns the recorded messages, without their origin.
func (r *Recorder) Messages() []atom.Message {
	out := make([]atom.Message, len(r.events))
	for i, e := range r.events {
		out[i] = e.Message
	}

	return out
}

// Reset drops every recorded event.
func (r *Recorder) Reset() { r.events = r.events[:0] }
