package core

// Event is passed through a handler chain. Any handler may call PreventDefault to stop the
// rest of the chain; the flag is local to the chain and does not touch the host event.
type Event struct {
	Type string
	Key  string
	// Native is the wrapped host event, if any. A stop set on it also ends the chain.
	Native *Event
	// Payload carries host specific data (for example a tea.KeyMsg).
	Payload any

	stopped bool
}

// PreventDefault stops any later handler in the chain currently running.
func (e *Event) PreventDefault() {
	if e != nil {
		e.stopped = true
	}
}

// DefaultPrevented reports whether the event or its wrapped native event was stopped.
func (e *Event) DefaultPrevented() bool {
	if e == nil {
		return false
	}
	if e.stopped {
		return true
	}
	return e.Native != nil && e.Native.stopped
}

// EventHandler handles an event; extra arguments are forwarded untouched.
type EventHandler func(ev *Event, args ...any)

// ChainHandler is a composed handler. It reports whether the chain stopped early.
type ChainHandler func(ev *Event, args ...any) bool

// CallAllEventHandlers composes handlers into one. Handlers run in order, nil entries are
// skipped, and the chain ends as soon as the event reports DefaultPrevented.
func CallAllEventHandlers(handlers ...EventHandler) ChainHandler {
	return func(ev *Event, args ...any) bool {
		for _, h := range handlers {
			if h != nil {
				h(ev, args...)
			}
			if ev.DefaultPrevented() {
				return true
			}
		}
		return false
	}
}

// Handle adapts a ChainHandler back into an EventHandler so chains can nest.
func (c ChainHandler) Handle(ev *Event, args ...any) {
	if c != nil {
		c(ev, args...)
	}
}

// Noop does nothing.
func Noop() {}

// CbToCb returns cb, or Noop when cb is nil.
func CbToCb(cb func()) func() {
	if cb == nil {
		return Noop
	}
	return cb
}
