package core

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Debouncer coalesces rapid calls into one trailing invocation that receives the arguments
// of the most recent call. It is safe for concurrent use; fn runs on the timer goroutine,
// outside the lock.
type Debouncer[T any] struct {
	fn    func(T)
	delay time.Duration

	mu        sync.Mutex
	timer     *time.Timer
	scheduled bool
	gen       uint64
	latest    T
}

// Debounce wraps fn so that it runs once, delay after the last Call.
func Debounce[T any](fn func(T), delay time.Duration) *Debouncer[T] {
	if fn == nil {
		fn = func(T) {}
	}
	return &Debouncer[T]{fn: fn, delay: delay}
}

// Call cancels any pending invocation and schedules a new one with value.
func (d *Debouncer[T]) Call(value T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.cancelLocked()
	d.latest = value
	d.scheduled = true
	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen) })
}

// Cancel drops the pending invocation without running it. Calling it with nothing pending
// is a no-op.
func (d *Debouncer[T]) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelLocked()
}

// Pending reports whether an invocation is scheduled.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.scheduled
}

// Flush runs the pending invocation now, on the caller's goroutine. It reports whether
// anything ran.
func (d *Debouncer[T]) Flush() bool {
	d.mu.Lock()
	if !d.scheduled {
		d.mu.Unlock()
		return false
	}
	value := d.latest
	d.cancelLocked()
	d.mu.Unlock()

	d.fn(value)
	return true
}

func (d *Debouncer[T]) cancelLocked() {
	if d.scheduled {
		if d.timer != nil {
			d.timer.Stop()
		}
		d.scheduled = false
	}
	d.timer = nil
	var zero T
	d.latest = zero
}

// fire runs the invocation scheduled as generation gen. A timer that was stopped too late to
// prevent its callback finds a newer generation (or no schedule) and returns.
func (d *Debouncer[T]) fire(gen uint64) {
	d.mu.Lock()
	if !d.scheduled || d.gen != gen {
		d.mu.Unlock()
		return
	}
	value := d.latest
	d.scheduled = false
	d.timer = nil
	d.mu.Unlock()

	d.fn(value)
}

// DebounceMsg is delivered by DebounceCmd after its delay. Tag correlates it with the
// caller's latest request; older tags are stale and should be ignored.
type DebounceMsg struct {
	Tag   DebounceTag
	Value any
}

// DebounceTag identifies one debounce request stream and its sequence number.
type DebounceTag struct {
	Key string
	Seq int
}

// DebounceCmd returns a command that delivers a DebounceMsg after delay. A model keeps the
// latest Seq per Key and acts only on messages carrying it, which makes the earlier ticks
// no-ops.
func DebounceCmd(tag DebounceTag, delay time.Duration, value any) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return DebounceMsg{Tag: tag, Value: value}
	})
}
