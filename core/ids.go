package core

import (
	"strconv"
	"sync"
)

// IDAllocator hands out sequential string ids. Each widget can own one; the package level
// functions share a default instance.
type IDAllocator struct {
	mu   sync.Mutex
	next int
}

// NewIDAllocator returns an allocator starting at 0.
func NewIDAllocator() *IDAllocator {
	return &IDAllocator{}
}

// Next returns the current counter value and advances it.
func (a *IDAllocator) Next() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	id := strconv.Itoa(a.next)
	a.next++
	return id
}

// Reset puts the counter back to 0, so two independent render passes produce the same ids.
func (a *IDAllocator) Reset() {
	a.Set(0)
}

// Set moves the counter to n. Negative values are treated as 0.
func (a *IDAllocator) Set(n int) {
	if n < 0 {
		n = 0
	}
	a.mu.Lock()
	a.next = n
	a.mu.Unlock()
}

// Scoped returns the next id with prefix, e.g. "combokit-3".
func (a *IDAllocator) Scoped(prefix string) string {
	id := a.Next()
	if prefix == "" {
		return id
	}
	return prefix + "-" + id
}

var defaultIDs = NewIDAllocator()

// GenerateID returns the next id from the process-wide allocator.
func GenerateID() string { return defaultIDs.Next() }

// SetIDCounter sets the process-wide counter. Intended for tests.
func SetIDCounter(n int) { defaultIDs.Set(n) }

// ResetIDCounter resets the process-wide counter to 0.
func ResetIDCounter() { defaultIDs.Reset() }
