// Package core contains the behavioral primitives of a keyboard-navigable selection widget.
//
// Allowed here:
// - index navigation, handler/ref composition, debounce and id allocation
// - accessibility status text and controlled-state projection
// - small state machines built from those primitives (for example the picker)
//
// Not allowed here:
// - terminal rendering, program wiring, storage
package core
