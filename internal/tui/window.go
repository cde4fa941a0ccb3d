package tui

import "github.com/jask/combokit/core"

// menuWindow is the visible slice of the menu rows. The picker writes its scroll offset
// through the core.LineWindow methods.
type menuWindow struct {
	top    int
	height int
}

var _ core.LineWindow = (*menuWindow)(nil)

func (w *menuWindow) SetScrollTop(top int) {
	if top < 0 {
		top = 0
	}
	w.top = top
}

func (w *menuWindow) SetScrollLeft(int) {}
func (w *menuWindow) ScrollTop() int    { return w.top }
func (w *menuWindow) Height() int       { return w.height }

// clamp keeps the window inside a list of n rows after the list shrinks.
func (w *menuWindow) clamp(n int) {
	if w.top > n-w.height {
		w.top = max(0, n-w.height)
	}
}
