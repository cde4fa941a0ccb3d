package core

// Scrollable is anything whose scroll offsets can be written.
type Scrollable interface {
	SetScrollTop(top int)
	SetScrollLeft(left int)
}

// Scroll block alignments and modes understood by a ScrollEngine.
const (
	BlockNearest     = "nearest"
	ScrollIfNeeded   = "if-needed"
	ScrollModeAlways = "always"
)

// ScrollOptions are passed to the ScrollEngine.
type ScrollOptions struct {
	Boundary   any
	Block      string
	ScrollMode string
}

// ScrollAction is one computed offset change.
type ScrollAction struct {
	Element Scrollable
	Top     int
	Left    int
}

// ScrollEngine computes the scroll actions that bring target into view.
type ScrollEngine interface {
	ComputeScrollActions(target any, opts ScrollOptions) []ScrollAction
}

// ScrollIntoView asks engine for the actions that bring node into view within boundary and
// applies them. A nil node or engine does nothing; whether anything needs to move is the
// engine's decision.
func ScrollIntoView(engine ScrollEngine, node, boundary any) {
	if node == nil || engine == nil {
		return
	}
	actions := engine.ComputeScrollActions(node, ScrollOptions{
		Boundary:   boundary,
		Block:      BlockNearest,
		ScrollMode: ScrollIfNeeded,
	})
	for _, a := range actions {
		if a.Element == nil {
			continue
		}
		a.Element.SetScrollTop(a.Top)
		a.Element.SetScrollLeft(a.Left)
	}
}

// LineWindow is a vertical list of fixed height rows shown through a window of Height rows.
type LineWindow interface {
	Scrollable
	ScrollTop() int
	Height() int
}

// LineTarget is a row of a LineWindow.
type LineTarget struct {
	Row int
}

// LineScrollEngine computes nearest, if-needed scrolling for a LineWindow boundary.
type LineScrollEngine struct{}

func (LineScrollEngine) ComputeScrollActions(target any, opts ScrollOptions) []ScrollAction {
	t, ok := target.(LineTarget)
	if !ok {
		return nil
	}
	win, ok := opts.Boundary.(LineWindow)
	if !ok || win.Height() <= 0 || t.Row < 0 {
		return nil
	}
	top := win.ScrollTop()
	bottom := top + win.Height() - 1
	visible := t.Row >= top && t.Row <= bottom
	if visible && opts.ScrollMode != ScrollModeAlways {
		return nil
	}
	newTop := top
	switch {
	case t.Row < top:
		newTop = t.Row
	case t.Row > bottom:
		newTop = t.Row - win.Height() + 1
	}
	return []ScrollAction{{Element: win, Top: newTop, Left: 0}}
}
