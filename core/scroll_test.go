package core

import "testing"

type fakeWindow struct {
	top, left, height int
	writes            int
}

func (w *fakeWindow) SetScrollTop(top int)   { w.top = top; w.writes++ }
func (w *fakeWindow) SetScrollLeft(left int) { w.left = left }
func (w *fakeWindow) ScrollTop() int         { return w.top }
func (w *fakeWindow) Height() int            { return w.height }

type recordingEngine struct {
	opts    ScrollOptions
	actions []ScrollAction
	calls   int
}

func (e *recordingEngine) ComputeScrollActions(_ any, opts ScrollOptions) []ScrollAction {
	e.calls++
	e.opts = opts
	return e.actions
}

func TestScrollIntoViewAppliesActions(t *testing.T) {
	a := &fakeWindow{}
	b := &fakeWindow{}
	engine := &recordingEngine{actions: []ScrollAction{
		{Element: a, Top: 10, Left: 2},
		{Element: nil, Top: 99},
		{Element: b, Top: 3, Left: 0},
	}}
	boundary := &fakeWindow{height: 5}

	ScrollIntoView(engine, LineTarget{Row: 1}, boundary)

	if engine.calls != 1 {
		t.Fatalf("engine called %d times", engine.calls)
	}
	want := ScrollOptions{Boundary: boundary, Block: BlockNearest, ScrollMode: ScrollIfNeeded}
	if engine.opts != want {
		t.Fatalf("opts = %+v, want %+v", engine.opts, want)
	}
	if a.top != 10 || a.left != 2 || b.top != 3 {
		t.Fatalf("a = %+v, b = %+v", a, b)
	}
}

func TestScrollIntoViewNilTarget(t *testing.T) {
	engine := &recordingEngine{}
	ScrollIntoView(engine, nil, &fakeWindow{})
	if engine.calls != 0 {
		t.Fatalf("nil target should not reach the engine")
	}
	ScrollIntoView(nil, LineTarget{}, nil)
}

func TestLineScrollEngine(t *testing.T) {
	win := &fakeWindow{top: 5, height: 4}

	ScrollIntoView(LineScrollEngine{}, LineTarget{Row: 6}, win)
	if win.top != 5 || win.writes != 0 {
		t.Fatalf("visible rows do not scroll: %+v", win)
	}

	ScrollIntoView(LineScrollEngine{}, LineTarget{Row: 2}, win)
	if win.top != 2 {
		t.Fatalf("row above the window: top = %d, want 2", win.top)
	}

	ScrollIntoView(LineScrollEngine{}, LineTarget{Row: 10}, win)
	if win.top != 7 {
		t.Fatalf("row below the window: top = %d, want 7", win.top)
	}

	actions := LineScrollEngine{}.ComputeScrollActions(LineTarget{Row: 8}, ScrollOptions{Boundary: win, ScrollMode: ScrollModeAlways})
	if len(actions) != 1 || actions[0].Top != 7 {
		t.Fatalf("actions = %+v", actions)
	}

	if got := (LineScrollEngine{}).ComputeScrollActions("row", ScrollOptions{Boundary: win}); got != nil {
		t.Fatalf("non-line target gave %+v", got)
	}
	if got := (LineScrollEngine{}).ComputeScrollActions(LineTarget{Row: 1}, ScrollOptions{}); got != nil {
		t.Fatalf("missing boundary gave %+v", got)
	}
}
