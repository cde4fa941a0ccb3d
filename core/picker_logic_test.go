package core

import (
	"reflect"
	"testing"
)

func fruitPicker(opts ...PickerOption) *Picker {
	return NewPicker("fruit", []PickerItem{
		{ID: "1", Label: "Apple"},
		{ID: "2", Label: "Banana"},
		{ID: "3", Label: "Cherry"},
	}, opts...)
}

func TestPickerWrapsHighlight(t *testing.T) {
	p := fruitPicker()
	if p.Cursor() != UnsetIndex {
		t.Fatalf("new picker should have no highlight, got %d", p.Cursor())
	}

	if res := p.HandleKey("ArrowDown"); res.Action != PickerActionMoved {
		t.Fatalf("expected moved, got %v", res.Action)
	}
	if p.Cursor() != 0 || !p.IsOpen() {
		t.Fatalf("first down should open on row 0, cursor=%d open=%v", p.Cursor(), p.IsOpen())
	}

	p.HandleKey("down")
	p.HandleKey("down")
	if p.Cursor() != 2 {
		t.Fatalf("expected cursor 2, got %d", p.Cursor())
	}
	p.HandleKey("down")
	if p.Cursor() != 0 {
		t.Fatalf("down from last should wrap to first, got %d", p.Cursor())
	}
	p.HandleKey("up")
	if p.Cursor() != 2 {
		t.Fatalf("up from first should wrap to last, got %d", p.Cursor())
	}
}

func TestPickerFirstUpLandsOnLast(t *testing.T) {
	p := fruitPicker()
	p.HandleKey("ArrowUp")
	if p.Cursor() != 2 {
		t.Fatalf("expected cursor 2, got %d", p.Cursor())
	}
}

func TestPickerSelectAndStatus(t *testing.T) {
	var changed []string
	p := fruitPicker(OnSelectionChange(func(item PickerItem) { changed = append(changed, item.ID) }))

	p.HandleKey("down")
	want := "3 results are available, use up and down arrow keys to navigate. Press Enter key to select."
	if got := p.StatusMessage(); got != want {
		t.Fatalf("status = %q", got)
	}
	if got := p.StatusMessage(); got != "" {
		t.Fatalf("unchanged count should not be announced twice, got %q", got)
	}

	p.HandleKey("down")
	res := p.HandleKey("enter")
	if res.Action != PickerActionSelected || res.Item.Label != "Banana" {
		t.Fatalf("expected Banana selected, got %+v", res)
	}
	if p.IsOpen() || p.Query() != "Banana" {
		t.Fatalf("selection should close the menu and fill the input, open=%v query=%q", p.IsOpen(), p.Query())
	}
	if !reflect.DeepEqual(changed, []string{"2"}) {
		t.Fatalf("selection callbacks = %v", changed)
	}
	if got := p.StatusMessage(); got != "Banana" {
		t.Fatalf("closed status = %q", got)
	}
	if got := len(p.Items()); got != 3 {
		t.Fatalf("input showing the selection should list everything, got %d", got)
	}
}

func TestPickerFiltering(t *testing.T) {
	p := fruitPicker()
	for _, k := range []string{"a", "n"} {
		if res := p.HandleKey(k); res.Action != PickerActionQueryChanged {
			t.Fatalf("key %q: expected query change, got %v", k, res.Action)
		}
	}
	if p.Query() != "an" {
		t.Fatalf("query = %q", p.Query())
	}
	items := p.Items()
	if len(items) == 0 || items[0].Label != "Banana" {
		t.Fatalf("expected Banana first, got %+v", items)
	}

	p.HandleKey("z")
	p.HandleKey("z")
	if got := p.Items(); len(got) != 0 {
		t.Fatalf("expected no matches, got %+v", got)
	}
	if got := p.StatusMessage(); got != "No results are available." {
		t.Fatalf("status = %q", got)
	}
	if res := p.HandleKey("down"); res.Action != PickerActionNone {
		t.Fatalf("moving in an empty list should do nothing, got %v", res.Action)
	}

	p.HandleKey("backspace")
	p.HandleKey("backspace")
	if p.Query() != "an" {
		t.Fatalf("query after backspace = %q", p.Query())
	}
	p.HandleKey("ctrl+u")
	if p.Query() != "" || len(p.Items()) != 3 {
		t.Fatalf("clear should restore the full list, query=%q items=%d", p.Query(), len(p.Items()))
	}
}

func TestPickerAppendQuery(t *testing.T) {
	p := fruitPicker()
	if !p.AppendQuery("an") {
		t.Fatalf("expected the query to change")
	}
	if !p.AppendQuery("a\n") {
		t.Fatalf("expected the query to change")
	}
	if p.Query() != "ana" || !p.IsOpen() {
		t.Fatalf("query=%q open=%v", p.Query(), p.IsOpen())
	}
	if items := p.Items(); len(items) != 1 || items[0].Label != "Banana" {
		t.Fatalf("expected only Banana, got %+v", items)
	}
	if p.AppendQuery("\r\t") {
		t.Fatalf("control-only text should not change the query")
	}
	if p.Query() != "ana" {
		t.Fatalf("query = %q", p.Query())
	}
}

func TestPickerUserHandlerCanPreventDefault(t *testing.T) {
	p := fruitPicker()
	seen := ""
	res := p.HandleKey("down", func(ev *Event, _ ...any) {
		seen = ev.Key
		ev.PreventDefault()
	})
	if seen != "down" {
		t.Fatalf("user handler saw %q", seen)
	}
	if res.Action != PickerActionNone || p.Cursor() != UnsetIndex {
		t.Fatalf("prevented key still handled: %+v cursor=%d", res, p.Cursor())
	}

	res = p.HandleKey("down", nil, func(*Event, ...any) {})
	if res.Action != PickerActionMoved {
		t.Fatalf("expected moved, got %v", res.Action)
	}
}

func TestPickerControlledState(t *testing.T) {
	p := fruitPicker()
	p.SetControlled(map[string]any{"isOpen": true, "highlightedIndex": 1})
	if !p.IsOpen() || p.Cursor() != 1 {
		t.Fatalf("controlled state not applied, open=%v cursor=%d", p.IsOpen(), p.Cursor())
	}

	p.HandleKey("esc")
	if !p.IsOpen() {
		t.Fatalf("controlled isOpen should win")
	}

	p.SetControlled(map[string]any{"selectedItem": nil})
	if _, ok := p.SelectedItem(); ok {
		t.Fatalf("controlled nil selection should clear the selection")
	}
}

func TestPickerIDsAndItemProps(t *testing.T) {
	ids := NewIDAllocator()
	ids.Set(4)
	p := fruitPicker(WithIDs(ids, "fruit"))
	got := []string{p.ID(), p.MenuID(), p.InputID(), p.LabelID()}
	want := []string{"fruit-4", "fruit-4-menu", "fruit-4-input", "fruit-4-label"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ids = %v, want %v", got, want)
	}

	p.HandleKey("down")
	props := p.ItemProps(0)
	if props.ID != "fruit-4-item-0" || !props.Highlighted || props.Selected {
		t.Fatalf("props = %+v", props)
	}
}

func TestPickerItemPropsOutOfRange(t *testing.T) {
	logs := observeDiagnostics(t)
	p := fruitPicker()

	if got := p.ItemProps(9).Index; got != UnsetIndex {
		t.Fatalf("index = %d, want UnsetIndex", got)
	}
	entries := logs.All()
	if len(entries) != 1 || entries[0].Message != `Index 9 is out of range in "ItemProps"` {
		t.Fatalf("entries = %+v", entries)
	}
}

func TestPickerMenuRefScrollsHighlighted(t *testing.T) {
	items := make([]PickerItem, 0, 20)
	for i := 0; i < 20; i++ {
		items = append(items, PickerItem{ID: string(rune('a' + i)), Label: string(rune('a'+i)) + "-item"})
	}
	p := NewPicker("letters", items, WithPageSize(5))
	win := &fakeWindow{height: 4}
	user := &RefSlot[LineWindow]{}
	p.MenuRef(user)(win)
	if user.Current != LineWindow(win) {
		t.Fatalf("user ref did not receive the window")
	}

	p.HandleKey("end")
	if p.Cursor() != UnsetIndex {
		t.Fatalf("end needs an open menu, cursor=%d", p.Cursor())
	}
	p.HandleKey("up")
	if p.Cursor() != 19 || win.top != 16 {
		t.Fatalf("cursor=%d top=%d, want 19 and 16", p.Cursor(), win.top)
	}

	p.HandleKey("home")
	if p.Cursor() != 0 || win.top != 0 {
		t.Fatalf("cursor=%d top=%d, want 0 and 0", p.Cursor(), win.top)
	}

	p.HandleKey("pgdown")
	if p.Cursor() != 5 || win.top != 2 {
		t.Fatalf("cursor=%d top=%d, want 5 and 2", p.Cursor(), win.top)
	}
}
