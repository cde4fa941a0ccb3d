package core

import (
	"reflect"
	"testing"
)

func TestPickStateCopiesOnlyPresentWhitelistedKeys(t *testing.T) {
	in := map[string]any{
		"isOpen":       false,
		"selectedItem": nil,
		"inputValue":   "",
		"onChange":     "dropped",
	}
	got := PickState(in)
	want := map[string]any{
		"isOpen":       false,
		"selectedItem": nil,
		"inputValue":   "",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("PickState = %v, want %v", got, want)
	}
	if _, ok := got[StateHighlightedIndex]; ok {
		t.Fatalf("absent key highlightedIndex was added")
	}
	if _, ok := got[StateType]; ok {
		t.Fatalf("absent key type was added")
	}
}

func TestPickStateNil(t *testing.T) {
	if got := PickState(nil); len(got) != 0 {
		t.Fatalf("PickState(nil) = %v", got)
	}
}

func TestStatePatchApply(t *testing.T) {
	base := State{HighlightedIndex: 2, InputValue: "ap", IsOpen: true, SelectedItem: "apple", Type: "keydown"}

	p := StatePatchFromMap(map[string]any{
		"isOpen":           false,
		"selectedItem":     nil,
		"highlightedIndex": "not an int",
	})
	if p.Empty() {
		t.Fatalf("patch with isOpen and selectedItem should not be empty")
	}
	got := p.Apply(base)
	if got.IsOpen || got.SelectedItem != nil {
		t.Fatalf("controlled values not applied: %+v", got)
	}
	if got.HighlightedIndex != 2 || got.InputValue != "ap" {
		t.Fatalf("uncontrolled values changed: %+v", got)
	}

	if !StatePatchFromMap(map[string]any{"other": 1}).Empty() {
		t.Fatalf("unknown keys should give an empty patch")
	}
	if got := (StatePatch{}).Apply(base); !reflect.DeepEqual(got, base) {
		t.Fatalf("empty patch changed state: %+v", got)
	}
}
