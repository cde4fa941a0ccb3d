package core

// Keys of the state a consumer may control.
const (
	StateHighlightedIndex = "highlightedIndex"
	StateInputValue       = "inputValue"
	StateIsOpen           = "isOpen"
	StateSelectedItem     = "selectedItem"
	StateType             = "type"
)

var stateKeys = []string{
	StateHighlightedIndex,
	StateInputValue,
	StateIsOpen,
	StateSelectedItem,
	StateType,
}

// PickState copies the widget state keys present in state into a new map. Presence is what
// counts: a key set to nil or a zero value is kept, a missing key stays missing.
func PickState(state map[string]any) map[string]any {
	out := make(map[string]any, len(stateKeys))
	for _, k := range stateKeys {
		if v, ok := state[k]; ok {
			out[k] = v
		}
	}
	return out
}

// State is the internal widget state.
type State struct {
	HighlightedIndex int
	InputValue       string
	IsOpen           bool
	SelectedItem     any
	Type             string
}

// StatePatch holds controlled overrides. A nil field means "not controlled".
// SelectedItemSet distinguishes an explicit nil selection from no override.
type StatePatch struct {
	HighlightedIndex *int
	InputValue       *string
	IsOpen           *bool
	SelectedItem     any
	SelectedItemSet  bool
	Type             *string
}

// StatePatchFromMap builds a patch from the present whitelisted keys of props. Values of the
// wrong type are ignored.
func StatePatchFromMap(props map[string]any) StatePatch {
	var p StatePatch
	picked := PickState(props)
	if v, ok := picked[StateHighlightedIndex].(int); ok {
		p.HighlightedIndex = &v
	}
	if v, ok := picked[StateInputValue].(string); ok {
		p.InputValue = &v
	}
	if v, ok := picked[StateIsOpen].(bool); ok {
		p.IsOpen = &v
	}
	if v, ok := picked[StateSelectedItem]; ok {
		p.SelectedItem = v
		p.SelectedItemSet = true
	}
	if v, ok := picked[StateType].(string); ok {
		p.Type = &v
	}
	return p
}

// Apply returns s with the controlled fields of p overriding it.
func (p StatePatch) Apply(s State) State {
	if p.HighlightedIndex != nil {
		s.HighlightedIndex = *p.HighlightedIndex
	}
	if p.InputValue != nil {
		s.InputValue = *p.InputValue
	}
	if p.IsOpen != nil {
		s.IsOpen = *p.IsOpen
	}
	if p.SelectedItemSet {
		s.SelectedItem = p.SelectedItem
	}
	if p.Type != nil {
		s.Type = *p.Type
	}
	return s
}

// Empty reports whether p controls nothing.
func (p StatePatch) Empty() bool {
	return p.HighlightedIndex == nil && p.InputValue == nil && p.IsOpen == nil &&
		!p.SelectedItemSet && p.Type == nil
}
