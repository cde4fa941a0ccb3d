package core

import "strings"

// Picker actions.
const (
	ActionMoveUp    = "move-up"
	ActionMoveDown  = "move-down"
	ActionPageUp    = "page-up"
	ActionPageDown  = "page-down"
	ActionFirst     = "first"
	ActionLast      = "last"
	ActionSelect    = "select"
	ActionClose     = "close"
	ActionToggle    = "toggle-menu"
	ActionClearText = "clear"
	ActionQuit      = "quit"
)

// ScopePicker is the key scope of an open picker.
const ScopePicker = "picker"

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"ctrl+c"}, Action: ActionQuit, Description: "quit", Scopes: []string{"*"}},
		{Keys: []string{"up", "ctrl+p"}, Action: ActionMoveUp, Description: "previous", Scopes: []string{ScopePicker}},
		{Keys: []string{"down", "ctrl+n"}, Action: ActionMoveDown, Description: "next", Scopes: []string{ScopePicker}},
		{Keys: []string{"pgup"}, Action: ActionPageUp, Description: "page up", Scopes: []string{ScopePicker}},
		{Keys: []string{"pgdown"}, Action: ActionPageDown, Description: "page down", Scopes: []string{ScopePicker}},
		{Keys: []string{"home"}, Action: ActionFirst, Description: "first", Scopes: []string{ScopePicker}},
		{Keys: []string{"end"}, Action: ActionLast, Description: "last", Scopes: []string{ScopePicker}},
		{Keys: []string{"enter"}, Action: ActionSelect, Description: "select", Scopes: []string{ScopePicker}},
		{Keys: []string{"esc"}, Action: ActionClose, Description: "close", Scopes: []string{ScopePicker}},
		{Keys: []string{"ctrl+o"}, Action: ActionToggle, Description: "toggle menu", Scopes: []string{"*"}},
		{Keys: []string{"ctrl+u"}, Action: ActionClearText, Description: "clear", Scopes: []string{"*"}},
	}
}

func DefaultKeybindingsByAction(bindings []KeyBinding) map[string][]string {
	out := make(map[string][]string, len(bindings))
	for _, b := range bindings {
		if strings.TrimSpace(b.Action) == "" || len(b.Keys) == 0 {
			continue
		}
		if _, exists := out[b.Action]; exists {
			continue
		}
		out[b.Action] = append([]string(nil), b.Keys...)
	}
	return out
}

// ApplyActionKeybindings replaces the keys of every binding whose action appears in
// actionKeys, e.g. user overrides loaded from config.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      append([]string(nil), b.Scopes...),
		}
		if keys, ok := actionKeys[b.Action]; ok && len(keys) > 0 {
			next.Keys = append([]string(nil), keys...)
		}
		out = append(out, next)
	}
	return out
}
