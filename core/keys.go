package core

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyEvent is a keyboard event as reported by hosts that may still use numeric key codes.
type KeyEvent struct {
	Key     string
	KeyCode int
}

// Legacy key codes of the arrow keys span left (37) to down (40).
const (
	keyCodeLeft = 37
	keyCodeDown = 40
)

const (
	arrowPrefix  = "Arrow"
	keyNameEnter = "Enter"
	keyNameEsc   = "Escape"
)

// NormalizeArrowKey returns the key name of ev, rewriting legacy arrow names ("Up") to their
// modern form ("ArrowUp").
func NormalizeArrowKey(ev KeyEvent) string {
	if ev.KeyCode >= keyCodeLeft && ev.KeyCode <= keyCodeDown && !strings.HasPrefix(ev.Key, arrowPrefix) {
		return arrowPrefix + ev.Key
	}
	return ev.Key
}

// ArrowKeyFromMsg names a bubbletea key message the way NormalizeArrowKey names keys.
// Keys without a special name fall back to msg.String().
func ArrowKeyFromMsg(msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeyUp:
		return arrowPrefix + "Up"
	case tea.KeyDown:
		return arrowPrefix + "Down"
	case tea.KeyLeft:
		return arrowPrefix + "Left"
	case tea.KeyRight:
		return arrowPrefix + "Right"
	case tea.KeyEnter:
		return keyNameEnter
	case tea.KeyEsc:
		return keyNameEsc
	}
	return msg.String()
}

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) Register(binding KeyBinding) {
	r.bindings = append(r.bindings, binding)
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

// Action returns the first action bound to key in scope, or "".
func (r *KeyRegistry) Action(key, scope string) string {
	pressed := normalizeKey(key)
	for _, b := range r.bindings {
		if !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return b.Action
			}
		}
	}
	return ""
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	return action != "" && r.Action(ArrowKeyFromMsg(msg), scope) == action
}

var keyAliases = map[string]string{
	"up":     "arrowup",
	"down":   "arrowdown",
	"left":   "arrowleft",
	"right":  "arrowright",
	"esc":    "escape",
	"return": "enter",
}

func normalizeKey(k string) string {
	k = strings.ToLower(strings.TrimSpace(k))
	if alias, ok := keyAliases[k]; ok {
		return alias
	}
	return k
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}
