package tui

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyBinding maps keys to a symbolic action within a set of scopes. An empty
// scope list means the binding applies everywhere.
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

// ActionFor resolves a key press to an action within a scope; empty when the
// key is unbound there.
func (r *KeyRegistry) ActionFor(msg tea.KeyMsg, scope string) string {
	pressed := normalizeKey(msg.String())
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
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if b.Action != action || !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return true
			}
		}
	}
	return false
}

// normalizeKey canonicalizes named keys ("Tab" -> "tab") while preserving
// the case of single-character keys, so a remap to "M" does not capture "m".
func normalizeKey(k string) string {
	if len(k) == 1 {
		return k
	}
	return strings.ToLower(strings.TrimSpace(k))
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

// Scopes: "command" covers every pane in command mode, "edit" the inner text
// surface, "menu"/"help" the overlays. Reserved actions (focus movement,
// send) carry both mode scopes so they fire while editing too.
func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"tab"}, Action: "focus-next", Description: "next pane", Scopes: []string{"command", "edit"}},
		{Keys: []string{"shift+tab"}, Action: "focus-previous", Description: "prev pane", Scopes: []string{"command", "edit"}},
		{Keys: []string{"enter"}, Action: "send", Description: "send", Scopes: []string{"command", "edit"}},
		{Keys: []string{"esc"}, Action: "exit-edit-mode", Description: "command mode", Scopes: []string{"edit"}},

		{Keys: []string{"q", "ctrl+c"}, Action: "quit", Description: "quit", Scopes: []string{"command"}},
		{Keys: []string{"?"}, Action: "show-help", Description: "help", Scopes: []string{"command"}},
		{Keys: []string{"esc"}, Action: "show-menu", Description: "pane menu", Scopes: []string{"command"}},
		{Keys: []string{"1"}, Action: "focus-user-prompt", Description: "user prompt", Scopes: []string{"command"}},
		{Keys: []string{"2"}, Action: "focus-system-prompt", Description: "system prompt", Scopes: []string{"command"}},
		{Keys: []string{"3"}, Action: "focus-context", Description: "context", Scopes: []string{"command"}},
		{Keys: []string{"4"}, Action: "focus-model-select", Description: "models", Scopes: []string{"command"}},
		{Keys: []string{"5"}, Action: "focus-response", Description: "response", Scopes: []string{"command"}},
		{Keys: []string{"i"}, Action: "enter-edit-mode", Description: "edit", Scopes: []string{"command"}},
		{Keys: []string{"e"}, Action: "open-editor", Description: "external editor", Scopes: []string{"command"}},
		{Keys: []string{"ctrl+s"}, Action: "save-content", Description: "save", Scopes: []string{"command"}},
		{Keys: []string{"c"}, Action: "clear-content", Description: "clear", Scopes: []string{"command"}},
		{Keys: []string{"s"}, Action: "toggle-streaming", Description: "stream toggle", Scopes: []string{"command"}},
		{Keys: []string{"ctrl+e"}, Action: "export-history", Description: "export", Scopes: []string{"command"}},
		{Keys: []string{"ctrl+r"}, Action: "import-history", Description: "import", Scopes: []string{"command"}},
		{Keys: []string{"m"}, Action: "toggle-maximize", Description: "maximize", Scopes: []string{"command"}},
		{Keys: []string{"n"}, Action: "toggle-minimize", Description: "minimize", Scopes: []string{"command"}},
		{Keys: []string{"ctrl+up"}, Action: "increase-size", Description: "height+", Scopes: []string{"command"}},
		{Keys: []string{"ctrl+down"}, Action: "decrease-size", Description: "height-", Scopes: []string{"command"}},

		{Keys: []string{"j", "down"}, Action: "cursor-down", Description: "down", Scopes: []string{"command", "menu"}},
		{Keys: []string{"k", "up"}, Action: "cursor-up", Description: "up", Scopes: []string{"command", "menu"}},
		{Keys: []string{" "}, Action: "select-model", Description: "select model", Scopes: []string{"command"}},
		{Keys: []string{"/"}, Action: "search-models", Description: "search", Scopes: []string{"command"}},

		{Keys: []string{"esc", "q", "?"}, Action: "close", Description: "close", Scopes: []string{"help"}},
		{Keys: []string{"esc", "q"}, Action: "close", Description: "close", Scopes: []string{"menu"}},
		{Keys: []string{"enter"}, Action: "menu-focus", Description: "focus pane", Scopes: []string{"menu"}},
		{Keys: []string{"h"}, Action: "menu-hide", Description: "hide", Scopes: []string{"menu"}},
		{Keys: []string{"u"}, Action: "menu-unhide", Description: "unhide", Scopes: []string{"menu"}},
		{Keys: []string{"a"}, Action: "menu-hide-all", Description: "hide all", Scopes: []string{"menu"}},
		{Keys: []string{"z"}, Action: "menu-show-all", Description: "show all", Scopes: []string{"menu"}},
		{Keys: []string{"r"}, Action: "menu-reset", Description: "reset layout", Scopes: []string{"menu"}},
	}
}

// ApplyActionKeybindings overrides the keys of matching actions, used for
// user remaps from the config file.
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
