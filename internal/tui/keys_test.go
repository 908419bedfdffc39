package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestActionForRespectsScope(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())

	if got := reg.ActionFor(tea.KeyMsg{Type: tea.KeyTab}, "command"); got != "focus-next" {
		t.Fatalf("tab in command = %q, want focus-next", got)
	}
	if got := reg.ActionFor(tea.KeyMsg{Type: tea.KeyTab}, "edit"); got != "focus-next" {
		t.Fatalf("tab in edit = %q, want focus-next", got)
	}
	if got := reg.ActionFor(tea.KeyMsg{Type: tea.KeyEsc}, "edit"); got != "exit-edit-mode" {
		t.Fatalf("esc in edit = %q, want exit-edit-mode", got)
	}
	if got := reg.ActionFor(tea.KeyMsg{Type: tea.KeyEsc}, "command"); got != "show-menu" {
		t.Fatalf("esc in command = %q, want show-menu", got)
	}
	// plain letters reach the text surface while editing
	if got := reg.ActionFor(keyRunes("i"), "edit"); got != "" {
		t.Fatalf("i in edit = %q, want unbound", got)
	}
	if got := reg.ActionFor(keyRunes("i"), "command"); got != "enter-edit-mode" {
		t.Fatalf("i in command = %q, want enter-edit-mode", got)
	}
}

func TestIsAction(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	if !reg.IsAction(keyRunes("?"), "close", "help") {
		t.Fatal("? should close the help overlay")
	}
	if reg.IsAction(keyRunes("?"), "close", "menu") {
		t.Fatal("? is not a menu close key")
	}
}

func TestApplyActionKeybindings(t *testing.T) {
	bindings := ApplyActionKeybindings(DefaultKeyBindings(), map[string][]string{
		"toggle-maximize": {"M", "f"},
	})
	reg := NewKeyRegistry(bindings)

	if got := reg.ActionFor(keyRunes("f"), "command"); got != "toggle-maximize" {
		t.Fatalf("remapped f = %q, want toggle-maximize", got)
	}
	if got := reg.ActionFor(keyRunes("M"), "command"); got != "toggle-maximize" {
		t.Fatalf("remapped M = %q, want toggle-maximize", got)
	}
	// the remap replaces the default keys; plain m is no longer bound
	if got := reg.ActionFor(keyRunes("m"), "command"); got != "" {
		t.Fatalf("m = %q, want unbound after shifted remap", got)
	}
	// untouched bindings survive the remap
	if got := reg.ActionFor(keyRunes("n"), "command"); got != "toggle-minimize" {
		t.Fatalf("n = %q, want toggle-minimize", got)
	}
}

func TestBindingsForScope(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	for _, b := range reg.BindingsForScope("menu") {
		if !scopeMatch("menu", b.Scopes) {
			t.Fatalf("binding %q leaked into menu scope", b.Action)
		}
	}
	for _, b := range reg.BindingsForScope("edit") {
		if b.Action == "quit" {
			t.Fatal("quit must not be reachable while editing")
		}
	}
}
