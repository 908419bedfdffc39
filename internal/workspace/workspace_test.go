package workspace

import "testing"

const (
	rootID     PaneID = "root"
	userID     PaneID = "user-prompt"
	systemID   PaneID = "system-prompt"
	contextID  PaneID = "context"
	selectorID PaneID = "model-select"
	responseID PaneID = "response"
)

// newTestWorkspace builds the standard grid: two editable panes in row 0,
// an editable and the selector in row 1, the response pane alone in row 2.
func newTestWorkspace(t *testing.T, r Renderer) *Workspace {
	t.Helper()
	ws := New(r)
	panes := []struct {
		pane  Pane
		inner string
	}{
		{Pane{ID: rootID, Title: "Root", Kind: KindRoot, Row: -1}, ""},
		{Pane{ID: userID, Title: "User Prompt", Kind: KindEditable, Row: 0}, "user-prompt-input"},
		{Pane{ID: systemID, Title: "System Prompt", Kind: KindEditable, Row: 0}, "system-prompt-input"},
		{Pane{ID: contextID, Title: "Context", Kind: KindEditable, Row: 1}, "context-input"},
		{Pane{ID: selectorID, Title: "Models", Kind: KindSelector, Row: 1}, ""},
		{Pane{ID: responseID, Title: "Response", Kind: KindOutput, Row: 2}, ""},
	}
	for _, p := range panes {
		var err error
		if p.inner != "" {
			_, err = ws.Register(p.pane, p.inner)
		} else {
			_, err = ws.Register(p.pane)
		}
		if err != nil {
			t.Fatalf("register %s: %v", p.pane.ID, err)
		}
		if p.inner != "" {
			ws.Modes().BindInnerSurface(p.pane.ID, p.inner)
		}
	}
	return ws
}

func maximizedCount(ws *Workspace) int {
	n := 0
	for _, p := range ws.Registry().All() {
		if p.State() == StateMaximized {
			n++
		}
	}
	return n
}

func TestRegisterDuplicateIDFails(t *testing.T) {
	ws := New(nil)
	if _, err := ws.Register(Pane{ID: "a", Kind: KindOutput, Row: 0}); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := ws.Register(Pane{ID: "a", Kind: KindEditable, Row: 1})
	if err == nil {
		t.Fatalf("expected duplicate id error")
	}
}

func TestContentAccessorsIgnoreUnknownIDs(t *testing.T) {
	ws := newTestWorkspace(t, nil)
	ws.SetContent("nope", "x")
	if got := ws.Content("nope"); got != "" {
		t.Fatalf("unregistered content = %q, want empty", got)
	}
	ws.SetContent(userID, "hello")
	ws.AppendContent(userID, " world")
	if got := ws.Content(userID); got != "hello world" {
		t.Fatalf("content = %q", got)
	}
}

func TestSinkDrainAppendsToBoundPaneOnly(t *testing.T) {
	ws := newTestWorkspace(t, nil)
	sink := NewSink(responseID, 8)
	go func() {
		sink.Push("chunk one ")
		sink.Push("chunk two")
		sink.Close()
	}()
	for chunk := range sink.Chunks() {
		ws.AppendContent(sink.Pane(), chunk)
	}
	if got := ws.Content(responseID); got != "chunk one chunk two" {
		t.Fatalf("response content = %q", got)
	}
	if got := ws.Content(userID); got != "" {
		t.Fatalf("sink leaked into other pane: %q", got)
	}
}

func TestStreamingInterleavesWithLayoutChanges(t *testing.T) {
	ws := newTestWorkspace(t, nil)
	sink := NewSink(responseID, 4)
	go func() {
		sink.Push("alpha ")
		sink.Push("beta")
		sink.Close()
	}()
	ws.Focus().SetSurface(string(responseID))
	ws.Dispatch(ActionToggleMinimize)
	for chunk := range sink.Chunks() {
		ws.AppendContent(sink.Pane(), chunk)
	}
	p, _ := ws.Registry().Get(responseID)
	if p.State() != StateMinimized {
		t.Fatalf("layout state clobbered by streaming: %v", p.State())
	}
	if got := ws.Content(responseID); got != "alpha beta" {
		t.Fatalf("content = %q", got)
	}
}
