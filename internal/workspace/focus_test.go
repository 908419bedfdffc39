package workspace

import "testing"

func TestFocusDefaultsToFirstPane(t *testing.T) {
	ws := newTestWorkspace(t, nil)
	if got := ws.Focus().Owner(); got != rootID {
		t.Fatalf("default owner = %s, want %s", got, rootID)
	}
}

func TestFocusResolveInnerSurfaceToOwner(t *testing.T) {
	ws := newTestWorkspace(t, nil)
	if got := ws.Focus().ResolveOwner("user-prompt-input"); got != userID {
		t.Fatalf("inner surface resolved to %s, want %s", got, userID)
	}
	if got := ws.Focus().ResolveOwner("no-such-surface"); got != rootID {
		t.Fatalf("unknown surface resolved to %s, want %s", got, rootID)
	}
}

func TestFocusNextWrapsAfterFullCycle(t *testing.T) {
	ws := newTestWorkspace(t, nil)
	n := ws.Registry().Len()
	start := ws.Focus().Owner()
	seen := map[PaneID]bool{start: true}
	for i := 0; i < n-1; i++ {
		id := ws.Focus().Next()
		if seen[id] {
			t.Fatalf("pane %s visited twice before the cycle completed", id)
		}
		seen[id] = true
	}
	if got := ws.Focus().Next(); got != start {
		t.Fatalf("after %d steps owner = %s, want wrap to %s", n, got, start)
	}
}

func TestFocusPreviousReversesNext(t *testing.T) {
	ws := newTestWorkspace(t, nil)
	start := ws.Focus().Owner()
	ws.Focus().Next()
	if got := ws.Focus().Previous(); got != start {
		t.Fatalf("previous after next = %s, want %s", got, start)
	}
	// previous from the start wraps to the last pane in focus order
	order := ws.Registry().All()
	last := order[len(order)-1].ID
	if got := ws.Focus().Previous(); got != last {
		t.Fatalf("previous from start = %s, want %s", got, last)
	}
}

func TestHiddenPanesStayFocusable(t *testing.T) {
	ws := newTestWorkspace(t, nil)
	ws.Visibility().Hide(userID)

	ws.Focus().SetSurface(string(rootID))
	if got := ws.Focus().Next(); got != userID {
		t.Fatalf("hidden pane skipped: next = %s, want %s", got, userID)
	}
}

func TestFocusDecorationFollowsOwner(t *testing.T) {
	rec := &recordingRenderer{}
	ws := newTestWorkspace(t, rec)
	ws.Focus().SetSurface(string(userID))
	ws.Focus().SetSurface(string(systemID))

	if rec.focused[userID] {
		t.Fatalf("decoration not cleared from previous owner")
	}
	if !rec.focused[systemID] {
		t.Fatalf("decoration not set on new owner")
	}
}
