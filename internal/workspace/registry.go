package workspace

import "fmt"

// Registry is the canonical ordered set of panes. Panes are registered once
// at construction and never removed. Besides the panes themselves it keeps
// the row membership and the surface-ownership map used for focus
// resolution: every focusable surface id (the pane container itself plus any
// inner surfaces such as an editable pane's text area) maps to the pane that
// owns it, so resolving the focus owner is a lookup, not a tree walk.
type Registry struct {
	order  []PaneID
	panes  map[PaneID]*Pane
	rows   map[int][]PaneID
	owners map[string]PaneID
}

func NewRegistry() *Registry {
	return &Registry{
		panes:  map[PaneID]*Pane{},
		rows:   map[int][]PaneID{},
		owners: map[string]PaneID{},
	}
}

// Register adds a pane. Extra surface ids beyond the pane's own id may be
// supplied for inner surfaces. Duplicate pane ids fail with ErrDuplicateID.
func (r *Registry) Register(p Pane, surfaces ...string) (*Pane, error) {
	if p.ID == "" {
		return nil, fmt.Errorf("workspace: empty pane id")
	}
	if _, exists := r.panes[p.ID]; exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateID, p.ID)
	}
	pane := p
	r.panes[p.ID] = &pane
	r.order = append(r.order, p.ID)
	if p.Kind != KindRoot && p.Row >= 0 {
		r.rows[p.Row] = append(r.rows[p.Row], p.ID)
	}
	r.owners[string(p.ID)] = p.ID
	for _, s := range surfaces {
		r.owners[s] = p.ID
	}
	return &pane, nil
}

func (r *Registry) Get(id PaneID) (*Pane, bool) {
	p, ok := r.panes[id]
	return p, ok
}

// All returns panes in focus order: root first, then registration order.
func (r *Registry) All() []*Pane {
	out := make([]*Pane, 0, len(r.order))
	for _, id := range r.order {
		if r.panes[id].Kind == KindRoot {
			out = append(out, r.panes[id])
		}
	}
	for _, id := range r.order {
		if r.panes[id].Kind != KindRoot {
			out = append(out, r.panes[id])
		}
	}
	return out
}

// Children returns every non-root pane in registration order.
func (r *Registry) Children() []*Pane {
	out := make([]*Pane, 0, len(r.order))
	for _, id := range r.order {
		if r.panes[id].Kind != KindRoot {
			out = append(out, r.panes[id])
		}
	}
	return out
}

// Row returns the pane ids in a row, in registration order.
func (r *Registry) Row(index int) []PaneID {
	return r.rows[index]
}

// RowCount reports how many rows hold at least one pane.
func (r *Registry) RowCount() int {
	n := 0
	for idx := range r.rows {
		if idx >= n {
			n = idx + 1
		}
	}
	return n
}

// OwnerOf maps a focusable surface id to its owning pane.
func (r *Registry) OwnerOf(surface string) (PaneID, bool) {
	id, ok := r.owners[surface]
	return id, ok
}

func (r *Registry) Len() int { return len(r.order) }
