package workspace

// Focus resolves which registered pane logically owns the real input focus
// and computes cyclic next/previous navigation over the focus order (root
// first, then registration order). Hidden panes stay in the cycle: focus and
// visibility are independent.
type Focus struct {
	reg     *Registry
	r       Renderer
	surface string
	owner   PaneID
}

func NewFocus(reg *Registry, r Renderer) *Focus {
	if r == nil {
		r = NopRenderer{}
	}
	return &Focus{reg: reg, r: r}
}

// ResolveOwner maps a real-focus surface id to the owning pane. Unknown
// surfaces (including the empty startup surface) degrade to the first pane
// in focus order; the result is never empty while the registry is non-empty.
func (f *Focus) ResolveOwner(surface string) PaneID {
	if id, ok := f.reg.OwnerOf(surface); ok {
		return id
	}
	order := f.reg.All()
	if len(order) == 0 {
		return ""
	}
	return order[0].ID
}

// Owner is the pane that currently owns focus.
func (f *Focus) Owner() PaneID {
	return f.ResolveOwner(f.surface)
}

// Surface is the real-focus target id last handed to the controller.
func (f *Focus) Surface() string { return f.surface }

// SetSurface records a real-focus transfer (keyboard navigation, or a
// pointer action landing on an inner surface) and moves the focus
// decoration to the new owner.
func (f *Focus) SetSurface(surface string) PaneID {
	prev := f.owner
	f.surface = surface
	f.owner = f.ResolveOwner(surface)
	if prev != f.owner {
		if prev != "" {
			f.r.SetFocusDecoration(prev, false)
		}
		if f.owner != "" {
			f.r.SetFocusDecoration(f.owner, true)
		}
	}
	return f.owner
}

// Next moves focus to the next pane in cyclic order and returns it.
func (f *Focus) Next() PaneID {
	return f.step(1)
}

// Previous moves focus to the previous pane in cyclic order and returns it.
func (f *Focus) Previous() PaneID {
	return f.step(-1)
}

func (f *Focus) step(delta int) PaneID {
	order := f.reg.All()
	n := len(order)
	if n == 0 {
		return ""
	}
	cur := f.Owner()
	idx := 0
	for i, p := range order {
		if p.ID == cur {
			idx = i
			break
		}
	}
	next := order[((idx+delta)%n+n)%n].ID
	return f.SetSurface(string(next))
}
