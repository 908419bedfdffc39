package workspace

// Modes is the per-pane Command/Edit state machine. Only Editable panes have
// a mode; every request against another kind is a no-op. Entering Edit moves
// real focus into the pane's inner text surface, exiting returns it to the
// pane container so pane-level commands receive subsequent keys. Blur alone
// never exits Edit mode.
type Modes struct {
	reg   *Registry
	focus *Focus
	r     Renderer

	// inner surface id per editable pane, registered at construction
	inner map[PaneID]string
}

func NewModes(reg *Registry, focus *Focus, r Renderer) *Modes {
	if r == nil {
		r = NopRenderer{}
	}
	return &Modes{reg: reg, focus: focus, r: r, inner: map[PaneID]string{}}
}

// BindInnerSurface associates an editable pane with its inner text surface.
func (m *Modes) BindInnerSurface(id PaneID, surface string) {
	if p, ok := m.reg.Get(id); ok && p.Kind == KindEditable {
		m.inner[id] = surface
	}
}

// InnerSurface returns the inner text surface id for an editable pane.
func (m *Modes) InnerSurface(id PaneID) (string, bool) {
	s, ok := m.inner[id]
	return s, ok
}

// Of reports the current mode. Non-editable panes are always Command.
func (m *Modes) Of(id PaneID) Mode {
	if p, ok := m.reg.Get(id); ok && p.Kind == KindEditable {
		return p.mode
	}
	return ModeCommand
}

// EnterEdit switches an editable pane to Edit mode and moves real focus to
// its inner surface. No-op for other kinds or when already editing.
func (m *Modes) EnterEdit(id PaneID) bool {
	p, ok := m.reg.Get(id)
	if !ok || p.Kind != KindEditable || p.mode == ModeEdit {
		return false
	}
	p.mode = ModeEdit
	if s, ok := m.inner[id]; ok {
		m.focus.SetSurface(s)
	}
	m.r.SetModeIndicator(id, ModeEdit)
	return true
}

// ExitEdit returns an editable pane to Command mode and moves real focus
// back to the pane container.
func (m *Modes) ExitEdit(id PaneID) bool {
	p, ok := m.reg.Get(id)
	if !ok || p.Kind != KindEditable || p.mode == ModeCommand {
		return false
	}
	p.mode = ModeCommand
	m.focus.SetSurface(string(id))
	m.r.SetModeIndicator(id, ModeCommand)
	return true
}

// ObserveSurface converges the pointer path with the explicit key path: when
// real focus lands directly on an inner text surface, its pane enters Edit
// mode without a separate enter-edit action.
func (m *Modes) ObserveSurface(surface string) {
	for id, s := range m.inner {
		if s != surface {
			continue
		}
		if p, ok := m.reg.Get(id); ok && p.mode == ModeCommand {
			p.mode = ModeEdit
			m.r.SetModeIndicator(id, ModeEdit)
		}
		return
	}
}
