package workspace

// Visibility is the independent hidden/shown override per pane. It never
// touches size state or row heights; unhiding restores whatever size the
// layout machine currently dictates.
type Visibility struct {
	reg    *Registry
	layout *Layout
	r      Renderer
}

func NewVisibility(reg *Registry, layout *Layout, r Renderer) *Visibility {
	if r == nil {
		r = NopRenderer{}
	}
	return &Visibility{reg: reg, layout: layout, r: r}
}

func (v *Visibility) Hide(id PaneID) {
	p, ok := v.reg.Get(id)
	if !ok || p.hidden {
		return
	}
	p.hidden = true
	v.r.SetVisible(id, v.layout.Visible(id))
}

func (v *Visibility) Unhide(id PaneID) {
	p, ok := v.reg.Get(id)
	if !ok || !p.hidden {
		return
	}
	p.hidden = false
	v.r.SetVisible(id, v.layout.Visible(id))
}

// HideAllChildren hides every direct child of the root; the root itself is
// untouched.
func (v *Visibility) HideAllChildren() {
	for _, p := range v.reg.Children() {
		v.Hide(p.ID)
	}
}

// ShowAllChildren clears the hidden flag on every direct child of the root.
func (v *Visibility) ShowAllChildren() {
	for _, p := range v.reg.Children() {
		v.Unhide(p.ID)
	}
}
