package workspace

// Layout is the per-pane Normal/Minimized/Maximized state machine plus the
// row-scoped height ladder. It owns the single process-wide maximized pane
// id and enforces that at most one pane holds Maximized.
//
// Hiding caused by maximization is tracked separately from the Visibility
// override: restoring a maximized pane must return exactly to the
// pre-maximize visibility, and a hide-all issued mid-maximize must survive
// the restore.
type Layout struct {
	reg *Registry
	r   Renderer

	maximized      PaneID
	minBeforeMax   bool
	rowHeights     map[int]HeightLevel
	rowHiddenByMax map[int]bool
	hiddenByMax    map[PaneID]bool
}

func NewLayout(reg *Registry, r Renderer) *Layout {
	if r == nil {
		r = NopRenderer{}
	}
	return &Layout{
		reg:            reg,
		r:              r,
		rowHeights:     map[int]HeightLevel{},
		rowHiddenByMax: map[int]bool{},
		hiddenByMax:    map[PaneID]bool{},
	}
}

// MaximizedPane returns the globally maximized pane id, or "" when none.
func (l *Layout) MaximizedPane() PaneID { return l.maximized }

// RowHeight returns the height level of a row, defaulting to 1x.
func (l *Layout) RowHeight(row int) HeightLevel {
	if h, ok := l.rowHeights[row]; ok {
		return h
	}
	return Height1x
}

// Visible composes the visibility override with maximize side effects.
func (l *Layout) Visible(id PaneID) bool {
	p, ok := l.reg.Get(id)
	if !ok {
		return false
	}
	if p.hidden || l.hiddenByMax[id] {
		return false
	}
	if p.Kind != KindRoot && l.rowHiddenByMax[p.Row] {
		return false
	}
	return true
}

// ToggleMaximize restores the pane if it is the current maximized pane,
// otherwise maximizes it, restoring any previously maximized pane first.
// Applying it twice with no intervening event is a global no-op.
func (l *Layout) ToggleMaximize(id PaneID) {
	p, ok := l.reg.Get(id)
	if !ok || p.Kind == KindRoot {
		return
	}
	switch {
	case l.maximized == id:
		l.restoreFromMax()
	case l.maximized != "":
		l.restoreFromMax()
		l.maximize(p)
	default:
		l.maximize(p)
	}
}

// ToggleMinimize flips Normal and Minimized. No-op while the pane is the
// globally maximized pane.
func (l *Layout) ToggleMinimize(id PaneID) {
	p, ok := l.reg.Get(id)
	if !ok || p.Kind == KindRoot || l.maximized == id {
		return
	}
	if p.state == StateMinimized {
		p.state = StateNormal
		l.r.SetMinimized(id, false)
	} else {
		p.state = StateMinimized
		l.r.SetMinimized(id, true)
	}
}

// IncreaseSize walks the ladder Minimized -> Normal(1x) -> 2x -> 3x ->
// Maximized; from Maximized it wraps to Minimized (full restore, then
// minimize). The 1x/2x/3x rungs mutate the row height, not the pane.
func (l *Layout) IncreaseSize(id PaneID) {
	p, ok := l.reg.Get(id)
	if !ok || p.Kind == KindRoot {
		return
	}
	switch {
	case l.maximized == id:
		l.restoreFromMax()
		p.state = StateMinimized
		l.r.SetMinimized(id, true)
	case p.state == StateMinimized:
		p.state = StateNormal
		l.r.SetMinimized(id, false)
		l.setRowHeight(p.Row, Height1x)
	default:
		switch l.RowHeight(p.Row) {
		case Height1x:
			l.setRowHeight(p.Row, Height2x)
		case Height2x:
			l.setRowHeight(p.Row, Height3x)
		default:
			l.maximize(p)
		}
	}
}

// DecreaseSize walks the inverse ladder; from Minimized it jumps directly
// to Maximized.
func (l *Layout) DecreaseSize(id PaneID) {
	p, ok := l.reg.Get(id)
	if !ok || p.Kind == KindRoot {
		return
	}
	switch {
	case l.maximized == id:
		l.restoreFromMax()
		l.setRowHeight(p.Row, Height3x)
	case p.state == StateMinimized:
		p.state = StateNormal
		l.r.SetMinimized(id, false)
		l.maximize(p)
	default:
		switch l.RowHeight(p.Row) {
		case Height3x:
			l.setRowHeight(p.Row, Height2x)
		case Height2x:
			l.setRowHeight(p.Row, Height1x)
		default:
			p.state = StateMinimized
			l.r.SetMinimized(id, true)
		}
	}
}

// RestoreAll clears the maximized pane, resets every row to 1x and undoes
// maximize side-effect hiding. Pane-level Minimized state is preserved;
// minimize is orthogonal to the maximize/height subsystem.
func (l *Layout) RestoreAll() {
	l.restoreFromMax()
	for row := 0; row < l.reg.RowCount(); row++ {
		l.setRowHeight(row, Height1x)
	}
}

// ResetLayout is the stronger bulk reset: RestoreAll plus forcing every
// pane to Normal and clearing every visibility override.
func (l *Layout) ResetLayout() {
	l.RestoreAll()
	for _, p := range l.reg.All() {
		if p.state != StateNormal {
			p.state = StateNormal
			l.r.SetMinimized(p.ID, false)
		}
		if p.hidden {
			p.hidden = false
			l.r.SetVisible(p.ID, l.Visible(p.ID))
		}
	}
}

func (l *Layout) maximize(p *Pane) {
	for row := 0; row < l.reg.RowCount(); row++ {
		if row == p.Row {
			continue
		}
		l.rowHiddenByMax[row] = true
		for _, sib := range l.reg.Row(row) {
			l.r.SetVisible(sib, l.Visible(sib))
		}
	}
	for _, sib := range l.reg.Row(p.Row) {
		if sib == p.ID {
			continue
		}
		l.hiddenByMax[sib] = true
		l.r.SetVisible(sib, l.Visible(sib))
	}
	l.minBeforeMax = p.state == StateMinimized
	if l.minBeforeMax {
		l.r.SetMinimized(p.ID, false)
	}
	p.state = StateMaximized
	l.maximized = p.ID
}

func (l *Layout) restoreFromMax() {
	if l.maximized == "" {
		return
	}
	id := l.maximized
	l.maximized = ""
	l.rowHiddenByMax = map[int]bool{}
	l.hiddenByMax = map[PaneID]bool{}
	if p, ok := l.reg.Get(id); ok {
		if l.minBeforeMax {
			p.state = StateMinimized
			l.r.SetMinimized(id, true)
		} else {
			p.state = StateNormal
		}
	}
	l.minBeforeMax = false
	for _, p := range l.reg.Children() {
		l.r.SetVisible(p.ID, l.Visible(p.ID))
	}
}

func (l *Layout) setRowHeight(row int, h HeightLevel) {
	if row < 0 {
		return
	}
	if l.RowHeight(row) == h {
		return
	}
	l.rowHeights[row] = h
	l.r.SetRowHeight(row, h)
}
