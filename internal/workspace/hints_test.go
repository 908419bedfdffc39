package workspace

// recordingRenderer captures rendering hints so tests can assert what the
// state machines asked the presentation layer to do.
type recordingRenderer struct {
	visible    map[PaneID]bool
	rowHeights map[int]HeightLevel
	minimized  map[PaneID]bool
	focused    map[PaneID]bool
	modes      map[PaneID]Mode
}

func (r *recordingRenderer) SetVisible(id PaneID, visible bool) {
	if r.visible == nil {
		r.visible = map[PaneID]bool{}
	}
	r.visible[id] = visible
}

func (r *recordingRenderer) SetRowHeight(row int, h HeightLevel) {
	if r.rowHeights == nil {
		r.rowHeights = map[int]HeightLevel{}
	}
	r.rowHeights[row] = h
}

func (r *recordingRenderer) SetMinimized(id PaneID, minimized bool) {
	if r.minimized == nil {
		r.minimized = map[PaneID]bool{}
	}
	r.minimized[id] = minimized
}

func (r *recordingRenderer) SetFocusDecoration(id PaneID, focused bool) {
	if r.focused == nil {
		r.focused = map[PaneID]bool{}
	}
	r.focused[id] = focused
}

func (r *recordingRenderer) SetModeIndicator(id PaneID, m Mode) {
	if r.modes == nil {
		r.modes = map[PaneID]Mode{}
	}
	r.modes[id] = m
}
