package workspace

// Renderer receives declarative render hints as transitions happen. The view
// layer may implement it, or ignore it entirely and pull the same facts
// through the Workspace query methods.
type Renderer interface {
	SetVisible(id PaneID, visible bool)
	SetRowHeight(row int, level HeightLevel)
	SetMinimized(id PaneID, minimized bool)
	SetFocusDecoration(id PaneID, focused bool)
	SetModeIndicator(id PaneID, mode Mode)
}

// NopRenderer discards all hints.
type NopRenderer struct{}

func (NopRenderer) SetVisible(PaneID, bool)         {}
func (NopRenderer) SetRowHeight(int, HeightLevel)   {}
func (NopRenderer) SetMinimized(PaneID, bool)       {}
func (NopRenderer) SetFocusDecoration(PaneID, bool) {}
func (NopRenderer) SetModeIndicator(PaneID, Mode)   {}
