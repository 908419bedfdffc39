package workspace

// Workspace composes the registry, focus, mode, layout and visibility
// machines plus the per-pane content buffers. All mutation goes through it,
// synchronously, on the event-loop goroutine.
type Workspace struct {
	reg        *Registry
	focus      *Focus
	modes      *Modes
	layout     *Layout
	visibility *Visibility
	dispatcher *Dispatcher

	content map[PaneID]string
}

func New(r Renderer) *Workspace {
	if r == nil {
		r = NopRenderer{}
	}
	reg := NewRegistry()
	focus := NewFocus(reg, r)
	layout := NewLayout(reg, r)
	ws := &Workspace{
		reg:        reg,
		focus:      focus,
		modes:      NewModes(reg, focus, r),
		layout:     layout,
		visibility: NewVisibility(reg, layout, r),
		content:    map[PaneID]string{},
	}
	ws.dispatcher = &Dispatcher{ws: ws}
	return ws
}

// Register adds a pane, optionally with extra owned surface ids.
func (ws *Workspace) Register(p Pane, surfaces ...string) (*Pane, error) {
	pane, err := ws.reg.Register(p, surfaces...)
	if err != nil {
		return nil, err
	}
	ws.content[p.ID] = ""
	return pane, nil
}

func (ws *Workspace) Registry() *Registry     { return ws.reg }
func (ws *Workspace) Focus() *Focus           { return ws.focus }
func (ws *Workspace) Modes() *Modes           { return ws.modes }
func (ws *Workspace) Layout() *Layout         { return ws.layout }
func (ws *Workspace) Visibility() *Visibility { return ws.visibility }

// Dispatch routes one input event. See Dispatcher.
func (ws *Workspace) Dispatch(action Action) Result {
	return ws.dispatcher.Dispatch(action)
}

// Content returns a pane's content buffer; unregistered ids read empty.
func (ws *Workspace) Content(id PaneID) string {
	return ws.content[id]
}

// SetContent replaces a pane's content buffer. No-op for unregistered ids.
func (ws *Workspace) SetContent(id PaneID, text string) {
	if _, ok := ws.reg.Get(id); !ok {
		return
	}
	ws.content[id] = text
}

// AppendContent appends a streamed increment to a pane's content buffer.
func (ws *Workspace) AppendContent(id PaneID, chunk string) {
	if _, ok := ws.reg.Get(id); !ok {
		return
	}
	ws.content[id] += chunk
}
