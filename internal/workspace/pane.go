// Package workspace holds the layout, focus and input-mode state machines
// for the pane grid. Everything in here runs on the event-loop goroutine;
// the only concurrent entry point is the streaming sink, which hands content
// increments over a channel and never touches layout state.
package workspace

import "errors"

// PaneID is the stable identifier of a pane, fixed at registration.
type PaneID string

// Kind classifies what a pane holds and which operations apply to it.
type Kind int

const (
	KindRoot Kind = iota
	KindEditable
	KindSelector
	KindOutput
)

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindEditable:
		return "editable"
	case KindSelector:
		return "selector"
	case KindOutput:
		return "output"
	}
	return "unknown"
}

// State is the pane-scoped size state. Minimized and Maximized are overrides
// layered on top of the row height level.
type State int

const (
	StateNormal State = iota
	StateMinimized
	StateMaximized
)

func (s State) String() string {
	switch s {
	case StateMinimized:
		return "minimized"
	case StateMaximized:
		return "maximized"
	}
	return "normal"
}

// Mode is the input-routing mode of an Editable pane. Command routes keys to
// pane-level actions, Edit routes them into the inner text surface.
type Mode int

const (
	ModeCommand Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "command"
}

// HeightLevel is the row-scoped height multiplier.
type HeightLevel int

const (
	Height1x HeightLevel = 1
	Height2x HeightLevel = 2
	Height3x HeightLevel = 3
)

// ErrDuplicateID is returned when a pane id is registered twice. This is the
// one fatal registry condition; it surfaces at construction time, never in
// the event loop.
var ErrDuplicateID = errors.New("workspace: duplicate pane id")

// Pane is one addressable content area. Fields other than the identity are
// mutated only through the workspace components.
type Pane struct {
	ID    PaneID
	Title string
	Kind  Kind
	Row   int // -1 for the root container

	state  State
	hidden bool
	mode   Mode
}

// State reports the pane-scoped size state.
func (p *Pane) State() State { return p.state }

// Hidden reports the visibility override flag.
func (p *Pane) Hidden() bool { return p.hidden }

// Mode reports the input mode. Only meaningful for Editable panes; all
// others are permanently in Command mode.
func (p *Pane) Mode() Mode { return p.mode }
