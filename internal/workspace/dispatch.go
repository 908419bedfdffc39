package workspace

// Action is the symbolic command surface; the key mapping lives in the TUI
// configuration, not here.
type Action string

const (
	ActionFocusNext      Action = "focus-next"
	ActionFocusPrevious  Action = "focus-previous"
	ActionSend           Action = "send"
	ActionEnterEditMode  Action = "enter-edit-mode"
	ActionExitEditMode   Action = "exit-edit-mode"
	ActionClearContent   Action = "clear-content"
	ActionSaveContent    Action = "save-content"
	ActionToggleMaximize Action = "toggle-maximize"
	ActionToggleMinimize Action = "toggle-minimize"
	ActionIncreaseSize   Action = "increase-size"
	ActionDecreaseSize   Action = "decrease-size"
	ActionHideAll        Action = "hide-all"
	ActionShowAll        Action = "show-all"
	ActionResetLayout    Action = "reset-layout"
)

// Effect tells the caller about work the core cannot finish itself (sending
// to a provider, persisting content). The state transition has already
// happened by the time the effect is reported.
type Effect int

const (
	EffectNone Effect = iota
	EffectSend
	EffectSave
	EffectCleared
)

// Result of dispatching one input event. Consumed is set exactly once per
// event; an unconsumed event should be passed through to the Edit-mode
// inner surface.
type Result struct {
	Consumed bool
	Effect   Effect
	Target   PaneID
}

// Dispatcher routes one action at a time against the current focus owner.
// Reserved actions (focus movement, send) are resolved first regardless of
// mode; everything else goes through the owner's mode handler.
type Dispatcher struct {
	ws *Workspace
}

func (d *Dispatcher) Dispatch(action Action) Result {
	ws := d.ws

	// reserved actions win over mode routing
	switch action {
	case ActionFocusNext:
		ws.focus.Next()
		return Result{Consumed: true, Target: ws.focus.Owner()}
	case ActionFocusPrevious:
		ws.focus.Previous()
		return Result{Consumed: true, Target: ws.focus.Owner()}
	case ActionSend:
		return Result{Consumed: true, Effect: EffectSend}
	}

	owner := ws.focus.Owner()
	if owner == "" {
		return Result{}
	}

	if ws.modes.Of(owner) == ModeEdit {
		// Edit mode passes keys into the inner surface; the explicit exit
		// action is the only pane-level command honored.
		if action == ActionExitEditMode {
			ws.modes.ExitEdit(owner)
			return Result{Consumed: true, Target: owner}
		}
		return Result{}
	}

	switch action {
	case ActionEnterEditMode:
		if ws.modes.EnterEdit(owner) {
			return Result{Consumed: true, Target: owner}
		}
		return Result{Consumed: true}
	case ActionExitEditMode:
		// already in command mode
		return Result{Consumed: true}
	case ActionClearContent:
		ws.SetContent(owner, "")
		return Result{Consumed: true, Effect: EffectCleared, Target: owner}
	case ActionSaveContent:
		return Result{Consumed: true, Effect: EffectSave, Target: owner}
	case ActionToggleMaximize:
		ws.layout.ToggleMaximize(owner)
		return Result{Consumed: true, Target: owner}
	case ActionToggleMinimize:
		ws.layout.ToggleMinimize(owner)
		return Result{Consumed: true, Target: owner}
	case ActionIncreaseSize:
		ws.layout.IncreaseSize(owner)
		return Result{Consumed: true, Target: owner}
	case ActionDecreaseSize:
		ws.layout.DecreaseSize(owner)
		return Result{Consumed: true, Target: owner}
	case ActionHideAll:
		ws.visibility.HideAllChildren()
		return Result{Consumed: true}
	case ActionShowAll:
		ws.visibility.ShowAllChildren()
		return Result{Consumed: true}
	case ActionResetLayout:
		ws.layout.ResetLayout()
		return Result{Consumed: true}
	}
	return Result{}
}
