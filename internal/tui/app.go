// Package tui is the terminal front end: a fixed grid of panes over the
// workspace state machines, wired to the LLM client, the content store and
// the conversation history.
package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/promptdeck/internal/config"
	"github.com/jask/promptdeck/internal/content"
	"github.com/jask/promptdeck/internal/conversation"
	"github.com/jask/promptdeck/internal/llm"
	"github.com/jask/promptdeck/internal/workspace"
)

const (
	paneRoot         workspace.PaneID = "root"
	paneUserPrompt   workspace.PaneID = "user-prompt"
	paneSystemPrompt workspace.PaneID = "system-prompt"
	paneContext      workspace.PaneID = "context"
	paneModelSelect  workspace.PaneID = "model-select"
	paneResponse     workspace.PaneID = "response"
)

// storeNames maps editable panes to their content store entries.
var storeNames = map[workspace.PaneID]string{
	paneUserPrompt:   "user_prompt",
	paneSystemPrompt: "system_prompt",
	paneContext:      "context",
}

const selectedModelEntry = "selected_model"

type overlay int

const (
	overlayNone overlay = iota
	overlayHelp
	overlayMenu
)

// App ties the workspace, providers and storage into one bubbletea model.
type App struct {
	ctx     context.Context
	cfg     config.Config
	ws      *workspace.Workspace
	keys    *KeyRegistry
	client  *llm.Client
	history *conversation.History
	store   *content.Store

	areas map[workspace.PaneID]*textarea.Model
	resp  viewport.Model

	models        []llm.ModelConfig
	modelCursor   int
	selectedModel string
	searching     bool
	searchQuery   string

	streaming bool
	sending   bool
	sink      *workspace.Sink

	// stream completion needs both the producer outcome and the drained
	// sink; the two messages race, so each sets its flag and finishStream
	// settles once both are in.
	streamResult  bool
	streamDrained bool
	streamErr     error

	overlay    overlay
	menuCursor int

	status    string
	statusErr bool
	width     int
	height    int
}

func New(ctx context.Context, cfg config.Config, client *llm.Client, history *conversation.History, store *content.Store) *App {
	a := &App{
		ctx:       ctx,
		cfg:       cfg,
		ws:        workspace.New(nil),
		keys:      NewKeyRegistry(ApplyActionKeybindings(DefaultKeyBindings(), cfg.Keys)),
		client:    client,
		history:   history,
		store:     store,
		areas:     map[workspace.PaneID]*textarea.Model{},
		resp:      viewport.New(0, 0),
		models:    llm.Models(),
		streaming: cfg.LLM.Streaming,
	}
	a.registerPanes()
	a.loadContent()
	a.loadSelectedModel()
	a.ws.Focus().SetSurface(string(paneUserPrompt))
	return a
}

func (a *App) registerPanes() {
	panes := []struct {
		pane  workspace.Pane
		inner string
	}{
		{workspace.Pane{ID: paneRoot, Title: "Root", Kind: workspace.KindRoot, Row: -1}, ""},
		{workspace.Pane{ID: paneUserPrompt, Title: "User Prompt", Kind: workspace.KindEditable, Row: 0}, "user-prompt-input"},
		{workspace.Pane{ID: paneSystemPrompt, Title: "System Prompt", Kind: workspace.KindEditable, Row: 0}, "system-prompt-input"},
		{workspace.Pane{ID: paneContext, Title: "Context", Kind: workspace.KindEditable, Row: 1}, "context-input"},
		{workspace.Pane{ID: paneModelSelect, Title: "LLM Models", Kind: workspace.KindSelector, Row: 1}, ""},
		{workspace.Pane{ID: paneResponse, Title: "Response", Kind: workspace.KindOutput, Row: 2}, ""},
	}
	for _, p := range panes {
		if p.inner != "" {
			_, _ = a.ws.Register(p.pane, p.inner)
			a.ws.Modes().BindInnerSurface(p.pane.ID, p.inner)
			ta := textarea.New()
			ta.ShowLineNumbers = false
			ta.Prompt = ""
			a.areas[p.pane.ID] = &ta
		} else {
			_, _ = a.ws.Register(p.pane)
		}
	}
}

func (a *App) loadContent() {
	if a.store == nil {
		return
	}
	for id, name := range storeNames {
		text, err := a.store.Read(name)
		if err != nil {
			a.status = "error: " + err.Error()
			a.statusErr = true
			continue
		}
		a.ws.SetContent(id, text)
		a.areas[id].SetValue(text)
	}
}

func (a *App) loadSelectedModel() {
	model := a.cfg.LLM.DefaultModel
	if a.store != nil {
		if saved, err := a.store.Read(selectedModelEntry); err == nil && strings.TrimSpace(saved) != "" {
			model = strings.TrimSpace(saved)
		}
	}
	if a.client != nil {
		if err := a.client.SetModel(model); err != nil {
			a.status = "model unavailable: " + model
			a.statusErr = true
			return
		}
	}
	a.selectedModel = model
	for i, m := range a.models {
		if m.Name == model {
			a.modelCursor = i
		}
	}
}

func (a *App) Init() tea.Cmd {
	return textarea.Blink
}

// Workspace exposes the state machines, used by tests.
func (a *App) Workspace() *workspace.Workspace { return a.ws }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.syncSizes()
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(m)

	case chunkMsg:
		a.ws.AppendContent(paneResponse, string(m))
		a.resp.SetContent(a.ws.Content(paneResponse))
		a.resp.GotoBottom()
		return a, listenForChunk(a.sink)

	case streamResultMsg:
		a.streamResult = true
		a.streamErr = m.err
		return a, a.finishStream()

	case streamDoneMsg:
		a.streamDrained = true
		return a, a.finishStream()

	case responseMsg:
		a.sending = false
		a.ws.SetContent(paneResponse, string(m))
		a.resp.SetContent(string(m))
		a.resp.GotoBottom()
		a.setStatus("Complete", false)
		return a, a.saveHistoryCmd(string(m))

	case editorFinishedMsg:
		if m.err != nil {
			a.setStatus("editor: "+m.err.Error(), true)
			return a, nil
		}
		id := workspace.PaneID(m.pane)
		a.ws.SetContent(id, m.content)
		if ta, ok := a.areas[id]; ok {
			ta.SetValue(m.content)
		}
		a.setStatus("Editor changes applied", false)
		return a, a.saveContentCmd(id)

	case historySavedMsg:
		return a, nil

	case exportDoneMsg:
		a.setStatus("Exported to "+string(m), false)
		return a, nil

	case statusMsg:
		a.setStatus(string(m), false)
		return a, nil

	case errMsg:
		a.sending = false
		a.setStatus("error: "+m.Error(), true)
		return a, nil
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.overlay {
	case overlayHelp:
		if a.keys.IsAction(msg, "close", "help") {
			a.overlay = overlayNone
		}
		return a, nil
	case overlayMenu:
		return a.handleMenuKey(msg)
	}

	owner := a.ws.Focus().Owner()
	if a.searching && owner == paneModelSelect {
		return a.handleSearchKey(msg)
	}

	scope := "command"
	if a.ws.Modes().Of(owner) == workspace.ModeEdit {
		scope = "edit"
	}

	switch action := a.keys.ActionFor(msg, scope); action {
	case "quit":
		return a, tea.Quit
	case "show-help":
		a.overlay = overlayHelp
		return a, nil
	case "show-menu":
		a.overlay = overlayMenu
		a.menuCursor = 0
		return a, nil
	case "focus-user-prompt":
		a.focusPane(paneUserPrompt)
		return a, nil
	case "focus-system-prompt":
		a.focusPane(paneSystemPrompt)
		return a, nil
	case "focus-context":
		a.focusPane(paneContext)
		return a, nil
	case "focus-model-select":
		a.focusPane(paneModelSelect)
		return a, nil
	case "focus-response":
		a.focusPane(paneResponse)
		return a, nil
	case "send":
		return a, a.sendCmd()
	case "open-editor":
		return a.openEditor(owner)
	case "save-content":
		res := a.ws.Dispatch(workspace.ActionSaveContent)
		if res.Effect == workspace.EffectSave {
			return a, a.saveContentCmd(res.Target)
		}
		return a, nil
	case "toggle-streaming":
		a.streaming = !a.streaming
		a.cfg.LLM.Streaming = a.streaming
		if a.streaming {
			a.setStatus("Streaming enabled", false)
		} else {
			a.setStatus("Streaming disabled", false)
		}
		cfg := a.cfg
		return a, func() tea.Msg {
			if err := config.Save(cfg); err != nil {
				return errMsg{err}
			}
			return nil
		}
	case "export-history":
		return a, a.exportHistoryCmd()
	case "import-history":
		return a, a.importHistoryCmd()
	case "cursor-down":
		a.moveCursor(owner, 1)
		return a, nil
	case "cursor-up":
		a.moveCursor(owner, -1)
		return a, nil
	case "select-model":
		if owner == paneModelSelect {
			return a, a.selectModelCmd()
		}
		return a, nil
	case "search-models":
		if owner == paneModelSelect {
			a.searching = true
			a.searchQuery = ""
		}
		return a, nil
	case "":
		// unbound in this scope
	default:
		return a.dispatchWorkspace(action)
	}

	if scope == "edit" {
		return a, a.forwardToArea(owner, msg)
	}
	return a, nil
}

// dispatchWorkspace routes layout, mode and visibility actions through the
// workspace dispatcher and applies any reported side effects.
func (a *App) dispatchWorkspace(action string) (tea.Model, tea.Cmd) {
	res := a.ws.Dispatch(workspace.Action(action))
	if !res.Consumed {
		return a, nil
	}
	a.syncSizes()
	switch res.Effect {
	case workspace.EffectCleared:
		if ta, ok := a.areas[res.Target]; ok {
			ta.SetValue("")
		}
		if res.Target == paneResponse {
			a.resp.SetContent("")
		}
		a.setStatus("Cleared", false)
		if _, ok := storeNames[res.Target]; ok {
			return a, a.saveContentCmd(res.Target)
		}
	case workspace.EffectSend:
		return a, a.sendCmd()
	case workspace.EffectSave:
		return a, a.saveContentCmd(res.Target)
	}
	if ta, ok := a.areas[a.ws.Focus().Owner()]; ok {
		if a.ws.Modes().Of(a.ws.Focus().Owner()) == workspace.ModeEdit {
			return a, ta.Focus()
		}
		ta.Blur()
	}
	return a, nil
}

func (a *App) forwardToArea(owner workspace.PaneID, msg tea.KeyMsg) tea.Cmd {
	ta, ok := a.areas[owner]
	if !ok {
		return nil
	}
	updated, cmd := ta.Update(msg)
	*ta = updated
	a.ws.SetContent(owner, ta.Value())
	return cmd
}

func (a *App) focusPane(id workspace.PaneID) {
	a.ws.Focus().SetSurface(string(id))
}

func (a *App) moveCursor(owner workspace.PaneID, delta int) {
	switch owner {
	case paneModelSelect:
		list := a.filteredModels()
		if len(list) == 0 {
			return
		}
		a.modelCursor += delta
		if a.modelCursor < 0 {
			a.modelCursor = 0
		}
		if a.modelCursor >= len(list) {
			a.modelCursor = len(list) - 1
		}
	case paneResponse:
		if delta > 0 {
			a.resp.ScrollDown(1)
		} else {
			a.resp.ScrollUp(1)
		}
	}
}

func (a *App) filteredModels() []llm.ModelConfig {
	if a.searchQuery == "" {
		return a.models
	}
	return llm.Search(a.searchQuery)
}

func (a *App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.searching = false
		a.searchQuery = ""
		a.modelCursor = 0
	case "enter":
		a.searching = false
	case "backspace":
		if len(a.searchQuery) > 0 {
			a.searchQuery = a.searchQuery[:len(a.searchQuery)-1]
			a.modelCursor = 0
		}
	case "up":
		a.moveCursor(paneModelSelect, -1)
	case "down":
		a.moveCursor(paneModelSelect, 1)
	default:
		if len(msg.Runes) > 0 {
			a.searchQuery += string(msg.Runes)
			a.modelCursor = 0
		}
	}
	return a, nil
}

func (a *App) selectModelCmd() tea.Cmd {
	list := a.filteredModels()
	if a.modelCursor < 0 || a.modelCursor >= len(list) {
		return nil
	}
	model := list[a.modelCursor].Name
	if a.client != nil {
		if err := a.client.SetModel(model); err != nil {
			a.setStatus("error: "+err.Error(), true)
			return nil
		}
	}
	a.selectedModel = model
	a.setStatus("Model: "+model, false)
	store := a.store
	return func() tea.Msg {
		if store == nil {
			return nil
		}
		if err := store.Write(selectedModelEntry, model); err != nil {
			return errMsg{err}
		}
		return nil
	}
}

// sendCmd kicks off one exchange against the selected model. The state
// transition (clearing the response, marking sending) happens here on the
// event loop; only the network call runs in the background.
func (a *App) sendCmd() tea.Cmd {
	if a.sending {
		a.setStatus("A request is already running", true)
		return nil
	}
	if a.selectedModel == "" {
		a.setStatus("Select a model first (press 4)", true)
		return nil
	}
	userPrompt := a.ws.Content(paneUserPrompt)
	if strings.TrimSpace(userPrompt) == "" {
		a.setStatus("User prompt is empty", true)
		return nil
	}
	req := llm.Request{
		UserPrompt:   userPrompt,
		SystemPrompt: a.ws.Content(paneSystemPrompt),
		Context:      a.ws.Content(paneContext),
	}
	a.ws.SetContent(paneResponse, "")
	a.resp.SetContent("")
	a.sending = true

	if a.streaming {
		a.setStatus("Streaming...", false)
		a.sink = workspace.NewSink(paneResponse, 64)
		a.streamResult = false
		a.streamDrained = false
		a.streamErr = nil
		sink := a.sink
		client := a.client
		ctx := a.ctx
		produce := func() tea.Msg {
			err := client.Stream(ctx, req, func(chunk string) {
				sink.Push(chunk)
			})
			sink.Close()
			return streamResultMsg{err: err}
		}
		return tea.Batch(produce, listenForChunk(sink))
	}

	a.setStatus("Waiting for response...", false)
	client := a.client
	ctx := a.ctx
	return func() tea.Msg {
		text, err := client.Send(ctx, req)
		if err != nil {
			return errMsg{err}
		}
		return responseMsg(text)
	}
}

// finishStream settles a streaming exchange once the producer outcome and
// the drained sink have both reported. A failed stream surfaces the error
// and is not recorded in history.
func (a *App) finishStream() tea.Cmd {
	if !a.streamResult || !a.streamDrained {
		return nil
	}
	a.sending = false
	a.sink = nil
	if a.streamErr != nil {
		a.setStatus("error: "+a.streamErr.Error(), true)
		return nil
	}
	a.setStatus("Complete", false)
	return a.saveHistoryCmd(a.ws.Content(paneResponse))
}

// listenForChunk drains one increment off the sink; the resulting message
// re-arms the listener, so appends stay on the event loop.
func listenForChunk(s *workspace.Sink) tea.Cmd {
	return func() tea.Msg {
		chunk, ok := <-s.Chunks()
		if !ok {
			return streamDoneMsg{}
		}
		return chunkMsg(chunk)
	}
}

func (a *App) saveHistoryCmd(response string) tea.Cmd {
	if a.history == nil {
		return nil
	}
	h := a.history
	ctx := a.ctx
	model := a.selectedModel
	user := a.ws.Content(paneUserPrompt)
	system := a.ws.Content(paneSystemPrompt)
	contextText := a.ws.Content(paneContext)
	return func() tea.Msg {
		if err := h.AddTurn(ctx, model, user, system, contextText, response); err != nil {
			return errMsg{err}
		}
		return historySavedMsg{}
	}
}

func (a *App) saveContentCmd(id workspace.PaneID) tea.Cmd {
	name, ok := storeNames[id]
	if !ok || a.store == nil {
		a.setStatus("No editable pane focused", true)
		return nil
	}
	store := a.store
	text := a.ws.Content(id)
	title := id
	return func() tea.Msg {
		if err := store.Write(name, text); err != nil {
			return errMsg{err}
		}
		return statusMsg(fmt.Sprintf("%s saved", title))
	}
}

func (a *App) exportHistoryCmd() tea.Cmd {
	if a.history == nil {
		a.setStatus("History not configured", true)
		return nil
	}
	h := a.history
	ctx := a.ctx
	dir := a.cfg.Storage.ExportDir
	return func() tea.Msg {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errMsg{err}
		}
		stamp := time.Now().Format("20060102_150405")
		path := filepath.Join(dir, fmt.Sprintf("conversation_%s.json", stamp))
		if err := h.ExportJSON(ctx, path); err != nil {
			return errMsg{err}
		}
		if err := h.ExportText(ctx, filepath.Join(dir, fmt.Sprintf("conversation_%s.txt", stamp))); err != nil {
			return errMsg{err}
		}
		return exportDoneMsg(path)
	}
}

func (a *App) importHistoryCmd() tea.Cmd {
	if a.history == nil {
		a.setStatus("History not configured", true)
		return nil
	}
	h := a.history
	ctx := a.ctx
	path := filepath.Join(a.cfg.Storage.ExportDir, "import.json")
	return func() tea.Msg {
		n, err := h.ImportJSON(ctx, path)
		if err != nil {
			return errMsg{err}
		}
		return statusMsg(fmt.Sprintf("Imported %d turns from %s", n, path))
	}
}

func (a *App) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	panes := a.ws.Registry().Children()
	switch a.keys.ActionFor(msg, "menu") {
	case "close":
		a.overlay = overlayNone
	case "cursor-down":
		if a.menuCursor < len(panes)-1 {
			a.menuCursor++
		}
	case "cursor-up":
		if a.menuCursor > 0 {
			a.menuCursor--
		}
	case "menu-focus":
		if a.menuCursor < len(panes) {
			a.focusPane(panes[a.menuCursor].ID)
		}
		a.overlay = overlayNone
	case "menu-hide":
		if a.menuCursor < len(panes) {
			a.ws.Visibility().Hide(panes[a.menuCursor].ID)
		}
	case "menu-unhide":
		if a.menuCursor < len(panes) {
			a.ws.Visibility().Unhide(panes[a.menuCursor].ID)
		}
	case "menu-hide-all":
		a.ws.Visibility().HideAllChildren()
	case "menu-show-all":
		a.ws.Visibility().ShowAllChildren()
	case "menu-reset":
		a.ws.Layout().ResetLayout()
	}
	a.syncSizes()
	return a, nil
}

func (a *App) openEditor(owner workspace.PaneID) (tea.Model, tea.Cmd) {
	if _, ok := storeNames[owner]; !ok {
		a.setStatus("No editable pane focused", true)
		return a, nil
	}
	return a, a.editorCmd(owner)
}

func (a *App) setStatus(text string, isErr bool) {
	a.status = text
	a.statusErr = isErr
}
