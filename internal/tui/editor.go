package tui

import (
	"os"
	"os/exec"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/promptdeck/internal/workspace"
)

// editorCmd suspends the TUI, opens the pane content in the configured
// editor, and feeds the result back as an editorFinishedMsg.
func (a *App) editorCmd(pane workspace.PaneID) tea.Cmd {
	editor := a.cfg.UI.Editor
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		editor = "nvim"
	}

	tmp, err := os.CreateTemp("", "promptdeck-*.md")
	if err != nil {
		return func() tea.Msg { return errMsg{err} }
	}
	path := tmp.Name()
	if _, err := tmp.WriteString(a.ws.Content(pane)); err != nil {
		tmp.Close()
		os.Remove(path)
		return func() tea.Msg { return errMsg{err} }
	}
	if err := tmp.Close(); err != nil {
		os.Remove(path)
		return func() tea.Msg { return errMsg{err} }
	}

	c := exec.Command(editor, path)
	return tea.ExecProcess(c, func(err error) tea.Msg {
		defer os.Remove(path)
		if err != nil {
			return editorFinishedMsg{err: err}
		}
		data, rerr := os.ReadFile(path)
		if rerr != nil {
			return editorFinishedMsg{err: rerr}
		}
		return editorFinishedMsg{pane: string(pane), content: string(data)}
	})
}
