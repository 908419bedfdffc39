package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/promptdeck/internal/workspace"
)

const minimizedHeight = 3

type paneGeom struct {
	w int
	h int
}

// geometry distributes the content area across visible rows by their height
// level and splits each row evenly among its visible panes. A maximized pane
// takes the whole area.
func (a *App) geometry() ([][]workspace.PaneID, map[workspace.PaneID]paneGeom) {
	geoms := map[workspace.PaneID]paneGeom{}
	contentH := a.height - 2 // status bar + footer
	if contentH < minimizedHeight {
		contentH = minimizedHeight
	}

	if max := a.ws.Layout().MaximizedPane(); max != "" {
		geoms[max] = paneGeom{w: a.width, h: contentH}
		return [][]workspace.PaneID{{max}}, geoms
	}

	var rows [][]workspace.PaneID
	var weights []int
	total := 0
	for row := 0; row < a.ws.Registry().RowCount(); row++ {
		var visible []workspace.PaneID
		for _, id := range a.ws.Registry().Row(row) {
			if a.ws.Layout().Visible(id) {
				visible = append(visible, id)
			}
		}
		if len(visible) == 0 {
			continue
		}
		rows = append(rows, visible)
		w := int(a.ws.Layout().RowHeight(row))
		weights = append(weights, w)
		total += w
	}
	if total == 0 {
		return rows, geoms
	}

	used := 0
	for i, visible := range rows {
		rowH := contentH * weights[i] / total
		if i == len(rows)-1 {
			rowH = contentH - used
		}
		if rowH < minimizedHeight {
			rowH = minimizedHeight
		}
		used += rowH

		paneW := a.width / len(visible)
		for j, id := range visible {
			w := paneW
			if j == len(visible)-1 {
				w = a.width - paneW*(len(visible)-1)
			}
			h := rowH
			if p, ok := a.ws.Registry().Get(id); ok && p.State() == workspace.StateMinimized {
				h = minimizedHeight
			}
			geoms[id] = paneGeom{w: w, h: h}
		}
	}
	return rows, geoms
}

// syncSizes pushes the current geometry into the text areas and the response
// viewport. Called on resize and after every layout mutation.
func (a *App) syncSizes() {
	if a.width == 0 || a.height == 0 {
		return
	}
	_, geoms := a.geometry()
	for id, ta := range a.areas {
		g, ok := geoms[id]
		if !ok {
			continue
		}
		// borders eat 2 columns and 2 rows, the title line one more
		ta.SetWidth(g.w - 2)
		ta.SetHeight(max(1, g.h-3))
	}
	if g, ok := geoms[paneResponse]; ok {
		a.resp.Width = max(1, g.w-2)
		a.resp.Height = max(1, g.h-3)
		a.resp.SetContent(a.ws.Content(paneResponse))
	}
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "loading..."
	}

	switch a.overlay {
	case overlayHelp:
		return a.renderHelp()
	case overlayMenu:
		return a.renderMenu()
	}

	rows, geoms := a.geometry()
	var rendered []string
	for _, visible := range rows {
		cols := make([]string, 0, len(visible))
		for _, id := range visible {
			cols = append(cols, a.renderPane(id, geoms[id]))
		}
		rendered = append(rendered, lipgloss.JoinHorizontal(lipgloss.Top, cols...))
	}
	body := lipgloss.JoinVertical(lipgloss.Left, rendered...)
	if len(rows) == 0 {
		body = mutedStyle.Render("all panes hidden - esc for the pane menu")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		body,
		a.renderStatusBar(),
		a.renderFooter(),
	)
}

func (a *App) renderPane(id workspace.PaneID, g paneGeom) string {
	p, ok := a.ws.Registry().Get(id)
	if !ok {
		return ""
	}
	focused := a.ws.Focus().Owner() == id
	editing := a.ws.Modes().Of(id) == workspace.ModeEdit

	style := paneBorderStyle
	if editing {
		style = paneEditingStyle
	} else if focused {
		style = paneFocusedStyle
	}

	innerW := max(1, g.w-2)
	innerH := max(1, g.h-2)

	title := p.Title
	if id == paneModelSelect && a.selectedModel != "" {
		title = fmt.Sprintf("%s [%s]", p.Title, a.selectedModel)
	}
	header := titleStyle.Render(ansi.Truncate(title, innerW, "…"))
	if editing {
		badge := editBadgeStyle.Render(" EDIT")
		header = ansi.Truncate(header+badge, innerW, "")
	}

	var body string
	if p.State() == workspace.StateMinimized {
		body = mutedStyle.Render("…")
	} else {
		body = a.paneBody(id, innerW, innerH-1)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, header, body)
	return style.Width(innerW).Height(innerH).Render(content)
}

func (a *App) paneBody(id workspace.PaneID, w, h int) string {
	switch id {
	case paneUserPrompt, paneSystemPrompt, paneContext:
		if a.ws.Modes().Of(id) == workspace.ModeEdit {
			return a.areas[id].View()
		}
		text := a.ws.Content(id)
		if strings.TrimSpace(text) == "" {
			return mutedStyle.Render("press i to edit")
		}
		return clipLines(text, h)
	case paneModelSelect:
		return a.renderModelList(w, h)
	case paneResponse:
		return a.resp.View()
	}
	return ""
}

func (a *App) renderModelList(w, h int) string {
	var b strings.Builder
	if a.searching || a.searchQuery != "" {
		fmt.Fprintf(&b, "/%s\n", a.searchQuery)
		h--
	}
	list := a.filteredModels()
	if len(list) == 0 {
		b.WriteString(mutedStyle.Render("no matching models"))
		return b.String()
	}
	if h > 1 {
		h-- // reserve a line for the cursor model's details
	}
	start := 0
	if a.modelCursor >= h && h > 0 {
		start = a.modelCursor - h + 1
	}
	for i := start; i < len(list) && i-start < h; i++ {
		m := list[i]
		line := fmt.Sprintf("  %s", m.Label())
		if i == a.modelCursor {
			line = cursorRowStyle.Render(fmt.Sprintf("▶ %s", m.Label()))
		} else if m.Name == a.selectedModel {
			line = fmt.Sprintf("• %s", m.Label())
		}
		b.WriteString(ansi.Truncate(line, w, "…"))
		b.WriteByte('\n')
	}
	if a.modelCursor >= 0 && a.modelCursor < len(list) {
		b.WriteString(mutedStyle.Render(ansi.Truncate(list[a.modelCursor].Info(), w, "…")))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (a *App) renderStatusBar() string {
	style := statusBarStyle
	if a.statusErr {
		style = statusErrStyle
	}
	mode := "COMMAND"
	if a.ws.Modes().Of(a.ws.Focus().Owner()) == workspace.ModeEdit {
		mode = "EDIT"
	}
	stream := "stream:on"
	if !a.streaming {
		stream = "stream:off"
	}
	left := fmt.Sprintf(" %s | %s | %s", mode, stream, a.status)
	return renderBar(style.Render(left), a.width)
}

func (a *App) renderFooter() string {
	scope := "command"
	if a.ws.Modes().Of(a.ws.Focus().Owner()) == workspace.ModeEdit {
		scope = "edit"
	}
	var parts []string
	for _, b := range a.keys.BindingsForScope(scope) {
		if b.Description == "" {
			continue
		}
		parts = append(parts,
			footerKeyStyle.Render(strings.Join(b.Keys, "/"))+
				footerDescStyle.Render(" "+b.Description))
	}
	line := " " + strings.Join(parts, footerDescStyle.Render("  "))
	return renderBar(footerStyle.Render(line), a.width)
}

func (a *App) renderHelp() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Keyboard Reference"))
	b.WriteString("\n\n")
	for _, scope := range []string{"command", "edit", "menu"} {
		b.WriteString(mutedStyle.Render(strings.ToUpper(scope)))
		b.WriteByte('\n')
		for _, bind := range a.keys.BindingsForScope(scope) {
			if bind.Description == "" {
				continue
			}
			fmt.Fprintf(&b, "  %-14s %s\n",
				footerKeyStyle.Render(strings.Join(bind.Keys, ", ")),
				bind.Description)
		}
		b.WriteByte('\n')
	}
	b.WriteString(mutedStyle.Render("esc to close"))
	return a.centerOverlay(overlayStyle.Render(b.String()))
}

func (a *App) renderMenu() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Panes"))
	b.WriteString("\n\n")
	for i, p := range a.ws.Registry().Children() {
		marker := "  "
		if i == a.menuCursor {
			marker = "▶ "
		}
		state := p.State().String()
		if p.Hidden() {
			state = "hidden"
		}
		line := fmt.Sprintf("%s%-14s %s", marker, p.Title, mutedStyle.Render(state))
		if i == a.menuCursor {
			line = cursorRowStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("enter focus · h hide · u unhide · a hide all · z show all · r reset"))
	return a.centerOverlay(overlayStyle.Render(b.String()))
}

func (a *App) centerOverlay(box string) string {
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, box)
}

// renderBar pads or truncates a styled line to exactly the given width.
func renderBar(line string, width int) string {
	w := ansi.StringWidth(line)
	if w > width {
		return ansi.Truncate(line, width, "…")
	}
	return line + strings.Repeat(" ", width-w)
}

func clipLines(text string, h int) string {
	lines := strings.Split(text, "\n")
	if len(lines) <= h || h <= 0 {
		return text
	}
	return strings.Join(lines[:h], "\n")
}

