// Package conversation keeps the prompt/response exchange log: a capped,
// database-backed history with JSON and plain-text export and JSON import.
package conversation

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jask/promptdeck/internal/database"
	"github.com/jask/promptdeck/internal/database/repository"
)

// MaxTurns caps the stored history; older turns are trimmed when exceeded.
const MaxTurns = 100

// Turn is the export/import wire shape of one exchange.
type Turn struct {
	Timestamp    string `json:"timestamp"`
	Model        string `json:"model"`
	UserPrompt   string `json:"user_prompt"`
	SystemPrompt string `json:"system_prompt"`
	Context      string `json:"context"`
	Response     string `json:"response"`
}

// History manages the conversation log on top of the turn repository.
type History struct {
	Turns *repository.TurnRepo
}

func NewHistory(turns *repository.TurnRepo) *History {
	return &History{Turns: turns}
}

// AddTurn records one completed exchange and trims the log to MaxTurns.
func (h *History) AddTurn(ctx context.Context, model, userPrompt, systemPrompt, contextText, response string) error {
	t := repository.Turn{
		ID:           uuid.NewString(),
		CreatedAt:    database.Now(),
		Model:        model,
		UserPrompt:   userPrompt,
		SystemPrompt: systemPrompt,
		Context:      contextText,
		Response:     response,
	}
	if err := h.Turns.Insert(ctx, t); err != nil {
		return fmt.Errorf("add turn: %w", err)
	}
	if err := h.Turns.TrimTo(ctx, MaxTurns); err != nil {
		return fmt.Errorf("trim history: %w", err)
	}
	return nil
}

// Recent returns the newest count turns, oldest first.
func (h *History) Recent(ctx context.Context, count int) ([]repository.Turn, error) {
	return h.Turns.Recent(ctx, count)
}

// Clear removes all stored turns.
func (h *History) Clear(ctx context.Context) error {
	return h.Turns.Clear(ctx)
}

// ExportJSON writes the full history to path as indented JSON.
func (h *History) ExportJSON(ctx context.Context, path string) error {
	turns, err := h.Turns.List(ctx)
	if err != nil {
		return err
	}
	out := make([]Turn, len(turns))
	for i, t := range turns {
		out[i] = wireTurn(t)
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// ExportText writes the full history to path in a readable transcript form.
func (h *History) ExportText(ctx context.Context, path string) error {
	turns, err := h.Turns.List(ctx)
	if err != nil {
		return err
	}
	var b strings.Builder
	rule := strings.Repeat("=", 80)
	for i, t := range turns {
		fmt.Fprintf(&b, "%s\nConversation %d\nTimestamp: %s\nModel: %s\n%s\n\n",
			rule, i+1, t.CreatedAt.Format(time.RFC3339), t.Model, rule)
		if t.SystemPrompt != "" {
			fmt.Fprintf(&b, "System Prompt:\n%s\n\n", t.SystemPrompt)
		}
		if t.Context != "" {
			fmt.Fprintf(&b, "Context:\n%s\n\n", t.Context)
		}
		fmt.Fprintf(&b, "User:\n%s\n\n", t.UserPrompt)
		fmt.Fprintf(&b, "Assistant:\n%s\n\n", t.Response)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(b.String()), 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// ImportJSON appends turns from a JSON export, then trims to MaxTurns.
// Returns the number of turns imported.
func (h *History) ImportJSON(ctx context.Context, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	var in []Turn
	if err := json.Unmarshal(data, &in); err != nil {
		return 0, fmt.Errorf("parse history file: %w", err)
	}
	for _, t := range in {
		created, err := time.Parse(time.RFC3339, t.Timestamp)
		if err != nil {
			created = database.Now()
		}
		row := repository.Turn{
			ID:           uuid.NewString(),
			CreatedAt:    created.UTC().Truncate(time.Second),
			Model:        t.Model,
			UserPrompt:   t.UserPrompt,
			SystemPrompt: t.SystemPrompt,
			Context:      t.Context,
			Response:     t.Response,
		}
		if err := h.Turns.Insert(ctx, row); err != nil {
			return 0, fmt.Errorf("import turn: %w", err)
		}
	}
	if err := h.Turns.TrimTo(ctx, MaxTurns); err != nil {
		return len(in), fmt.Errorf("trim history: %w", err)
	}
	return len(in), nil
}

func wireTurn(t repository.Turn) Turn {
	return Turn{
		Timestamp:    t.CreatedAt.Format(time.RFC3339),
		Model:        t.Model,
		UserPrompt:   t.UserPrompt,
		SystemPrompt: t.SystemPrompt,
		Context:      t.Context,
		Response:     t.Response,
	}
}
