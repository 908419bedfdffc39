package conversation

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/promptdeck/internal/database"
	"github.com/jask/promptdeck/internal/database/repository"
)

func newTestHistory(t *testing.T) (*History, *sql.DB) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, database.RunMigrations(dbPath))

	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewHistory(repository.NewTurnRepo(db)), db
}

func TestAddTurnAndRecent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h, _ := newTestHistory(t)

	require.NoError(t, h.AddTurn(ctx, "openai:gpt-4o", "first", "sys", "ctx", "resp one"))
	require.NoError(t, h.AddTurn(ctx, "openai:gpt-4o", "second", "", "", "resp two"))

	turns, err := h.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, turns, 2)
	require.Equal(t, "first", turns[0].UserPrompt)
	require.Equal(t, "second", turns[1].UserPrompt)

	turns, err = h.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, turns, 1)
	require.Equal(t, "second", turns[0].UserPrompt)
}

func TestHistoryTrimsToCap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h, db := newTestHistory(t)

	// insert directly with spread timestamps so trim order is deterministic
	repo := repository.NewTurnRepo(db)
	base := database.Now().Add(-time.Hour)
	for i := 0; i < MaxTurns+5; i++ {
		require.NoError(t, repo.Insert(ctx, repository.Turn{
			ID:         fmt.Sprintf("turn-%03d", i),
			CreatedAt:  base.Add(time.Duration(i) * time.Second),
			Model:      "openai:gpt-4o",
			UserPrompt: fmt.Sprintf("prompt %d", i),
		}))
	}
	require.NoError(t, h.AddTurn(ctx, "openai:gpt-4o", "newest", "", "", "resp"))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, MaxTurns, count)

	turns, err := repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, "newest", turns[len(turns)-1].UserPrompt)
	// oldest rows are the ones that went
	require.Equal(t, "prompt 6", turns[0].UserPrompt)
}

func TestClearHistory(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h, _ := newTestHistory(t)

	require.NoError(t, h.AddTurn(ctx, "m", "p", "", "", "r"))
	require.NoError(t, h.Clear(ctx))

	turns, err := h.Recent(ctx, 10)
	require.NoError(t, err)
	require.Empty(t, turns)
}

func TestExportImportJSONRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h, _ := newTestHistory(t)

	require.NoError(t, h.AddTurn(ctx, "anthropic:claude-3-haiku-20240307", "hello", "be kind", "some ctx", "hi"))

	path := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, h.ExportJSON(ctx, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var wire []Turn
	require.NoError(t, json.Unmarshal(data, &wire))
	require.Len(t, wire, 1)
	require.Equal(t, "hello", wire[0].UserPrompt)

	other, _ := newTestHistory(t)
	n, err := other.ImportJSON(ctx, path)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	turns, err := other.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, turns, 1)
	require.Equal(t, "be kind", turns[0].SystemPrompt)
	require.Equal(t, "some ctx", turns[0].Context)
}

func TestExportTextTranscript(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h, _ := newTestHistory(t)

	require.NoError(t, h.AddTurn(ctx, "openai:gpt-4o", "what is go", "answer briefly", "", "a language"))

	path := filepath.Join(t.TempDir(), "export.txt")
	require.NoError(t, h.ExportText(ctx, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	require.Contains(t, text, "Conversation 1")
	require.Contains(t, text, "Model: openai:gpt-4o")
	require.Contains(t, text, "System Prompt:\nanswer briefly")
	require.Contains(t, text, "User:\nwhat is go")
	require.Contains(t, text, "Assistant:\na language")
	require.False(t, strings.Contains(text, "Context:"), "empty context must be omitted")
}

func TestImportBadJSONFails(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h, _ := newTestHistory(t)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	_, err := h.ImportJSON(ctx, path)
	require.Error(t, err)
}
