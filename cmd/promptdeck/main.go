package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/promptdeck/internal/config"
	"github.com/jask/promptdeck/internal/content"
	"github.com/jask/promptdeck/internal/conversation"
	"github.com/jask/promptdeck/internal/database"
	"github.com/jask/promptdeck/internal/database/repository"
	"github.com/jask/promptdeck/internal/llm"
	"github.com/jask/promptdeck/internal/secrets"
	"github.com/jask/promptdeck/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	if err := database.RunMigrations(cfg.Database.Path); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	history := conversation.NewHistory(repository.NewTurnRepo(db))

	store, err := content.NewStore(cfg.Storage.DataDir,
		"user_prompt", "system_prompt", "context", "selected_model")
	if err != nil {
		log.Fatalf("content store: %v", err)
	}

	client := llm.NewClient()
	client.RegisterProvider("openai",
		llm.NewOpenAIProvider(resolveAPIKey(cfg.LLM.OpenAIAPIKeyEnv, "openai")))
	client.RegisterProvider("anthropic",
		llm.NewAnthropicProvider(resolveAPIKey(cfg.LLM.AnthropicAPIKeyEnv, "anthropic")))

	p := tea.NewProgram(tui.New(ctx, cfg, client, history, store), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

// resolveAPIKey prefers the environment, then the encrypted secrets file.
// A missing key is not fatal here; requests to that provider fail with a
// status-line error instead.
func resolveAPIKey(env, provider string) string {
	if env == "" {
		env = provider
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	if k, err := secrets.FetchProviderKey(provider); err == nil {
		return k
	}
	return ""
}
