package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PROMPTDECK_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LLM.DefaultModel != "openai:gpt-4o-mini" {
		t.Fatalf("default model = %q", cfg.LLM.DefaultModel)
	}
	if !cfg.LLM.Streaming {
		t.Fatalf("streaming should default on")
	}
	if cfg.UI.Editor != "nvim" {
		t.Fatalf("editor = %q", cfg.UI.Editor)
	}
	if cfg.Database.Path == "" {
		t.Fatalf("db path empty")
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("PROMPTDECK_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("PROMPTDECK_UI_EDITOR", "vim")
	t.Setenv("PROMPTDECK_LLM_DEFAULT_MODEL", "anthropic:claude-3-haiku-20240307")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.UI.Editor != "vim" {
		t.Fatalf("editor = %q, want env override", cfg.UI.Editor)
	}
	if cfg.LLM.DefaultModel != "anthropic:claude-3-haiku-20240307" {
		t.Fatalf("model = %q, want env override", cfg.LLM.DefaultModel)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("PROMPTDECK_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg.LLM.DefaultModel = "openai:gpt-4o"
	cfg.LLM.Streaming = false
	cfg.UI.Editor = "hx"
	cfg.Keys = map[string][]string{"toggle-maximize": {"M", "f"}}
	if err := Save(cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file missing: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.LLM.DefaultModel != "openai:gpt-4o" {
		t.Fatalf("model = %q after round trip", got.LLM.DefaultModel)
	}
	if got.LLM.Streaming {
		t.Fatalf("streaming should stay off after round trip")
	}
	if got.UI.Editor != "hx" {
		t.Fatalf("editor = %q after round trip", got.UI.Editor)
	}
	remap := got.Keys["toggle-maximize"]
	if len(remap) != 2 || remap[0] != "M" || remap[1] != "f" {
		t.Fatalf("key remaps = %v after round trip", got.Keys)
	}
}
