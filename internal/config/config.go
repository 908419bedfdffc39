package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Storage  StorageConfig
	LLM      LLMConfig
	UI       UIConfig
	// Keys remaps action names to key lists, e.g. [keys] "toggle-maximize" = ["M"].
	Keys map[string][]string
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// StorageConfig holds pane content persistence settings.
type StorageConfig struct {
	DataDir   string `mapstructure:"data_dir"`
	ExportDir string `mapstructure:"export_dir"`
}

// LLMConfig holds provider and model settings.
type LLMConfig struct {
	DefaultModel       string `mapstructure:"default_model"`
	Streaming          bool
	OpenAIAPIKeyEnv    string `mapstructure:"openai_api_key_env"`
	AnthropicAPIKeyEnv string `mapstructure:"anthropic_api_key_env"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Editor string
	Debug  bool
}

func dataDir() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "promptdeck")
}

// Load reads configuration from file and env. Env var overrides use prefix
// PROMPTDECK_ (e.g. PROMPTDECK_UI_EDITOR=vim).
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("database.path", filepath.Join(dataDir(), "promptdeck.db"))
	v.SetDefault("storage.data_dir", dataDir())
	v.SetDefault("storage.export_dir", filepath.Join(dataDir(), "exports"))
	v.SetDefault("llm.default_model", "openai:gpt-4o-mini")
	v.SetDefault("llm.streaming", true)
	v.SetDefault("llm.openai_api_key_env", "OPENAI_API_KEY")
	v.SetDefault("llm.anthropic_api_key_env", "ANTHROPIC_API_KEY")
	v.SetDefault("ui.editor", "nvim")
	v.SetDefault("ui.debug", false)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("PROMPTDECK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "promptdeck"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("PROMPTDECK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if
// needed. Used for persisting the selected model and streaming toggle; API
// keys never land here.
func Save(cfg Config) error {
	path := os.Getenv("PROMPTDECK_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "promptdeck", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("storage.data_dir", cfg.Storage.DataDir)
	v.Set("storage.export_dir", cfg.Storage.ExportDir)
	v.Set("llm.default_model", cfg.LLM.DefaultModel)
	v.Set("llm.streaming", cfg.LLM.Streaming)
	v.Set("llm.openai_api_key_env", cfg.LLM.OpenAIAPIKeyEnv)
	v.Set("llm.anthropic_api_key_env", cfg.LLM.AnthropicAPIKeyEnv)
	v.Set("ui.editor", cfg.UI.Editor)
	v.Set("ui.debug", cfg.UI.Debug)
	if len(cfg.Keys) > 0 {
		v.Set("keys", cfg.Keys)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
