package llm

import (
	"context"
	"fmt"
	"strings"
)

var (
	ErrNoModel      = fmt.Errorf("llm: no model selected")
	ErrUnknownModel = fmt.Errorf("llm: unknown model")
	ErrNoAPIKey     = fmt.Errorf("llm: api key not configured")
)

// Request carries one prompt exchange. Context, when present, is folded into
// the user prompt; the system prompt travels separately because the provider
// APIs treat it specially.
type Request struct {
	Model        string
	SystemPrompt string
	UserPrompt   string
	Context      string
	MaxTokens    int
}

// FullPrompt is the user prompt with the context block prepended.
func (r Request) FullPrompt() string {
	if strings.TrimSpace(r.Context) == "" {
		return r.UserPrompt
	}
	return "Context:\n" + r.Context + "\n\n" + r.UserPrompt
}

// Provider is one upstream LLM API.
type Provider interface {
	// Send performs a blocking completion and returns the full response text.
	Send(ctx context.Context, req Request) (string, error)
	// Stream performs a streaming completion, calling onChunk for every text
	// increment in arrival order. onChunk runs on the provider goroutine.
	Stream(ctx context.Context, req Request, onChunk func(string)) error
}

// Client routes requests to the right provider based on the model id's
// provider prefix ("openai:gpt-4o", "anthropic:claude-...").
type Client struct {
	providers map[string]Provider
	model     string
}

func NewClient() *Client {
	return &Client{providers: map[string]Provider{}}
}

// RegisterProvider wires a provider under its prefix name.
func (c *Client) RegisterProvider(name string, p Provider) {
	c.providers[name] = p
}

// SetModel selects the active model. The model must exist in the catalog and
// its provider must be registered.
func (c *Client) SetModel(model string) error {
	cfg, ok := Lookup(model)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownModel, model)
	}
	if _, ok := c.providers[cfg.Provider]; !ok {
		return fmt.Errorf("llm: provider %s not configured", cfg.Provider)
	}
	c.model = model
	return nil
}

// Model is the currently selected model id, empty when none.
func (c *Client) Model() string { return c.model }

func (c *Client) route(model string) (Provider, ModelConfig, error) {
	if model == "" {
		model = c.model
	}
	if model == "" {
		return nil, ModelConfig{}, ErrNoModel
	}
	cfg, ok := Lookup(model)
	if !ok {
		return nil, ModelConfig{}, fmt.Errorf("%w: %s", ErrUnknownModel, model)
	}
	p, ok := c.providers[cfg.Provider]
	if !ok {
		return nil, ModelConfig{}, fmt.Errorf("llm: provider %s not configured", cfg.Provider)
	}
	return p, cfg, nil
}

// Send routes a blocking completion to the selected model's provider.
func (c *Client) Send(ctx context.Context, req Request) (string, error) {
	p, cfg, err := c.route(req.Model)
	if err != nil {
		return "", err
	}
	req.Model = cfg.APIName()
	if req.MaxTokens <= 0 {
		req.MaxTokens = cfg.DefaultMaxTokens()
	}
	return p.Send(ctx, req)
}

// Stream routes a streaming completion to the selected model's provider.
func (c *Client) Stream(ctx context.Context, req Request, onChunk func(string)) error {
	p, cfg, err := c.route(req.Model)
	if err != nil {
		return err
	}
	req.Model = cfg.APIName()
	if req.MaxTokens <= 0 {
		req.MaxTokens = cfg.DefaultMaxTokens()
	}
	return p.Stream(ctx, req, onChunk)
}
