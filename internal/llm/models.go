package llm

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// ModelConfig describes one selectable model: identity, limits and pricing.
// The Name carries the provider prefix ("openai:gpt-4o"); APIName strips it
// for the wire request.
type ModelConfig struct {
	Name            string
	DisplayName     string
	Provider        string
	ContextWindow   int
	MaxOutputTokens int
	InputCostPer1K  float64
	OutputCostPer1K float64
}

// APIName is the model id as the provider API expects it, without prefix.
func (m ModelConfig) APIName() string {
	if _, after, ok := strings.Cut(m.Name, ":"); ok {
		return after
	}
	return m.Name
}

// DefaultMaxTokens caps generation at 4096 or the model's own limit,
// whichever is lower.
func (m ModelConfig) DefaultMaxTokens() int {
	if m.MaxOutputTokens > 0 && m.MaxOutputTokens < 4096 {
		return m.MaxOutputTokens
	}
	return 4096
}

// Label is the display string used in the selector list.
func (m ModelConfig) Label() string {
	if m.InputCostPer1K > 0 {
		return fmt.Sprintf("%s ($%.3f/$%.3f per 1K)", m.DisplayName, m.InputCostPer1K, m.OutputCostPer1K)
	}
	return m.DisplayName
}

// Info is the multi-line detail block shown for the selected model.
func (m ModelConfig) Info() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", m.DisplayName)
	fmt.Fprintf(&b, "Provider: %s\n", m.Provider)
	fmt.Fprintf(&b, "Context: %d tokens\n", m.ContextWindow)
	fmt.Fprintf(&b, "Max output: %d tokens", m.MaxOutputTokens)
	if m.InputCostPer1K > 0 {
		fmt.Fprintf(&b, "\nCost: $%.3f/$%.3f per 1K", m.InputCostPer1K, m.OutputCostPer1K)
	}
	return b.String()
}

var catalog = []ModelConfig{
	{Name: "openai:gpt-4o", DisplayName: "GPT-4o", Provider: "openai", ContextWindow: 128000, MaxOutputTokens: 4096, InputCostPer1K: 5.0, OutputCostPer1K: 15.0},
	{Name: "openai:gpt-4o-mini", DisplayName: "GPT-4o Mini", Provider: "openai", ContextWindow: 128000, MaxOutputTokens: 16384, InputCostPer1K: 0.15, OutputCostPer1K: 0.6},
	{Name: "openai:gpt-4-turbo", DisplayName: "GPT-4 Turbo", Provider: "openai", ContextWindow: 128000, MaxOutputTokens: 4096, InputCostPer1K: 10.0, OutputCostPer1K: 30.0},
	{Name: "openai:gpt-3.5-turbo", DisplayName: "GPT-3.5 Turbo", Provider: "openai", ContextWindow: 16385, MaxOutputTokens: 4096, InputCostPer1K: 0.5, OutputCostPer1K: 1.5},
	{Name: "anthropic:claude-3-5-sonnet-latest", DisplayName: "Claude 3.5 Sonnet", Provider: "anthropic", ContextWindow: 200000, MaxOutputTokens: 8192, InputCostPer1K: 3.0, OutputCostPer1K: 15.0},
	{Name: "anthropic:claude-3-opus-20240229", DisplayName: "Claude 3 Opus", Provider: "anthropic", ContextWindow: 200000, MaxOutputTokens: 4096, InputCostPer1K: 15.0, OutputCostPer1K: 75.0},
	{Name: "anthropic:claude-3-haiku-20240307", DisplayName: "Claude 3 Haiku", Provider: "anthropic", ContextWindow: 200000, MaxOutputTokens: 4096, InputCostPer1K: 0.25, OutputCostPer1K: 1.25},
}

// Models returns the full catalog in display order, grouped by provider.
func Models() []ModelConfig {
	out := make([]ModelConfig, len(catalog))
	copy(out, catalog)
	return out
}

// ModelsByProvider returns the catalog entries for one provider.
func ModelsByProvider(provider string) []ModelConfig {
	var out []ModelConfig
	for _, m := range catalog {
		if m.Provider == provider {
			out = append(out, m)
		}
	}
	return out
}

// Lookup finds a model by its full id.
func Lookup(name string) (ModelConfig, bool) {
	for _, m := range catalog {
		if m.Name == name {
			return m, true
		}
	}
	return ModelConfig{}, false
}

// Search ranks catalog entries against a query. Substring matches on the id
// or display name rank first, then close matches by edit distance. An empty
// query returns the full catalog.
func Search(query string) []ModelConfig {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Models()
	}
	type scored struct {
		m    ModelConfig
		dist int
	}
	var subs, near []scored
	for _, m := range catalog {
		name := strings.ToLower(m.Name)
		display := strings.ToLower(m.DisplayName)
		if strings.Contains(name, q) || strings.Contains(display, q) {
			subs = append(subs, scored{m, 0})
			continue
		}
		d := levenshtein.ComputeDistance(q, display)
		if dn := levenshtein.ComputeDistance(q, m.APIName()); dn < d {
			d = dn
		}
		if d <= len(q)/2+1 {
			near = append(near, scored{m, d})
		}
	}
	sort.SliceStable(near, func(i, j int) bool { return near[i].dist < near[j].dist })
	out := make([]ModelConfig, 0, len(subs)+len(near))
	for _, s := range subs {
		out = append(out, s.m)
	}
	for _, s := range near {
		out = append(out, s.m)
	}
	return out
}
