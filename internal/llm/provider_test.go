package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClientRoutingErrors(t *testing.T) {
	c := NewClient()
	if _, err := c.Send(context.Background(), Request{UserPrompt: "hi"}); !errors.Is(err, ErrNoModel) {
		t.Fatalf("err = %v, want ErrNoModel", err)
	}
	if err := c.SetModel("openai:gpt-9000"); !errors.Is(err, ErrUnknownModel) {
		t.Fatalf("err = %v, want ErrUnknownModel", err)
	}
	if err := c.SetModel("openai:gpt-4o"); err == nil {
		t.Fatalf("expected unregistered provider error")
	}
}

func TestOpenAISendBuildsChatRequest(t *testing.T) {
	var captured openAIRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("auth header = %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		fmt.Fprint(w, `{"choices":[{"message":{"content":"pong"}}]}`)
	}))
	defer srv.Close()

	p := NewOpenAIProvider("test-key")
	p.SetBaseURL(srv.URL)

	c := NewClient()
	c.RegisterProvider("openai", p)
	if err := c.SetModel("openai:gpt-4o-mini"); err != nil {
		t.Fatalf("set model: %v", err)
	}

	got, err := c.Send(context.Background(), Request{
		SystemPrompt: "be terse",
		UserPrompt:   "ping",
		Context:      "a context blob",
	})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if got != "pong" {
		t.Fatalf("response = %q", got)
	}
	if captured.Model != "gpt-4o-mini" {
		t.Fatalf("wire model = %q, want prefix stripped", captured.Model)
	}
	if len(captured.Messages) != 2 || captured.Messages[0].Role != "system" {
		t.Fatalf("messages = %+v", captured.Messages)
	}
	if !strings.HasPrefix(captured.Messages[1].Content, "Context:\n") {
		t.Fatalf("context not folded into user prompt: %q", captured.Messages[1].Content)
	}
	if captured.MaxTokens != 4096 {
		t.Fatalf("max tokens = %d, want model default", captured.MaxTokens)
	}
}

func TestOpenAIStreamDeliversDeltas(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\"hel\"}}]}\n\n")
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\"lo\"}}]}\n\n")
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	defer srv.Close()

	p := NewOpenAIProvider("test-key")
	p.SetBaseURL(srv.URL)

	var got strings.Builder
	err := p.Stream(context.Background(), Request{Model: "gpt-4o", UserPrompt: "hi", MaxTokens: 16}, func(chunk string) {
		got.WriteString(chunk)
	})
	if err != nil {
		t.Fatalf("stream: %v", err)
	}
	if got.String() != "hello" {
		t.Fatalf("streamed = %q", got.String())
	}
}

func TestOpenAIErrorStatusSurfacesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":{"message":"bad key"}}`)
	}))
	defer srv.Close()

	p := NewOpenAIProvider("wrong")
	p.SetBaseURL(srv.URL)
	_, err := p.Send(context.Background(), Request{Model: "gpt-4o", UserPrompt: "hi", MaxTokens: 16})
	if err == nil || !strings.Contains(err.Error(), "bad key") {
		t.Fatalf("err = %v", err)
	}
}

func TestOpenAIMissingKey(t *testing.T) {
	p := NewOpenAIProvider("")
	if _, err := p.Send(context.Background(), Request{Model: "gpt-4o", UserPrompt: "hi"}); !errors.Is(err, ErrNoAPIKey) {
		t.Fatalf("err = %v, want ErrNoAPIKey", err)
	}
}

func TestAnthropicSendUsesMessagesAPI(t *testing.T) {
	var captured anthropicRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("x-api-key"); got != "test-key" {
			t.Errorf("api key header = %q", got)
		}
		if got := r.Header.Get("anthropic-version"); got == "" {
			t.Errorf("version header missing")
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		fmt.Fprint(w, `{"content":[{"text":"hi there"}]}`)
	}))
	defer srv.Close()

	p := NewAnthropicProvider("test-key")
	p.SetBaseURL(srv.URL)

	got, err := p.Send(context.Background(), Request{
		Model:        "claude-3-haiku-20240307",
		SystemPrompt: "be kind",
		UserPrompt:   "hello",
		MaxTokens:    128,
	})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if got != "hi there" {
		t.Fatalf("response = %q", got)
	}
	if captured.System != "be kind" {
		t.Fatalf("system prompt not set: %+v", captured)
	}
	if len(captured.Messages) != 1 || captured.Messages[0].Role != "user" {
		t.Fatalf("messages = %+v", captured.Messages)
	}
}

func TestAnthropicStreamHandlesEventTypes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "event: message_start\n")
		fmt.Fprint(w, "data: {\"type\":\"message_start\"}\n\n")
		fmt.Fprint(w, "data: {\"type\":\"content_block_delta\",\"delta\":{\"type\":\"text_delta\",\"text\":\"str\"}}\n\n")
		fmt.Fprint(w, "data: {\"type\":\"content_block_delta\",\"delta\":{\"type\":\"text_delta\",\"text\":\"eam\"}}\n\n")
		fmt.Fprint(w, "data: {\"type\":\"message_stop\"}\n\n")
	}))
	defer srv.Close()

	p := NewAnthropicProvider("test-key")
	p.SetBaseURL(srv.URL)

	var got strings.Builder
	err := p.Stream(context.Background(), Request{Model: "claude-3-haiku-20240307", UserPrompt: "hi", MaxTokens: 16}, func(chunk string) {
		got.WriteString(chunk)
	})
	if err != nil {
		t.Fatalf("stream: %v", err)
	}
	if got.String() != "stream" {
		t.Fatalf("streamed = %q", got.String())
	}
}
