package secrets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setTestStore(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "keys.json")
	t.Setenv(pathEnv, path)
	return path
}

func TestStoreFetchRoundTrip(t *testing.T) {
	setTestStore(t)

	if err := StoreProviderKey("openai", "sk-test-123"); err != nil {
		t.Fatalf("store: %v", err)
	}
	got, err := FetchProviderKey("OpenAI ") // normalization
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if got != "sk-test-123" {
		t.Fatalf("fetched = %q", got)
	}
}

func TestKeyNotStoredInPlainText(t *testing.T) {
	path := setTestStore(t)

	if err := StoreProviderKey("anthropic", "sk-ant-secret"); err != nil {
		t.Fatalf("store: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read store: %v", err)
	}
	if strings.Contains(string(raw), "sk-ant-secret") {
		t.Fatalf("key stored in plain text")
	}
}

func TestDeleteProviderKey(t *testing.T) {
	setTestStore(t)

	if err := StoreProviderKey("openai", "sk-x"); err != nil {
		t.Fatalf("store: %v", err)
	}
	if err := DeleteProviderKey("openai"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := FetchProviderKey("openai"); err == nil {
		t.Fatalf("fetch after delete should fail")
	}
}

func TestListProviders(t *testing.T) {
	setTestStore(t)

	if err := StoreProviderKey("openai", "a"); err != nil {
		t.Fatalf("store: %v", err)
	}
	if err := StoreProviderKey("anthropic", "b"); err != nil {
		t.Fatalf("store: %v", err)
	}
	got, err := ListProviders()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[0] != "anthropic" || got[1] != "openai" {
		t.Fatalf("providers = %v", got)
	}
}
