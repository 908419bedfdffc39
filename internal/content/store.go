// Package content persists editable pane text to per-pane files so prompts
// survive restarts.
package content

import (
	"fmt"
	"os"
	"path/filepath"
)

// Store maps pane names to backing files under one directory.
type Store struct {
	dir   string
	files map[string]string
}

// NewStore creates the directory and an empty backing file per pane name.
func NewStore(dir string, names ...string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create content dir: %w", err)
	}
	s := &Store{dir: dir, files: map[string]string{}}
	for _, name := range names {
		path := filepath.Join(dir, name+".txt")
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := os.WriteFile(path, nil, 0o600); err != nil {
				return nil, fmt.Errorf("create %s: %w", path, err)
			}
		}
		s.files[name] = path
	}
	return s, nil
}

// Names lists the pane names this store backs.
func (s *Store) Names() []string {
	out := make([]string, 0, len(s.files))
	for name := range s.files {
		out = append(out, name)
	}
	return out
}

// Read returns the stored content for a pane; unknown names read empty.
func (s *Store) Read(name string) (string, error) {
	path, ok := s.files[name]
	if !ok {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	return string(data), nil
}

// Write replaces the stored content for a pane atomically.
func (s *Store) Write(name, text string) error {
	path, ok := s.files[name]
	if !ok {
		return fmt.Errorf("content: unknown pane %q", name)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(text), 0o600); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// Clear empties the stored content for a pane.
func (s *Store) Clear(name string) error {
	return s.Write(name, "")
}
