package repository

import "time"

// Turn represents one prompt/response exchange row.
type Turn struct {
	ID           string
	CreatedAt    time.Time
	Model        string
	UserPrompt   string
	SystemPrompt string
	Context      string
	Response     string
}
