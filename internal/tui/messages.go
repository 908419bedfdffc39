package tui

// messages

type statusMsg string

type errMsg struct{ error }

// chunkMsg is one streamed content increment drained off the sink.
type chunkMsg string

// streamDoneMsg signals the sink channel closed and drained.
type streamDoneMsg struct{}

// streamResultMsg carries the producer's outcome; err is set when the
// provider failed mid-stream. The exchange finishes only once this and
// streamDoneMsg have both arrived.
type streamResultMsg struct{ err error }

// responseMsg carries a full non-streaming response.
type responseMsg string

// editorFinishedMsg returns content from the external editor round trip.
type editorFinishedMsg struct {
	pane    string
	content string
	err     error
}

// historySavedMsg confirms the finished exchange was recorded.
type historySavedMsg struct{}

// exportDoneMsg reports where the conversation log was written.
type exportDoneMsg string
