package workspace

// Sink is the one surface through which a background task feeds content
// into a pane. The producing goroutine only pushes increments onto the
// channel; the event loop drains them and applies the append, so layout,
// focus and mode state are never touched off the event-loop goroutine.
type Sink struct {
	pane PaneID
	ch   chan string
}

// NewSink returns a sink bound to one pane with a bounded buffer.
func NewSink(pane PaneID, buffer int) *Sink {
	if buffer <= 0 {
		buffer = 64
	}
	return &Sink{pane: pane, ch: make(chan string, buffer)}
}

// Pane is the pane this sink appends into.
func (s *Sink) Pane() PaneID { return s.pane }

// Push queues a content increment. Blocks when the buffer is full, which
// back-pressures the producer rather than dropping output.
func (s *Sink) Push(chunk string) {
	s.ch <- chunk
}

// Close signals the end of the stream.
func (s *Sink) Close() {
	close(s.ch)
}

// Chunks exposes the increment channel for the event-loop drain.
func (s *Sink) Chunks() <-chan string { return s.ch }
