package sapling

import "sync"

// WindowRequest is a message other parts of the application send to a
// window. Requests are applied in arrival order at the next poll.
type WindowRequest interface {
	isWindowRequest()
}

// RedrawRequest makes the window run its adapter and present a new frame.
type RedrawRequest struct{}

// ChangeTitleRequest sets the native window title.
type ChangeTitleRequest struct{ Title string }

// CloseRequest closes the window at the next lifecycle check.
type CloseRequest struct{}

func (RedrawRequest) isWindowRequest()      {}
func (ChangeTitleRequest) isWindowRequest() {}
func (CloseRequest) isWindowRequest()       {}

// requestQueue is an unbounded multi-producer FIFO drained by one consumer
// without blocking.
type requestQueue struct {
	mu      sync.Mutex
	pending []WindowRequest
	closed  bool
}

func (q *requestQueue) push(r WindowRequest) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return false
	}
	q.pending = append(q.pending, r)
	return true
}

// drain returns everything queued so far and empties the queue.
func (q *requestQueue) drain() []WindowRequest {
	q.mu.Lock()
	out := q.pending
	q.pending = nil
	q.mu.Unlock()
	return out
}

func (q *requestQueue) close() {
	q.mu.Lock()
	q.closed = true
	q.pending = nil
	q.mu.Unlock()
}

// RequestSender posts requests to one window. It is safe for concurrent use
// and never blocks. No acknowledgement is returned.
type RequestSender struct {
	q *requestQueue
}

// Send posts r. It returns false when the window no longer exists.
func (s RequestSender) Send(r WindowRequest) bool {
	if s.q == nil {
		return false
	}
	return s.q.push(r)
}

// Redraw posts a RedrawRequest.
func (s RequestSender) Redraw() bool { return s.Send(RedrawRequest{}) }

// ChangeTitle posts a ChangeTitleRequest.
func (s RequestSender) ChangeTitle(title string) bool {
	return s.Send(ChangeTitleRequest{Title: title})
}

// Close posts a CloseRequest.
func (s RequestSender) Close() bool { return s.Send(CloseRequest{}) }
