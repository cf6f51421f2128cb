package ledger

// history is a fixed-capacity ring of completed request summaries with
// eviction-on-insert semantics: once full, each push overwrites the oldest
// entry. It is not safe for concurrent use; the Ledger serializes access.
type history struct {
	entries []*RequestSummary
	next    int
	full    bool
}

// newHistory creates a ring holding at most capacity summaries.
// capacity must be positive.
func newHistory(capacity int) *history {
	return &history{entries: make([]*RequestSummary, capacity)}
}

// push inserts a summary, evicting the oldest entry when the ring is full.
func (h *history) push(s *RequestSummary) {
	h.entries[h.next] = s
	h.next++
	if h.next == len(h.entries) {
		h.next = 0
		h.full = true
	}
}

// len returns the number of summaries currently retained.
func (h *history) len() int {
	if h.full {
		return len(h.entries)
	}
	return h.next
}

// find returns the retained summary with the given id, or nil.
func (h *history) find(requestID string) *RequestSummary {
	for i, n := 0, h.len(); i < n; i++ {
		if h.entries[i].RequestID == requestID {
			return h.entries[i]
		}
	}
	return nil
}

// all returns the retained summaries in insertion order, oldest first.
// The returned slice is freshly allocated but shares the summary pointers.
func (h *history) all() []*RequestSummary {
	if !h.full {
		out := make([]*RequestSummary, h.next)
		copy(out, h.entries[:h.next])
		return out
	}

	out := make([]*RequestSummary, 0, len(h.entries))
	out = append(out, h.entries[h.next:]...)
	out = append(out, h.entries[:h.next]...)
	return out
}
