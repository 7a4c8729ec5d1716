package feed

import (
	"sync"

	"gallery/cli/internal/models"
)

// Thread is the comment list under an open item. Same reconciliation rules
// as Collection, same stale-fetch guard, no selection.
type Thread struct {
	mu       sync.Mutex
	gen      uint64
	comments []models.Comment
	loading  bool
	err      error
}

func (t *Thread) Begin() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.gen++
	t.loading = true
	return t.gen
}

func (t *Thread) Complete(gen uint64, comments []models.Comment, err error) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if gen != t.gen {
		return false
	}
	t.loading = false
	t.err = err
	if err != nil {
		t.comments = nil
		return true
	}
	t.comments = comments
	return true
}

func (t *Thread) Comments() []models.Comment {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.comments
}

func (t *Thread) Loading() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loading
}

func (t *Thread) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

func (t *Thread) ApplyUpdate(updated models.Comment) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.comments = ReplaceComment(t.comments, updated)
}

func (t *Thread) ApplyDelete(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.comments = RemoveComment(t.comments, id)
}
