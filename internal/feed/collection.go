package feed

import (
	"sync"

	"gallery/cli/internal/models"
)

// Collection is one page's item grid: the fetched slice, a loading flag, a
// scoped error, and the id of the currently open detail view. Fetches carry
// a generation token so a stale response for a previously selected source
// can never overwrite newer state.
type Collection struct {
	mu       sync.Mutex
	gen      uint64
	items    []models.Item
	selected string
	loading  bool
	err      error
}

// Begin marks a fetch in flight and returns its generation. Any completion
// carrying an older generation is dropped.
func (c *Collection) Begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.loading = true
	return c.gen
}

// Complete lands a fetch result. A failed fetch resets the collection to
// empty rather than keeping stale entries. Returns false when the result was
// stale and ignored.
func (c *Collection) Complete(gen uint64, items []models.Item, err error) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return false
	}
	c.loading = false
	c.err = err
	if err != nil {
		c.items = nil
		return true
	}
	c.items = items
	return true
}

func (c *Collection) Items() []models.Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items
}

func (c *Collection) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

func (c *Collection) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

func (c *Collection) Select(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = id
}

func (c *Collection) Deselect() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = ""
}

// Selected returns the currently open item, resolved against the live slice
// so splices show through.
func (c *Collection) Selected() (models.Item, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selected == "" {
		return models.Item{}, false
	}
	for _, it := range c.items {
		if it.ID == c.selected {
			return it, true
		}
	}
	return models.Item{}, false
}

// ApplyUpdate splices the server's returned entity over the local copy.
func (c *Collection) ApplyUpdate(updated models.Item) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = ReplaceItem(c.items, updated)
}

// ApplyDelete removes the entity and closes the detail view if it was open
// on the deleted id.
func (c *Collection) ApplyDelete(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = RemoveItem(c.items, id)
	if c.selected == id {
		c.selected = ""
	}
}
