package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gallery/cli/internal/models"
)

func items(ids ...string) []models.Item {
	out := make([]models.Item, len(ids))
	for i, id := range ids {
		out[i] = models.Item{ID: id, Caption: "caption-" + id}
	}
	return out
}

func TestReplaceItem_PreservesOrder(t *testing.T) {
	list := items("a", "b", "c")
	updated := models.Item{ID: "b", Caption: "edited"}

	got := ReplaceItem(list, updated)

	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
	assert.Equal(t, "edited", got[1].Caption)
	assert.Equal(t, "c", got[2].ID)
}

func TestReplaceItem_UnknownID(t *testing.T) {
	list := items("a", "b")
	got := ReplaceItem(list, models.Item{ID: "zz"})

	require.Len(t, got, 2)
	assert.Equal(t, list, got)
}

func TestRemoveItem(t *testing.T) {
	list := items("a", "b", "c")

	got := RemoveItem(list, "b")
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)

	// absent id is a no-op
	assert.Equal(t, got, RemoveItem(got, "zz"))
}

func TestReplaceComment(t *testing.T) {
	list := []models.Comment{{ID: "c1", Content: "one"}, {ID: "c2", Content: "two"}}
	got := ReplaceComment(list, models.Comment{ID: "c2", Content: "edited"})

	require.Len(t, got, 2)
	assert.Equal(t, "one", got[0].Content)
	assert.Equal(t, "edited", got[1].Content)
}

func TestRemoveComment(t *testing.T) {
	list := []models.Comment{{ID: "c1"}, {ID: "c2"}}

	got := RemoveComment(list, "c1")
	require.Len(t, got, 1)
	assert.Equal(t, "c2", got[0].ID)

	assert.Equal(t, got, RemoveComment(got, "missing"))
}
