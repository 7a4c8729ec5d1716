// Package feed keeps a page's local copy of server-owned collections
// consistent after mutations. The server stays the source of truth: updates
// and deletes splice the returned entity in, creates always refetch.
package feed

import "gallery/cli/internal/models"

// ReplaceItem swaps the element matching updated's id, preserving order.
// Unknown ids leave the slice untouched.
func ReplaceItem(items []models.Item, updated models.Item) []models.Item {
	out := make([]models.Item, len(items))
	for i, it := range items {
		if it.ID == updated.ID {
			out[i] = updated
		} else {
			out[i] = it
		}
	}
	return out
}

// RemoveItem drops the element with the given id. Removing an absent id is a
// no-op.
func RemoveItem(items []models.Item, id string) []models.Item {
	out := make([]models.Item, 0, len(items))
	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	return out
}

func ReplaceComment(comments []models.Comment, updated models.Comment) []models.Comment {
	out := make([]models.Comment, len(comments))
	for i, c := range comments {
		if c.ID == updated.ID {
			out[i] = updated
		} else {
			out[i] = c
		}
	}
	return out
}

func RemoveComment(comments []models.Comment, id string) []models.Comment {
	out := make([]models.Comment, 0, len(comments))
	for _, c := range comments {
		if c.ID != id {
			out = append(out, c)
		}
	}
	return out
}
