package app

import (
	"context"
	"fmt"
)

// Liked, Reacted and Tagged are the same grid over different sources. The
// reacted view reads the liked feed too: the server folds reactions into it.

func (a *App) Liked(ctx context.Context) error {
	writeHeader(a.out, "Liked", "Items you liked.")
	return a.renderGrid(ctx, a.api.LikedItems, "No liked items yet", "Like an image in the gallery, and it will show up here.")
}

func (a *App) Reacted(ctx context.Context) error {
	writeHeader(a.out, "Reacted", "Items with your reactions.")
	return a.renderGrid(ctx, a.api.LikedItems, "No reacted items yet", "React to an image in the gallery, and it will show up here.")
}

func (a *App) Tagged(ctx context.Context) error {
	writeHeader(a.out, "Tagged", "Items you are tagged in.")
	return a.renderGrid(ctx, a.api.TaggedItems, "No tagged items yet", "")
}

func (a *App) renderGrid(ctx context.Context, fetch itemFetch, emptyTitle, emptyHint string) error {
	col := newCollection()
	a.fetchInto(ctx, col, fetch)

	if col.Err() != nil {
		fmt.Fprintf(a.out, "Could not load items: %s\n", apiMessage(col.Err()))
		return nil
	}
	items := col.Items()
	if len(items) == 0 {
		writeEmpty(a.out, emptyTitle, emptyHint)
		return nil
	}

	writeItemGrid(a.out, items)
	return nil
}
