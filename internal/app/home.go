package app

import (
	"context"
	"fmt"

	"gallery/cli/internal/api"
	"gallery/cli/internal/feed"
	"gallery/cli/internal/models"
)

type HomeOptions struct {
	AddImage    string
	Caption     string
	TaggedUsers []string
}

// Home is the main gallery page. A create never splices locally: the whole
// collection is refetched so server-side ordering and derived fields land.
func (a *App) Home(ctx context.Context, opts HomeOptions) error {
	writeHeader(a.out, "Gallery", "It's all about timing and creativity!")

	if opts.AddImage != "" {
		err := a.api.CreateItem(ctx, api.CreateItemInput{
			ImagePath:   opts.AddImage,
			Caption:     opts.Caption,
			TaggedUsers: opts.TaggedUsers,
		})
		if err != nil {
			fmt.Fprintf(a.out, "Upload failed: %s\n", apiMessage(err))
		} else {
			fmt.Fprintln(a.out, "Image added.")
		}
	}

	col := newCollection()
	a.fetchInto(ctx, col, a.api.ListItems)

	items := col.Items()
	if col.Err() != nil {
		fmt.Fprintf(a.out, "Could not load items: %s\n", apiMessage(col.Err()))
		return nil
	}
	if len(items) == 0 {
		writeEmpty(a.out, "No items yet", "Add the first image with --add.")
		return nil
	}

	writeItemGrid(a.out, items)
	return nil
}

type itemFetch = func(context.Context) ([]models.Item, error)

func newCollection() *feed.Collection {
	return &feed.Collection{}
}

// fetchInto runs one generation-guarded fetch to completion.
func (a *App) fetchInto(ctx context.Context, col *feed.Collection, fetch itemFetch) {
	gen := col.Begin()
	items, err := fetch(ctx)
	col.Complete(gen, items, err)
}
