package app

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"gallery/cli/internal/authz"
	"gallery/cli/internal/feed"
	"gallery/cli/internal/models"
)

type ItemActions struct {
	Like          bool
	React         string
	Comment       string
	EditCaption   string
	HasNewCaption bool
	Delete        bool

	EditCommentID     string
	EditCommentText   string
	DeleteComment     string
	ReactCommentID    string
	ReactCommentEmoji string
}

// ItemDetails is the detail overlay: the item, its comments, and every
// moderation control the current user is allowed to touch. The item grid
// and the comment thread load jointly so the view never renders torn.
func (a *App) ItemDetails(ctx context.Context, itemID string, act ItemActions) error {
	col := newCollection()
	thread := &feed.Thread{}
	colGen := col.Begin()
	threadGen := thread.Begin()

	// Joint fetch: the view renders only after both resolve. Each failure
	// stays scoped to its own half, so a comment failure still shows the
	// item.
	var group errgroup.Group
	group.Go(func() error {
		items, err := a.api.ListItems(ctx)
		col.Complete(colGen, items, err)
		return nil
	})
	group.Go(func() error {
		comments, err := a.api.ListComments(ctx, itemID)
		thread.Complete(threadGen, comments, err)
		return nil
	})
	_ = group.Wait()

	if col.Err() != nil {
		fmt.Fprintf(a.out, "Could not load item: %s\n", apiMessage(col.Err()))
		return nil
	}

	col.Select(itemID)
	item, ok := col.Selected()
	if !ok {
		fmt.Fprintf(a.out, "No item with id %s.\n", itemID)
		return nil
	}

	a.applyItemActions(ctx, col, thread, act)

	item, ok = col.Selected()
	if !ok {
		// deleted by one of the actions; the detail view is closed
		return nil
	}
	a.renderDetails(item, thread)
	return nil
}

func (a *App) applyItemActions(ctx context.Context, col *feed.Collection, thread *feed.Thread, act ItemActions) {
	item, ok := col.Selected()
	if !ok {
		return
	}
	current := a.session.User()
	canManage := authz.CanManage(item.PostedBy, current)

	if act.Like {
		updated, err := a.api.ToggleLike(ctx, item.ID)
		if err != nil {
			fmt.Fprintf(a.out, "Like failed: %s\n", apiMessage(err))
		} else {
			col.ApplyUpdate(updated)
		}
	}

	if act.React != "" {
		updated, err := a.api.ToggleItemReaction(ctx, item.ID, act.React)
		if err != nil {
			fmt.Fprintf(a.out, "Reaction failed: %s\n", apiMessage(err))
		} else {
			col.ApplyUpdate(updated)
		}
	}

	if act.HasNewCaption {
		if !canManage {
			fmt.Fprintln(a.out, "Only the owner or an admin can edit this item.")
		} else if updated, err := a.api.UpdateItem(ctx, item.ID, strings.TrimSpace(act.EditCaption)); err != nil {
			fmt.Fprintf(a.out, "Update failed: %s\n", apiMessage(err))
		} else {
			col.ApplyUpdate(updated)
		}
	}

	if act.Comment != "" {
		if err := a.api.CreateComment(ctx, item.ID, act.Comment); err != nil {
			fmt.Fprintf(a.out, "Failed to post comment: %s\n", apiMessage(err))
		} else {
			// creates refetch; the server owns ordering
			gen := thread.Begin()
			comments, err := a.api.ListComments(ctx, item.ID)
			thread.Complete(gen, comments, err)
		}
	}

	a.applyCommentActions(ctx, thread, act)

	if act.Delete {
		if !canManage {
			fmt.Fprintln(a.out, "Only the owner or an admin can delete this item.")
		} else if err := a.api.DeleteItem(ctx, item.ID); err != nil {
			fmt.Fprintf(a.out, "Delete failed: %s\n", apiMessage(err))
		} else {
			col.ApplyDelete(item.ID)
			fmt.Fprintln(a.out, "Item deleted.")
		}
	}
}

func (a *App) applyCommentActions(ctx context.Context, thread *feed.Thread, act ItemActions) {
	current := a.session.User()

	if act.ReactCommentID != "" && act.ReactCommentEmoji != "" {
		updated, err := a.api.ToggleCommentReaction(ctx, act.ReactCommentID, act.ReactCommentEmoji)
		if err != nil {
			fmt.Fprintf(a.out, "Comment reaction failed: %s\n", apiMessage(err))
		} else {
			thread.ApplyUpdate(updated)
		}
	}

	if act.EditCommentID != "" {
		if !a.canManageComment(thread, act.EditCommentID, current) {
			fmt.Fprintln(a.out, "Only the author or an admin can edit this comment.")
		} else if updated, err := a.api.UpdateComment(ctx, act.EditCommentID, act.EditCommentText); err != nil {
			fmt.Fprintf(a.out, "Comment update failed: %s\n", apiMessage(err))
		} else {
			thread.ApplyUpdate(updated)
		}
	}

	if act.DeleteComment != "" {
		if !a.canManageComment(thread, act.DeleteComment, current) {
			fmt.Fprintln(a.out, "Only the author or an admin can delete this comment.")
		} else if err := a.api.DeleteComment(ctx, act.DeleteComment); err != nil {
			fmt.Fprintf(a.out, "Comment delete failed: %s\n", apiMessage(err))
		} else {
			thread.ApplyDelete(act.DeleteComment)
		}
	}
}

func (a *App) canManageComment(thread *feed.Thread, commentID string, current *models.User) bool {
	for _, c := range thread.Comments() {
		if c.ID == commentID {
			return authz.CanManage(c.Author, current)
		}
	}
	// unknown id; let the server be the judge
	return true
}

func (a *App) renderDetails(item models.Item, thread *feed.Thread) {
	current := a.session.User()

	writeItemCard(a.out, item)

	if len(item.TaggedUsers) > 0 {
		names := make([]string, 0, len(item.TaggedUsers))
		for _, u := range item.TaggedUsers {
			names = append(names, u.UserName)
		}
		fmt.Fprintf(a.out, "    tagged:    %s\n", strings.Join(names, ", "))
	}

	if authz.CanManage(item.PostedBy, current) {
		fmt.Fprintln(a.out, "    you can edit or delete this item")
	}

	var mine []string
	for _, r := range item.Reactions {
		if authz.HasReacted(item.Reactions, r.Emoji, current) {
			mine = append(mine, r.Emoji)
		}
	}
	if len(mine) > 0 {
		fmt.Fprintf(a.out, "    you reacted: %s\n", strings.Join(mine, " "))
	}

	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "Comments:")
	comments := thread.Comments()
	if thread.Err() != nil {
		fmt.Fprintf(a.out, "  failed to load comments: %s\n", apiMessage(thread.Err()))
		return
	}
	if len(comments) == 0 {
		fmt.Fprintln(a.out, "  No comments yet.")
		return
	}
	for _, c := range comments {
		author := c.Author.UserName()
		if author == "" {
			author = "User"
		}
		fmt.Fprintf(a.out, "  [%s] %s: %s\n", c.ID, author, c.Content)
		for _, r := range c.Reactions {
			mark := ""
			if authz.HasReacted(c.Reactions, r.Emoji, current) {
				mark = " *"
			}
			fmt.Fprintf(a.out, "      %s x%d%s\n", r.Emoji, authz.ReactionCount(c.Reactions, r.Emoji), mark)
		}
	}
}
