package api

import (
	"context"
	"net/http"

	"gallery/cli/internal/models"
)

func (c *Client) ListComments(ctx context.Context, itemID string) ([]models.Comment, error) {
	var comments []models.Comment
	if err := c.do(ctx, http.MethodGet, "/comments/items/"+itemID+"/comments", nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (c *Client) CreateComment(ctx context.Context, itemID, content string) error {
	body := map[string]string{"content": content}
	return c.do(ctx, http.MethodPost, "/comments/items/"+itemID+"/comments", body, nil)
}

func (c *Client) UpdateComment(ctx context.Context, commentID, content string) (models.Comment, error) {
	body := map[string]string{"content": content}
	var comment models.Comment
	if err := c.do(ctx, http.MethodPatch, "/comments/comments/"+commentID, body, &comment); err != nil {
		return models.Comment{}, err
	}
	return comment, nil
}

func (c *Client) DeleteComment(ctx context.Context, commentID string) error {
	return c.do(ctx, http.MethodDelete, "/comments/comments/"+commentID, nil, nil)
}

func (c *Client) ToggleCommentReaction(ctx context.Context, commentID, emoji string) (models.Comment, error) {
	body := map[string]string{"emoji": emoji}
	var comment models.Comment
	if err := c.do(ctx, http.MethodPatch, "/comments/comments/"+commentID+"/reactions", body, &comment); err != nil {
		return models.Comment{}, err
	}
	return comment, nil
}
