package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"gallery/cli/internal/models"
)

func (c *Client) ListItems(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	if err := c.do(ctx, http.MethodGet, "/items", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// LikedItems returns items the current user has liked or reacted to.
func (c *Client) LikedItems(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	if err := c.do(ctx, http.MethodGet, "/items/liked", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) TaggedItems(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	if err := c.do(ctx, http.MethodGet, "/items/tagged", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

type CreateItemInput struct {
	ImagePath   string
	Caption     string
	TaggedUsers []string
}

// CreateItem uploads a new image. Callers refetch the collection afterwards
// instead of splicing, so server-side ordering and derived fields come back.
func (c *Client) CreateItem(ctx context.Context, input CreateItemInput) error {
	tagged, err := json.Marshal(input.TaggedUsers)
	if err != nil {
		return fmt.Errorf("encode tagged users: %w", err)
	}

	fields := map[string]string{
		"caption":     input.Caption,
		"taggedUsers": string(tagged),
	}
	return c.upload(ctx, "/items", "image", input.ImagePath, fields, nil)
}

func (c *Client) UpdateItem(ctx context.Context, itemID, caption string) (models.Item, error) {
	body := map[string]string{"caption": caption}
	var item models.Item
	if err := c.do(ctx, http.MethodPatch, "/items/"+itemID, body, &item); err != nil {
		return models.Item{}, err
	}
	return item, nil
}

func (c *Client) DeleteItem(ctx context.Context, itemID string) error {
	return c.do(ctx, http.MethodDelete, "/items/"+itemID, nil, nil)
}

// ToggleLike flips the current user's like. The server decides add vs
// remove and returns the authoritative item; the client never predicts.
func (c *Client) ToggleLike(ctx context.Context, itemID string) (models.Item, error) {
	var item models.Item
	if err := c.do(ctx, http.MethodPatch, "/items/"+itemID+"/like", struct{}{}, &item); err != nil {
		return models.Item{}, err
	}
	return item, nil
}

// ToggleItemReaction flips the current user's membership in one emoji
// bucket, same arbitration rule as ToggleLike.
func (c *Client) ToggleItemReaction(ctx context.Context, itemID, emoji string) (models.Item, error) {
	body := map[string]string{"emoji": emoji}
	var item models.Item
	if err := c.do(ctx, http.MethodPatch, "/items/"+itemID+"/reactions", body, &item); err != nil {
		return models.Item{}, err
	}
	return item, nil
}
