package api

import (
	"context"
	"net/http"

	"gallery/cli/internal/models"
)

func (c *Client) Me(ctx context.Context) (models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

type UpdateProfileInput struct {
	Email          string             `json:"email"`
	ProfilePicture string             `json:"profilePicture"`
	SocialLinks    models.SocialLinks `json:"socialLinks"`
}

func (c *Client) UpdateProfile(ctx context.Context, input UpdateProfileInput) error {
	return c.do(ctx, http.MethodPatch, "/users/me", input, nil)
}

type ChangePasswordInput struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

func (c *Client) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	return c.do(ctx, http.MethodPatch, "/users/me/password", input, nil)
}

// UploadProfilePicture sends the image and returns the hosted URL.
func (c *Client) UploadProfilePicture(ctx context.Context, imagePath string) (string, error) {
	var resp struct {
		ProfilePicture string `json:"profilePicture"`
	}
	if err := c.upload(ctx, "/users/me/profile-picture", "image", imagePath, nil, &resp); err != nil {
		return "", err
	}
	return resp.ProfilePicture, nil
}
