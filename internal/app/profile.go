package app

import (
	"context"
	"fmt"

	"gallery/cli/internal/api"
)

type ProfileOptions struct {
	Email     string
	GitHub    string
	LinkedIn  string
	Instagram string
	Twitter   string
	Picture   string

	ChangePassword bool
}

// Profile shows the current user and applies any edit flags. Each edit
// reports next to its own control; a failed save never hides the page.
func (a *App) Profile(ctx context.Context, opts ProfileOptions) error {
	writeHeader(a.out, "Profile", "")

	if opts.Picture != "" {
		url, err := a.api.UploadProfilePicture(ctx, opts.Picture)
		if err != nil {
			fmt.Fprintf(a.out, "Picture upload failed: %s\n", apiMessage(err))
		} else {
			fmt.Fprintf(a.out, "Profile picture updated: %s\n", url)
		}
	}

	if opts.Email != "" || opts.GitHub != "" || opts.LinkedIn != "" || opts.Instagram != "" || opts.Twitter != "" {
		a.saveProfile(ctx, opts)
	}

	if opts.ChangePassword {
		a.changePassword(ctx)
	}

	// refresh identity so edits show through
	a.session.Verify(ctx)
	user := a.session.User()
	if user == nil {
		fmt.Fprintln(a.out, "Session expired. Log in again.")
		return nil
	}
	if fresh, err := a.api.Me(ctx); err == nil {
		user = &fresh
	}
	fmt.Fprintf(a.out, "Username: %s\n", user.UserName)
	fmt.Fprintf(a.out, "Email:    %s\n", user.Email)
	fmt.Fprintf(a.out, "Role:     %s\n", user.Role)
	if user.ProfilePicture != "" {
		fmt.Fprintf(a.out, "Picture:  %s\n", user.ProfilePicture)
	}
	writeSocialLink(a.out, "github", user.SocialLinks.GitHub)
	writeSocialLink(a.out, "linkedin", user.SocialLinks.LinkedIn)
	writeSocialLink(a.out, "instagram", user.SocialLinks.Instagram)
	writeSocialLink(a.out, "twitter", user.SocialLinks.Twitter)
	return nil
}

func (a *App) saveProfile(ctx context.Context, opts ProfileOptions) {
	user := a.session.User()
	if user == nil {
		return
	}

	input := api.UpdateProfileInput{
		Email:          user.Email,
		ProfilePicture: user.ProfilePicture,
		SocialLinks:    user.SocialLinks,
	}
	if opts.Email != "" {
		input.Email = opts.Email
	}
	if opts.GitHub != "" {
		input.SocialLinks.GitHub = opts.GitHub
	}
	if opts.LinkedIn != "" {
		input.SocialLinks.LinkedIn = opts.LinkedIn
	}
	if opts.Instagram != "" {
		input.SocialLinks.Instagram = opts.Instagram
	}
	if opts.Twitter != "" {
		input.SocialLinks.Twitter = opts.Twitter
	}

	if err := a.api.UpdateProfile(ctx, input); err != nil {
		fmt.Fprintf(a.out, "Profile update failed: %s\n", apiMessage(err))
		return
	}
	fmt.Fprintln(a.out, "Profile saved.")
}

// changePassword validates locally before touching the server: all fields
// present, minimum length, confirmation match. Server messages come back
// verbatim.
func (a *App) changePassword(ctx context.Context) {
	oldPassword, err := a.promptPassword("Old password")
	if err != nil {
		fmt.Fprintf(a.out, "Password change aborted: %v\n", err)
		return
	}
	newPassword, err := a.promptPassword("New password")
	if err != nil {
		fmt.Fprintf(a.out, "Password change aborted: %v\n", err)
		return
	}
	confirm, err := a.promptPassword("Confirm new password")
	if err != nil {
		fmt.Fprintf(a.out, "Password change aborted: %v\n", err)
		return
	}

	if msg := validatePasswordChange(oldPassword, newPassword, confirm); msg != "" {
		fmt.Fprintln(a.out, msg)
		return
	}

	err = a.api.ChangePassword(ctx, api.ChangePasswordInput{
		OldPassword: oldPassword,
		NewPassword: newPassword,
	})
	if err != nil {
		fmt.Fprintf(a.out, "Password update failed: %s\n", apiMessage(err))
		return
	}
	fmt.Fprintln(a.out, "Password updated successfully.")
}

func validatePasswordChange(oldPassword, newPassword, confirm string) string {
	switch {
	case oldPassword == "" || newPassword == "" || confirm == "":
		return "All password fields are required."
	case len(newPassword) < 6:
		return "New password must be at least 6 characters."
	case newPassword != confirm:
		return "New passwords do not match."
	}
	return ""
}
