package app

import (
	"context"
	"errors"
	"fmt"

	"gallery/cli/internal/api"
	"gallery/cli/internal/session"
)

// Login renders the login page: prompt for credentials, hand them to the
// session store, report the navigation signal back to the shell loop.
func (a *App) Login(ctx context.Context) (session.Navigation, error) {
	writeHeader(a.out, "Log in", "")

	email, err := a.promptLine("Email")
	if err != nil {
		return session.NavigateNone, err
	}
	password, err := a.promptPassword("Password")
	if err != nil {
		return session.NavigateNone, err
	}

	nav, err := a.session.Login(ctx, api.Credentials{Email: email, Password: password})
	if err != nil {
		fmt.Fprintf(a.out, "Login failed: %s\n", apiMessage(err))
		return nav, nil
	}

	fmt.Fprintf(a.out, "Logged in as %s.\n", a.session.User().UserName)
	return nav, nil
}

func (a *App) Signup(ctx context.Context) (session.Navigation, error) {
	writeHeader(a.out, "Sign up", "")

	userName, err := a.promptLine("Username")
	if err != nil {
		return session.NavigateNone, err
	}
	email, err := a.promptLine("Email")
	if err != nil {
		return session.NavigateNone, err
	}
	password, err := a.promptPassword("Password")
	if err != nil {
		return session.NavigateNone, err
	}

	nav, err := a.session.Signup(ctx, api.SignupInput{
		UserName: userName,
		Email:    email,
		Password: password,
	})
	if err != nil {
		fmt.Fprintf(a.out, "Signup failed: %s\n", apiMessage(err))
		return nav, nil
	}

	fmt.Fprintf(a.out, "Welcome, %s.\n", a.session.User().UserName)
	return nav, nil
}

func (a *App) Logout() session.Navigation {
	nav := a.session.Logout()
	fmt.Fprintln(a.out, "Logged out.")
	return nav
}

func (a *App) Whoami() {
	user := a.session.User()
	if user == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return
	}

	fmt.Fprintf(a.out, "%s <%s> role=%s\n", user.UserName, user.Email, user.Role)

	if token := a.session.Token(); token != "" {
		if info, err := session.Peek(token); err == nil && !info.ExpiresAt.IsZero() {
			fmt.Fprintf(a.out, "token expires %s\n", info.ExpiresAt.Format("2006-01-02 15:04"))
		}
	}
}

// apiMessage prefers the server's own message over the wrapped error text.
func apiMessage(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}
