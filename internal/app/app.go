// Package app holds the pages: each one fetches what it needs, renders a
// text view to stdout, and applies any mutation flags the command carried.
// Errors stay scoped to the control that caused them; no page failure is
// fatal to the process.
package app

import (
	"bufio"
	"io"
	"os"

	"github.com/rs/zerolog"

	"gallery/cli/internal/api"
	"gallery/cli/internal/session"
)

type App struct {
	api     *api.Client
	session *session.Store
	log     zerolog.Logger
	out     io.Writer
	in      *bufio.Reader
}

func New(client *api.Client, store *session.Store, logger zerolog.Logger) *App {
	return &App{
		api:     client,
		session: store,
		log:     logger,
		out:     os.Stdout,
		in:      bufio.NewReader(os.Stdin),
	}
}
