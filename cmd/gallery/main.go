package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"gallery/cli/internal/api"
	"gallery/cli/internal/app"
	"gallery/cli/internal/config"
	"gallery/cli/internal/log"
	"gallery/cli/internal/router"
	"gallery/cli/internal/session"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := log.New(cfg.Environment)

	tokens := session.NewTokenStore(cfg.Session.TokenPath)
	client := api.NewClient(cfg.API, tokens.Read, logger)
	store := session.NewStore(client, tokens, logger)
	pages := app.New(client, store, logger)

	if err := run(context.Background(), pages, store, logger, os.Args[1:]); err != nil {
		logger.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, pages *app.App, store *session.Store, logger zerolog.Logger, args []string) error {
	command := "home"
	if len(args) > 0 {
		command = args[0]
		args = args[1:]
	}

	// Session commands sit outside the route tree.
	switch command {
	case "logout":
		pages.Logout()
		return nil
	case "whoami":
		store.Verify(ctx)
		pages.Whoami()
		return nil
	case "help", "-h", "--help":
		usage()
		return nil
	}

	page, err := parsePage(command, args)
	if err != nil {
		return err
	}

	// Resolve the persisted token before any guard decision. A rejected
	// token signals a forced trip to the login page.
	if nav := store.Verify(ctx); nav == session.NavigateLogin {
		logger.Info().Msg("session expired, redirecting to login")
	}

	return navigate(ctx, pages, store, logger, page)
}

// navigate walks guard decisions until a page renders. Redirects re-enter
// the loop with the target path and no page options, exactly like a router
// replacing the location.
func navigate(ctx context.Context, pages *app.App, store *session.Store, logger zerolog.Logger, page pageCall) error {
	path := page.path
	for {
		decision := router.Resolve(path, store)
		switch decision.Outcome {
		case router.OutcomeLoading:
			// verification is awaited synchronously before navigation,
			// so this never holds for long
			fmt.Println("Loading...")
			return nil
		case router.OutcomeRedirect:
			logger.Debug().Str("from", path).Str("to", decision.Target).Msg("redirect")
			if decision.Target == path {
				return fmt.Errorf("redirect loop at %s", path)
			}
			path = decision.Target
			if path != page.path {
				page = pageCall{path: path}
			}
		case router.OutcomeRender:
			nav, err := renderPage(ctx, pages, path, page)
			if err != nil {
				return err
			}
			switch nav {
			case session.NavigateHome:
				page = pageCall{path: "/"}
				path = "/"
			case session.NavigateLogin:
				page = pageCall{path: "/login"}
				path = "/login"
			default:
				return nil
			}
		}
	}
}

func renderPage(ctx context.Context, pages *app.App, path string, page pageCall) (session.Navigation, error) {
	switch path {
	case "/login":
		return pages.Login(ctx)
	case "/signup":
		return pages.Signup(ctx)
	case "/":
		if page.itemID != "" {
			return session.NavigateNone, pages.ItemDetails(ctx, page.itemID, page.itemActions)
		}
		return session.NavigateNone, pages.Home(ctx, page.home)
	case "/profile":
		return session.NavigateNone, pages.Profile(ctx, page.profile)
	case "/cohort":
		return session.NavigateNone, pages.Cohort(ctx)
	case "/liked":
		return session.NavigateNone, pages.Liked(ctx)
	case "/reacted":
		return session.NavigateNone, pages.Reacted(ctx)
	case "/tagged":
		return session.NavigateNone, pages.Tagged(ctx)
	case "/admin":
		return session.NavigateNone, pages.Admin(ctx, page.admin)
	}
	return session.NavigateNone, fmt.Errorf("no page for %s", path)
}

// pageCall is one parsed command: the route it targets plus its options.
type pageCall struct {
	path        string
	home        app.HomeOptions
	itemID      string
	itemActions app.ItemActions
	profile     app.ProfileOptions
	admin       app.AdminOptions
}

func parsePage(command string, args []string) (pageCall, error) {
	switch command {
	case "login":
		return pageCall{path: "/login"}, nil
	case "signup":
		return pageCall{path: "/signup"}, nil
	case "home":
		return parseHome(args)
	case "item":
		return parseItem(args)
	case "profile":
		return parseProfile(args)
	case "cohort":
		return pageCall{path: "/cohort"}, nil
	case "liked":
		return pageCall{path: "/liked"}, nil
	case "reacted":
		return pageCall{path: "/reacted"}, nil
	case "tagged":
		return pageCall{path: "/tagged"}, nil
	case "admin":
		return parseAdmin(args)
	default:
		// unknown commands behave like unmatched paths: straight home
		return pageCall{path: "/" + command}, nil
	}
}

func parseHome(args []string) (pageCall, error) {
	fs := flag.NewFlagSet("home", flag.ContinueOnError)
	add := fs.String("add", "", "path of an image to upload")
	caption := fs.String("caption", "", "caption for the new image")
	tagged := fs.String("tag", "", "comma-separated usernames to tag")
	if err := fs.Parse(args); err != nil {
		return pageCall{}, err
	}

	opts := app.HomeOptions{AddImage: *add, Caption: *caption}
	if *tagged != "" {
		for _, name := range strings.Split(*tagged, ",") {
			if name = strings.TrimSpace(name); name != "" {
				opts.TaggedUsers = append(opts.TaggedUsers, name)
			}
		}
	}
	return pageCall{path: "/", home: opts}, nil
}

func parseItem(args []string) (pageCall, error) {
	fs := flag.NewFlagSet("item", flag.ContinueOnError)
	like := fs.Bool("like", false, "toggle your like")
	react := fs.String("react", "", "toggle a reaction emoji")
	comment := fs.String("comment", "", "post a comment")
	editCaption := fs.String("edit-caption", "", "replace the caption")
	del := fs.Bool("delete", false, "delete the item")
	editComment := fs.String("edit-comment", "", "comment id to edit")
	commentText := fs.String("comment-text", "", "new text for --edit-comment")
	deleteComment := fs.String("delete-comment", "", "comment id to delete")
	reactComment := fs.String("react-comment", "", "comment id to react to")
	commentEmoji := fs.String("comment-emoji", "", "emoji for --react-comment")
	if err := fs.Parse(args); err != nil {
		return pageCall{}, err
	}
	if fs.NArg() < 1 {
		return pageCall{}, fmt.Errorf("usage: gallery item <id> [flags]")
	}

	actions := app.ItemActions{
		Like:              *like,
		React:             *react,
		Comment:           *comment,
		Delete:            *del,
		EditCommentID:     *editComment,
		EditCommentText:   *commentText,
		DeleteComment:     *deleteComment,
		ReactCommentID:    *reactComment,
		ReactCommentEmoji: *commentEmoji,
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "edit-caption" {
			actions.HasNewCaption = true
			actions.EditCaption = *editCaption
		}
	})

	return pageCall{path: "/", itemID: fs.Arg(0), itemActions: actions}, nil
}

func parseProfile(args []string) (pageCall, error) {
	fs := flag.NewFlagSet("profile", flag.ContinueOnError)
	email := fs.String("email", "", "update email")
	github := fs.String("github", "", "update github link")
	linkedin := fs.String("linkedin", "", "update linkedin link")
	instagram := fs.String("instagram", "", "update instagram link")
	twitter := fs.String("twitter", "", "update twitter link")
	picture := fs.String("picture", "", "path of a new profile picture")
	password := fs.Bool("password", false, "change password (prompts)")
	if err := fs.Parse(args); err != nil {
		return pageCall{}, err
	}

	return pageCall{path: "/profile", profile: app.ProfileOptions{
		Email:          *email,
		GitHub:         *github,
		LinkedIn:       *linkedin,
		Instagram:      *instagram,
		Twitter:        *twitter,
		Picture:        *picture,
		ChangePassword: *password,
	}}, nil
}

func parseAdmin(args []string) (pageCall, error) {
	fs := flag.NewFlagSet("admin", flag.ContinueOnError)
	cohort := fs.String("cohort", "", "cohort id to inspect")
	watch := fs.Bool("watch", false, "interactive cohort re-selection")
	if err := fs.Parse(args); err != nil {
		return pageCall{}, err
	}

	return pageCall{path: "/admin", admin: app.AdminOptions{
		CohortID: *cohort,
		Watch:    *watch,
	}}, nil
}

func usage() {
	fmt.Println(`usage: gallery <command> [flags]

  login, signup            authenticate
  home [--add --caption --tag]   gallery feed (default)
  item <id> [flags]        item details and moderation
  liked, reacted, tagged   filtered feeds
  cohort                   students in your cohort
  profile [flags]          view and edit your profile
  admin [--cohort --watch] moderation dashboard (admin only)
  whoami, logout           session`)
}
