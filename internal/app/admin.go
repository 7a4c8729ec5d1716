package app

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"gallery/cli/internal/feed"
	"gallery/cli/internal/models"
)

type AdminOptions struct {
	CohortID string
	Watch    bool
}

// Admin is the moderation dashboard: pick a cohort, review its students and
// uploads. Watch mode re-selects interactively; a slow fetch for a
// previously selected cohort can never overwrite the newer selection thanks
// to the generation guard.
func (a *App) Admin(ctx context.Context, opts AdminOptions) error {
	writeHeader(a.out, "Admin Moderation", "Select a cohort, review all uploads, and moderate items.")

	cohorts, err := a.api.AdminCohorts(ctx)
	if err != nil {
		a.log.Warn().Err(err).Msg("cohort list fetch failed")
		cohorts = nil
	}
	if len(cohorts) == 0 {
		writeEmpty(a.out, "No cohorts found", "")
		return nil
	}

	fmt.Fprintln(a.out, "Cohorts:")
	for _, cohort := range cohorts {
		fmt.Fprintf(a.out, "  [%s] %s\n", cohort.ID, cohort.Label())
	}
	fmt.Fprintln(a.out)

	selected := opts.CohortID
	if selected == "" {
		selected = cohorts[0].ID
	}

	view := newCohortView(a)
	done := view.load(ctx, selected)
	<-done

	if !opts.Watch {
		return nil
	}

	for {
		line, err := a.promptLine("cohort (id, or q to quit)")
		if err != nil || line == "q" {
			return nil
		}
		if line == "" {
			continue
		}
		// fire and keep accepting input; stale completions are dropped
		view.load(ctx, strings.TrimSpace(line))
	}
}

// cohortView holds one selected cohort's students and items. Both halves
// load jointly so the view never renders half a cohort. mu covers the
// students slice and the render itself: a completion landing between another
// load's completion and its render can neither tear the output nor race the
// slice.
type cohortView struct {
	app *App
	col *feed.Collection

	mu       sync.Mutex
	students []models.User
}

func newCohortView(a *App) *cohortView {
	return &cohortView{app: a, col: newCollection()}
}

// load starts a joint students+items fetch for the cohort and returns a
// channel closed when the fetch lands (or is dropped as stale).
func (v *cohortView) load(ctx context.Context, cohortID string) <-chan struct{} {
	gen := v.col.Begin()
	done := make(chan struct{})

	go func() {
		defer close(done)

		var (
			students []models.User
			items    []models.Item
		)
		var group errgroup.Group
		group.Go(func() error {
			var err error
			students, err = v.app.api.AdminCohortStudents(ctx, cohortID)
			return err
		})
		group.Go(func() error {
			var err error
			items, err = v.app.api.AdminCohortItems(ctx, cohortID)
			return err
		})
		err := group.Wait()

		v.mu.Lock()
		defer v.mu.Unlock()

		if !v.col.Complete(gen, items, err) {
			// superseded by a newer selection
			return
		}
		if err != nil {
			fmt.Fprintf(v.app.out, "Could not load cohort %s: %s\n", cohortID, apiMessage(err))
			v.students = nil
			return
		}
		v.students = students
		v.render(cohortID)
	}()

	return done
}

// render writes the selected cohort. Called with mu held.
func (v *cohortView) render(cohortID string) {
	out := v.app.out

	fmt.Fprintf(out, "Cohort %s\n", cohortID)
	fmt.Fprintf(out, "Students (%d)\n", len(v.students))
	if len(v.students) == 0 {
		fmt.Fprintln(out, "  No students in this cohort.")
	}
	for _, student := range v.students {
		fmt.Fprintf(out, "  [%s] %s <%s>\n", student.ID, student.UserName, student.Email)
	}

	items := v.col.Items()
	fmt.Fprintf(out, "Images (%d)\n", len(items))
	if len(items) == 0 {
		fmt.Fprintln(out, "  No images in this cohort.")
	}
	for _, item := range items {
		postedBy := item.PostedBy.UserName()
		if postedBy == "" {
			postedBy = "Unknown"
		}
		fmt.Fprintf(out, "  [%s] %s (%d reactions)\n", item.ID, postedBy, len(item.Reactions))
	}
	fmt.Fprintln(out)
}
