package app

import (
	"context"
	"fmt"
)

// Cohort lists the students sharing the current user's cohort.
func (a *App) Cohort(ctx context.Context) error {
	writeHeader(a.out, "My Cohort", "Students from the same cohort as your account.")

	students, err := a.api.MyCohortStudents(ctx)
	if err != nil {
		a.log.Warn().Err(err).Msg("cohort fetch failed")
		students = nil
	}

	if len(students) == 0 {
		writeEmpty(a.out, "No students found", "Add cohort assignments to users to populate this page.")
		return nil
	}

	for _, student := range students {
		writeStudentCard(a.out, student)
		fmt.Fprintln(a.out)
	}
	return nil
}
