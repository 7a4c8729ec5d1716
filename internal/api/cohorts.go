package api

import (
	"context"
	"net/http"

	"gallery/cli/internal/models"
)

// MyCohortStudents returns the students sharing the current user's cohort.
func (c *Client) MyCohortStudents(ctx context.Context) ([]models.User, error) {
	var students []models.User
	if err := c.do(ctx, http.MethodGet, "/cohorts/me/students", nil, &students); err != nil {
		return nil, err
	}
	return students, nil
}

// Admin-only endpoints below; the server rejects non-admin tokens.

func (c *Client) AdminCohorts(ctx context.Context) ([]models.Cohort, error) {
	var cohorts []models.Cohort
	if err := c.do(ctx, http.MethodGet, "/admin/cohorts", nil, &cohorts); err != nil {
		return nil, err
	}
	return cohorts, nil
}

func (c *Client) AdminCohortStudents(ctx context.Context, cohortID string) ([]models.User, error) {
	var students []models.User
	if err := c.do(ctx, http.MethodGet, "/admin/cohorts/"+cohortID+"/students", nil, &students); err != nil {
		return nil, err
	}
	return students, nil
}

func (c *Client) AdminCohortItems(ctx context.Context, cohortID string) ([]models.Item, error) {
	var items []models.Item
	if err := c.do(ctx, http.MethodGet, "/admin/cohorts/"+cohortID+"/items", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}
