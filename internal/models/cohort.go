package models

import (
	"encoding/json"
	"fmt"
)

type Cohort struct {
	ID     string `json:"_id"`
	Course string `json:"course"`
	Month  string `json:"month"`
	Year   int    `json:"year"`
}

func (c *Cohort) UnmarshalJSON(data []byte) error {
	type alias Cohort
	aux := struct {
		*alias
		PlainID string `json:"id"`
	}{alias: (*alias)(c)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if c.ID == "" {
		c.ID = aux.PlainID
	}
	return nil
}

// Label is the display form used by the admin dashboard selector.
func (c Cohort) Label() string {
	return fmt.Sprintf("%s-%s-%d", c.Course, c.Month, c.Year)
}
