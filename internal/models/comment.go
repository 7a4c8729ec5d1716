package models

import "encoding/json"

type Comment struct {
	ID        string     `json:"_id"`
	Content   string     `json:"content"`
	Author    UserRef    `json:"author"`
	Reactions []Reaction `json:"reactions"`
}

// Older comment documents key the author as "user", newer ones as "author".
func (c *Comment) UnmarshalJSON(data []byte) error {
	type alias Comment
	aux := struct {
		*alias
		PlainID string  `json:"id"`
		UserRef UserRef `json:"user"`
	}{alias: (*alias)(c)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if c.ID == "" {
		c.ID = aux.PlainID
	}
	if c.Author.IsZero() {
		c.Author = aux.UserRef
	}
	return nil
}
