package models

import "encoding/json"

// Reaction is one emoji bucket on an item or comment. Emoji values are
// unique within an entity; a user may sit in several buckets at once.
type Reaction struct {
	Emoji string    `json:"emoji"`
	Users []UserRef `json:"users"`
}

type Item struct {
	ID          string     `json:"_id"`
	ImageURL    string     `json:"imageUrl"`
	Caption     string     `json:"caption,omitempty"`
	PostedBy    UserRef    `json:"postedBy"`
	Likes       []string   `json:"likes"`
	Reactions   []Reaction `json:"reactions"`
	TaggedUsers []User     `json:"taggedUsers"`
}

func (i *Item) UnmarshalJSON(data []byte) error {
	type alias Item
	aux := struct {
		*alias
		PlainID string `json:"id"`
	}{alias: (*alias)(i)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if i.ID == "" {
		i.ID = aux.PlainID
	}
	return nil
}

func (i *Item) LikeCount() int {
	return len(i.Likes)
}

func (i *Item) LikedBy(userID string) bool {
	for _, id := range i.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
