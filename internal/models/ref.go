package models

import "encoding/json"

// UserRef is an owner/author field as the API actually sends it: sometimes a
// raw id string, sometimes an embedded user document. Callers compare and
// display through the accessors instead of poking at the wire shape.
type UserRef struct {
	id   string
	user *User
}

func RefFromID(id string) UserRef {
	return UserRef{id: id}
}

func RefFromUser(u User) UserRef {
	return UserRef{id: u.ID, user: &u}
}

func (r UserRef) ID() string {
	return r.id
}

// UserName returns the embedded display name, or "" when the API sent only
// an id.
func (r UserRef) UserName() string {
	if r.user == nil {
		return ""
	}
	return r.user.UserName
}

func (r UserRef) User() *User {
	return r.user
}

func (r UserRef) IsZero() bool {
	return r.id == "" && r.user == nil
}

func (r *UserRef) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = UserRef{}
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*r = UserRef{id: id}
		return nil
	}

	var u User
	if err := json.Unmarshal(data, &u); err != nil {
		return err
	}
	*r = UserRef{id: u.ID, user: &u}
	return nil
}

func (r UserRef) MarshalJSON() ([]byte, error) {
	if r.user != nil {
		return json.Marshal(r.user)
	}
	return json.Marshal(r.id)
}
