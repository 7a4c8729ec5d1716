package models

import (
	"encoding/json"
	"net/url"
)

type UserRole string

const (
	UserRoleUser  UserRole = "USER"
	UserRoleAdmin UserRole = "ADMIN"
)

type SocialLinks struct {
	GitHub    string `json:"github,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
}

type User struct {
	ID             string      `json:"_id"`
	UserName       string      `json:"userName"`
	Email          string      `json:"email"`
	Role           UserRole    `json:"role"`
	ProfilePicture string      `json:"profilePicture,omitempty"`
	SocialLinks    SocialLinks `json:"socialLinks"`
	CohortID       string      `json:"cohort,omitempty"`
}

// The API normally keys ids as "_id"; a few endpoints return "id".
func (u *User) UnmarshalJSON(data []byte) error {
	type alias User
	aux := struct {
		*alias
		PlainID string `json:"id"`
	}{alias: (*alias)(u)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if u.ID == "" {
		u.ID = aux.PlainID
	}
	return nil
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == UserRoleAdmin
}

// SafeURL reports whether raw is a link worth rendering: absolute http or
// https only. Anything else (javascript:, data:, garbage) renders as a dash.
func SafeURL(raw string) bool {
	if raw == "" {
		return false
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return parsed.Scheme == "http" || parsed.Scheme == "https"
}
