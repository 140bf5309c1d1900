package models

import "strings"

// User is the profile of the logged-in user, persisted between runs.
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	AvatarRef string `json:"avatar,omitempty"`
}

// Initial returns the upper-cased first letter of the username, or "?".
func (u User) Initial() string {
	for _, r := range u.Username {
		return strings.ToUpper(string(r))
	}
	return "?"
}
