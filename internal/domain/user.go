package domain

import "strings"

// DefaultAvatarURL is stored for users created without an avatar.
const DefaultAvatarURL = "https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png"

// User represents a registered member of the platform.
// Username is the natural key and is always stored lower-case.
type User struct {
	Username  string `json:"username" yaml:"username"`
	AvatarURL string `json:"avatar_url" yaml:"avatar_url"`
	Name      string `json:"name" yaml:"name"`
}

// UserSummary is the shape returned by the user listing.
type UserSummary struct {
	Username string `json:"username"`
}

// NewUser builds a User ready for insertion: the username is normalized and a
// missing avatar is replaced by DefaultAvatarURL.
// Returns ErrIncompleteBody if the username or name is empty.
func NewUser(username, name, avatarURL string) (*User, error) {
	username = NormalizeUsername(username)
	if username == "" || strings.TrimSpace(name) == "" {
		return nil, ErrIncompleteBody
	}
	if IsNumeric(username) {
		return nil, ErrInvalidUsername
	}
	if strings.TrimSpace(avatarURL) == "" {
		avatarURL = DefaultAvatarURL
	}

	return &User{
		Username:  username,
		AvatarURL: avatarURL,
		Name:      name,
	}, nil
}

// NormalizeUsername returns the canonical (lower-case, trimmed) form of a username.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
