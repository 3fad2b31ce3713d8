package model

import "roombooking/infras/bookingapi"

const (
	EntityName = "session"

	// RedisKeyPrefix namespaces persisted sessions in redis.
	RedisKeyPrefix = "session"
)

type User struct {
	ID       bookingapi.ID `json:"id"`
	Username string        `json:"username"`
	Email    string        `json:"email"`
	FullName string        `json:"full_name"`
}

// Session is the authenticated identity of the current user. Its absence means not authenticated.
type Session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// Valid reports whether the session carries both a user id and an auth token.
func (s Session) Valid() bool {
	return s.User.ID != "" && s.Token != ""
}
