package domain

import (
	"errors"
	"time"
)

var ErrUserNotFound = errors.New("user not found")

// User is a Pi Network account known to the builder. Users are created on
// first successful token verification and updated on every authentication.
type User struct {
	ID              string    `json:"id" bson:"id"`
	Username        string    `json:"username" bson:"username"`
	AuthenticatedAt time.Time `json:"authenticated_at" bson:"authenticated_at"`
}
