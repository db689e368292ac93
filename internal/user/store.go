package user

import (
	"context"
	"errors"
)

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type User struct {
	Name string
	Hash []byte
}

// Store holds registered users. Create is an atomic check-then-insert:
// concurrent registrations of the same username yield exactly one success.
type Store interface {
	Create(ctx context.Context, username, password string) error
	Verify(ctx context.Context, username, password string) (User, error)
	Ping(ctx context.Context) error
}
