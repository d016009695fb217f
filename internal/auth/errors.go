package auth

import "errors"

var (
	ErrNoAuthenticatedUser = errors.New("no authenticated user in request ctx")
	ErrInsufficientRole    = errors.New("insufficient role")
)
