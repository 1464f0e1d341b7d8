package models

import "errors"

// Domain errors. Ownership misses surface as not-found so the existence of
// another user's resources is never leaked.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrUserNotFound       = errors.New("user not found")
	ErrProjectNotFound    = errors.New("project not found")
	ErrTagNotFound        = errors.New("tag not found")
	ErrTagNameTaken       = errors.New("tag with this name already exists")
	ErrTodoNotFound       = errors.New("todo not found")
)
