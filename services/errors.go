package services

import "errors"

// Failure variants surfaced by the services; controllers map them to HTTP
// status codes.
var (
	ErrUsernameTaken    = errors.New("username already exists")
	ErrEmailTaken       = errors.New("email already exists")
	ErrInvalidUsername  = errors.New("invalid username")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrUserNotFound     = errors.New("user not found")
	ErrExerciseNotFound = errors.New("exercise not found")
)
