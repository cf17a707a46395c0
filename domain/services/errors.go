package services

import "errors"

// Sentinel errors for the failure taxonomy. Handlers map these to HTTP
// status codes with errors.Is.
var (
	// Validation (400)
	ErrInvalidStatus = errors.New("invalid task status")

	// Authentication (401)
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Authorization (403)
	ErrForbidden = errors.New("admin role required")

	// Not found (404)
	ErrTaskNotFound = errors.New("task not found")
	ErrUserNotFound = errors.New("user not found")

	// Conflict (409)
	ErrEmailTaken    = errors.New("email already exists")
	ErrUsernameTaken = errors.New("username already exists")
)
