package domain

import "errors"

var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrMissingName        = errors.New("missing name")
	ErrInvalidType        = errors.New("missing or invalid type")
	ErrMissingData        = errors.New("missing data")
	ErrParentNotFound     = errors.New("parent not found")
	ErrParentNotFolder    = errors.New("parent is not a folder")
	ErrNotFound           = errors.New("not found")
	ErrFolderHasNoContent = errors.New("a folder doesn't have content")
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Permanent job failures: logged by the worker, never retried.
	ErrMissingJobField = errors.New("job is missing fileId or userId")
	ErrJobFileNotFound = errors.New("file not found for job")
)
