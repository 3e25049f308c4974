// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrPermissionDenied signals the caller has no management rights on the target project.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrBadProject signals the target project is missing or soft-deleted.
	ErrBadProject = errors.New("bad project")
	// ErrBadEnvironment signals the target environment is missing or soft-deleted.
	ErrBadEnvironment = errors.New("bad environment")
	// ErrBadContract signals the target contract is missing or soft-deleted.
	ErrBadContract = errors.New("bad contract")
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
)
