package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for the inventory core. Use errors.Is() to check these.
var (
	// ErrNotFound indicates the requested resource or user does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrPermissionDenied indicates the acting user lacks the required role.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrValidation indicates the request violates a domain constraint.
	ErrValidation = errors.New("validation error")

	// ErrSelfShare indicates an attempt to share a resource with oneself.
	ErrSelfShare = fmt.Errorf("%w: cannot share a resource with yourself", ErrValidation)

	// ErrCycleDetected indicates a location parent chain would become cyclic.
	// The mutation must be aborted with no partial write.
	ErrCycleDetected = errors.New("cycle detected in location hierarchy")
)
