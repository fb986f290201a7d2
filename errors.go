package onloadimg

import (
	"github.com/pkg/errors"
)

// Errors terminating an invocation. Each is fatal, nothing is retried.
var (
	// ErrUnknownVersion is returned if the requested release is not in the catalog.
	ErrUnknownVersion = errors.New("unknown onload version")

	// ErrMissingFlavor is returned if a build-related action is requested without a flavor.
	ErrMissingFlavor = errors.New("no flavor specified")

	// ErrUnknownFlavor is returned if the requested flavor is not in the catalog.
	ErrUnknownFlavor = errors.New("unknown flavor")

	// ErrConflictingTagSpec is returned if both an explicit and an auto-generated tag are requested.
	ErrConflictingTagSpec = errors.New("conflicting tag options")

	// ErrMissingTagSpec is returned if gettag has nothing to resolve.
	ErrMissingTagSpec = errors.New("no tag configured")

	// ErrPushPrecondition is returned if push is requested without execution or without a tag.
	ErrPushPrecondition = errors.New("push not possible")

	// ErrNoAction is returned if no action-selecting flag was given.
	ErrNoAction = errors.New("no action specified")
)
