package actions

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned by mutations targeting a document that no longer
// exists. Reads never return it; they return (nil, nil) instead.
var ErrNotFound = errors.New("not found")

// ValidationError carries a human-readable message for the admin form.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// UploadError means the media store rejected or failed to process an asset.
// The surrounding mutation is aborted; no document is written.
type UploadError struct {
	Err error
}

func (e *UploadError) Error() string { return "image upload failed: " + e.Err.Error() }
func (e *UploadError) Unwrap() error { return e.Err }

// PersistenceError wraps a store failure: duplicate key, unavailable store.
// Handlers surface it as a generic failure; the cause stays in the logs.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *PersistenceError) Unwrap() error { return e.Err }

// Duplicate reports whether the failure was a unique-index collision
// (e.g. two titles slugifying to the same value).
func (e *PersistenceError) Duplicate() bool {
	return mongo.IsDuplicateKeyError(e.Err)
}

// ReferentialIntegrityError blocks a deletion that would break soft
// references (category still used by projects). Shown verbatim to the admin.
type ReferentialIntegrityError struct {
	Message string
}

func (e *ReferentialIntegrityError) Error() string { return e.Message }
