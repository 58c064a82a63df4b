package export

import (
	"errors"
	"fmt"
)

// ErrTargetNotFound is matched by errors.Is when the mount point is missing
// from the live document.
var ErrTargetNotFound = errors.New("export target not found")

// TargetNotFoundError reports the id that could not be located
type TargetNotFoundError struct {
	MountID string
}

func (e *TargetNotFoundError) Error() string {
	return fmt.Sprintf("element with id %q not found", e.MountID)
}

// Is lets errors.Is(err, ErrTargetNotFound) match
func (e *TargetNotFoundError) Is(target error) bool {
	return target == ErrTargetNotFound
}

// Error represents a failure in one of the export stages after the target
// was found.
type Error struct {
	Stage   string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("export %s failed: %s: %v", e.Stage, e.Message, e.Cause)
	}
	return fmt.Sprintf("export %s failed: %s", e.Stage, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
