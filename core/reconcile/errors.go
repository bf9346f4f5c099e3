package reconcile

import (
	"errors"
	"fmt"
)

// ErrGuildNotFound is returned when the guild id does not resolve to a guild
// the bot can access.
var ErrGuildNotFound = errors.New("guild not found")

// PlatformError wraps a failed remote call with the operation that failed.
type PlatformError struct {
	// Op is the platform operation, e.g. "create_channel".
	Op string
	// Target identifies what the call was about (guild id, channel id or name).
	Target string
	// Err is the transport error.
	Err error
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Target, e.Err)
}

func (e *PlatformError) Unwrap() error {
	return e.Err
}
