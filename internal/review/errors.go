package review

import (
	"fmt"

	"github.com/sevigo/pr-warden/internal/core"
)

// Error is returned by ReviewOne for any failed review attempt. No record is
// stored for the pull request, so it stays eligible for the next cycle.
type Error struct {
	Key core.PRKey
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("Error reviewing PR #%d in %s: %v", e.Key.Number, e.Key.Repo, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
