// Package store is the contract between the compiler and the document
// store client executing its scripts. The client is peripheral glue: it
// submits the compiled script verbatim and reports guard failures back as
// rejections.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/signadot/espatch/script"
)

// ErrRejected is returned when the store aborted an update script on a
// guard. The store executes scripts atomically, so the document is
// unmodified when this is returned; the caller owns any retry policy.
var ErrRejected = errors.New("update rejected")

// Updater applies one compiled script to the document named by id.
// refresh is one of the refresh package literals. Implementations must
// translate any script execution failure into an error wrapping
// ErrRejected that carries the guard's explanation.
type Updater interface {
	Update(ctx context.Context, id string, s *script.Script, refresh string) error
}

// Rejected wraps a guard explanation as the rejection reason an Updater
// reports.
func Rejected(explanation string) error {
	return fmt.Errorf("%w: %s", ErrRejected, explanation)
}
