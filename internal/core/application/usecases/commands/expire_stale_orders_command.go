package commands

import (
	"errors"
	"time"

	"fruitmall/internal/pkg/errs"
	"fruitmall/internal/pkg/guard"
)

var ErrExpireStaleOrdersCommandIsNotConstructed = errors.New(
	"ExpireStaleOrdersCommand must be created via NewExpireStaleOrdersCommand constructor",
)

// ExpireStaleOrdersCommand represents a system request to cancel orders that
// sat in PENDING past the cutoff without payment. Issued by the background
// expiry job, not by any principal.
type ExpireStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewExpireStaleOrdersCommand creates a command to expire orders placed
// before the cutoff.
func NewExpireStaleOrdersCommand(cutoff time.Time) (ExpireStaleOrdersCommand, error) {
	if cutoff.IsZero() {
		return ExpireStaleOrdersCommand{}, errs.NewValueIsRequiredError("cutoff")
	}

	return ExpireStaleOrdersCommand{
		cutoff: cutoff,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrExpireStaleOrdersCommandIsNotConstructed)
}

// Cutoff returns the placement time before which pending orders expire.
func (c ExpireStaleOrdersCommand) Cutoff() time.Time {
	return c.cutoff
}
