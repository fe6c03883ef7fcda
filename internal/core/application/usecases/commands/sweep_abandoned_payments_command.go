package commands

import (
	"errors"

	"pharmacy/internal/pkg/guard"
)

var ErrSweepAbandonedPaymentsCommandIsNotConstructed = errors.New(
	"SweepAbandonedPaymentsCommand must be created via NewSweepAbandonedPaymentsCommand constructor",
)

// SweepAbandonedPaymentsCommand cancels gateway orders whose payment was
// never completed, returning their reserved stock to the catalog. Runs
// periodically from the job scheduler.
type SweepAbandonedPaymentsCommand struct {
	guard guard.ConstructorGuard
}

// NewSweepAbandonedPaymentsCommand creates a sweep command.
func NewSweepAbandonedPaymentsCommand() SweepAbandonedPaymentsCommand {
	return SweepAbandonedPaymentsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *SweepAbandonedPaymentsCommand) Validate() error {
	return c.guard.Validate(ErrSweepAbandonedPaymentsCommandIsNotConstructed)
}
