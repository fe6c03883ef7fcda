package commands

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/guard"
)

var (
	ErrChangeCartItemCommandIsNotConstructed = errors.New(
		"ChangeCartItemCommand must be created via NewChangeCartItemCommand constructor",
	)
	ErrSessionIDIsRequired = errors.New("session id is required")
	ErrDeltaIsZero         = errors.New("delta must not be zero")
)

// ChangeCartItemCommand represents a relative cart mutation: adding an item
// (+1), incrementing, or decrementing it. The resulting quantity is clamped
// to available stock.
//
// Example:
//
//	cmd, err := NewChangeCartItemCommand(sessionID, medicineID, +1)
//	if err != nil {
//	    return err
//	}
//	mutation, err := handler.Handle(ctx, cmd)
//	if mutation.Warning == cart.WarningClampedToAvailable {
//	    // tell the shopper only mutation.Quantity are left
//	}
type ChangeCartItemCommand struct { //nolint:recvcheck //using for validation
	sessionID  string
	medicineID kernel.UUID
	delta      int

	guard guard.ConstructorGuard
}

// NewChangeCartItemCommand creates a relative cart mutation command.
// Delta must be non-zero; positive adds, negative removes.
func NewChangeCartItemCommand(sessionID string, medicineID kernel.UUID, delta int) (ChangeCartItemCommand, error) {
	command := ChangeCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setSessionID(sessionID),
		command.setMedicineID(medicineID),
		command.setDelta(delta),
	); err != nil {
		return ChangeCartItemCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeCartItemCommand) Validate() error {
	return c.guard.Validate(ErrChangeCartItemCommandIsNotConstructed)
}

// SessionID returns the owning session.
func (c ChangeCartItemCommand) SessionID() string {
	return c.sessionID
}

// MedicineID returns the medicine to adjust.
func (c ChangeCartItemCommand) MedicineID() kernel.UUID {
	return c.medicineID
}

// Delta returns the signed quantity adjustment.
func (c ChangeCartItemCommand) Delta() int {
	return c.delta
}

func (c *ChangeCartItemCommand) setSessionID(sessionID string) error {
	if sessionID == "" {
		return ErrSessionIDIsRequired
	}

	c.sessionID = sessionID
	return nil
}

func (c *ChangeCartItemCommand) setMedicineID(medicineID kernel.UUID) error {
	if err := medicineID.Validate(); err != nil {
		return err
	}

	c.medicineID = medicineID
	return nil
}

func (c *ChangeCartItemCommand) setDelta(delta int) error {
	if delta == 0 {
		return ErrDeltaIsZero
	}

	c.delta = delta
	return nil
}
