package commands

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/guard"
)

var ErrRemoveCartItemCommandIsNotConstructed = errors.New(
	"RemoveCartItemCommand must be created via NewRemoveCartItemCommand constructor",
)

// RemoveCartItemCommand removes one entry from the session cart
// unconditionally, regardless of quantity or medicine state.
type RemoveCartItemCommand struct { //nolint:recvcheck //using for validation
	sessionID  string
	medicineID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveCartItemCommand creates a cart entry removal command.
func NewRemoveCartItemCommand(sessionID string, medicineID kernel.UUID) (RemoveCartItemCommand, error) {
	command := RemoveCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setSessionID(sessionID),
		command.setMedicineID(medicineID),
	); err != nil {
		return RemoveCartItemCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCartItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartItemCommandIsNotConstructed)
}

// SessionID returns the owning session.
func (c RemoveCartItemCommand) SessionID() string {
	return c.sessionID
}

// MedicineID returns the medicine entry to remove.
func (c RemoveCartItemCommand) MedicineID() kernel.UUID {
	return c.medicineID
}

func (c *RemoveCartItemCommand) setSessionID(sessionID string) error {
	if sessionID == "" {
		return ErrSessionIDIsRequired
	}

	c.sessionID = sessionID
	return nil
}

func (c *RemoveCartItemCommand) setMedicineID(medicineID kernel.UUID) error {
	if err := medicineID.Validate(); err != nil {
		return err
	}

	c.medicineID = medicineID
	return nil
}
