package commands

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/guard"
)

var (
	ErrSetCartItemQuantityCommandIsNotConstructed = errors.New(
		"SetCartItemQuantityCommand must be created via NewSetCartItemQuantityCommand constructor",
	)
	ErrQuantityIsNegative = errors.New("quantity must not be negative")
)

// SetCartItemQuantityCommand represents an absolute cart mutation: the
// entry is set to the requested quantity, clamped to available stock.
// Quantity zero removes the entry.
type SetCartItemQuantityCommand struct { //nolint:recvcheck //using for validation
	sessionID  string
	medicineID kernel.UUID
	quantity   int

	guard guard.ConstructorGuard
}

// NewSetCartItemQuantityCommand creates an absolute cart mutation command.
func NewSetCartItemQuantityCommand(sessionID string, medicineID kernel.UUID, quantity int) (SetCartItemQuantityCommand, error) {
	command := SetCartItemQuantityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setSessionID(sessionID),
		command.setMedicineID(medicineID),
		command.setQuantity(quantity),
	); err != nil {
		return SetCartItemQuantityCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetCartItemQuantityCommand) Validate() error {
	return c.guard.Validate(ErrSetCartItemQuantityCommandIsNotConstructed)
}

// SessionID returns the owning session.
func (c SetCartItemQuantityCommand) SessionID() string {
	return c.sessionID
}

// MedicineID returns the medicine to adjust.
func (c SetCartItemQuantityCommand) MedicineID() kernel.UUID {
	return c.medicineID
}

// Quantity returns the absolute target quantity.
func (c SetCartItemQuantityCommand) Quantity() int {
	return c.quantity
}

func (c *SetCartItemQuantityCommand) setSessionID(sessionID string) error {
	if sessionID == "" {
		return ErrSessionIDIsRequired
	}

	c.sessionID = sessionID
	return nil
}

func (c *SetCartItemQuantityCommand) setMedicineID(medicineID kernel.UUID) error {
	if err := medicineID.Validate(); err != nil {
		return err
	}

	c.medicineID = medicineID
	return nil
}

func (c *SetCartItemQuantityCommand) setQuantity(quantity int) error {
	if quantity < 0 {
		return ErrQuantityIsNegative
	}

	c.quantity = quantity
	return nil
}
