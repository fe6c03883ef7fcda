package commands

import (
	"errors"

	"pharmacy/internal/pkg/guard"
)

var ErrClearCartCommandIsNotConstructed = errors.New(
	"ClearCartCommand must be created via NewClearCartCommand constructor",
)

// ClearCartCommand discards the session cart entirely.
type ClearCartCommand struct { //nolint:recvcheck //using for validation
	sessionID string

	guard guard.ConstructorGuard
}

// NewClearCartCommand creates a cart clearing command.
func NewClearCartCommand(sessionID string) (ClearCartCommand, error) {
	command := ClearCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setSessionID(sessionID); err != nil {
		return ClearCartCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ClearCartCommand) Validate() error {
	return c.guard.Validate(ErrClearCartCommandIsNotConstructed)
}

// SessionID returns the owning session.
func (c ClearCartCommand) SessionID() string {
	return c.sessionID
}

func (c *ClearCartCommand) setSessionID(sessionID string) error {
	if sessionID == "" {
		return ErrSessionIDIsRequired
	}

	c.sessionID = sessionID
	return nil
}
