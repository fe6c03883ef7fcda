package commands

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/guard"
)

var (
	ErrRegisterAccountCommandIsNotConstructed = errors.New(
		"RegisterAccountCommand must be created via NewRegisterAccountCommand constructor",
	)
	ErrUsernameIsRequired = errors.New("username is required")
)

// RegisterAccountCommand registers a new account. The delivery profile is
// provisioned separately via ProvisionProfileCommand.
type RegisterAccountCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID
	username  string
	role      kernel.Role

	guard guard.ConstructorGuard
}

// NewRegisterAccountCommand creates an account registration command.
func NewRegisterAccountCommand(accountID kernel.UUID, username string, role kernel.Role) (RegisterAccountCommand, error) {
	command := RegisterAccountCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setAccountID(accountID),
		command.setUsername(username),
		command.setRole(role),
	); err != nil {
		return RegisterAccountCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterAccountCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAccountCommandIsNotConstructed)
}

// AccountID returns the identifier the new account will carry.
func (c RegisterAccountCommand) AccountID() kernel.UUID {
	return c.accountID
}

// Username returns the login name.
func (c RegisterAccountCommand) Username() string {
	return c.username
}

// Role returns the requested role.
func (c RegisterAccountCommand) Role() kernel.Role {
	return c.role
}

func (c *RegisterAccountCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}

	c.accountID = accountID
	return nil
}

func (c *RegisterAccountCommand) setUsername(username string) error {
	if username == "" {
		return ErrUsernameIsRequired
	}

	c.username = username
	return nil
}

func (c *RegisterAccountCommand) setRole(role kernel.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
