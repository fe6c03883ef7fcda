package commands

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/guard"
)

var ErrProvisionProfileCommandIsNotConstructed = errors.New(
	"ProvisionProfileCommand must be created via NewProvisionProfileCommand constructor",
)

// ProvisionProfileCommand fills in an account's contact details. Field
// validation happens in the aggregate so registration-time and later
// updates share one rule set.
type ProvisionProfileCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID
	phone     string
	address   string

	guard guard.ConstructorGuard
}

// NewProvisionProfileCommand creates a profile provisioning command.
func NewProvisionProfileCommand(accountID kernel.UUID, phone, address string) (ProvisionProfileCommand, error) {
	command := ProvisionProfileCommand{
		phone:   phone,
		address: address,
		guard:   guard.NewConstructorGuard(),
	}

	if err := command.setAccountID(accountID); err != nil {
		return ProvisionProfileCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ProvisionProfileCommand) Validate() error {
	return c.guard.Validate(ErrProvisionProfileCommandIsNotConstructed)
}

// AccountID returns the account to provision.
func (c ProvisionProfileCommand) AccountID() kernel.UUID {
	return c.accountID
}

// Phone returns the contact phone number.
func (c ProvisionProfileCommand) Phone() string {
	return c.phone
}

// Address returns the default shipping address.
func (c ProvisionProfileCommand) Address() string {
	return c.address
}

func (c *ProvisionProfileCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}

	c.accountID = accountID
	return nil
}
