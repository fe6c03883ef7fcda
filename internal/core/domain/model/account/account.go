package account

import (
	"errors"
	"strings"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"
	"pharmacy/internal/pkg/guard"
)

// ErrAccountIsNotConstructed is returned when an Account was created
// without a factory function.
var ErrAccountIsNotConstructed = errors.New("account is not constructed, use NewAccount or RestoreAccount")

// Account is a registered user of the pharmacy: a customer placing orders,
// a delivery agent moving them, or an admin running the catalog. The
// profile (phone, address) is provisioned separately from registration and
// may be empty until then.
type Account struct {
	id       kernel.UUID
	username string
	role     kernel.Role
	phone    string
	address  string

	guard guard.ConstructorGuard
}

// NewAccount registers an account with the given role and an empty profile.
func NewAccount(id kernel.UUID, username string, role kernel.Role) (*Account, error) {
	a := &Account{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		a.setID(id),
		a.setUsername(username),
		a.setRole(role),
	); err != nil {
		return nil, err
	}
	return a, nil
}

// RestoreAccount reconstructs an account from persisted state, including
// its profile fields.
func RestoreAccount(id kernel.UUID, username string, role kernel.Role, phone, address string) (*Account, error) {
	a, err := NewAccount(id, username, role)
	if err != nil {
		return nil, err
	}

	a.phone = phone
	a.address = address
	return a, nil
}

// Validate ensures the Account was created through a factory function.
func (a *Account) Validate() error {
	if a == nil {
		return ErrAccountIsNotConstructed
	}
	return a.guard.Validate(ErrAccountIsNotConstructed)
}

// ID returns the account identifier.
func (a *Account) ID() kernel.UUID {
	return a.id
}

// Username returns the login name.
func (a *Account) Username() string {
	return a.username
}

// Role returns the account's role.
func (a *Account) Role() kernel.Role {
	return a.role
}

// Phone returns the profile phone number, empty until provisioned.
func (a *Account) Phone() string {
	return a.phone
}

// Address returns the profile address, empty until provisioned.
func (a *Account) Address() string {
	return a.address
}

// HasProfile reports whether the delivery profile has been provisioned.
func (a *Account) HasProfile() bool {
	return a.phone != "" && a.address != ""
}

// ProvisionProfile fills in the contact details required before the
// account can place orders. Both fields are required.
func (a *Account) ProvisionProfile(phone, address string) error {
	phone = strings.TrimSpace(phone)
	address = strings.TrimSpace(address)

	if err := errors.Join(
		requireField("phone", phone),
		requireField("address", address),
	); err != nil {
		return err
	}

	a.phone = phone
	a.address = address
	return nil
}

func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredError("id")
	}
	a.id = id
	return nil
}

func (a *Account) setUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	a.username = username
	return nil
}

func (a *Account) setRole(role kernel.Role) error {
	if err := role.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("role", err)
	}
	a.role = role
	return nil
}

func requireField(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
