package order

import (
	"errors"

	"pharmacy/internal/pkg/errs"
	"pharmacy/internal/pkg/guard"
)

// ErrShippingInfoIsNotConstructed is returned when a ShippingInfo instance
// was not created through the NewShippingInfo constructor.
var ErrShippingInfoIsNotConstructed = errors.New("ShippingInfo must be created via NewShippingInfo")

// ShippingInfo is an immutable value object holding the delivery contact
// captured at checkout: recipient name, phone, and address. All three fields
// are required.
type ShippingInfo struct { //nolint:recvcheck //using for validation
	fullName string
	phone    string
	address  string

	guard guard.ConstructorGuard
}

// NewShippingInfo creates a validated ShippingInfo. Every field is required;
// missing fields are reported together as a joined error.
func NewShippingInfo(fullName, phone, address string) (ShippingInfo, error) {
	info := ShippingInfo{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		info.setFullName(fullName),
		info.setPhone(phone),
		info.setAddress(address),
	); err != nil {
		return ShippingInfo{}, err
	}

	return info, nil
}

// Validate ensures the value was created through the constructor.
func (s ShippingInfo) Validate() error {
	return s.guard.Validate(ErrShippingInfoIsNotConstructed)
}

// FullName returns the recipient's name.
func (s ShippingInfo) FullName() string {
	return s.fullName
}

// Phone returns the contact phone number.
func (s ShippingInfo) Phone() string {
	return s.phone
}

// Address returns the delivery address.
func (s ShippingInfo) Address() string {
	return s.address
}

func (s *ShippingInfo) setFullName(fullName string) error {
	if fullName == "" {
		return errs.NewValueIsRequiredError("full name")
	}
	s.fullName = fullName
	return nil
}

func (s *ShippingInfo) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	s.phone = phone
	return nil
}

func (s *ShippingInfo) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	s.address = address
	return nil
}
