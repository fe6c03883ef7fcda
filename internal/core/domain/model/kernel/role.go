package kernel

import (
	"fmt"

	"pharmacy/internal/pkg/errs"
)

// Role identifies which kind of actor is driving an operation. The status
// state machine and the HTTP adapter both dispatch on it, so it lives in the
// shared kernel rather than in any single aggregate's package.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleCustomer is a shopper: owns carts and orders, may cancel their own orders.
	RoleCustomer

	// RoleDelivery is a fulfiller: advances assigned orders through fulfillment.
	RoleDelivery

	// RoleAdmin is an administrative operator: assigns fulfillers to orders.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "unknown",
		RoleCustomer: "customer",
		RoleDelivery: "delivery",
		RoleAdmin:    "admin",
	}
}

// RoleFromString parses a role name as stored in persistence or carried in
// actor headers. Unrecognized names yield an error.
func RoleFromString(s string) (Role, error) {
	for role, name := range getRoleStrings() {
		if role != RoleUnknown && name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks that the Role is one of the defined actor roles.
func (r Role) Validate() error {
	if r != RoleCustomer && r != RoleDelivery && r != RoleAdmin {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the lowercase role name, or "unknown" for invalid values.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "unknown"
}
