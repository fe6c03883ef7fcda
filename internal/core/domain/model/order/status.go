package order

import (
	"fmt"

	"pharmacy/internal/pkg/errs"
)

// Status represents the fulfillment state of an order. It implements a state
// machine with one canonical transition table:
//
//	Placed ──> Packed ──> Shipped ──> Delivered
//	   │          │          │
//	   └──────────┴──────────┴──────> Cancelled
//
// Fulfiller-driven advances move strictly one step forward; customer-driven
// cancellation is legal from Placed, Packed, and Shipped. Delivered and
// Cancelled are terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPlaced is the initial status set at checkout.
	StatusPlaced

	// StatusPacked indicates the order has been packed for shipment.
	StatusPacked

	// StatusShipped indicates the order is in transit.
	StatusShipped

	// StatusDelivered indicates the order reached the customer. Terminal.
	StatusDelivered

	// StatusCancelled indicates the customer cancelled the order and its
	// stock was returned to the ledger. Terminal.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusPlaced:    "Placed",
		StatusPacked:    "Packed",
		StatusShipped:   "Shipped",
		StatusDelivered: "Delivered",
		StatusCancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPlaced:    "Placed",
		StatusPacked:    "Packed",
		StatusShipped:   "Shipped",
		StatusDelivered: "Delivered",
		StatusCancelled: "Cancelled",
	}
}

// StatusFromString parses a status name as carried in requests or stored in
// persistence. Unrecognized names yield an error.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status value is one of the defined order statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable status name, or "Unknown" for invalid
// values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Next returns the single legal next status along the fulfillment path.
// Terminal statuses have no next status and return an IllegalTransitionError.
func (s Status) Next() (Status, error) {
	switch s {
	case StatusPlaced:
		return StatusPacked, nil
	case StatusPacked:
		return StatusShipped, nil
	case StatusShipped:
		return StatusDelivered, nil
	default:
		return StatusUnknown, errs.NewIllegalTransitionError(s.String(), "", "")
	}
}

// CanCancel reports whether customer-driven cancellation is legal from this
// status. Cancellation is allowed until the order is delivered.
func (s Status) CanCancel() bool {
	return s == StatusPlaced || s == StatusPacked || s == StatusShipped
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}
