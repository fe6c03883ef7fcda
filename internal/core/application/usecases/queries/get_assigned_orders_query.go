package queries

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/guard"
)

var ErrGetAssignedOrdersQueryIsNotConstructed = errors.New(
	"GetAssignedOrdersQuery must be created via NewGetAssignedOrdersQuery constructor",
)

// GetAssignedOrdersQuery retrieves the work queue of a delivery agent:
// every order assigned to them, newest first.
type GetAssignedOrdersQuery struct { //nolint:recvcheck //using for validation
	fulfillerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAssignedOrdersQuery creates a delivery work queue query.
func NewGetAssignedOrdersQuery(fulfillerID kernel.UUID) (GetAssignedOrdersQuery, error) {
	query := GetAssignedOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setFulfillerID(fulfillerID); err != nil {
		return GetAssignedOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAssignedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignedOrdersQueryIsNotConstructed)
}

// FulfillerID returns the delivery agent whose queue is listed.
func (q GetAssignedOrdersQuery) FulfillerID() kernel.UUID {
	return q.fulfillerID
}

func (q *GetAssignedOrdersQuery) setFulfillerID(fulfillerID kernel.UUID) error {
	if err := fulfillerID.Validate(); err != nil {
		return err
	}

	q.fulfillerID = fulfillerID
	return nil
}
