package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAssignedOrdersQueryHandler reads a delivery agent's work queue.
type GetAssignedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAssignedOrdersQueryHandler creates a handler for work queue queries.
func NewGetAssignedOrdersQueryHandler(db *gorm.DB) GetAssignedOrdersQueryHandler {
	return GetAssignedOrdersQueryHandler{db: db}
}

// Handle returns the agent's assigned orders, newest first, including
// terminal ones so the agent sees completed work.
func (h GetAssignedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAssignedOrdersQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return listOrders(ctx, h.db, "o.fulfiller_id = ?", query.FulfillerID().String())
}
