package queries

import (
	"context"

	"gorm.io/gorm"

	"pharmacy/internal/core/domain/model/order"
)

// GetDashboardStatsQueryHandler reads the admin dashboard counters.
type GetDashboardStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetDashboardStatsQueryHandler creates a handler for dashboard stats queries.
func NewGetDashboardStatsQueryHandler(db *gorm.DB) GetDashboardStatsQueryHandler {
	return GetDashboardStatsQueryHandler{db: db}
}

// Handle returns order totals grouped by outcome.
func (h GetDashboardStatsQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardStatsQuery,
) (GetDashboardStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	var response GetDashboardStatsQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status NOT IN (?, ?))
		FROM orders
	`, order.StatusDelivered, order.StatusCancelled, order.StatusDelivered, order.StatusCancelled).Row()

	if err := row.Scan(
		&response.TotalOrders,
		&response.DeliveredOrders,
		&response.CancelledOrders,
		&response.PendingOrders,
	); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	return response, nil
}
