package queries

import (
	"errors"

	"pharmacy/internal/pkg/guard"
)

var ErrGetDashboardStatsQueryIsNotConstructed = errors.New(
	"GetDashboardStatsQuery must be created via NewGetDashboardStatsQuery constructor",
)

// GetDashboardStatsQuery retrieves the admin dashboard totals.
type GetDashboardStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDashboardStatsQuery creates a dashboard stats query.
func NewGetDashboardStatsQuery() GetDashboardStatsQuery {
	return GetDashboardStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardStatsQueryIsNotConstructed)
}

// GetDashboardStatsQueryResponse holds the admin dashboard counters.
// Pending counts every order still moving through the pipeline, so
// total = delivered + cancelled + pending.
type GetDashboardStatsQueryResponse struct {
	TotalOrders     int64
	DeliveredOrders int64
	CancelledOrders int64
	PendingOrders   int64
}
