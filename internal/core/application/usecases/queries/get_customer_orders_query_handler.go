package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/order"
)

// GetCustomerOrdersQueryHandler reads a customer's order history.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for order history queries.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle returns the customer's orders, newest first. Line items keep their
// checkout-time price even when the catalog price has moved since.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return listOrders(ctx, h.db, "o.customer_id = ?", query.CustomerID().String())
}

// listOrders runs the shared order listing join: one row per line item,
// folded into OrderView slices in query order.
func listOrders(ctx context.Context, db *gorm.DB, where string, arg any) ([]OrderView, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.status,
			o.payment_method,
			o.is_paid,
			o.created_at,
			i.medicine_id,
			COALESCE(m.name, ''),
			i.quantity,
			i.price
		FROM orders o
		JOIN order_items i ON i.order_id = o.id
		LEFT JOIN medicines m ON m.id = i.medicine_id
		WHERE `+where+`
		ORDER BY o.created_at DESC, o.id, i.medicine_id
	`, arg).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]OrderView, 0)
	index := make(map[kernel.UUID]int)

	for rows.Next() {
		var (
			rawOrderID    uuid.UUID
			status        int
			paymentMethod string
			isPaid        bool
			createdAt     time.Time
			rawMedicineID uuid.UUID
			medicineName  string
			quantity      int
			priceMinor    int64
		)

		if err = rows.Scan(
			&rawOrderID, &status, &paymentMethod, &isPaid, &createdAt,
			&rawMedicineID, &medicineName, &quantity, &priceMinor,
		); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(rawOrderID[:])
		if idErr != nil {
			return nil, idErr
		}
		medicineID, idErr := kernel.UUIDFromBytes(rawMedicineID[:])
		if idErr != nil {
			return nil, idErr
		}

		pos, seen := index[orderID]
		if !seen {
			views = append(views, OrderView{
				ID:            orderID,
				Status:        order.Status(status).String(),
				PaymentMethod: paymentMethod,
				IsPaid:        isPaid,
				CreatedAt:     createdAt,
			})
			pos = len(views) - 1
			index[orderID] = pos
		}

		views[pos].Items = append(views[pos].Items, OrderItemView{
			MedicineID:   medicineID,
			MedicineName: medicineName,
			Quantity:     quantity,
			PriceMinor:   priceMinor,
		})
		views[pos].TotalMinor += priceMinor * int64(quantity)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
