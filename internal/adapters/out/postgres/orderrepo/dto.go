// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling conversion between the domain entity and the orders /
// order_items tables.
package orderrepo

import (
	"time"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Shipping details are denormalized into the orders row; line
// items live in the order_items table and are immutable after placement.
type OrderDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID       uuid.UUID `gorm:"type:uuid;index"`
	FullName         string
	Phone            string
	Address          string
	PaymentMethod    string
	Status           int `gorm:"index"`
	IsPaid           bool
	FulfillerID      *uuid.UUID `gorm:"type:uuid;index"`
	GatewayOrderID   string     `gorm:"index"`
	GatewayPaymentID string
	GatewaySignature string
	CreatedAt        time.Time
	Version          int
	Items            []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents a single order line. Price is the per-unit price
// in minor currency units, captured at checkout time.
type OrderItemDTO struct {
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	MedicineID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity   int
	Price      int64
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database
// representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var fulfillerID *uuid.UUID
	if id := aggregate.FulfillerID(); id != nil {
		raw := id.Bytes()
		fulfillerID = &raw
	}

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:    aggregate.ID().Bytes(),
			MedicineID: item.MedicineID().Bytes(),
			Quantity:   item.Quantity(),
			Price:      item.Price().Minor(),
		})
	}

	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		CustomerID:       aggregate.CustomerID().Bytes(),
		FullName:         aggregate.Shipping().FullName(),
		Phone:            aggregate.Shipping().Phone(),
		Address:          aggregate.Shipping().Address(),
		PaymentMethod:    aggregate.PaymentMethod().String(),
		Status:           int(aggregate.Status()),
		IsPaid:           aggregate.IsPaid(),
		FulfillerID:      fulfillerID,
		GatewayOrderID:   aggregate.GatewayOrderID(),
		GatewayPaymentID: aggregate.GatewayPaymentID(),
		GatewaySignature: aggregate.GatewaySignature(),
		CreatedAt:        aggregate.CreatedAt(),
		Version:          aggregate.Version(),
		Items:            items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including line items using
// RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var fulfillerID *kernel.UUID
	if dto.FulfillerID != nil {
		fID, fulfillerErr := kernel.UUIDFromBytes((*dto.FulfillerID)[:])
		if fulfillerErr != nil {
			return nil, fulfillerErr
		}

		fulfillerID = &fID
	}

	shipping, err := order.NewShippingInfo(dto.FullName, dto.Phone, dto.Address)
	if err != nil {
		return nil, err
	}

	paymentMethod, err := order.PaymentMethodFromString(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		medicineID, itemErr := kernel.UUIDFromBytes(itemDTO.MedicineID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		price, itemErr := kernel.NewMoney(itemDTO.Price)
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewItem(medicineID, itemDTO.Quantity, price)
		if itemErr != nil {
			return nil, itemErr
		}

		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		customerID,
		shipping,
		paymentMethod,
		order.Status(dto.Status),
		dto.IsPaid,
		fulfillerID,
		dto.GatewayOrderID,
		dto.GatewayPaymentID,
		dto.GatewaySignature,
		dto.CreatedAt,
		dto.Version,
		items,
	)
}
