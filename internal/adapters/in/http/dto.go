package http

import "time"

// ErrorResponse is the uniform error body returned for every failed call.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// MedicineResponse is one catalog entry.
type MedicineResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Brand       string `json:"brand"`
	PriceMinor  int64  `json:"price_minor"`
	Stock       int    `json:"stock"`
	Description string `json:"description"`
}

// ChangeCartItemRequest adjusts a cart line by a signed delta.
type ChangeCartItemRequest struct {
	MedicineID string `json:"medicine_id"`
	Delta      int    `json:"delta"`
}

// SetCartItemQuantityRequest sets a cart line to an absolute quantity.
type SetCartItemQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartMutationResponse reports the resulting quantity of a cart mutation
// and any adjustment that was applied. Warning is empty when the mutation
// applied exactly as requested.
type CartMutationResponse struct {
	Quantity int    `json:"quantity"`
	Warning  string `json:"warning,omitempty"`
}

// CartLineResponse is one resolved cart line at the medicine's live price.
type CartLineResponse struct {
	MedicineID    string `json:"medicine_id"`
	MedicineName  string `json:"medicine_name"`
	PriceMinor    int64  `json:"price_minor"`
	Quantity      int    `json:"quantity"`
	SubtotalMinor int64  `json:"subtotal_minor"`
}

// CartResponse is the resolved session cart.
type CartResponse struct {
	Lines      []CartLineResponse `json:"lines"`
	TotalMinor int64              `json:"total_minor"`
}

// CheckoutRequest carries the shipping contact and payment choice for
// materializing the session cart into an order.
type CheckoutRequest struct {
	FullName      string `json:"full_name"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	PaymentMethod string `json:"payment_method"`
}

// CheckoutResponse returns the identifier of the placed order.
type CheckoutResponse struct {
	OrderID string `json:"order_id"`
}

// GatewayPaymentResponse returns the gateway-side order handle the client
// completes the payment against, with the amount in whole currency units.
type GatewayPaymentResponse struct {
	GatewayOrderID string `json:"gateway_order_id"`
	Amount         int64  `json:"amount"`
}

// RazorpayCallbackRequest carries the gateway's payment confirmation. Field
// names follow the gateway's checkout callback payload.
type RazorpayCallbackRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

// AdvanceOrderStatusRequest names the status the order should move to.
type AdvanceOrderStatusRequest struct {
	Target string `json:"target"`
}

// AssignFulfillerRequest names the delivery agent to assign.
type AssignFulfillerRequest struct {
	FulfillerID string `json:"fulfiller_id"`
}

// OrderItemResponse is one order line at its checkout-time price.
type OrderItemResponse struct {
	MedicineID   string `json:"medicine_id"`
	MedicineName string `json:"medicine_name"`
	Quantity     int    `json:"quantity"`
	PriceMinor   int64  `json:"price_minor"`
}

// OrderResponse is one order in a listing.
type OrderResponse struct {
	ID            string              `json:"id"`
	Status        string              `json:"status"`
	PaymentMethod string              `json:"payment_method"`
	IsPaid        bool                `json:"is_paid"`
	TotalMinor    int64               `json:"total_minor"`
	CreatedAt     time.Time           `json:"created_at"`
	Items         []OrderItemResponse `json:"items"`
}

// DashboardStatsResponse is the admin order pipeline summary.
type DashboardStatsResponse struct {
	TotalOrders     int64 `json:"total_orders"`
	DeliveredOrders int64 `json:"delivered_orders"`
	CancelledOrders int64 `json:"cancelled_orders"`
	PendingOrders   int64 `json:"pending_orders"`
}

// RegisterAccountRequest registers a new account with a role.
type RegisterAccountRequest struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// RegisterAccountResponse returns the identifier of the new account.
type RegisterAccountResponse struct {
	AccountID string `json:"account_id"`
}

// ProvisionProfileRequest records the caller's delivery contact details.
type ProvisionProfileRequest struct {
	Phone   string `json:"phone"`
	Address string `json:"address"`
}
