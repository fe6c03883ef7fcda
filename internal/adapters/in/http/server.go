// Package http exposes the pharmacy's use cases over a JSON REST API built
// on echo. Actor identity arrives in the X-Actor-Id and X-Actor-Role
// headers, the anonymous shopping session in X-Session-Id; authentication
// itself is handled upstream.
package http

import (
	"net/http"

	"pharmacy/internal/core/application/usecases/commands"
	"pharmacy/internal/core/application/usecases/queries"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Header names carrying caller identity and session.
const (
	HeaderSessionID = "X-Session-Id"
	HeaderActorID   = "X-Actor-Id"
	HeaderActorRole = "X-Actor-Role"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	changeCartItemHandler        commands.ChangeCartItemCommandHandler
	setCartItemQuantityHandler   commands.SetCartItemQuantityCommandHandler
	removeCartItemHandler        commands.RemoveCartItemCommandHandler
	clearCartHandler             commands.ClearCartCommandHandler
	checkoutHandler              commands.CheckoutCommandHandler
	requestGatewayPaymentHandler commands.RequestGatewayPaymentCommandHandler
	confirmGatewayPaymentHandler commands.ConfirmGatewayPaymentCommandHandler
	advanceOrderStatusHandler    commands.AdvanceOrderStatusCommandHandler
	cancelOrderHandler           commands.CancelOrderCommandHandler
	assignFulfillerHandler       commands.AssignFulfillerCommandHandler
	registerAccountHandler       commands.RegisterAccountCommandHandler
	provisionProfileHandler      commands.ProvisionProfileCommandHandler

	// Query handlers
	getActiveMedicinesHandler queries.GetActiveMedicinesQueryHandler
	getCartHandler            queries.GetCartQueryHandler
	getCustomerOrdersHandler  queries.GetCustomerOrdersQueryHandler
	getAssignedOrdersHandler  queries.GetAssignedOrdersQueryHandler
	getDashboardStatsHandler  queries.GetDashboardStatsQueryHandler
}

// ServerHandlers bundles the use case handlers the server dispatches to.
type ServerHandlers struct {
	ChangeCartItem        commands.ChangeCartItemCommandHandler
	SetCartItemQuantity   commands.SetCartItemQuantityCommandHandler
	RemoveCartItem        commands.RemoveCartItemCommandHandler
	ClearCart             commands.ClearCartCommandHandler
	Checkout              commands.CheckoutCommandHandler
	RequestGatewayPayment commands.RequestGatewayPaymentCommandHandler
	ConfirmGatewayPayment commands.ConfirmGatewayPaymentCommandHandler
	AdvanceOrderStatus    commands.AdvanceOrderStatusCommandHandler
	CancelOrder           commands.CancelOrderCommandHandler
	AssignFulfiller       commands.AssignFulfillerCommandHandler
	RegisterAccount       commands.RegisterAccountCommandHandler
	ProvisionProfile      commands.ProvisionProfileCommandHandler

	GetActiveMedicines queries.GetActiveMedicinesQueryHandler
	GetCart            queries.GetCartQueryHandler
	GetCustomerOrders  queries.GetCustomerOrdersQueryHandler
	GetAssignedOrders  queries.GetAssignedOrdersQueryHandler
	GetDashboardStats  queries.GetDashboardStatsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(handlers ServerHandlers) *Server {
	return &Server{
		changeCartItemHandler:        handlers.ChangeCartItem,
		setCartItemQuantityHandler:   handlers.SetCartItemQuantity,
		removeCartItemHandler:        handlers.RemoveCartItem,
		clearCartHandler:             handlers.ClearCart,
		checkoutHandler:              handlers.Checkout,
		requestGatewayPaymentHandler: handlers.RequestGatewayPayment,
		confirmGatewayPaymentHandler: handlers.ConfirmGatewayPayment,
		advanceOrderStatusHandler:    handlers.AdvanceOrderStatus,
		cancelOrderHandler:           handlers.CancelOrder,
		assignFulfillerHandler:       handlers.AssignFulfiller,
		registerAccountHandler:       handlers.RegisterAccount,
		provisionProfileHandler:      handlers.ProvisionProfile,
		getActiveMedicinesHandler:    handlers.GetActiveMedicines,
		getCartHandler:               handlers.GetCart,
		getCustomerOrdersHandler:     handlers.GetCustomerOrders,
		getAssignedOrdersHandler:     handlers.GetAssignedOrders,
		getDashboardStatsHandler:     handlers.GetDashboardStats,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/medicines", s.GetMedicines)

	api.GET("/cart", s.GetCart)
	api.POST("/cart/items", s.ChangeCartItem)
	api.PUT("/cart/items/:medicineID", s.SetCartItemQuantity)
	api.DELETE("/cart/items/:medicineID", s.RemoveCartItem)
	api.DELETE("/cart", s.ClearCart)

	api.POST("/orders", s.Checkout)
	api.GET("/orders", s.GetCustomerOrders)
	api.POST("/orders/:orderID/payment", s.RequestGatewayPayment)
	api.POST("/orders/:orderID/status", s.AdvanceOrderStatus)
	api.POST("/orders/:orderID/cancel", s.CancelOrder)
	api.POST("/orders/:orderID/fulfiller", s.AssignFulfiller)

	api.POST("/payments/razorpay/callback", s.RazorpayCallback)

	api.GET("/fulfillment/orders", s.GetAssignedOrders)
	api.GET("/admin/dashboard", s.GetDashboardStats)

	api.POST("/accounts", s.RegisterAccount)
	api.PUT("/accounts/profile", s.ProvisionProfile)
}

// GetMedicines handles GET /api/v1/medicines - lists the active catalog.
func (s *Server) GetMedicines(ctx echo.Context) error {
	query := queries.NewGetActiveMedicinesQuery(
		ctx.QueryParam("search"),
		ctx.QueryParam("in_stock_only") == "true",
	)

	medicines, err := s.getActiveMedicinesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]MedicineResponse, len(medicines))
	for i, med := range medicines {
		response[i] = MedicineResponse{
			ID:          med.ID.String(),
			Name:        med.Name,
			Brand:       med.Brand,
			PriceMinor:  med.PriceMinor,
			Stock:       med.Stock,
			Description: med.Description,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCart handles GET /api/v1/cart - returns the session's resolved cart.
func (s *Server) GetCart(ctx echo.Context) error {
	query, err := queries.NewGetCartQuery(ctx.Request().Header.Get(HeaderSessionID))
	if err != nil {
		return writeError(ctx, err)
	}

	view, err := s.getCartHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	lines := make([]CartLineResponse, len(view.Lines))
	for i, line := range view.Lines {
		lines[i] = CartLineResponse{
			MedicineID:    line.MedicineID.String(),
			MedicineName:  line.MedicineName,
			PriceMinor:    line.PriceMinor,
			Quantity:      line.Quantity,
			SubtotalMinor: line.SubtotalMinor,
		}
	}

	return ctx.JSON(http.StatusOK, CartResponse{
		Lines:      lines,
		TotalMinor: view.TotalMinor,
	})
}

// ChangeCartItem handles POST /api/v1/cart/items - adjusts a cart line by a
// signed delta.
func (s *Server) ChangeCartItem(ctx echo.Context) error {
	var req ChangeCartItemRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	medicineID, err := kernel.UUIDFromString(req.MedicineID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewChangeCartItemCommand(
		ctx.Request().Header.Get(HeaderSessionID), medicineID, req.Delta)
	if err != nil {
		return writeError(ctx, err)
	}

	mutation, err := s.changeCartItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CartMutationResponse{
		Quantity: mutation.Quantity,
		Warning:  mutation.Warning.String(),
	})
}

// SetCartItemQuantity handles PUT /api/v1/cart/items/:medicineID - sets a
// cart line to an absolute quantity.
func (s *Server) SetCartItemQuantity(ctx echo.Context) error {
	var req SetCartItemQuantityRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	medicineID, err := kernel.UUIDFromString(ctx.Param("medicineID"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewSetCartItemQuantityCommand(
		ctx.Request().Header.Get(HeaderSessionID), medicineID, req.Quantity)
	if err != nil {
		return writeError(ctx, err)
	}

	mutation, err := s.setCartItemQuantityHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CartMutationResponse{
		Quantity: mutation.Quantity,
		Warning:  mutation.Warning.String(),
	})
}

// RemoveCartItem handles DELETE /api/v1/cart/items/:medicineID.
func (s *Server) RemoveCartItem(ctx echo.Context) error {
	medicineID, err := kernel.UUIDFromString(ctx.Param("medicineID"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRemoveCartItemCommand(
		ctx.Request().Header.Get(HeaderSessionID), medicineID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.removeCartItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ClearCart handles DELETE /api/v1/cart.
func (s *Server) ClearCart(ctx echo.Context) error {
	cmd, err := commands.NewClearCartCommand(ctx.Request().Header.Get(HeaderSessionID))
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.clearCartHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Checkout handles POST /api/v1/orders - materializes the session cart into
// an order.
func (s *Server) Checkout(ctx echo.Context) error {
	var req CheckoutRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	customerID, err := actorID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	shipping, err := order.NewShippingInfo(req.FullName, req.Phone, req.Address)
	if err != nil {
		return writeError(ctx, err)
	}

	paymentMethod, err := order.PaymentMethodFromString(req.PaymentMethod)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCheckoutCommand(orderID,
		ctx.Request().Header.Get(HeaderSessionID), customerID, shipping, paymentMethod)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.checkoutHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CheckoutResponse{OrderID: orderID.String()})
}

// GetCustomerOrders handles GET /api/v1/orders - lists the caller's orders.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	customerID, err := actorID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// RequestGatewayPayment handles POST /api/v1/orders/:orderID/payment -
// creates (or returns) the gateway order for an unpaid razorpay order.
func (s *Server) RequestGatewayPayment(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return writeError(ctx, err)
	}

	customerID, err := actorID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRequestGatewayPaymentCommand(orderID, customerID)
	if err != nil {
		return writeError(ctx, err)
	}

	payment, err := s.requestGatewayPaymentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, GatewayPaymentResponse{
		GatewayOrderID: payment.GatewayOrderID,
		Amount:         payment.Amount.WholeUnits(),
	})
}

// RazorpayCallback handles POST /api/v1/payments/razorpay/callback - marks
// an order paid after verifying the gateway signature.
func (s *Server) RazorpayCallback(ctx echo.Context) error {
	var req RazorpayCallbackRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewConfirmGatewayPaymentCommand(
		req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.confirmGatewayPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdvanceOrderStatus handles POST /api/v1/orders/:orderID/status - moves an
// order one step along the fulfillment pipeline.
func (s *Server) AdvanceOrderStatus(ctx echo.Context) error {
	var req AdvanceOrderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return writeError(ctx, err)
	}

	id, role, err := actor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	target, err := order.StatusFromString(req.Target)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAdvanceOrderStatusCommand(orderID, id, role, target)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.advanceOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:orderID/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return writeError(ctx, err)
	}

	id, role, err := actor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, id, role)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignFulfiller handles POST /api/v1/orders/:orderID/fulfiller - assigns
// a delivery agent to an order.
func (s *Server) AssignFulfiller(ctx echo.Context) error {
	var req AssignFulfillerRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return writeError(ctx, err)
	}

	fulfillerID, err := kernel.UUIDFromString(req.FulfillerID)
	if err != nil {
		return writeError(ctx, err)
	}

	_, role, err := actor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAssignFulfillerCommand(orderID, fulfillerID, role)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.assignFulfillerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAssignedOrders handles GET /api/v1/fulfillment/orders - lists the
// orders assigned to the calling delivery agent.
func (s *Server) GetAssignedOrders(ctx echo.Context) error {
	fulfillerID, err := actorID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetAssignedOrdersQuery(fulfillerID)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.getAssignedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetDashboardStats handles GET /api/v1/admin/dashboard - returns order
// pipeline counts. Admin only.
func (s *Server) GetDashboardStats(ctx echo.Context) error {
	_, role, err := actor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	if role != kernel.RoleAdmin {
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Code:    http.StatusForbidden,
			Message: "Admin role required",
		})
	}

	stats, err := s.getDashboardStatsHandler.Handle(
		ctx.Request().Context(), queries.NewGetDashboardStatsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DashboardStatsResponse{
		TotalOrders:     stats.TotalOrders,
		DeliveredOrders: stats.DeliveredOrders,
		CancelledOrders: stats.CancelledOrders,
		PendingOrders:   stats.PendingOrders,
	})
}

// RegisterAccount handles POST /api/v1/accounts - registers a new account.
func (s *Server) RegisterAccount(ctx echo.Context) error {
	var req RegisterAccountRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	role, err := kernel.RoleFromString(req.Role)
	if err != nil {
		return writeError(ctx, err)
	}

	accountID := kernel.NewUUID()
	cmd, err := commands.NewRegisterAccountCommand(accountID, req.Username, role)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.registerAccountHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, RegisterAccountResponse{AccountID: accountID.String()})
}

// ProvisionProfile handles PUT /api/v1/accounts/profile - records the
// caller's delivery contact details.
func (s *Server) ProvisionProfile(ctx echo.Context) error {
	var req ProvisionProfileRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	accountID, err := actorID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewProvisionProfileCommand(accountID, req.Phone, req.Address)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.provisionProfileHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// actorID extracts the caller's identity from the X-Actor-Id header.
func actorID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Request().Header.Get(HeaderActorID))
}

// actor extracts the caller's identity and role headers.
func actor(ctx echo.Context) (kernel.UUID, kernel.Role, error) {
	id, err := actorID(ctx)
	if err != nil {
		return kernel.UUID{}, kernel.RoleUnknown, err
	}

	role, err := kernel.RoleFromString(ctx.Request().Header.Get(HeaderActorRole))
	if err != nil {
		return kernel.UUID{}, kernel.RoleUnknown, err
	}

	return id, role, nil
}

func toOrderResponses(orders []queries.OrderView) []OrderResponse {
	response := make([]OrderResponse, len(orders))
	for i, view := range orders {
		items := make([]OrderItemResponse, len(view.Items))
		for j, item := range view.Items {
			items[j] = OrderItemResponse{
				MedicineID:   item.MedicineID.String(),
				MedicineName: item.MedicineName,
				Quantity:     item.Quantity,
				PriceMinor:   item.PriceMinor,
			}
		}

		response[i] = OrderResponse{
			ID:            view.ID.String(),
			Status:        view.Status,
			PaymentMethod: view.PaymentMethod,
			IsPaid:        view.IsPaid,
			TotalMinor:    view.TotalMinor,
			CreatedAt:     view.CreatedAt,
			Items:         items,
		}
	}

	return response
}
