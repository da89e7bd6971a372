// Package http implements the inbound REST adapter. Handlers translate
// transport payloads into commands and queries; domain error kinds decide
// the response status.
package http

import (
	"errors"
	"net/http"

	"efood/internal/core/application/usecases/commands"
	"efood/internal/core/application/usecases/queries"
	"efood/internal/core/domain/model/driver"
	"efood/internal/core/domain/model/kernel"
	"efood/internal/core/domain/model/order"
	"efood/internal/generated/servers"
	"efood/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler           commands.CreateOrderCommandHandler
	approveOrderHandler          commands.ApproveOrderCommandHandler
	rejectOrderHandler           commands.RejectOrderCommandHandler
	advanceOrderStatusHandler    commands.AdvanceOrderStatusCommandHandler
	acceptOrderHandler           commands.AcceptOrderCommandHandler
	ignoreOrderHandler           commands.IgnoreOrderCommandHandler
	advanceDeliveryStatusHandler commands.AdvanceDeliveryStatusCommandHandler
	rateOrderHandler             commands.RateOrderCommandHandler
	createDriverHandler          commands.CreateDriverCommandHandler
	setDriverAvailabilityHandler commands.SetDriverAvailabilityCommandHandler

	// Query handlers
	getAvailableOrdersHandler       queries.GetAvailableOrdersQueryHandler
	getPendingApprovalOrdersHandler queries.GetPendingApprovalOrdersQueryHandler
	getDriverOrdersHandler          queries.GetDriverOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	approveOrderHandler commands.ApproveOrderCommandHandler,
	rejectOrderHandler commands.RejectOrderCommandHandler,
	advanceOrderStatusHandler commands.AdvanceOrderStatusCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	ignoreOrderHandler commands.IgnoreOrderCommandHandler,
	advanceDeliveryStatusHandler commands.AdvanceDeliveryStatusCommandHandler,
	rateOrderHandler commands.RateOrderCommandHandler,
	createDriverHandler commands.CreateDriverCommandHandler,
	setDriverAvailabilityHandler commands.SetDriverAvailabilityCommandHandler,
	getAvailableOrdersHandler queries.GetAvailableOrdersQueryHandler,
	getPendingApprovalOrdersHandler queries.GetPendingApprovalOrdersQueryHandler,
	getDriverOrdersHandler queries.GetDriverOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:              createOrderHandler,
		approveOrderHandler:             approveOrderHandler,
		rejectOrderHandler:              rejectOrderHandler,
		advanceOrderStatusHandler:       advanceOrderStatusHandler,
		acceptOrderHandler:              acceptOrderHandler,
		ignoreOrderHandler:              ignoreOrderHandler,
		advanceDeliveryStatusHandler:    advanceDeliveryStatusHandler,
		rateOrderHandler:                rateOrderHandler,
		createDriverHandler:             createDriverHandler,
		setDriverAvailabilityHandler:    setDriverAvailabilityHandler,
		getAvailableOrdersHandler:       getAvailableOrdersHandler,
		getPendingApprovalOrdersHandler: getPendingApprovalOrdersHandler,
		getDriverOrdersHandler:          getDriverOrdersHandler,
	}
}

// errorResponse maps domain error kinds to HTTP statuses: invalid input is
// 400, missing objects are 404 and lost races or illegal transitions are 409.
func errorResponse(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, driver.ErrDriverIsBusy),
		errors.Is(err, driver.ErrDriverIsOffline),
		errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrAlreadyAssigned),
		errors.Is(err, errs.ErrAlreadyProcessed),
		errors.Is(err, errs.ErrVersionIsInvalid):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, servers.Error{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	items := make([]order.Item, 0, len(newOrder.Items))
	for _, line := range newOrder.Items {
		unitPrice, err := kernel.NewMoneyFromString(line.UnitPrice)
		if err != nil {
			return errorResponse(ctx, err)
		}
		item, err := order.NewItem(line.Name, unitPrice, line.Quantity)
		if err != nil {
			return errorResponse(ctx, err)
		}
		items = append(items, item)
	}

	address, err := order.NewAddress(
		newOrder.Address.Street,
		optString(newOrder.Address.Number),
		optString(newOrder.Address.Complement),
		optString(newOrder.Address.Neighborhood),
		newOrder.Address.Municipality,
		newOrder.Address.Province,
		optString(newOrder.Address.Reference),
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	payment, err := order.NewPaymentInfo(
		order.PaymentMethod(newOrder.Payment.Method),
		optString(newOrder.Payment.CardBrand),
		optString(newOrder.Payment.CardNumber),
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	deliveryFee, err := kernel.NewMoneyFromString(newOrder.DeliveryFee)
	if err != nil {
		return errorResponse(ctx, err)
	}
	total, err := kernel.NewMoneyFromString(newOrder.Total)
	if err != nil {
		return errorResponse(ctx, err)
	}

	restaurantID, err := kernel.UUIDFromBytes(newOrder.RestaurantId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}
	var customerID *kernel.UUID
	if newOrder.CustomerId != nil {
		parsed, idErr := kernel.UUIDFromBytes((*newOrder.CustomerId)[:])
		if idErr != nil {
			return errorResponse(ctx, idErr)
		}
		customerID = &parsed
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, customerID, restaurantID,
		items, address, payment, deliveryFee, total,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	entryStatus := order.StatusPending
	if payment.Method().RequiresApproval() {
		entryStatus = order.StatusPendingAdminApproval
	}

	return ctx.JSON(http.StatusCreated, servers.OrderCreated{
		Id:     orderID.Bytes(),
		Status: entryStatus.String(),
	})
}

// GetAvailableOrders handles GET /api/v1/orders/available - the marketplace pool.
func (s *Server) GetAvailableOrders(ctx echo.Context) error {
	query := queries.NewGetAvailableOrdersQuery()

	pool, err := s.getAvailableOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.AvailableOrder, len(pool))
	for i, entry := range pool {
		response[i] = servers.AvailableOrder{
			Id:             entry.ID.Bytes(),
			RestaurantId:   entry.RestaurantID.Bytes(),
			Street:         entry.Street,
			Municipality:   entry.Municipality,
			DeliveryAmount: entry.DeliveryAmount.String(),
			Total:          entry.Total.String(),
			CreatedAt:      entry.CreatedAt,
			EscalatedAt:    entry.EscalatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPendingApprovalOrders handles GET /api/v1/orders/pending-approval - the
// admin approval worklist.
func (s *Server) GetPendingApprovalOrders(ctx echo.Context) error {
	query := queries.NewGetPendingApprovalOrdersQuery()

	worklist, err := s.getPendingApprovalOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.PendingApprovalOrder, len(worklist))
	for i, entry := range worklist {
		item := servers.PendingApprovalOrder{
			Id:           entry.ID.Bytes(),
			RestaurantId: entry.RestaurantID.Bytes(),
			Street:       entry.Street,
			Municipality: entry.Municipality,
			Total:        entry.Total.String(),
			CreatedAt:    entry.CreatedAt,
		}
		if entry.CustomerID != nil {
			customerID := entry.CustomerID.Bytes()
			item.CustomerId = &customerID
		}
		response[i] = item
	}

	return ctx.JSON(http.StatusOK, response)
}

// ApproveOrder handles POST /api/v1/orders/{orderId}/approve.
func (s *Server) ApproveOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	var decision servers.ApprovalDecision
	if err := ctx.Bind(&decision); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, adminID, err := uuidPair(orderId, decision.AdminId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewApproveOrderCommand(orderID, adminID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.approveOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectOrder handles POST /api/v1/orders/{orderId}/reject.
func (s *Server) RejectOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	var decision servers.RejectionDecision
	if err := ctx.Bind(&decision); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, adminID, err := uuidPair(orderId, decision.AdminId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewRejectOrderCommand(orderID, adminID, decision.Reason)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.rejectOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdvanceOrderStatus handles POST /api/v1/orders/{orderId}/status.
func (s *Server) AdvanceOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	var change servers.StatusChange
	if err := ctx.Bind(&change); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}
	next, err := order.StatusFromString(string(change.Status))
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewAdvanceOrderStatusCommand(orderID, next)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.advanceOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AcceptOrder handles POST /api/v1/orders/{orderId}/accept.
func (s *Server) AcceptOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	var action servers.DriverAction
	if err := ctx.Bind(&action); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, driverID, err := uuidPair(orderId, action.DriverId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, driverID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// IgnoreOrder handles POST /api/v1/drivers/{driverId}/ignore.
func (s *Server) IgnoreOrder(ctx echo.Context, driverId openapi_types.UUID) error {
	driverID, err := kernel.UUIDFromBytes(driverId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewIgnoreOrderCommand(driverID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.ignoreOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdvanceDeliveryStatus handles POST /api/v1/orders/{orderId}/delivery-status.
func (s *Server) AdvanceDeliveryStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	var change servers.DeliveryStatusChange
	if err := ctx.Bind(&change); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, driverID, err := uuidPair(orderId, change.DriverId)
	if err != nil {
		return errorResponse(ctx, err)
	}
	next, err := order.DeliveryStatusFromString(string(change.DeliveryStatus))
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewAdvanceDeliveryStatusCommand(orderID, driverID, next)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.advanceDeliveryStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RateOrder handles POST /api/v1/orders/{orderId}/rating.
func (s *Server) RateOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	var rating servers.NewRating
	if err := ctx.Bind(&rating); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewRateOrderCommand(orderID, rating.Stars, optString(rating.Comment))
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.rateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateDriver handles POST /api/v1/drivers - registers a new driver.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var newDriver servers.NewDriver
	if err := ctx.Bind(&newDriver); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	driverID := kernel.NewUUID()
	cmd, err := commands.NewCreateDriverCommand(
		driverID, newDriver.Name, driver.Vehicle(newDriver.Vehicle),
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.createDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.DriverCreated{Id: driverID.Bytes()})
}

// SetDriverAvailability handles PUT /api/v1/drivers/{driverId}/availability.
func (s *Server) SetDriverAvailability(ctx echo.Context, driverId openapi_types.UUID) error {
	var availability servers.Availability
	if err := ctx.Bind(&availability); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	driverID, err := kernel.UUIDFromBytes(driverId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewSetDriverAvailabilityCommand(driverID, availability.Online)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.setDriverAvailabilityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDriverOrders handles GET /api/v1/drivers/{driverId}/orders.
func (s *Server) GetDriverOrders(
	ctx echo.Context, driverId openapi_types.UUID, params servers.GetDriverOrdersParams,
) error {
	driverID, err := kernel.UUIDFromBytes(driverId[:])
	if err != nil {
		return errorResponse(ctx, err)
	}

	includeCompleted := params.IncludeCompleted != nil && *params.IncludeCompleted
	query, err := queries.NewGetDriverOrdersQuery(driverID, includeCompleted)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orders, err := s.getDriverOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.DriverOrder, len(orders))
	for i, entry := range orders {
		response[i] = servers.DriverOrder{
			Id:             entry.ID.Bytes(),
			Status:         entry.Status,
			DeliveryStatus: entry.DeliveryStatus,
			Street:         entry.Street,
			Municipality:   entry.Municipality,
			DeliveryAmount: entry.DeliveryAmount.String(),
			CreatedAt:      entry.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func optString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func uuidPair(first, second openapi_types.UUID) (kernel.UUID, kernel.UUID, error) {
	firstID, err := kernel.UUIDFromBytes(first[:])
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	secondID, err := kernel.UUIDFromBytes(second[:])
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	return firstID, secondID, nil
}
