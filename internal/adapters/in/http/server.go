// Package http exposes the fulfillment API over REST.
// It coordinates between HTTP handlers and application use cases, translating
// domain errors into status codes: missing aggregates map to 404, courier
// conflicts to 409, validation failures to 400.
package http

import (
	"errors"
	"net/http"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server wires the REST endpoints to the command and query handlers.
type Server struct {
	// Command handlers
	placeOrderHandler         commands.PlaceOrderCommandHandler
	shipOrderHandler          commands.ShipOrderCommandHandler
	assignCourierHandler      commands.AssignCourierCommandHandler
	removeCourierHandler      commands.RemoveCourierCommandHandler
	markOrderDeliveredHandler commands.MarkOrderDeliveredCommandHandler
	setOrderStatusHandler     commands.SetOrderStatusCommandHandler
	createCourierHandler      commands.CreateCourierCommandHandler
	deleteCourierHandler      commands.DeleteCourierCommandHandler

	// Query handlers
	getOrdersByStageHandler     queries.GetOrdersByStageQueryHandler
	getOrderHandler             queries.GetOrderQueryHandler
	getAllCouriersHandler       queries.GetAllCouriersQueryHandler
	getCourierHandler           queries.GetCourierQueryHandler
	getAvailableCouriersHandler queries.GetAvailableCouriersQueryHandler
	getCourierOrdersHandler     queries.GetCourierOrdersQueryHandler
}

// NewServer creates the HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	shipOrderHandler commands.ShipOrderCommandHandler,
	assignCourierHandler commands.AssignCourierCommandHandler,
	removeCourierHandler commands.RemoveCourierCommandHandler,
	markOrderDeliveredHandler commands.MarkOrderDeliveredCommandHandler,
	setOrderStatusHandler commands.SetOrderStatusCommandHandler,
	createCourierHandler commands.CreateCourierCommandHandler,
	deleteCourierHandler commands.DeleteCourierCommandHandler,
	getOrdersByStageHandler queries.GetOrdersByStageQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getAllCouriersHandler queries.GetAllCouriersQueryHandler,
	getCourierHandler queries.GetCourierQueryHandler,
	getAvailableCouriersHandler queries.GetAvailableCouriersQueryHandler,
	getCourierOrdersHandler queries.GetCourierOrdersQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:           placeOrderHandler,
		shipOrderHandler:            shipOrderHandler,
		assignCourierHandler:        assignCourierHandler,
		removeCourierHandler:        removeCourierHandler,
		markOrderDeliveredHandler:   markOrderDeliveredHandler,
		setOrderStatusHandler:       setOrderStatusHandler,
		createCourierHandler:        createCourierHandler,
		deleteCourierHandler:        deleteCourierHandler,
		getOrdersByStageHandler:     getOrdersByStageHandler,
		getOrderHandler:             getOrderHandler,
		getAllCouriersHandler:       getAllCouriersHandler,
		getCourierHandler:           getCourierHandler,
		getAvailableCouriersHandler: getAvailableCouriersHandler,
		getCourierOrdersHandler:     getCourierOrdersHandler,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders", s.GetOrdersByStage)
	api.GET("/orders/:orderId", s.GetOrder)
	api.POST("/orders/:orderId/ship", s.ShipOrder)
	api.POST("/orders/:orderId/assign-courier", s.AssignCourier)
	api.POST("/orders/:orderId/remove-courier", s.RemoveCourier)
	api.POST("/orders/:orderId/deliver", s.MarkOrderDelivered)
	api.PATCH("/orders/:orderId/status", s.SetOrderStatus)

	api.GET("/couriers", s.GetCouriers)
	api.POST("/couriers", s.CreateCourier)
	api.GET("/couriers/available", s.GetAvailableCouriers)
	api.GET("/couriers/:courierId", s.GetCourier)
	api.DELETE("/couriers/:courierId", s.DeleteCourier)
	api.GET("/couriers/:courierId/orders", s.GetCourierOrders)
}

// ErrorResponse is the uniform error body for all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderItemRequest is one product line of a checkout request.
type OrderItemRequest struct {
	ProductRef string `json:"productRef"`
	Quantity   int    `json:"quantity"`
}

// AddressRequest is the shipping destination of a checkout request.
type AddressRequest struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postalCode"`
}

// PlaceOrderRequest is the checkout payload.
type PlaceOrderRequest struct {
	BuyerID       string             `json:"buyerId"`
	Items         []OrderItemRequest `json:"items"`
	Amount        float64            `json:"amount"`
	Address       AddressRequest     `json:"address"`
	PaymentMethod string             `json:"paymentMethod"`
	Paid          bool               `json:"paid"`
}

// CourierIDRequest names a courier for assignment or release.
type CourierIDRequest struct {
	CourierID string `json:"courierId"`
}

// SetOrderStatusRequest is the legacy in-place status patch payload.
type SetOrderStatusRequest struct {
	Status       string `json:"status"`
	ClearCourier bool   `json:"clearCourier"`
}

// CreateCourierRequest is the courier registration payload.
type CreateCourierRequest struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	PlateNumber   string `json:"plateNumber"`
	LicenseNumber string `json:"licenseNumber"`
}

// OrderResponse is the JSON shape of one order.
type OrderResponse struct {
	ID            string    `json:"id"`
	BuyerID       string    `json:"buyerId"`
	BuyerName     string    `json:"buyerName,omitempty"`
	Amount        float64   `json:"amount"`
	PaymentMethod string    `json:"paymentMethod"`
	Paid          bool      `json:"paid"`
	PlacedAt      time.Time `json:"placedAt"`
	Stage         string    `json:"stage"`
	Status        string    `json:"status"`
	CourierID     *string   `json:"courierId,omitempty"`
}

// OrderDetailResponse adds the address and item lines to the order shape.
type OrderDetailResponse struct {
	OrderResponse
	Address string              `json:"address"`
	Items   []OrderItemResponse `json:"items"`
}

// OrderItemResponse is one product line in an order response.
type OrderItemResponse struct {
	ProductRef string `json:"productRef"`
	Quantity   int    `json:"quantity"`
}

// CourierResponse is the JSON shape of one courier.
type CourierResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Address       string `json:"address"`
	PlateNumber   string `json:"plateNumber"`
	LicenseNumber string `json:"licenseNumber"`
}

// PlaceOrder handles POST /api/v1/orders - accepts a checkout.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	buyerID, err := kernel.UUIDFromString(req.BuyerID)
	if err != nil {
		return badRequest(ctx, "Invalid buyer ID: "+err.Error())
	}

	items := make([]order.Item, 0, len(req.Items))
	for _, itemReq := range req.Items {
		item, itemErr := order.NewItem(itemReq.ProductRef, itemReq.Quantity)
		if itemErr != nil {
			return badRequest(ctx, "Invalid order item: "+itemErr.Error())
		}
		items = append(items, item)
	}

	address, err := kernel.NewAddress(
		req.Address.FirstName,
		req.Address.LastName,
		req.Address.Street,
		req.Address.City,
		req.Address.Province,
		req.Address.PostalCode,
	)
	if err != nil {
		return badRequest(ctx, "Invalid address: "+err.Error())
	}

	cmd, err := commands.NewPlaceOrderCommand(
		buyerID, items, req.Amount, address, req.PaymentMethod, req.Paid,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	placed, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(placed))
}

// GetOrdersByStage handles GET /api/v1/orders?stage= - lists one stage view.
func (s *Server) GetOrdersByStage(ctx echo.Context) error {
	stage, err := order.StageFromString(ctx.QueryParam("stage"))
	if err != nil {
		return badRequest(ctx, "Invalid stage: "+err.Error())
	}

	query, err := queries.NewGetOrdersByStageQuery(stage)
	if err != nil {
		return badRequest(ctx, "Invalid stage: "+err.Error())
	}

	orders, err := s.getOrdersByStageHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	response := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, orderReadModelToResponse(o))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:orderId - single order detail.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	items := make([]OrderItemResponse, 0, len(detail.Items))
	for _, item := range detail.Items {
		items = append(items, OrderItemResponse{ProductRef: item.ProductRef, Quantity: item.Quantity})
	}

	return ctx.JSON(http.StatusOK, OrderDetailResponse{
		OrderResponse: orderReadModelToResponse(detail.OrderResponse),
		Address:       detail.Address,
		Items:         items,
	})
}

// ShipOrder handles POST /api/v1/orders/:orderId/ship.
func (s *Server) ShipOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	cmd, err := commands.NewShipOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	shipped, err := s.shipOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(shipped))
}

// AssignCourier handles POST /api/v1/orders/:orderId/assign-courier.
// Responds 409 when the courier already holds an active order.
func (s *Server) AssignCourier(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	var req CourierIDRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return badRequest(ctx, "Invalid courier ID: "+err.Error())
	}

	cmd, err := commands.NewAssignCourierCommand(orderID, courierID)
	if err != nil {
		return badRequest(ctx, "Invalid assignment data: "+err.Error())
	}

	assigned, err := s.assignCourierHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(assigned))
}

// RemoveCourier handles POST /api/v1/orders/:orderId/remove-courier.
func (s *Server) RemoveCourier(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	var req CourierIDRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return badRequest(ctx, "Invalid courier ID: "+err.Error())
	}

	cmd, err := commands.NewRemoveCourierCommand(orderID, courierID)
	if err != nil {
		return badRequest(ctx, "Invalid release data: "+err.Error())
	}

	released, err := s.removeCourierHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(released))
}

// MarkOrderDelivered handles POST /api/v1/orders/:orderId/deliver.
func (s *Server) MarkOrderDelivered(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	cmd, err := commands.NewMarkOrderDeliveredCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	delivered, err := s.markOrderDeliveredHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(delivered))
}

// SetOrderStatus handles PATCH /api/v1/orders/:orderId/status - the legacy
// in-place status patch.
func (s *Server) SetOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	var req SetOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetOrderStatusCommand(orderID, req.Status, req.ClearCourier)
	if err != nil {
		return badRequest(ctx, "Invalid status data: "+err.Error())
	}

	patched, err := s.setOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(patched))
}

// GetCouriers handles GET /api/v1/couriers - the full roster.
func (s *Server) GetCouriers(ctx echo.Context) error {
	couriers, err := s.getAllCouriersHandler.Handle(
		ctx.Request().Context(), queries.NewGetAllCouriersQuery(),
	)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, courierReadModelsToResponse(couriers))
}

// GetAvailableCouriers handles GET /api/v1/couriers/available - couriers
// free to take an order.
func (s *Server) GetAvailableCouriers(ctx echo.Context) error {
	couriers, err := s.getAvailableCouriersHandler.Handle(
		ctx.Request().Context(), queries.NewGetAvailableCouriersQuery(),
	)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, courierReadModelsToResponse(couriers))
}

// GetCourier handles GET /api/v1/couriers/:courierId - single courier detail.
func (s *Server) GetCourier(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("courierId"))
	if err != nil {
		return badRequest(ctx, "Invalid courier ID: "+err.Error())
	}

	query, err := queries.NewGetCourierQuery(courierID)
	if err != nil {
		return badRequest(ctx, "Invalid courier ID: "+err.Error())
	}

	courier, err := s.getCourierHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CourierResponse{
		ID:            courier.ID.String(),
		Name:          courier.Name,
		Address:       courier.Address,
		PlateNumber:   courier.PlateNumber,
		LicenseNumber: courier.LicenseNumber,
	})
}

// CreateCourier handles POST /api/v1/couriers - registers a courier.
func (s *Server) CreateCourier(ctx echo.Context) error {
	var req CreateCourierRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateCourierCommand(
		req.Name, req.Address, req.PlateNumber, req.LicenseNumber,
	)
	if err != nil {
		return badRequest(ctx, "Invalid courier data: "+err.Error())
	}

	created, err := s.createCourierHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CourierResponse{
		ID:            created.ID().String(),
		Name:          created.Name(),
		Address:       created.Address(),
		PlateNumber:   created.PlateNumber(),
		LicenseNumber: created.LicenseNumber(),
	})
}

// DeleteCourier handles DELETE /api/v1/couriers/:courierId.
func (s *Server) DeleteCourier(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("courierId"))
	if err != nil {
		return badRequest(ctx, "Invalid courier ID: "+err.Error())
	}

	cmd, err := commands.NewDeleteCourierCommand(courierID)
	if err != nil {
		return badRequest(ctx, "Invalid courier ID: "+err.Error())
	}

	if err = s.deleteCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCourierOrders handles GET /api/v1/couriers/:courierId/orders.
func (s *Server) GetCourierOrders(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("courierId"))
	if err != nil {
		return badRequest(ctx, "Invalid courier ID: "+err.Error())
	}

	query, err := queries.NewGetCourierOrdersQuery(courierID)
	if err != nil {
		return badRequest(ctx, "Invalid courier ID: "+err.Error())
	}

	orders, err := s.getCourierOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	response := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, orderReadModelToResponse(o))
	}

	return ctx.JSON(http.StatusOK, response)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeDomainError maps domain errors onto status codes.
func writeDomainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, services.ErrCourierBusy), errors.Is(err, order.ErrCourierMismatch):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		})
	}
}

func orderToResponse(aggregate *order.Order) OrderResponse {
	var courierID *string
	if id := aggregate.Courier(); id != nil {
		s := id.String()
		courierID = &s
	}

	return OrderResponse{
		ID:            aggregate.ID().String(),
		BuyerID:       aggregate.BuyerID().String(),
		Amount:        aggregate.Amount(),
		PaymentMethod: aggregate.PaymentMethod(),
		Paid:          aggregate.Paid(),
		PlacedAt:      aggregate.PlacedAt(),
		Stage:         aggregate.Stage().String(),
		Status:        aggregate.StatusLabel(),
		CourierID:     courierID,
	}
}

func orderReadModelToResponse(o queries.OrderResponse) OrderResponse {
	var courierID *string
	if o.CourierID != nil {
		s := o.CourierID.String()
		courierID = &s
	}

	return OrderResponse{
		ID:            o.ID.String(),
		BuyerID:       o.BuyerID.String(),
		BuyerName:     o.BuyerName,
		Amount:        o.Amount,
		PaymentMethod: o.PaymentMethod,
		Paid:          o.Paid,
		PlacedAt:      o.PlacedAt,
		Stage:         o.Stage.String(),
		Status:        o.StatusLabel,
		CourierID:     courierID,
	}
}

func courierReadModelsToResponse(couriers []queries.CourierResponse) []CourierResponse {
	response := make([]CourierResponse, 0, len(couriers))
	for _, c := range couriers {
		response = append(response, CourierResponse{
			ID:            c.ID.String(),
			Name:          c.Name,
			Address:       c.Address,
			PlateNumber:   c.PlateNumber,
			LicenseNumber: c.LicenseNumber,
		})
	}
	return response
}
