// Package http is the JSON gateway. Handlers bind requests, build commands
// and queries, delegate to the application layer, and map its errors onto
// status codes. No business rules live here.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerUserHandler        commands.RegisterUserCommandHandler
	placeOrderHandler          commands.PlaceOrderCommandHandler
	acceptOrderHandler         commands.AcceptOrderCommandHandler
	cancelOrderHandler         commands.CancelOrderCommandHandler
	finishOrderHandler         commands.FinishOrderCommandHandler
	updateRiderLocationHandler commands.UpdateRiderLocationCommandHandler

	// Query handlers
	loginUserHandler    queries.LoginUserQueryHandler
	getAllOrdersHandler queries.GetAllOrdersQueryHandler
	getOrderHandler     queries.GetOrderQueryHandler
}

// NewServer creates the gateway with the required command and query handlers.
func NewServer(
	registerUserHandler commands.RegisterUserCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	finishOrderHandler commands.FinishOrderCommandHandler,
	updateRiderLocationHandler commands.UpdateRiderLocationCommandHandler,
	loginUserHandler queries.LoginUserQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		registerUserHandler:        registerUserHandler,
		placeOrderHandler:          placeOrderHandler,
		acceptOrderHandler:         acceptOrderHandler,
		cancelOrderHandler:         cancelOrderHandler,
		finishOrderHandler:         finishOrderHandler,
		updateRiderLocationHandler: updateRiderLocationHandler,
		loginUserHandler:           loginUserHandler,
		getAllOrdersHandler:        getAllOrdersHandler,
		getOrderHandler:            getOrderHandler,
	}
}

// RegisterRoutes attaches every gateway endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")
	api.POST("/register", s.RegisterUser)
	api.POST("/login", s.LoginUser)
	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/accept", s.AcceptOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/finish", s.FinishOrder)
	api.POST("/orders/:id/location", s.UpdateRiderLocation)
}

type messageResponse struct {
	Message string `json:"message"`
}

type userResponse struct {
	Message string    `json:"message"`
	User    user.View `json:"user"`
}

type orderResponse struct {
	Message string     `json:"message"`
	Order   order.View `json:"order"`
}

// RegisterUser handles POST /api/register.
func (s *Server) RegisterUser(ctx echo.Context) error {
	var req struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
		Role  string `json:"role"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRegisterUserCommand(req.Name, req.Phone, req.Role)
	if err != nil {
		return writeError(ctx, err)
	}

	view, err := s.registerUserHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, userResponse{
		Message: "User registered successfully!",
		User:    view,
	})
}

// LoginUser handles POST /api/login.
func (s *Server) LoginUser(ctx echo.Context) error {
	var req struct {
		Phone string `json:"phone"`
		Role  string `json:"role"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	query, err := queries.NewLoginUserQuery(req.Phone, req.Role)
	if err != nil {
		return writeError(ctx, err)
	}

	view, err := s.loginUserHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, userResponse{
		Message: "Login successful!",
		User:    view,
	})
}

// PlaceOrder handles POST /api/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req struct {
		CustomerRef     string `json:"customerRef"`
		PickupLocation  string `json:"pickupLocation"`
		DropoffLocation string `json:"dropoffLocation"`
		ItemDescription string `json:"itemDescription"`
		ContactNumber   string `json:"contactNumber"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerRef)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("customerRef", err))
	}

	cmd, err := commands.NewPlaceOrderCommand(customerID,
		req.PickupLocation, req.DropoffLocation, req.ItemDescription, req.ContactNumber)
	if err != nil {
		return writeError(ctx, err)
	}

	view, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponse{
		Message: "Order placed successfully!",
		Order:   view,
	})
}

// GetOrders handles GET /api/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	views, err := s.getAllOrdersHandler.Handle(
		ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	if views == nil {
		views = []order.View{}
	}
	return ctx.JSON(http.StatusOK, views)
}

// GetOrder handles GET /api/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, ok := parseOrderID(ctx)
	if !ok {
		return notFound(ctx)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, view)
}

// AcceptOrder handles POST /api/orders/:id/accept.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	id, ok := parseOrderID(ctx)
	if !ok {
		return notFound(ctx)
	}

	var req struct {
		RiderRef string `json:"riderRef"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	riderID, err := kernel.UUIDFromString(req.RiderRef)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("riderRef", err))
	}

	cmd, err := commands.NewAcceptOrderCommand(id, riderID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponse{
		Message: "Order accepted by " + result.Rider.Name,
		Order:   result.Order,
	})
}

// CancelOrder handles POST /api/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	id, ok := parseOrderID(ctx)
	if !ok {
		return notFound(ctx)
	}

	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	view, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponse{
		Message: "Order has been cancelled",
		Order:   view,
	})
}

// FinishOrder handles POST /api/orders/:id/finish.
func (s *Server) FinishOrder(ctx echo.Context) error {
	id, ok := parseOrderID(ctx)
	if !ok {
		return notFound(ctx)
	}

	cmd, err := commands.NewFinishOrderCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	view, err := s.finishOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponse{
		Message: "Order marked as completed",
		Order:   view,
	})
}

// UpdateRiderLocation handles POST /api/orders/:id/location.
func (s *Server) UpdateRiderLocation(ctx echo.Context) error {
	id, ok := parseOrderID(ctx)
	if !ok {
		return notFound(ctx)
	}

	var req struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateRiderLocationCommand(id, req.Lat, req.Lng)
	if err != nil {
		return writeError(ctx, err)
	}

	if _, err = s.updateRiderLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, messageResponse{
		Message: "Location updated successfully!",
	})
}

// parseOrderID reads the :id path parameter. An id that does not parse cannot
// name any order, so the caller treats it exactly like an unknown one.
func parseOrderID(ctx echo.Context) (order.ID, bool) {
	raw, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || raw <= 0 {
		return 0, false
	}
	return order.ID(raw), true
}

// writeError maps application errors onto status codes: not-found lookups
// become 404, every validation and transition rejection becomes 400 with the
// rejection's own message, anything unrecognized is a 500.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, messageResponse{
			Message: notFoundMessage(err),
		})

	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, order.ErrAlreadyHandled),
		errors.Is(err, order.ErrTerminalState),
		errors.Is(err, order.ErrNotAcceptedYet),
		errors.Is(err, order.ErrNotTrackable):
		return badRequest(ctx, err.Error())

	default:
		return ctx.JSON(http.StatusInternalServerError, messageResponse{
			Message: "Internal server error",
		})
	}
}

// notFoundMessage phrases the 404 after what was looked up. Order lookups
// stay "Order not found!".
func notFoundMessage(err error) string {
	var notFoundErr *errs.ObjectNotFoundError
	if errors.As(err, &notFoundErr) {
		switch notFoundErr.ParamName {
		case "riderId":
			return "Rider not found!"
		case "userId", "phone":
			return "User not found!"
		}
	}
	return "Order not found!"
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, messageResponse{Message: message})
}

func notFound(ctx echo.Context) error {
	return ctx.JSON(http.StatusNotFound, messageResponse{Message: "Order not found!"})
}
