// Package http exposes the fulfillment use cases over a REST API.
// Handlers translate transport concerns only: request decoding, error to
// status-code mapping, and response shaping. All business rules live in the
// command and query handlers.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	registerCustomerHandler commands.RegisterCustomerCommandHandler
	registerProductHandler  commands.RegisterProductCommandHandler
	restockProductHandler   commands.RestockProductCommandHandler
	createOrderHandler      commands.CreateOrderCommandHandler
	processNextOrderHandler commands.ProcessNextOrderCommandHandler
	cancelOrderHandler      commands.CancelOrderCommandHandler

	getCustomerHandler       queries.GetCustomerQueryHandler
	getOrderHandler          queries.GetOrderQueryHandler
	getOrderHistoryHandler   queries.GetOrderHistoryQueryHandler
	getBacklogSummaryHandler queries.GetBacklogSummaryQueryHandler

	metrics *metrics.Metrics
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerCustomerHandler commands.RegisterCustomerCommandHandler,
	registerProductHandler commands.RegisterProductCommandHandler,
	restockProductHandler commands.RestockProductCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	processNextOrderHandler commands.ProcessNextOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getCustomerHandler queries.GetCustomerQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler,
	getBacklogSummaryHandler queries.GetBacklogSummaryQueryHandler,
	m *metrics.Metrics,
) *Server {
	return &Server{
		registerCustomerHandler:  registerCustomerHandler,
		registerProductHandler:   registerProductHandler,
		restockProductHandler:    restockProductHandler,
		createOrderHandler:       createOrderHandler,
		processNextOrderHandler:  processNextOrderHandler,
		cancelOrderHandler:       cancelOrderHandler,
		getCustomerHandler:       getCustomerHandler,
		getOrderHandler:          getOrderHandler,
		getOrderHistoryHandler:   getOrderHistoryHandler,
		getBacklogSummaryHandler: getBacklogSummaryHandler,
		metrics:                  m,
	}
}

// RegisterRoutes mounts the API on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Use(s.requestMetrics)

	api := e.Group("/api/v1")
	api.POST("/customers", s.RegisterCustomer)
	api.GET("/customers/:id", s.GetCustomer)
	api.POST("/products", s.RegisterProduct)
	api.POST("/products/:id/restock", s.RestockProduct)
	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/process-next", s.ProcessNextOrder)
	api.DELETE("/orders/:id", s.CancelOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.GET("/orders/:id/history", s.GetOrderHistory)
	api.GET("/backlog", s.GetBacklogSummary)

	e.GET("/health", s.Health)
}

func (s *Server) requestMetrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		start := time.Now()
		err := next(ctx)

		handler := ctx.Path()
		status := ctx.Response().Status
		if err != nil {
			var httpErr *echo.HTTPError
			if errors.As(err, &httpErr) {
				status = httpErr.Code
			}
		}

		s.metrics.Requests.WithLabelValues(handler, strconv.Itoa(status)).Inc()
		s.metrics.LatencyMS.WithLabelValues(handler).
			Observe(float64(time.Since(start).Milliseconds()))
		return err
	}
}

// RegisterCustomer handles POST /api/v1/customers.
func (s *Server) RegisterCustomer(ctx echo.Context) error {
	var req NewCustomerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRegisterCustomerCommand(req.Name)
	if err != nil {
		return badRequest(ctx, "Invalid customer data: "+err.Error())
	}

	id, err := s.registerCustomerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return internalError(ctx, "Failed to register customer")
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: int64(id)})
}

// GetCustomer handles GET /api/v1/customers/:id.
func (s *Server) GetCustomer(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	query, err := queries.NewGetCustomerQuery(kernel.CustomerID(id))
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	c, err := s.getCustomerHandler.Handle(ctx.Request().Context(), query)
	if errors.Is(err, queries.ErrCustomerNotFound) {
		return notFound(ctx, "Customer not found")
	}
	if err != nil {
		return internalError(ctx, "Failed to retrieve customer")
	}

	return ctx.JSON(http.StatusOK, CustomerResponse{
		ID:            int64(c.ID),
		Name:          c.Name,
		LoyaltyPoints: c.LoyaltyPoints,
		IsPriority:    c.IsPriority,
	})
}

// RegisterProduct handles POST /api/v1/products.
func (s *Server) RegisterProduct(ctx echo.Context) error {
	var req NewProductRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRegisterProductCommand(req.Name, req.Price, req.Stock)
	if err != nil {
		return badRequest(ctx, "Invalid product data: "+err.Error())
	}

	id, err := s.registerProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return internalError(ctx, "Failed to register product")
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: int64(id)})
}

// RestockProduct handles POST /api/v1/products/:id/restock.
func (s *Server) RestockProduct(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid product id")
	}

	var req RestockRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRestockProductCommand(kernel.ProductID(id), req.Quantity)
	if err != nil {
		return badRequest(ctx, "Invalid restock data: "+err.Error())
	}

	err = s.restockProductHandler.Handle(ctx.Request().Context(), cmd)
	if errors.Is(err, commands.ErrProductNotFound) {
		return notFound(ctx, "Product not found")
	}
	if err != nil {
		return internalError(ctx, "Failed to restock product")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req NewOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	items := make([]order.Item, 0, len(req.Items))
	for _, line := range req.Items {
		item, err := order.NewItem(kernel.ProductID(line.ProductID), line.Quantity)
		if err != nil {
			return badRequest(ctx, "Invalid order line: "+err.Error())
		}
		items = append(items, item)
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.CustomerID(req.CustomerID), items)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	orderID, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	switch {
	case errors.Is(err, commands.ErrCustomerNotFound):
		s.metrics.OrdersRejected.WithLabelValues("customer_not_found").Inc()
		return notFound(ctx, "Customer not found")
	case errors.Is(err, commands.ErrProductNotFound):
		s.metrics.OrdersRejected.WithLabelValues("product_not_found").Inc()
		return notFound(ctx, "Product not found")
	case errors.Is(err, product.ErrInsufficientStock):
		s.metrics.OrdersRejected.WithLabelValues("insufficient_stock").Inc()
		return conflict(ctx, "Insufficient stock")
	case err != nil:
		return internalError(ctx, "Failed to create order")
	}

	s.metrics.OrdersCreated.Inc()
	return ctx.JSON(http.StatusCreated, IDResponse{ID: int64(orderID)})
}

// ProcessNextOrder handles POST /api/v1/orders/process-next.
func (s *Server) ProcessNextOrder(ctx echo.Context) error {
	o, err := s.processNextOrderHandler.Handle(
		ctx.Request().Context(), commands.NewProcessNextOrderCommand())
	if errors.Is(err, commands.ErrBacklogEmpty) {
		// Both lanes drained: nothing to do is not an error.
		return ctx.NoContent(http.StatusNoContent)
	}
	if err != nil {
		return internalError(ctx, "Failed to process order")
	}

	s.metrics.OrdersProcessed.Inc()
	return ctx.JSON(http.StatusOK, toOrderResponse(o))
}

// CancelOrder handles DELETE /api/v1/orders/:id.
func (s *Server) CancelOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(kernel.OrderID(id))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	switch {
	case errors.Is(err, commands.ErrOrderNotFound):
		return notFound(ctx, "Order not found")
	case errors.Is(err, order.ErrInvalidTransition):
		return conflict(ctx, "Order is already completed or cancelled")
	case err != nil:
		return internalError(ctx, "Failed to cancel order")
	}

	s.metrics.OrdersCancelled.Inc()
	return ctx.NoContent(http.StatusNoContent)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(kernel.OrderID(id))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	o, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if errors.Is(err, queries.ErrOrderNotFound) {
		return notFound(ctx, "Order not found")
	}
	if err != nil {
		return internalError(ctx, "Failed to retrieve order")
	}

	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID: int64(item.ProductID),
			Quantity:  item.Quantity,
		})
	}

	return ctx.JSON(http.StatusOK, OrderResponse{
		ID:         int64(o.ID),
		CustomerID: int64(o.CustomerID),
		Items:      items,
		Status:     o.Status,
		CreatedAt:  o.CreatedAt,
	})
}

// GetOrderHistory handles GET /api/v1/orders/:id/history.
func (s *Server) GetOrderHistory(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderHistoryQuery(kernel.OrderID(id))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	history, err := s.getOrderHistoryHandler.Handle(ctx.Request().Context(), query)
	if errors.Is(err, queries.ErrOrderNotFound) {
		return notFound(ctx, "Order not found")
	}
	if err != nil {
		return internalError(ctx, "Failed to retrieve order history")
	}

	response := make([]HistoryEntryResponse, 0, len(history))
	for _, entry := range history {
		response = append(response, HistoryEntryResponse{
			OrderID:   int64(entry.OrderID),
			Status:    entry.Status,
			Timestamp: entry.Timestamp,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetBacklogSummary handles GET /api/v1/backlog.
func (s *Server) GetBacklogSummary(ctx echo.Context) error {
	summary, err := s.getBacklogSummaryHandler.Handle(
		ctx.Request().Context(), queries.NewGetBacklogSummaryQuery())
	if err != nil {
		return internalError(ctx, "Failed to retrieve backlog summary")
	}

	s.metrics.BacklogSize.WithLabelValues("regular").Set(float64(summary.Regular))
	s.metrics.BacklogSize.WithLabelValues("priority").Set(float64(summary.Priority))

	return ctx.JSON(http.StatusOK, BacklogSummaryResponse{
		Regular:  summary.Regular,
		Priority: summary.Priority,
	})
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func toOrderResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemResponse{
			ProductID: int64(item.ProductID()),
			Quantity:  item.Quantity(),
		})
	}

	return OrderResponse{
		ID:         int64(o.ID()),
		CustomerID: int64(o.CustomerID()),
		Items:      items,
		Status:     o.Status().String(),
		CreatedAt:  o.CreatedAt(),
	}
}

func pathID(ctx echo.Context) (int64, error) {
	return strconv.ParseInt(ctx.Param("id"), 10, 64)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, Error{Code: http.StatusNotFound, Message: message})
}

func conflict(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusConflict, Error{Code: http.StatusConflict, Message: message})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, Error{Code: http.StatusInternalServerError, Message: message})
}
