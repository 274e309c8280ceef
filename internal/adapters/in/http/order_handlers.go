package http

import (
	"net/http"
	"time"

	"fruitmall/internal/core/application/usecases/commands"
	"fruitmall/internal/core/application/usecases/queries"
	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

type createOrderRequest struct {
	PaymentMethod string             `json:"paymentMethod"`
	Items         []orderItemRequest `json:"items"`
}

type orderItemRequest struct {
	FruitID  string `json:"fruitId"`
	Quantity int    `json:"quantity"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

type orderDetailResponse struct {
	ID        string `json:"id"`
	FruitID   string `json:"fruitId"`
	FruitName string `json:"fruitName"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
}

type orderResponse struct {
	ID            string                `json:"id"`
	MemberID      string                `json:"memberId"`
	OrderDate     time.Time             `json:"orderDate"`
	PaymentMethod string                `json:"paymentMethod"`
	Status        string                `json:"status"`
	TotalPrice    string                `json:"totalPrice"`
	Details       []orderDetailResponse `json:"details"`
}

type orderSummaryResponse struct {
	ID            string    `json:"id"`
	MemberID      string    `json:"memberId"`
	OrderDate     time.Time `json:"orderDate"`
	PaymentMethod string    `json:"paymentMethod"`
	Status        string    `json:"status"`
	TotalPrice    string    `json:"totalPrice"`
	LineCount     int       `json:"lineCount"`
}

func toOrderSummaryResponses(orders []queries.OrderSummaryResponse) []orderSummaryResponse {
	response := make([]orderSummaryResponse, len(orders))
	for i, o := range orders {
		response[i] = orderSummaryResponse{
			ID:            o.ID.String(),
			MemberID:      o.MemberID.String(),
			OrderDate:     o.OrderDate,
			PaymentMethod: o.PaymentMethod,
			Status:        o.Status,
			TotalPrice:    o.TotalPrice.String(),
			LineCount:     o.LineCount,
		}
	}
	return response
}

// createOrder handles POST /api/v1/orders. Stock is reserved for every line
// before the order is accepted; a sold-out line rejects the whole order.
func (s *Server) createOrder(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return writeError(c, err)
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	items := make([]commands.OrderItem, 0, len(req.Items))
	for _, raw := range req.Items {
		fruitID, err := kernel.UUIDFromString(raw.FruitID)
		if err != nil {
			return badRequest(c, "invalid fruit id in order item")
		}

		item, err := commands.NewOrderItem(fruitID, raw.Quantity)
		if err != nil {
			return writeError(c, err)
		}
		items = append(items, item)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, req.PaymentMethod, principal, items)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// getOrder handles GET /api/v1/orders/:id.
func (s *Server) getOrder(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return writeError(c, err)
	}

	orderID, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID, principal)
	if err != nil {
		return writeError(c, err)
	}

	o, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	details := make([]orderDetailResponse, len(o.Details))
	for i, d := range o.Details {
		details[i] = orderDetailResponse{
			ID:        d.ID.String(),
			FruitID:   d.FruitID.String(),
			FruitName: d.FruitName,
			Quantity:  d.Quantity,
			UnitPrice: d.UnitPrice.String(),
		}
	}

	return c.JSON(http.StatusOK, orderResponse{
		ID:            o.ID.String(),
		MemberID:      o.MemberID.String(),
		OrderDate:     o.OrderDate,
		PaymentMethod: o.PaymentMethod,
		Status:        o.Status,
		TotalPrice:    o.TotalPrice.String(),
		Details:       details,
	})
}

// getMemberOrders handles GET /api/v1/members/:id/orders.
func (s *Server) getMemberOrders(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return writeError(c, err)
	}

	memberID, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid member id")
	}

	query, err := queries.NewGetMemberOrdersQuery(memberID, principal)
	if err != nil {
		return writeError(c, err)
	}

	orders, err := s.handlers.GetMemberOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toOrderSummaryResponses(orders))
}

// getOrders handles GET /api/v1/orders with optional status, from, and to
// filters. Administrators only.
func (s *Server) getOrders(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return writeError(c, err)
	}

	status := order.UnknownStatus
	if raw := c.QueryParam("status"); raw != "" {
		parsed, err := order.StatusFromString(raw)
		if err != nil {
			return badRequest(c, "invalid status filter")
		}
		status = parsed
	}

	var from, to time.Time
	if raw := c.QueryParam("from"); raw != "" {
		if from, err = time.Parse(time.RFC3339, raw); err != nil {
			return badRequest(c, "invalid from filter")
		}
	}
	if raw := c.QueryParam("to"); raw != "" {
		if to, err = time.Parse(time.RFC3339, raw); err != nil {
			return badRequest(c, "invalid to filter")
		}
	}

	query, err := queries.NewGetOrdersQuery(status, from, to, principal)
	if err != nil {
		return writeError(c, err)
	}

	orders, err := s.handlers.GetOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toOrderSummaryResponses(orders))
}

// payOrder handles POST /api/v1/orders/:id/pay.
func (s *Server) payOrder(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return writeError(c, err)
	}

	orderID, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	cmd, err := commands.NewPayOrderCommand(orderID, principal)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.handlers.PayOrder.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// updateOrderStatus handles PUT /api/v1/orders/:id/status. Customers can
// only cancel their own orders; administrators can set any status.
func (s *Server) updateOrderStatus(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return writeError(c, err)
	}

	orderID, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(c, "invalid order status")
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status, principal)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.handlers.UpdateOrderStatus.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// deleteOrder handles DELETE /api/v1/orders/:id. Administrators only.
func (s *Server) deleteOrder(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return writeError(c, err)
	}

	orderID, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID, principal)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.handlers.DeleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
