package http

import (
	"net/http"
	"time"

	"fruitmall/internal/core/application/usecases/commands"
	"fruitmall/internal/core/application/usecases/queries"
	"fruitmall/internal/core/domain/model/delivery"
	"fruitmall/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type addressRequest struct {
	Recipient       string `json:"recipient"`
	ZipCode         string `json:"zipCode"`
	Address1        string `json:"address1"`
	Address2        string `json:"address2"`
	PhoneNumber     string `json:"phoneNumber"`
	DeliveryRequest string `json:"deliveryRequest"`
}

func (r addressRequest) toDomain() (delivery.Address, error) {
	return delivery.NewAddress(r.Recipient, r.ZipCode, r.Address1, r.Address2,
		r.PhoneNumber, r.DeliveryRequest)
}

type createDeliveryRequest struct {
	OrderID              string         `json:"orderId"`
	Status               string         `json:"status"`
	ExpectedDeliveryDate time.Time      `json:"expectedDeliveryDate"`
	CourierCompany       string         `json:"courierCompany"`
	TrackingNumber       string         `json:"trackingNumber"`
	Address              addressRequest `json:"address"`
}

type updateDeliveryStatusRequest struct {
	Status string `json:"status"`
}

type updateTrackingInfoRequest struct {
	CourierCompany string `json:"courierCompany"`
	TrackingNumber string `json:"trackingNumber"`
}

type updateDeliveryInfoRequest struct {
	Status               string    `json:"status"`
	ExpectedDeliveryDate time.Time `json:"expectedDeliveryDate"`
	CourierCompany       string    `json:"courierCompany"`
	TrackingNumber       string    `json:"trackingNumber"`
}

type addressResponse struct {
	Recipient       string `json:"recipient"`
	ZipCode         string `json:"zipCode"`
	Address1        string `json:"address1"`
	Address2        string `json:"address2,omitempty"`
	PhoneNumber     string `json:"phoneNumber"`
	DeliveryRequest string `json:"deliveryRequest,omitempty"`
}

type deliveryResponse struct {
	ID                   string          `json:"id"`
	OrderID              string          `json:"orderId"`
	Address              addressResponse `json:"address"`
	Status               string          `json:"status"`
	TrackingNumber       string          `json:"trackingNumber"`
	CourierCompany       string          `json:"courierCompany"`
	ExpectedDeliveryDate time.Time       `json:"expectedDeliveryDate"`
	ActualDeliveryDate   *time.Time      `json:"actualDeliveryDate,omitempty"`
}

func toDeliveryResponse(d queries.DeliveryResponse) deliveryResponse {
	return deliveryResponse{
		ID:      d.ID.String(),
		OrderID: d.OrderID.String(),
		Address: addressResponse{
			Recipient:       d.Address.Recipient,
			ZipCode:         d.Address.ZipCode,
			Address1:        d.Address.Address1,
			Address2:        d.Address.Address2,
			PhoneNumber:     d.Address.PhoneNumber,
			DeliveryRequest: d.Address.DeliveryRequest,
		},
		Status:               d.Status,
		TrackingNumber:       d.TrackingNumber,
		CourierCompany:       d.CourierCompany,
		ExpectedDeliveryDate: d.ExpectedDeliveryDate,
		ActualDeliveryDate:   d.ActualDeliveryDate,
	}
}

// getDelivery handles GET /api/v1/deliveries/:id. Public, so recipients who
// did not place the order can track their shipment.
func (s *Server) getDelivery(c echo.Context) error {
	deliveryID, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid delivery id")
	}

	query, err := queries.NewGetDeliveryQuery(deliveryID)
	if err != nil {
		return writeError(c, err)
	}

	d, err := s.handlers.GetDelivery.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toDeliveryResponse(d))
}

// getDeliveryByOrder handles GET /api/v1/orders/:id/delivery.
func (s *Server) getDeliveryByOrder(c echo.Context) error {
	orderID, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	query, err := queries.NewGetDeliveryByOrderQuery(orderID)
	if err != nil {
		return writeError(c, err)
	}

	d, err := s.handlers.GetDeliveryByOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toDeliveryResponse(d))
}

// getDeliveries handles GET /api/v1/deliveries with optional status,
// expectedFrom, expectedTo, and trackingNumber filters.
func (s *Server) getDeliveries(c echo.Context) error {
	status := delivery.UnknownStatus
	if raw := c.QueryParam("status"); raw != "" {
		parsed, err := delivery.StatusFromString(raw)
		if err != nil {
			return badRequest(c, "invalid status filter")
		}
		status = parsed
	}

	var expectedFrom, expectedTo time.Time
	var err error
	if raw := c.QueryParam("expectedFrom"); raw != "" {
		if expectedFrom, err = time.Parse(time.RFC3339, raw); err != nil {
			return badRequest(c, "invalid expectedFrom filter")
		}
	}
	if raw := c.QueryParam("expectedTo"); raw != "" {
		if expectedTo, err = time.Parse(time.RFC3339, raw); err != nil {
			return badRequest(c, "invalid expectedTo filter")
		}
	}

	query, err := queries.NewGetDeliveriesQuery(status, expectedFrom, expectedTo,
		c.QueryParam("trackingNumber"))
	if err != nil {
		return writeError(c, err)
	}

	deliveries, err := s.handlers.GetDeliveries.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	response := make([]deliveryResponse, len(deliveries))
	for i, d := range deliveries {
		response[i] = toDeliveryResponse(d)
	}

	return c.JSON(http.StatusOK, response)
}

// createDelivery handles POST /api/v1/deliveries. Administrators only; the
// order must be paid. An omitted status defaults to PREPARING.
func (s *Server) createDelivery(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return writeError(c, err)
	}

	var req createDeliveryRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	status := delivery.Preparing
	if req.Status != "" {
		if status, err = delivery.StatusFromString(req.Status); err != nil {
			return badRequest(c, "invalid delivery status")
		}
	}

	address, err := req.Address.toDomain()
	if err != nil {
		return writeError(c, err)
	}

	deliveryID := kernel.NewUUID()
	cmd, err := commands.NewCreateDeliveryCommand(deliveryID, orderID, status,
		req.ExpectedDeliveryDate, req.CourierCompany, req.TrackingNumber, address, principal)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.handlers.CreateDelivery.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]string{"id": deliveryID.String()})
}

// updateDeliveryStatus handles PUT /api/v1/deliveries/:id/status.
// Administrators only. Status changes propagate to the order.
func (s *Server) updateDeliveryStatus(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return writeError(c, err)
	}

	deliveryID, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid delivery id")
	}

	var req updateDeliveryStatusRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	status, err := delivery.StatusFromString(req.Status)
	if err != nil {
		return badRequest(c, "invalid delivery status")
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(deliveryID, status, principal)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.handlers.UpdateDeliveryStatus.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// updateTrackingInfo handles PUT /api/v1/deliveries/:id/tracking.
func (s *Server) updateTrackingInfo(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return writeError(c, err)
	}

	deliveryID, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid delivery id")
	}

	var req updateTrackingInfoRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewUpdateTrackingInfoCommand(deliveryID, req.CourierCompany,
		req.TrackingNumber, principal)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.handlers.UpdateTrackingInfo.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// updateDeliveryInfo handles PUT /api/v1/deliveries/:id. Administrators only.
// Changes the status, expected date, and courier details in one step; the
// status change propagates to the order like a plain status update.
func (s *Server) updateDeliveryInfo(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return writeError(c, err)
	}

	deliveryID, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid delivery id")
	}

	var req updateDeliveryInfoRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	status, err := delivery.StatusFromString(req.Status)
	if err != nil {
		return badRequest(c, "invalid delivery status")
	}

	cmd, err := commands.NewUpdateDeliveryInfoCommand(deliveryID, status,
		req.ExpectedDeliveryDate, req.CourierCompany, req.TrackingNumber, principal)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.handlers.UpdateDeliveryInfo.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// updateDeliveryAddress handles PUT /api/v1/deliveries/:id/address. The
// destination can only change while the delivery is still being prepared.
func (s *Server) updateDeliveryAddress(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return writeError(c, err)
	}

	deliveryID, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid delivery id")
	}

	var req addressRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	address, err := req.toDomain()
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewUpdateDeliveryAddressCommand(deliveryID, address, principal)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.handlers.UpdateDeliveryAddress.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// cancelDelivery handles POST /api/v1/deliveries/:id/cancel. Cancelling a
// delivery cancels the order and restores its stock.
func (s *Server) cancelDelivery(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return writeError(c, err)
	}

	deliveryID, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid delivery id")
	}

	cmd, err := commands.NewCancelDeliveryCommand(deliveryID, principal)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.handlers.CancelDelivery.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
