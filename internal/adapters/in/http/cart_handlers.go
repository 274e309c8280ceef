package http

import (
	"net/http"

	"fruitmall/internal/core/application/usecases/commands"
	"fruitmall/internal/core/application/usecases/queries"
	"fruitmall/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type addToCartRequest struct {
	FruitID  string `json:"fruitId"`
	Quantity int    `json:"quantity"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type cartItemResponse struct {
	ID            string `json:"id"`
	FruitID       string `json:"fruitId"`
	FruitName     string `json:"fruitName"`
	Quantity      int    `json:"quantity"`
	UnitPrice     string `json:"unitPrice"`
	StockQuantity int    `json:"stockQuantity"`
}

// getCart handles GET /api/v1/cart.
func (s *Server) getCart(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return writeError(c, err)
	}

	query, err := queries.NewGetCartQuery(principal)
	if err != nil {
		return writeError(c, err)
	}

	items, err := s.handlers.GetCart.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	response := make([]cartItemResponse, len(items))
	for i, item := range items {
		response[i] = cartItemResponse{
			ID:            item.ID.String(),
			FruitID:       item.FruitID.String(),
			FruitName:     item.FruitName,
			Quantity:      item.Quantity,
			UnitPrice:     item.UnitPrice.String(),
			StockQuantity: item.StockQuantity,
		}
	}

	return c.JSON(http.StatusOK, response)
}

// addToCart handles POST /api/v1/cart/items. Adding a fruit already in the
// cart merges the quantities.
func (s *Server) addToCart(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return writeError(c, err)
	}

	var req addToCartRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	fruitID, err := kernel.UUIDFromString(req.FruitID)
	if err != nil {
		return badRequest(c, "invalid fruit id")
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewAddToCartCommand(itemID, fruitID, req.Quantity, principal)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.handlers.AddToCart.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]string{"id": itemID.String()})
}

// updateCartItem handles PUT /api/v1/cart/items/:id.
func (s *Server) updateCartItem(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return writeError(c, err)
	}

	itemID, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid cart item id")
	}

	var req updateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewUpdateCartItemCommand(itemID, req.Quantity, principal)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.handlers.UpdateCartItem.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// removeCartItem handles DELETE /api/v1/cart/items/:id.
func (s *Server) removeCartItem(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return writeError(c, err)
	}

	itemID, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid cart item id")
	}

	cmd, err := commands.NewRemoveCartItemCommand(itemID, principal)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.handlers.RemoveCartItem.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// clearCart handles DELETE /api/v1/cart.
func (s *Server) clearCart(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewClearCartCommand(principal)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.handlers.ClearCart.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
