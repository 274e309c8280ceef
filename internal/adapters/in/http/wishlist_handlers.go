package http

import (
	"net/http"
	"time"

	"fruitmall/internal/core/application/usecases/commands"
	"fruitmall/internal/core/application/usecases/queries"
	"fruitmall/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type addToWishlistRequest struct {
	FruitID string `json:"fruitId"`
}

type wishlistItemResponse struct {
	ID        string    `json:"id"`
	FruitID   string    `json:"fruitId"`
	FruitName string    `json:"fruitName"`
	Price     string    `json:"price"`
	InStock   bool      `json:"inStock"`
	AddedAt   time.Time `json:"addedAt"`
}

// getWishlist handles GET /api/v1/wishlist.
func (s *Server) getWishlist(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return writeError(c, err)
	}

	query, err := queries.NewGetWishlistQuery(principal)
	if err != nil {
		return writeError(c, err)
	}

	items, err := s.handlers.GetWishlist.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	response := make([]wishlistItemResponse, len(items))
	for i, item := range items {
		response[i] = wishlistItemResponse{
			ID:        item.ID.String(),
			FruitID:   item.FruitID.String(),
			FruitName: item.FruitName,
			Price:     item.Price.String(),
			InStock:   item.InStock,
			AddedAt:   item.AddedAt,
		}
	}

	return c.JSON(http.StatusOK, response)
}

// addToWishlist handles POST /api/v1/wishlist/items.
func (s *Server) addToWishlist(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return writeError(c, err)
	}

	var req addToWishlistRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	fruitID, err := kernel.UUIDFromString(req.FruitID)
	if err != nil {
		return badRequest(c, "invalid fruit id")
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewAddToWishlistCommand(itemID, fruitID, principal)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.handlers.AddToWishlist.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]string{"id": itemID.String()})
}

// removeFromWishlist handles DELETE /api/v1/wishlist/items/:id.
func (s *Server) removeFromWishlist(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return writeError(c, err)
	}

	itemID, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid wishlist item id")
	}

	cmd, err := commands.NewRemoveFromWishlistCommand(itemID, principal)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.handlers.RemoveFromWishlist.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
