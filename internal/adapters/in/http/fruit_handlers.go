package http

import (
	"net/http"
	"time"

	"fruitmall/internal/core/application/usecases/commands"
	"fruitmall/internal/core/application/usecases/queries"
	"fruitmall/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type fruitRequest struct {
	Name          string `json:"name"`
	Origin        string `json:"origin"`
	StockQuantity int    `json:"stockQuantity"`
	Price         string `json:"price"`
	CategoryID    string `json:"categoryId"`
	Season        string `json:"season"`
	Description   string `json:"description"`
	ImageURL      string `json:"imageUrl"`
}

type updateStockRequest struct {
	StockQuantity int `json:"stockQuantity"`
}

type categoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type fruitResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Origin        string `json:"origin"`
	StockQuantity int    `json:"stockQuantity"`
	Price         string `json:"price"`
	CategoryID    string `json:"categoryId"`
	CategoryName  string `json:"categoryName"`
	Season        string `json:"season"`
	Description   string `json:"description"`
	ImageURL      string `json:"imageUrl"`
}

type reviewResponse struct {
	ID         string    `json:"id"`
	AuthorName string    `json:"authorName"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toFruitResponse(entry queries.FruitResponse) fruitResponse {
	return fruitResponse{
		ID:            entry.ID.String(),
		Name:          entry.Name,
		Origin:        entry.Origin,
		StockQuantity: entry.StockQuantity,
		Price:         entry.Price.String(),
		CategoryID:    entry.CategoryID.String(),
		CategoryName:  entry.CategoryName,
		Season:        entry.Season,
		Description:   entry.Description,
		ImageURL:      entry.ImageURL,
	}
}

// parseFruitRequest converts the JSON body into domain values.
func parseFruitRequest(req fruitRequest) (kernel.Money, kernel.UUID, error) {
	price, err := kernel.MoneyFromString(req.Price)
	if err != nil {
		return kernel.Money{}, kernel.UUID{}, err
	}

	categoryID, err := kernel.UUIDFromString(req.CategoryID)
	if err != nil {
		return kernel.Money{}, kernel.UUID{}, err
	}

	return price, categoryID, nil
}

// getFruits handles GET /api/v1/fruits with optional category, season, and
// name filters.
func (s *Server) getFruits(c echo.Context) error {
	var categoryID kernel.UUID
	if raw := c.QueryParam("category"); raw != "" {
		parsed, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(c, "invalid category filter")
		}
		categoryID = parsed
	}

	query, err := queries.NewGetFruitsQuery(categoryID, c.QueryParam("season"),
		c.QueryParam("name"))
	if err != nil {
		return writeError(c, err)
	}

	fruits, err := s.handlers.GetFruits.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	response := make([]fruitResponse, len(fruits))
	for i, entry := range fruits {
		response[i] = toFruitResponse(entry)
	}

	return c.JSON(http.StatusOK, response)
}

// getFruit handles GET /api/v1/fruits/:id.
func (s *Server) getFruit(c echo.Context) error {
	fruitID, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid fruit id")
	}

	query, err := queries.NewGetFruitQuery(fruitID)
	if err != nil {
		return writeError(c, err)
	}

	entry, err := s.handlers.GetFruit.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, toFruitResponse(entry))
}

// getFruitReviews handles GET /api/v1/fruits/:id/reviews.
func (s *Server) getFruitReviews(c echo.Context) error {
	fruitID, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid fruit id")
	}

	query, err := queries.NewGetFruitReviewsQuery(fruitID)
	if err != nil {
		return writeError(c, err)
	}

	reviews, err := s.handlers.GetFruitReviews.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	response := make([]reviewResponse, len(reviews))
	for i, rev := range reviews {
		response[i] = reviewResponse{
			ID:         rev.ID.String(),
			AuthorName: rev.AuthorName,
			Rating:     rev.Rating,
			Comment:    rev.Comment,
			CreatedAt:  rev.CreatedAt,
		}
	}

	return c.JSON(http.StatusOK, response)
}

// registerFruit handles POST /api/v1/fruits.
func (s *Server) registerFruit(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return writeError(c, err)
	}

	var req fruitRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	price, categoryID, err := parseFruitRequest(req)
	if err != nil {
		return writeError(c, err)
	}

	fruitID := kernel.NewUUID()
	cmd, err := commands.NewRegisterFruitCommand(fruitID, req.Name, req.Origin,
		req.StockQuantity, price, categoryID, req.Season, req.Description, req.ImageURL,
		principal)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.handlers.RegisterFruit.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]string{"id": fruitID.String()})
}

// updateFruit handles PUT /api/v1/fruits/:id.
func (s *Server) updateFruit(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return writeError(c, err)
	}

	fruitID, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid fruit id")
	}

	var req fruitRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	price, categoryID, err := parseFruitRequest(req)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewUpdateFruitCommand(fruitID, req.Name, req.Origin, price,
		categoryID, req.Season, req.Description, req.ImageURL, principal)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.handlers.UpdateFruit.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// updateFruitStock handles PUT /api/v1/fruits/:id/stock.
func (s *Server) updateFruitStock(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return writeError(c, err)
	}

	fruitID, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid fruit id")
	}

	var req updateStockRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewUpdateFruitStockCommand(fruitID, req.StockQuantity, principal)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.handlers.UpdateFruitStock.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// deleteFruit handles DELETE /api/v1/fruits/:id.
func (s *Server) deleteFruit(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return writeError(c, err)
	}

	fruitID, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid fruit id")
	}

	cmd, err := commands.NewDeleteFruitCommand(fruitID, principal)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.handlers.DeleteFruit.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// createCategory handles POST /api/v1/categories.
func (s *Server) createCategory(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return writeError(c, err)
	}

	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	categoryID := kernel.NewUUID()
	cmd, err := commands.NewCreateCategoryCommand(categoryID, req.Name, req.Description,
		principal)
	if err != nil {
		return writeError(c, err)
	}

	if err := s.handlers.CreateCategory.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]string{"id": categoryID.String()})
}
