package queries

import (
	"context"

	"fruitmall/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetFruitQueryHandler reads one catalog entry.
type GetFruitQueryHandler struct {
	db *gorm.DB
}

// NewGetFruitQueryHandler creates a handler for single-fruit reads.
func NewGetFruitQueryHandler(db *gorm.DB) GetFruitQueryHandler {
	return GetFruitQueryHandler{db: db}
}

// Handle returns the fruit with its category name resolved.
func (h GetFruitQueryHandler) Handle(ctx context.Context,
	query GetFruitQuery) (FruitResponse, error) {
	if err := query.Validate(); err != nil {
		return FruitResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		fruitSelect+" WHERE f.id = ?", query.FruitID().Bytes()).Rows()
	if err != nil {
		return FruitResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return FruitResponse{}, err
		}
		return FruitResponse{}, errs.NewObjectNotFoundError("fruitID", query.FruitID())
	}

	entry, err := scanFruitRow(rows)
	if err != nil {
		return FruitResponse{}, err
	}

	return entry, rows.Err()
}
