package queries

import (
	"context"

	"fruitmall/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetFruitsQueryHandler lists the fruit catalog.
type GetFruitsQueryHandler struct {
	db *gorm.DB
}

// NewGetFruitsQueryHandler creates a handler for catalog listings.
func NewGetFruitsQueryHandler(db *gorm.DB) GetFruitsQueryHandler {
	return GetFruitsQueryHandler{db: db}
}

// Handle returns catalog entries matching the filters, ordered by name.
func (h GetFruitsQueryHandler) Handle(ctx context.Context,
	query GetFruitsQuery) ([]FruitResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := fruitSelect + " WHERE 1=1"
	args := make([]any, 0, 3)

	if query.CategoryID().Validate() == nil {
		sql += " AND f.category_id = ?"
		args = append(args, query.CategoryID().Bytes())
	}
	if query.Season() != "" {
		sql += " AND f.season = ?"
		args = append(args, query.Season())
	}
	if query.Name() != "" {
		sql += " AND f.name ILIKE ?"
		args = append(args, "%"+query.Name()+"%")
	}
	sql += " ORDER BY f.name"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fruits := make([]FruitResponse, 0)
	for rows.Next() {
		entry, err := scanFruitRow(rows)
		if err != nil {
			return nil, err
		}
		fruits = append(fruits, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fruits, nil
}

const fruitSelect = `
	SELECT f.id, f.name, f.origin, f.stock_quantity, f.price,
	       f.category_id, COALESCE(c.name, ''), f.season, f.description, f.image_url
	FROM fruits f
	LEFT JOIN categories c ON c.id = f.category_id`

type fruitRowScanner interface {
	Scan(dest ...any) error
}

func scanFruitRow(row fruitRowScanner) (FruitResponse, error) {
	var entry FruitResponse
	var fruitID, categoryID uuid.UUID

	err := row.Scan(&fruitID, &entry.Name, &entry.Origin, &entry.StockQuantity,
		&entry.Price, &categoryID, &entry.CategoryName, &entry.Season,
		&entry.Description, &entry.ImageURL)
	if err != nil {
		return FruitResponse{}, err
	}

	if entry.ID, err = kernel.UUIDFromBytes(fruitID[:]); err != nil {
		return FruitResponse{}, err
	}
	if entry.CategoryID, err = kernel.UUIDFromBytes(categoryID[:]); err != nil {
		return FruitResponse{}, err
	}

	return entry, nil
}
