// Package fruitrepo persists the Fruit and Category aggregates.
package fruitrepo

import (
	"fruitmall/internal/core/domain/model/fruit"
	"fruitmall/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FruitDTO is the database representation of a catalog fruit.
type FruitDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name          string          `gorm:"not null"`
	Origin        string
	StockQuantity int             `gorm:"not null"`
	Price         decimal.Decimal `gorm:"type:numeric(12,2)"`
	CategoryID    uuid.UUID       `gorm:"type:uuid;index"`
	Season        string
	Description   string
	ImageURL      string
}

// TableName overrides GORM's default naming to use "fruits".
func (FruitDTO) TableName() string {
	return "fruits"
}

// CategoryDTO is the database representation of a catalog category.
type CategoryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"not null"`
	Description string
}

// TableName overrides GORM's default naming to use "categories".
func (CategoryDTO) TableName() string {
	return "categories"
}

func fruitFromDomain(f *fruit.Fruit) FruitDTO {
	return FruitDTO{
		ID:            f.ID().Bytes(),
		Name:          f.Name(),
		Origin:        f.Origin(),
		StockQuantity: f.StockQuantity(),
		Price:         f.Price().Decimal(),
		CategoryID:    f.CategoryID().Bytes(),
		Season:        f.Season(),
		Description:   f.Description(),
		ImageURL:      f.ImageURL(),
	}
}

func fruitToDomain(dto FruitDTO) (*fruit.Fruit, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	categoryID, err := kernel.UUIDFromBytes(dto.CategoryID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return fruit.RestoreFruit(id, dto.Name, dto.Origin, dto.StockQuantity, price,
		categoryID, dto.Season, dto.Description, dto.ImageURL)
}

func categoryFromDomain(c *fruit.Category) CategoryDTO {
	return CategoryDTO{
		ID:          c.ID().Bytes(),
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func categoryToDomain(dto CategoryDTO) (*fruit.Category, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return fruit.RestoreCategory(id, dto.Name, dto.Description)
}
