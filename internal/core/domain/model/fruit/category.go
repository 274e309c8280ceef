package fruit

import (
	"errors"

	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/pkg/errs"
)

// ErrCategoryIsNotConstructed is returned when a Category instance was not
// created through NewCategory.
var ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory constructor")

// Category groups catalog products (citrus, berries, tropical, ...).
type Category struct {
	id          kernel.UUID
	name        string
	description string

	isConstructed bool
}

// NewCategory creates a category with a required name.
func NewCategory(id kernel.UUID, name, description string) (*Category, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Category{
		id:            id,
		name:          name,
		description:   description,
		isConstructed: true,
	}, nil
}

// RestoreCategory reconstructs a category from persistence.
func RestoreCategory(id kernel.UUID, name, description string) (*Category, error) {
	return NewCategory(id, name, description)
}

// Validate ensures the category was created through a constructor.
func (c *Category) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCategoryIsNotConstructed
	}
	return nil
}

// ID returns the category's unique identifier.
func (c *Category) ID() kernel.UUID {
	return c.id
}

// Name returns the category name.
func (c *Category) Name() string {
	return c.name
}

// Description returns the category description.
func (c *Category) Description() string {
	return c.description
}

// UpdateInfo overwrites the category's name and description.
func (c *Category) UpdateInfo(name, description string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	c.description = description
	return nil
}
