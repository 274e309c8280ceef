package commands

import (
	"errors"

	"fruitmall/internal/core/domain/model/auth"
	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/pkg/guard"
)

var ErrCreateCategoryCommandIsNotConstructed = errors.New(
	"CreateCategoryCommand must be created via NewCreateCategoryCommand constructor",
)

// CreateCategoryCommand represents an administrative request to add a catalog
// category.
type CreateCategoryCommand struct { //nolint:recvcheck //using for validation
	categoryID  kernel.UUID
	name        string
	description string
	principal   auth.Principal

	guard guard.ConstructorGuard
}

// NewCreateCategoryCommand creates a command to add a category.
func NewCreateCategoryCommand(categoryID kernel.UUID, name, description string,
	principal auth.Principal) (CreateCategoryCommand, error) {
	cmd := CreateCategoryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		categoryID.Validate(),
		requireCommandField("name", name),
		principal.Validate(),
	); err != nil {
		return CreateCategoryCommand{}, err
	}

	cmd.categoryID = categoryID
	cmd.name = name
	cmd.description = description
	cmd.principal = principal
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCategoryCommand) Validate() error {
	return c.guard.Validate(ErrCreateCategoryCommandIsNotConstructed)
}

// CategoryID returns the unique identifier for the new category.
func (c CreateCategoryCommand) CategoryID() kernel.UUID {
	return c.categoryID
}

// Name returns the category name.
func (c CreateCategoryCommand) Name() string {
	return c.name
}

// Description returns the category description.
func (c CreateCategoryCommand) Description() string {
	return c.description
}

// Principal returns the authenticated caller.
func (c CreateCategoryCommand) Principal() auth.Principal {
	return c.principal
}
