package cartrepo

import (
	"context"
	"errors"

	"fruitmall/internal/core/domain/model/cart"
	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker records aggregates modified within the unit of work.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormCartRepository implements ports.CartRepository using GORM.
type GormCartRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB, tracker aggregateTracker) *GormCartRepository {
	return &GormCartRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new cart line to the database.
func (r *GormCartRepository) Add(ctx context.Context, aggregate *cart.CartItem) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing cart line to the database.
func (r *GormCartRepository) Update(ctx context.Context, aggregate *cart.CartItem) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CartItemDTO{}).Where("id = ?", dto.ID).
		Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a cart line by ID.
func (r *GormCartRepository) Get(ctx context.Context, id kernel.UUID) (*cart.CartItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CartItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cart item", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByMemberAndFruit retrieves the member's cart line for one fruit.
func (r *GormCartRepository) GetByMemberAndFruit(ctx context.Context,
	memberID, fruitID kernel.UUID) (*cart.CartItem, error) {
	if err := errors.Join(memberID.Validate(), fruitID.Validate()); err != nil {
		return nil, err
	}

	var dto CartItemDTO
	err := r.db.WithContext(ctx).
		First(&dto, "member_id = ? AND fruit_id = ?", memberID.Bytes(), fruitID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cart item by fruit", fruitID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a cart line.
func (r *GormCartRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&CartItemDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("cart item", id.String())
	}

	return nil
}

// DeleteAllByMember empties a member's cart. Deleting an already empty cart
// is not an error.
func (r *GormCartRepository) DeleteAllByMember(ctx context.Context, memberID kernel.UUID) error {
	if err := memberID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Delete(&CartItemDTO{}, "member_id = ?", memberID.Bytes()).Error
}
