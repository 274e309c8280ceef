package wishlistrepo

import (
	"context"
	"errors"

	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/core/domain/model/wishlist"
	"fruitmall/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker records aggregates modified within the unit of work.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormWishlistRepository implements ports.WishlistRepository using GORM.
type GormWishlistRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormWishlistRepository creates a new GORM wishlist repository.
func NewGormWishlistRepository(db *gorm.DB, tracker aggregateTracker) *GormWishlistRepository {
	return &GormWishlistRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new wishlist entry to the database.
func (r *GormWishlistRepository) Add(ctx context.Context,
	aggregate *wishlist.WishlistItem) error {
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

// Get retrieves a wishlist entry by ID.
func (r *GormWishlistRepository) Get(ctx context.Context,
	id kernel.UUID) (*wishlist.WishlistItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WishlistItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("wishlist item", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByMemberAndFruit retrieves the member's wishlist entry for one fruit.
func (r *GormWishlistRepository) GetByMemberAndFruit(ctx context.Context,
	memberID, fruitID kernel.UUID) (*wishlist.WishlistItem, error) {
	if err := errors.Join(memberID.Validate(), fruitID.Validate()); err != nil {
		return nil, err
	}

	var dto WishlistItemDTO
	err := r.db.WithContext(ctx).
		First(&dto, "member_id = ? AND fruit_id = ?", memberID.Bytes(), fruitID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("wishlist item by fruit", fruitID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a wishlist entry.
func (r *GormWishlistRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&WishlistItemDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("wishlist item", id.String())
	}

	return nil
}
