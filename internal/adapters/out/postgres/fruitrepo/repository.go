package fruitrepo

import (
	"context"
	"errors"

	"fruitmall/internal/core/domain/model/fruit"
	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// aggregateTracker records aggregates modified within the unit of work.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormFruitRepository implements ports.FruitRepository using GORM.
type GormFruitRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormFruitRepository creates a new GORM fruit repository.
func NewGormFruitRepository(db *gorm.DB, tracker aggregateTracker) *GormFruitRepository {
	return &GormFruitRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new fruit to the database.
func (r *GormFruitRepository) Add(ctx context.Context, aggregate *fruit.Fruit) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fruitFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing fruit to the database. Select("*") forces zero
// values through, so a stock level of 0 is written correctly.
func (r *GormFruitRepository) Update(ctx context.Context, aggregate *fruit.Fruit) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fruitFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&FruitDTO{}).Where("id = ?", dto.ID).
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

// Get retrieves a fruit by ID.
func (r *GormFruitRepository) Get(ctx context.Context, id kernel.UUID) (*fruit.Fruit, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves a fruit by ID holding a row-level write lock until
// the surrounding transaction ends. Stock mutations must load through it.
func (r *GormFruitRepository) GetForUpdate(ctx context.Context,
	id kernel.UUID) (*fruit.Fruit, error) {
	return r.get(ctx, id, true)
}

func (r *GormFruitRepository) get(ctx context.Context, id kernel.UUID,
	forUpdate bool) (*fruit.Fruit, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx)
	if forUpdate {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto FruitDTO
	if err := tx.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("fruit", id.String())
		}
		return nil, err
	}

	return fruitToDomain(dto)
}

// Delete removes a fruit from the catalog. Order lines keep their own copy of
// the name-independent data, so history survives the removal.
func (r *GormFruitRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&FruitDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("fruit", id.String())
	}

	return nil
}

// GormCategoryRepository implements ports.CategoryRepository using GORM.
type GormCategoryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormCategoryRepository creates a new GORM category repository.
func NewGormCategoryRepository(db *gorm.DB, tracker aggregateTracker) *GormCategoryRepository {
	return &GormCategoryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new category to the database.
func (r *GormCategoryRepository) Add(ctx context.Context, aggregate *fruit.Category) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := categoryFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing category to the database.
func (r *GormCategoryRepository) Update(ctx context.Context, aggregate *fruit.Category) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := categoryFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CategoryDTO{}).Where("id = ?", dto.ID).
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

// Get retrieves a category by ID.
func (r *GormCategoryRepository) Get(ctx context.Context,
	id kernel.UUID) (*fruit.Category, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CategoryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("category", id.String())
		}
		return nil, err
	}

	return categoryToDomain(dto)
}

// Delete removes a category.
func (r *GormCategoryRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&CategoryDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("category", id.String())
	}

	return nil
}
