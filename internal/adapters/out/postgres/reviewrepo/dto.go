// Package reviewrepo persists the Review aggregate.
package reviewrepo

import (
	"time"

	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/core/domain/model/review"

	"github.com/google/uuid"
)

// ReviewDTO is the database representation of a review. Each order line can
// be reviewed once, enforced by the unique index on OrderDetailID.
type ReviewDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	MemberID      uuid.UUID `gorm:"type:uuid;index"`
	OrderDetailID uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	FruitID       uuid.UUID `gorm:"type:uuid;index"`
	Rating        int       `gorm:"not null"`
	Comment       string
	CreatedAt     time.Time
}

// TableName overrides GORM's default naming to use "reviews".
func (ReviewDTO) TableName() string {
	return "reviews"
}

func fromDomain(rev *review.Review) ReviewDTO {
	return ReviewDTO{
		ID:            rev.ID().Bytes(),
		MemberID:      rev.MemberID().Bytes(),
		OrderDetailID: rev.OrderDetailID().Bytes(),
		FruitID:       rev.FruitID().Bytes(),
		Rating:        rev.Rating(),
		Comment:       rev.Comment(),
		CreatedAt:     rev.CreatedAt(),
	}
}

func toDomain(dto ReviewDTO) (*review.Review, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	memberID, err := kernel.UUIDFromBytes(dto.MemberID[:])
	if err != nil {
		return nil, err
	}

	orderDetailID, err := kernel.UUIDFromBytes(dto.OrderDetailID[:])
	if err != nil {
		return nil, err
	}

	fruitID, err := kernel.UUIDFromBytes(dto.FruitID[:])
	if err != nil {
		return nil, err
	}

	return review.RestoreReview(id, memberID, orderDetailID, fruitID, dto.Rating,
		dto.Comment, dto.CreatedAt)
}
