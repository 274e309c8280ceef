package queries

import (
	"context"

	"fruitmall/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetFruitReviewsQueryHandler lists reviews for one fruit.
type GetFruitReviewsQueryHandler struct {
	db *gorm.DB
}

// NewGetFruitReviewsQueryHandler creates a handler for review listings.
func NewGetFruitReviewsQueryHandler(db *gorm.DB) GetFruitReviewsQueryHandler {
	return GetFruitReviewsQueryHandler{db: db}
}

// Handle returns the fruit's reviews, newest first.
func (h GetFruitReviewsQueryHandler) Handle(ctx context.Context,
	query GetFruitReviewsQuery) ([]ReviewResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT r.id, COALESCE(m.username, ''), r.rating, r.comment, r.created_at
		FROM reviews r
		LEFT JOIN members m ON m.id = r.member_id
		WHERE r.fruit_id = ?
		ORDER BY r.created_at DESC
	`, query.FruitID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]ReviewResponse, 0)
	for rows.Next() {
		var rev ReviewResponse
		var reviewID uuid.UUID

		if err = rows.Scan(&reviewID, &rev.AuthorName, &rev.Rating, &rev.Comment,
			&rev.CreatedAt); err != nil {
			return nil, err
		}

		if rev.ID, err = kernel.UUIDFromBytes(reviewID[:]); err != nil {
			return nil, err
		}
		reviews = append(reviews, rev)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reviews, nil
}
