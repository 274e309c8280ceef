package queries

import (
	"context"
	"database/sql"

	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMemberQueryHandler reads a member profile.
type GetMemberQueryHandler struct {
	db *gorm.DB
}

// NewGetMemberQueryHandler creates a handler for profile reads.
func NewGetMemberQueryHandler(db *gorm.DB) GetMemberQueryHandler {
	return GetMemberQueryHandler{db: db}
}

// Handle returns the member profile.
func (h GetMemberQueryHandler) Handle(ctx context.Context,
	query GetMemberQuery) (MemberResponse, error) {
	if err := query.Validate(); err != nil {
		return MemberResponse{}, err
	}

	var row struct {
		ID          uuid.UUID
		Username    string
		Email       string
		Name        string
		PhoneNumber string
		Address     string
		JoinDate    sql.NullTime
		Grade       string
	}
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, username, email, name, phone_number, address, join_date, grade
		FROM members
		WHERE id = ?
	`, query.MemberID().Bytes()).Scan(&row).Error
	if err != nil {
		return MemberResponse{}, err
	}
	if row.ID == uuid.Nil {
		return MemberResponse{}, errs.NewObjectNotFoundError("memberID", query.MemberID())
	}

	memberID, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return MemberResponse{}, err
	}

	return MemberResponse{
		ID:          memberID,
		Username:    row.Username,
		Email:       row.Email,
		Name:        row.Name,
		PhoneNumber: row.PhoneNumber,
		Address:     row.Address,
		JoinDate:    row.JoinDate.Time,
		Grade:       row.Grade,
	}, nil
}
