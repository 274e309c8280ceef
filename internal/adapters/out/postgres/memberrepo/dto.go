// Package memberrepo persists the Member aggregate.
package memberrepo

import (
	"strings"
	"time"

	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/core/domain/model/member"

	"github.com/google/uuid"
)

// MemberDTO is the database representation of a member. Roles are stored as a
// comma-separated list.
type MemberDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"uniqueIndex;not null"`
	Email        string    `gorm:"not null"`
	PasswordHash string    `gorm:"not null"`
	Name         string
	PhoneNumber  string
	Address      string
	JoinDate     time.Time
	Grade        string
	Roles        string
}

// TableName overrides GORM's default naming to use "members".
func (MemberDTO) TableName() string {
	return "members"
}

func fromDomain(m *member.Member) MemberDTO {
	return MemberDTO{
		ID:           m.ID().Bytes(),
		Username:     m.Username(),
		Email:        m.Email(),
		PasswordHash: m.PasswordHash(),
		Name:         m.Name(),
		PhoneNumber:  m.PhoneNumber(),
		Address:      m.Address(),
		JoinDate:     m.JoinDate(),
		Grade:        m.Grade().String(),
		Roles:        strings.Join(m.Roles(), ","),
	}
}

func toDomain(dto MemberDTO) (*member.Member, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	grade, err := member.GradeFromString(dto.Grade)
	if err != nil {
		return nil, err
	}

	var roles []string
	if dto.Roles != "" {
		roles = strings.Split(dto.Roles, ",")
	}

	return member.RestoreMember(id, dto.Username, dto.Email, dto.PasswordHash, dto.Name,
		dto.PhoneNumber, dto.Address, dto.JoinDate, grade, roles)
}
