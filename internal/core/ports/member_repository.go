package ports

import (
	"context"

	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/core/domain/model/member"
)

// MemberRepositoryFactory creates MemberRepository bound to the current
// transaction.
type MemberRepositoryFactory interface {
	MemberRepository() MemberRepository
}

// MemberRepository persists the Member aggregate.
type MemberRepository interface {
	Add(ctx context.Context, aggregate *member.Member) error
	Update(ctx context.Context, aggregate *member.Member) error
	Get(ctx context.Context, id kernel.UUID) (*member.Member, error)
	GetByUsername(ctx context.Context, username string) (*member.Member, error)
}
