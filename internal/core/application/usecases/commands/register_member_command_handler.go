package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fruitmall/internal/core/domain/model/member"
	"fruitmall/internal/pkg/errs"
)

// RegisterMemberCommandHandler handles member sign-up.
type RegisterMemberCommandHandler struct {
	uowFactory MemberUoWFactory
}

// NewRegisterMemberCommandHandler creates a handler for member registration.
func NewRegisterMemberCommandHandler(uowFactory MemberUoWFactory) RegisterMemberCommandHandler {
	return RegisterMemberCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle registers the member. Fails when the username is already taken.
func (h *RegisterMemberCommandHandler) Handle(ctx context.Context, cmd RegisterMemberCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	memberRepo := uow.MemberRepository()
	if _, err := memberRepo.GetByUsername(ctx, cmd.Username()); err == nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"username", fmt.Errorf("%q is already taken", cmd.Username()))
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	m, err := member.NewMember(cmd.MemberID(), cmd.Username(), cmd.Email(), cmd.Password(),
		cmd.Name(), cmd.PhoneNumber(), cmd.Address(), time.Now())
	if err != nil {
		return err
	}

	if err = memberRepo.Add(ctx, m); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
