package commands

import (
	"context"
)

// ChangePasswordCommandHandler handles password changes for the
// authenticated member.
type ChangePasswordCommandHandler struct {
	uowFactory MemberUoWFactory
}

// NewChangePasswordCommandHandler creates a handler for password changes.
func NewChangePasswordCommandHandler(uowFactory MemberUoWFactory) ChangePasswordCommandHandler {
	return ChangePasswordCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle verifies the current password and replaces it with the new one.
func (h *ChangePasswordCommandHandler) Handle(ctx context.Context, cmd ChangePasswordCommand) error {
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
	m, err := memberRepo.Get(ctx, cmd.Principal().MemberID())
	if err != nil {
		return err
	}

	if err = m.MatchPassword(cmd.CurrentPassword()); err != nil {
		return err
	}

	if err = m.ChangePassword(cmd.NewPassword()); err != nil {
		return err
	}

	if err = memberRepo.Update(ctx, m); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
