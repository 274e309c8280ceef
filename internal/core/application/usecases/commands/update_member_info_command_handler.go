package commands

import (
	"context"
)

// UpdateMemberInfoCommandHandler handles profile updates. Members can only
// update their own profile; the target is always the principal.
type UpdateMemberInfoCommandHandler struct {
	uowFactory MemberUoWFactory
}

// NewUpdateMemberInfoCommandHandler creates a handler for profile updates.
func NewUpdateMemberInfoCommandHandler(uowFactory MemberUoWFactory) UpdateMemberInfoCommandHandler {
	return UpdateMemberInfoCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle updates the caller's profile fields.
func (h *UpdateMemberInfoCommandHandler) Handle(ctx context.Context,
	cmd UpdateMemberInfoCommand) error {
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

	if err = m.UpdateInfo(cmd.Name(), cmd.PhoneNumber(), cmd.Address()); err != nil {
		return err
	}

	if err = memberRepo.Update(ctx, m); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
