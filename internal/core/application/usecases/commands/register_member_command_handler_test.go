package commands_test

import (
	"testing"

	"fruitmall/internal/core/application/usecases/commands"
	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/core/domain/model/member"
	"fruitmall/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func registerMemberCmd(t *testing.T) commands.RegisterMemberCommand {
	t.Helper()
	cmd, err := commands.NewRegisterMemberCommand(kernel.NewUUID(), "alice",
		"alice@example.com", "s3cret", "Alice", "010-1234-5678", "1 Orchard Lane")
	require.NoError(t, err)
	return cmd
}

func TestRegisterMemberCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := registerMemberCmd(t)

	memberRepo := new(MockMemberRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MemberRepository").Return(memberRepo).Once(),
		memberRepo.On("GetByUsername", mock.Anything, "alice").
			Return(nil, errs.NewObjectNotFoundError("username", "alice")).Once(),
		memberRepo.On("Add", mock.Anything, mock.AnythingOfType("*member.Member")).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMemberUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterMemberCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	added := memberRepo.Calls[1].Arguments.Get(1).(*member.Member)
	assert.Equal(t, member.Bronze, added.Grade())
	require.NoError(t, added.MatchPassword("s3cret"))
	uow.AssertExpectations(t)
}

func TestRegisterMemberCommandHandler_Handle_UsernameTaken(t *testing.T) {
	ctx := t.Context()
	cmd := registerMemberCmd(t)
	existing := restoredMember(t, kernel.NewUUID())

	memberRepo := new(MockMemberRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MemberRepository").Return(memberRepo).Once(),
		memberRepo.On("GetByUsername", mock.Anything, "alice").Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMemberUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterMemberCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	memberRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestRegisterMemberCommandHandler_Handle_ValidationError(t *testing.T) {
	h := commands.NewRegisterMemberCommandHandler(new(MockMemberUoWFactory))
	require.Error(t, h.Handle(t.Context(), commands.RegisterMemberCommand{}))
}
