package commands_test

import (
	"context"
	"testing"
	"time"

	"fruitmall/internal/core/application/usecases/commands"
	"fruitmall/internal/core/domain/model/auth"
	"fruitmall/internal/core/domain/model/cart"
	"fruitmall/internal/core/domain/model/delivery"
	"fruitmall/internal/core/domain/model/fruit"
	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/core/domain/model/member"
	"fruitmall/internal/core/domain/model/order"
	"fruitmall/internal/core/domain/model/review"
	"fruitmall/internal/core/domain/model/wishlist"
	"fruitmall/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMemberRepository struct{ mock.Mock }

func (m *MockMemberRepository) Add(ctx context.Context, a *member.Member) error {
	return m.Called(ctx, a).Error(0)
}
func (m *MockMemberRepository) Update(ctx context.Context, a *member.Member) error {
	return m.Called(ctx, a).Error(0)
}
func (m *MockMemberRepository) Get(ctx context.Context, id kernel.UUID) (*member.Member, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*member.Member); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockMemberRepository) GetByUsername(ctx context.Context, username string) (*member.Member, error) {
	args := m.Called(ctx, username)
	if v, ok := args.Get(0).(*member.Member); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockFruitRepository struct{ mock.Mock }

func (m *MockFruitRepository) Add(ctx context.Context, a *fruit.Fruit) error {
	return m.Called(ctx, a).Error(0)
}
func (m *MockFruitRepository) Update(ctx context.Context, a *fruit.Fruit) error {
	return m.Called(ctx, a).Error(0)
}
func (m *MockFruitRepository) Get(ctx context.Context, id kernel.UUID) (*fruit.Fruit, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*fruit.Fruit); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockFruitRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*fruit.Fruit, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*fruit.Fruit); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockFruitRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockCategoryRepository struct{ mock.Mock }

func (m *MockCategoryRepository) Add(ctx context.Context, a *fruit.Category) error {
	return m.Called(ctx, a).Error(0)
}
func (m *MockCategoryRepository) Update(ctx context.Context, a *fruit.Category) error {
	return m.Called(ctx, a).Error(0)
}
func (m *MockCategoryRepository) Get(ctx context.Context, id kernel.UUID) (*fruit.Category, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*fruit.Category); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockCategoryRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, a *order.Order) error {
	return m.Called(ctx, a).Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, a *order.Order) error {
	return m.Called(ctx, a).Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*order.Order); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockOrderRepository) GetAllPendingBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if v, ok := args.Get(0).([]*order.Order); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, a *delivery.Delivery) error {
	return m.Called(ctx, a).Error(0)
}
func (m *MockDeliveryRepository) Update(ctx context.Context, a *delivery.Delivery) error {
	return m.Called(ctx, a).Error(0)
}
func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*delivery.Delivery); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockDeliveryRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, orderID)
	if v, ok := args.Get(0).(*delivery.Delivery); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) Add(ctx context.Context, a *cart.CartItem) error {
	return m.Called(ctx, a).Error(0)
}
func (m *MockCartRepository) Update(ctx context.Context, a *cart.CartItem) error {
	return m.Called(ctx, a).Error(0)
}
func (m *MockCartRepository) Get(ctx context.Context, id kernel.UUID) (*cart.CartItem, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*cart.CartItem); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockCartRepository) GetByMemberAndFruit(ctx context.Context, memberID, fruitID kernel.UUID) (*cart.CartItem, error) {
	args := m.Called(ctx, memberID, fruitID)
	if v, ok := args.Get(0).(*cart.CartItem); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockCartRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockCartRepository) DeleteAllByMember(ctx context.Context, memberID kernel.UUID) error {
	return m.Called(ctx, memberID).Error(0)
}

type MockReviewRepository struct{ mock.Mock }

func (m *MockReviewRepository) Add(ctx context.Context, a *review.Review) error {
	return m.Called(ctx, a).Error(0)
}
func (m *MockReviewRepository) Update(ctx context.Context, a *review.Review) error {
	return m.Called(ctx, a).Error(0)
}
func (m *MockReviewRepository) Get(ctx context.Context, id kernel.UUID) (*review.Review, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*review.Review); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockReviewRepository) GetByOrderDetailID(ctx context.Context, orderDetailID kernel.UUID) (*review.Review, error) {
	args := m.Called(ctx, orderDetailID)
	if v, ok := args.Get(0).(*review.Review); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockReviewRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockWishlistRepository struct{ mock.Mock }

func (m *MockWishlistRepository) Add(ctx context.Context, a *wishlist.WishlistItem) error {
	return m.Called(ctx, a).Error(0)
}
func (m *MockWishlistRepository) Get(ctx context.Context, id kernel.UUID) (*wishlist.WishlistItem, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*wishlist.WishlistItem); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockWishlistRepository) GetByMemberAndFruit(ctx context.Context, memberID, fruitID kernel.UUID) (*wishlist.WishlistItem, error) {
	args := m.Called(ctx, memberID, fruitID)
	if v, ok := args.Get(0).(*wishlist.WishlistItem); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockWishlistRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockUoW satisfies every unit of work interface in the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) MemberRepository() ports.MemberRepository {
	return m.Called().Get(0).(ports.MemberRepository)
}
func (m *MockUoW) FruitRepository() ports.FruitRepository {
	return m.Called().Get(0).(ports.FruitRepository)
}
func (m *MockUoW) CategoryRepository() ports.CategoryRepository {
	return m.Called().Get(0).(ports.CategoryRepository)
}
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}
func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository {
	return m.Called().Get(0).(ports.DeliveryRepository)
}
func (m *MockUoW) CartRepository() ports.CartRepository {
	return m.Called().Get(0).(ports.CartRepository)
}
func (m *MockUoW) ReviewRepository() ports.ReviewRepository {
	return m.Called().Get(0).(ports.ReviewRepository)
}
func (m *MockUoW) WishlistRepository() ports.WishlistRepository {
	return m.Called().Get(0).(ports.WishlistRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return m.Called().Get(0).(commands.DeliveryUoW)
}

type MockMemberUoWFactory struct{ mock.Mock }

func (m *MockMemberUoWFactory) Create() commands.MemberUoW {
	return m.Called().Get(0).(commands.MemberUoW)
}

type MockFruitUoWFactory struct{ mock.Mock }

func (m *MockFruitUoWFactory) Create() commands.FruitUoW {
	return m.Called().Get(0).(commands.FruitUoW)
}

type MockCartUoWFactory struct{ mock.Mock }

func (m *MockCartUoWFactory) Create() commands.CartUoW {
	return m.Called().Get(0).(commands.CartUoW)
}

type MockReviewUoWFactory struct{ mock.Mock }

func (m *MockReviewUoWFactory) Create() commands.ReviewUoW {
	return m.Called().Get(0).(commands.ReviewUoW)
}

type MockWishlistUoWFactory struct{ mock.Mock }

func (m *MockWishlistUoWFactory) Create() commands.WishlistUoW {
	return m.Called().Get(0).(commands.WishlistUoW)
}

func userPrincipal(t *testing.T, memberID kernel.UUID) auth.Principal {
	t.Helper()
	p, err := auth.NewPrincipal(memberID, "alice", []string{auth.RoleUser})
	require.NoError(t, err)
	return p
}

func adminPrincipal(t *testing.T) auth.Principal {
	t.Helper()
	p, err := auth.NewPrincipal(kernel.NewUUID(), "root", []string{auth.RoleAdmin})
	require.NoError(t, err)
	return p
}

func restoredFruit(t *testing.T, id kernel.UUID, stock int, price string) *fruit.Fruit {
	t.Helper()
	p, err := kernel.MoneyFromString(price)
	require.NoError(t, err)
	f, err := fruit.RestoreFruit(id, "Hallabong", "Jeju", stock, p, kernel.NewUUID(),
		"winter", "", "")
	require.NoError(t, err)
	return f
}

func restoredOrder(t *testing.T, memberID kernel.UUID, status order.Status,
	details ...order.Detail) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(kernel.NewUUID(), memberID, time.Now(), "CARD", status, details)
	require.NoError(t, err)
	return o
}

func deliveryAddress(t *testing.T) delivery.Address {
	t.Helper()
	a, err := delivery.NewAddress("Alice", "06236", "1 Orchard Lane", "",
		"010-1234-5678", "")
	require.NoError(t, err)
	return a
}

func orderDetail(t *testing.T, fruitID kernel.UUID, quantity int, unitPrice string) order.Detail {
	t.Helper()
	p, err := kernel.MoneyFromString(unitPrice)
	require.NoError(t, err)
	d, err := order.NewDetail(kernel.NewUUID(), fruitID, quantity, p)
	require.NoError(t, err)
	return d
}
