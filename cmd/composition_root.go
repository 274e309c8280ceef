package cmd

import (
	"log/slog"

	httpadapter "fruitmall/internal/adapters/in/http"
	"fruitmall/internal/adapters/out/postgres"
	"fruitmall/internal/core/application/usecases/commands"
	"fruitmall/internal/core/application/usecases/queries"
	"fruitmall/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) memberUoWFactory() commands.MemberUoWFactory {
	return FuncMemberUoWFactory(func() commands.MemberUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fruitUoWFactory() commands.FruitUoWFactory {
	return FuncFruitUoWFactory(func() commands.FruitUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) cartUoWFactory() commands.CartUoWFactory {
	return FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) reviewUoWFactory() commands.ReviewUoWFactory {
	return FuncReviewUoWFactory(func() commands.ReviewUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) wishlistUoWFactory() commands.WishlistUoWFactory {
	return FuncWishlistUoWFactory(func() commands.WishlistUoW {
		return c.uowFactory.Create()
	})
}

// CreateHTTPHandlers wires every command and query handler the REST API
// dispatches to.
func (c *CompositionRoot) CreateHTTPHandlers() httpadapter.Handlers {
	return httpadapter.Handlers{
		RegisterMember:   commands.NewRegisterMemberCommandHandler(c.memberUoWFactory()),
		UpdateMemberInfo: commands.NewUpdateMemberInfoCommandHandler(c.memberUoWFactory()),
		ChangePassword:   commands.NewChangePasswordCommandHandler(c.memberUoWFactory()),

		RegisterFruit:    commands.NewRegisterFruitCommandHandler(c.fruitUoWFactory()),
		UpdateFruit:      commands.NewUpdateFruitCommandHandler(c.fruitUoWFactory()),
		UpdateFruitStock: commands.NewUpdateFruitStockCommandHandler(c.fruitUoWFactory()),
		DeleteFruit:      commands.NewDeleteFruitCommandHandler(c.fruitUoWFactory()),
		CreateCategory:   commands.NewCreateCategoryCommandHandler(c.fruitUoWFactory()),

		CreateOrder:       commands.NewCreateOrderCommandHandler(c.orderUoWFactory()),
		PayOrder:          commands.NewPayOrderCommandHandler(c.orderUoWFactory()),
		UpdateOrderStatus: commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory()),
		DeleteOrder:       commands.NewDeleteOrderCommandHandler(c.orderUoWFactory()),

		CreateDelivery:        commands.NewCreateDeliveryCommandHandler(c.deliveryUoWFactory()),
		UpdateDeliveryStatus:  commands.NewUpdateDeliveryStatusCommandHandler(c.deliveryUoWFactory()),
		UpdateDeliveryInfo:    commands.NewUpdateDeliveryInfoCommandHandler(c.deliveryUoWFactory()),
		UpdateDeliveryAddress: commands.NewUpdateDeliveryAddressCommandHandler(c.deliveryUoWFactory()),
		UpdateTrackingInfo:    commands.NewUpdateTrackingInfoCommandHandler(c.deliveryUoWFactory()),
		CancelDelivery:        commands.NewCancelDeliveryCommandHandler(c.deliveryUoWFactory()),

		AddToCart:      commands.NewAddToCartCommandHandler(c.cartUoWFactory()),
		UpdateCartItem: commands.NewUpdateCartItemCommandHandler(c.cartUoWFactory()),
		RemoveCartItem: commands.NewRemoveCartItemCommandHandler(c.cartUoWFactory()),
		ClearCart:      commands.NewClearCartCommandHandler(c.cartUoWFactory()),

		CreateReview: commands.NewCreateReviewCommandHandler(c.reviewUoWFactory()),
		UpdateReview: commands.NewUpdateReviewCommandHandler(c.reviewUoWFactory()),
		DeleteReview: commands.NewDeleteReviewCommandHandler(c.reviewUoWFactory()),

		AddToWishlist:      commands.NewAddToWishlistCommandHandler(c.wishlistUoWFactory()),
		RemoveFromWishlist: commands.NewRemoveFromWishlistCommandHandler(c.wishlistUoWFactory()),

		GetOrder:           queries.NewGetOrderQueryHandler(c.gormDB),
		GetMemberOrders:    queries.NewGetMemberOrdersQueryHandler(c.gormDB),
		GetOrders:          queries.NewGetOrdersQueryHandler(c.gormDB),
		GetDelivery:        queries.NewGetDeliveryQueryHandler(c.gormDB),
		GetDeliveryByOrder: queries.NewGetDeliveryByOrderQueryHandler(c.gormDB),
		GetDeliveries:      queries.NewGetDeliveriesQueryHandler(c.gormDB),
		GetFruits:          queries.NewGetFruitsQueryHandler(c.gormDB),
		GetFruit:           queries.NewGetFruitQueryHandler(c.gormDB),
		GetFruitReviews:    queries.NewGetFruitReviewsQueryHandler(c.gormDB),
		GetCart:            queries.NewGetCartQueryHandler(c.gormDB),
		GetWishlist:        queries.NewGetWishlistQueryHandler(c.gormDB),
		GetMember:          queries.NewGetMemberQueryHandler(c.gormDB),
	}
}

// CreateTokenService creates the JWT issuer and verifier used by the REST API.
func (c *CompositionRoot) CreateTokenService() *httpadapter.TokenService {
	return httpadapter.NewTokenService([]byte(c.config.JWTSecret), c.config.JWTTTL)
}

// CreateHTTPServer creates the REST API server with all handlers wired.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(c.CreateHTTPHandlers(), c.CreateTokenService(), c.uowFactory)
}

// CreateJobManager creates the background job scheduler.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	handler := commands.NewExpireStaleOrdersCommandHandler(c.orderUoWFactory())
	return jobs.NewJobManager(handler, c.config.PaymentWindow, logger)
}

type FuncMemberUoWFactory func() commands.MemberUoW

func (f FuncMemberUoWFactory) Create() commands.MemberUoW {
	return f()
}

type FuncFruitUoWFactory func() commands.FruitUoW

func (f FuncFruitUoWFactory) Create() commands.FruitUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncReviewUoWFactory func() commands.ReviewUoW

func (f FuncReviewUoWFactory) Create() commands.ReviewUoW {
	return f()
}

type FuncWishlistUoWFactory func() commands.WishlistUoW

func (f FuncWishlistUoWFactory) Create() commands.WishlistUoW {
	return f()
}
