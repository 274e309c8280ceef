package http

import (
	"fruitmall/internal/core/application/usecases/commands"
	"fruitmall/internal/core/application/usecases/queries"
	"fruitmall/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	// Member commands
	RegisterMember   commands.RegisterMemberCommandHandler
	UpdateMemberInfo commands.UpdateMemberInfoCommandHandler
	ChangePassword   commands.ChangePasswordCommandHandler

	// Catalog commands
	RegisterFruit    commands.RegisterFruitCommandHandler
	UpdateFruit      commands.UpdateFruitCommandHandler
	UpdateFruitStock commands.UpdateFruitStockCommandHandler
	DeleteFruit      commands.DeleteFruitCommandHandler
	CreateCategory   commands.CreateCategoryCommandHandler

	// Order commands
	CreateOrder       commands.CreateOrderCommandHandler
	PayOrder          commands.PayOrderCommandHandler
	UpdateOrderStatus commands.UpdateOrderStatusCommandHandler
	DeleteOrder       commands.DeleteOrderCommandHandler

	// Delivery commands
	CreateDelivery        commands.CreateDeliveryCommandHandler
	UpdateDeliveryStatus  commands.UpdateDeliveryStatusCommandHandler
	UpdateDeliveryInfo    commands.UpdateDeliveryInfoCommandHandler
	UpdateDeliveryAddress commands.UpdateDeliveryAddressCommandHandler
	UpdateTrackingInfo    commands.UpdateTrackingInfoCommandHandler
	CancelDelivery        commands.CancelDeliveryCommandHandler

	// Cart commands
	AddToCart      commands.AddToCartCommandHandler
	UpdateCartItem commands.UpdateCartItemCommandHandler
	RemoveCartItem commands.RemoveCartItemCommandHandler
	ClearCart      commands.ClearCartCommandHandler

	// Review commands
	CreateReview commands.CreateReviewCommandHandler
	UpdateReview commands.UpdateReviewCommandHandler
	DeleteReview commands.DeleteReviewCommandHandler

	// Wishlist commands
	AddToWishlist      commands.AddToWishlistCommandHandler
	RemoveFromWishlist commands.RemoveFromWishlistCommandHandler

	// Queries
	GetOrder           queries.GetOrderQueryHandler
	GetMemberOrders    queries.GetMemberOrdersQueryHandler
	GetOrders          queries.GetOrdersQueryHandler
	GetDelivery        queries.GetDeliveryQueryHandler
	GetDeliveryByOrder queries.GetDeliveryByOrderQueryHandler
	GetDeliveries      queries.GetDeliveriesQueryHandler
	GetFruits          queries.GetFruitsQueryHandler
	GetFruit           queries.GetFruitQueryHandler
	GetFruitReviews    queries.GetFruitReviewsQueryHandler
	GetCart            queries.GetCartQueryHandler
	GetWishlist        queries.GetWishlistQueryHandler
	GetMember          queries.GetMemberQueryHandler
}

// Server handles HTTP requests by coordinating handlers and authentication.
type Server struct {
	handlers   Handlers
	tokens     *TokenService
	uowFactory ports.UnitOfWorkFactory
}

// NewServer creates an HTTP server. The unit of work factory backs the login
// endpoint's credential check; everything else goes through handlers.
func NewServer(handlers Handlers, tokens *TokenService,
	uowFactory ports.UnitOfWorkFactory) *Server {
	return &Server{
		handlers:   handlers,
		tokens:     tokens,
		uowFactory: uowFactory,
	}
}

// RegisterRoutes mounts all API routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	// Public endpoints: sign-up, login, the catalog, reviews, and delivery
	// tracking for recipients without an account.
	api.POST("/auth/register", s.registerMember)
	api.POST("/auth/login", s.login)
	api.GET("/fruits", s.getFruits)
	api.GET("/fruits/:id", s.getFruit)
	api.GET("/fruits/:id/reviews", s.getFruitReviews)
	api.GET("/deliveries", s.getDeliveries)
	api.GET("/deliveries/:id", s.getDelivery)
	api.GET("/orders/:id/delivery", s.getDeliveryByOrder)

	authed := api.Group("", RequireAuth(s.tokens))

	authed.GET("/members/:id", s.getMember)
	authed.PUT("/members/me", s.updateMemberInfo)
	authed.PUT("/members/me/password", s.changePassword)

	authed.POST("/fruits", s.registerFruit)
	authed.PUT("/fruits/:id", s.updateFruit)
	authed.PUT("/fruits/:id/stock", s.updateFruitStock)
	authed.DELETE("/fruits/:id", s.deleteFruit)
	authed.POST("/categories", s.createCategory)

	authed.POST("/orders", s.createOrder)
	authed.GET("/orders", s.getOrders)
	authed.GET("/orders/:id", s.getOrder)
	authed.GET("/members/:id/orders", s.getMemberOrders)
	authed.POST("/orders/:id/pay", s.payOrder)
	authed.PUT("/orders/:id/status", s.updateOrderStatus)
	authed.DELETE("/orders/:id", s.deleteOrder)

	authed.POST("/deliveries", s.createDelivery)
	authed.PUT("/deliveries/:id/status", s.updateDeliveryStatus)
	authed.PUT("/deliveries/:id/tracking", s.updateTrackingInfo)
	authed.PUT("/deliveries/:id", s.updateDeliveryInfo)
	authed.PUT("/deliveries/:id/address", s.updateDeliveryAddress)
	authed.POST("/deliveries/:id/cancel", s.cancelDelivery)

	authed.GET("/cart", s.getCart)
	authed.POST("/cart/items", s.addToCart)
	authed.PUT("/cart/items/:id", s.updateCartItem)
	authed.DELETE("/cart/items/:id", s.removeCartItem)
	authed.DELETE("/cart", s.clearCart)

	authed.POST("/reviews", s.createReview)
	authed.PUT("/reviews/:id", s.updateReview)
	authed.DELETE("/reviews/:id", s.deleteReview)

	authed.GET("/wishlist", s.getWishlist)
	authed.POST("/wishlist/items", s.addToWishlist)
	authed.DELETE("/wishlist/items/:id", s.removeFromWishlist)
}
