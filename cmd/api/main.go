package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/brightstore/store_api/internal/cache"
	"github.com/brightstore/store_api/internal/config"
	"github.com/brightstore/store_api/internal/database"
	"github.com/brightstore/store_api/internal/handler"
	"github.com/brightstore/store_api/internal/middleware"
	"github.com/brightstore/store_api/internal/repository"
	"github.com/brightstore/store_api/internal/service"
	"github.com/brightstore/store_api/pkg/expopush"
)

// main is the application entrypoint for the Bright Store API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting store api")

	// 3. Connect database
	db, err := database.Connect(&cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// 3a. Run migrations
	if err := runMigrations(db.DB); err != nil {
		log.Error().Err(err).Msg("migration failed")
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("migrations completed successfully")

	// 3b. Connect to Redis
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Error().Err(err).Msg("redis connection failed")
		fmt.Fprintf(os.Stderr, "redis connection failed: %v\n", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	log.Info().Msg("redis connected successfully")

	// 3c. Initialize cart cache
	cartCache := cache.NewCartCache(redisClient)

	// 4. Initialize push client
	pushClient := expopush.NewClient(cfg.Push.Endpoint)

	// 5. Initialize repositories
	productRepo := repository.NewProductRepository(db)
	couponRepo := repository.NewCouponRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	addressRepo := repository.NewAddressRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	bannerRepo := repository.NewBannerRepository(db)
	offerRepo := repository.NewOfferRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	wishlistRepo := repository.NewWishlistRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	adminRepo := repository.NewAdminUserRepository(db)

	// 6. Initialize services
	adminAuthSvc := service.NewAdminAuthService(adminRepo)
	couponSvc := service.NewCouponService(couponRepo)
	cartSvc := service.NewCartService(cartCache, productRepo, couponSvc)
	mailSvc := service.NewMailService(cfg.SMTP, cfg.Store.Name)
	checkoutSvc := service.NewCheckoutService(cartSvc, profileRepo, addressRepo, orderRepo, productRepo, couponSvc, mailSvc, cfg.Store)
	notificationSvc := service.NewNotificationService(profileRepo, notificationRepo, pushClient)
	orderSvc := service.NewOrderService(orderRepo, notificationSvc)
	productMgmtSvc := service.NewProductManagementService(productRepo)
	importSvc := service.NewImportService(productRepo)

	storageSvc, err := service.NewStorageService(&cfg.Storage)
	if err != nil {
		log.Warn().Err(err).Msg("storage service initialization failed - image upload will be disabled")
	}

	// 7. Initialize handlers
	handlers := &Handlers{
		Health:            handler.NewHealthHandler(db),
		Catalog:           handler.NewCatalogHandler(productRepo, bannerRepo, offerRepo, reviewRepo),
		Cart:              handler.NewCartHandler(cartSvc),
		Checkout:          handler.NewCheckoutHandler(checkoutSvc),
		Address:           handler.NewAddressHandler(addressRepo),
		Wishlist:          handler.NewWishlistHandler(wishlistRepo),
		Order:             handler.NewOrderHandler(orderRepo),
		Profile:           handler.NewProfileHandler(profileRepo),
		Auth:              handler.NewAuthHandler(adminAuthSvc),
		ProductManagement: handler.NewProductManagementHandler(productMgmtSvc, importSvc, storageSvc),
		BannerManagement:  handler.NewBannerManagementHandler(bannerRepo, storageSvc),
		OfferManagement:   handler.NewOfferManagementHandler(offerRepo),
		CouponManagement:  handler.NewCouponManagementHandler(couponRepo),
		AdminOrder:        handler.NewAdminOrderHandler(orderSvc),
		Customer:          handler.NewCustomerHandler(profileRepo),
		Notification:      handler.NewNotificationHandler(notificationRepo),
		Notify:            handler.NewNotifyHandler(notificationSvc),
	}

	// 8. Initialize middleware
	authMw := middleware.NewAuthMiddleware()
	jwtMw := middleware.NewJWTMiddleware()

	// 9. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	setupRoutes(router, handlers, authMw, jwtMw)

	// 10. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 11. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 12. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health            *handler.HealthHandler
	Catalog           *handler.CatalogHandler
	Cart              *handler.CartHandler
	Checkout          *handler.CheckoutHandler
	Address           *handler.AddressHandler
	Wishlist          *handler.WishlistHandler
	Order             *handler.OrderHandler
	Profile           *handler.ProfileHandler
	Auth              *handler.AuthHandler
	ProductManagement *handler.ProductManagementHandler
	BannerManagement  *handler.BannerManagementHandler
	OfferManagement   *handler.OfferManagementHandler
	CouponManagement  *handler.CouponManagementHandler
	AdminOrder        *handler.AdminOrderHandler
	Customer          *handler.CustomerHandler
	Notification      *handler.NotificationHandler
	Notify            *handler.NotifyHandler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, handlers *Handlers, authMiddleware *middleware.AuthMiddleware, jwtMiddleware *middleware.JWTMiddleware) {
	router.GET("/v1/health", handlers.Health.GetHealth)

	// Public storefront routes
	router.GET("/v1/products", handlers.Catalog.ListProducts)
	router.GET("/v1/products/categories", handlers.Catalog.GetCategories)
	router.GET("/v1/products/:id", handlers.Catalog.GetProduct)
	router.GET("/v1/products/:id/related", handlers.Catalog.GetRelatedProducts)
	router.GET("/v1/products/:id/reviews", handlers.Catalog.ListReviews)
	router.GET("/v1/banners", handlers.Catalog.ListBanners)
	router.GET("/v1/offers", handlers.Catalog.ListOffers)

	// Session cart routes (anonymous, keyed by X-Session-Id)
	cart := router.Group("/v1/cart")
	{
		cart.GET("", handlers.Cart.GetCart)
		cart.DELETE("", handlers.Cart.ClearCart)
		cart.POST("/items", handlers.Cart.AddItem)
		cart.PUT("/items/:productId", handlers.Cart.UpdateItem)
		cart.DELETE("/items/:productId", handlers.Cart.RemoveItem)
		cart.POST("/coupon", handlers.Cart.ApplyCoupon)
		cart.DELETE("/coupon", handlers.Cart.RemoveCoupon)
	}

	// Checkout is soft-authenticated: guests get the handoff link, customers
	// with a valid token also get a persisted order.
	router.POST("/v1/checkout", handlers.Checkout.Checkout)

	// Customer routes (protected with customer token)
	customer := router.Group("/v1")
	customer.Use(authMiddleware.Handle())
	{
		customer.POST("/products/:id/reviews", handlers.Catalog.CreateReview)

		customer.GET("/addresses", handlers.Address.ListAddresses)
		customer.POST("/addresses", handlers.Address.CreateAddress)
		customer.PUT("/addresses/:id", handlers.Address.UpdateAddress)
		customer.DELETE("/addresses/:id", handlers.Address.DeleteAddress)

		customer.GET("/wishlist", handlers.Wishlist.GetWishlist)
		customer.GET("/wishlist/ids", handlers.Wishlist.GetWishlistIDs)
		customer.POST("/wishlist/:productId", handlers.Wishlist.AddToWishlist)
		customer.DELETE("/wishlist/:productId", handlers.Wishlist.RemoveFromWishlist)

		customer.GET("/orders", handlers.Order.ListOrders)
		customer.GET("/orders/:id", handlers.Order.GetOrder)

		customer.GET("/notifications", handlers.Notification.ListNotifications)
		customer.PATCH("/notifications/:id/read", handlers.Notification.MarkNotificationRead)

		customer.GET("/profile", handlers.Profile.GetProfile)
		customer.PUT("/profile", handlers.Profile.UpdateProfile)
		customer.PUT("/profile/push-token", handlers.Profile.RegisterPushToken)
	}

	// Admin routes
	admin := router.Group("/v1/admin")
	admin.POST("/auth/login", handlers.Auth.Login)
	admin.Use(jwtMiddleware.Handle())
	{
		// Product Management
		admin.POST("/products", handlers.ProductManagement.CreateProduct)
		admin.PUT("/products/:id", handlers.ProductManagement.UpdateProduct)
		admin.DELETE("/products/:id", handlers.ProductManagement.DeleteProduct)
		admin.POST("/products/import", handlers.ProductManagement.ImportProducts)
		admin.POST("/products/image", handlers.ProductManagement.UploadProductImage)

		// Banner Management
		admin.GET("/banners", handlers.BannerManagement.ListBanners)
		admin.POST("/banners", handlers.BannerManagement.CreateBanner)
		admin.PATCH("/banners/:id/active", handlers.BannerManagement.SetBannerActive)
		admin.DELETE("/banners/:id", handlers.BannerManagement.DeleteBanner)
		admin.POST("/banners/image", handlers.BannerManagement.UploadBannerImage)

		// Offer Management
		admin.GET("/offers", handlers.OfferManagement.ListOffers)
		admin.POST("/offers", handlers.OfferManagement.CreateOffer)
		admin.DELETE("/offers/:id", handlers.OfferManagement.DeleteOffer)

		// Coupon Management
		admin.GET("/coupons", handlers.CouponManagement.ListCoupons)
		admin.POST("/coupons", handlers.CouponManagement.CreateCoupon)
		admin.PATCH("/coupons/:id/active", handlers.CouponManagement.SetCouponActive)
		admin.DELETE("/coupons/:id", handlers.CouponManagement.DeleteCoupon)

		// Order Management
		admin.GET("/orders", handlers.AdminOrder.ListOrders)
		admin.GET("/orders/:id", handlers.AdminOrder.GetOrder)
		admin.PATCH("/orders/:id/status", handlers.AdminOrder.UpdateOrderStatus)

		// Customers
		admin.GET("/customers", handlers.Customer.ListCustomers)

		// Ad-hoc push notification
		admin.POST("/notify", handlers.Notify.Notify)

		// Admin accounts
		admin.POST("/users", handlers.Auth.CreateAdmin)
	}
}

// setupLogger configures zerolog based on environment.
func setupLogger(env string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if env == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// runMigrations applies database migrations from the migrations directory.
func runMigrations(db *sql.DB) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}
