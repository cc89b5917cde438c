package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/couleurbar/theke-system/internal/api/handler"
	"github.com/couleurbar/theke-system/internal/api/middleware"
	"github.com/couleurbar/theke-system/internal/core/domain"
	"github.com/couleurbar/theke-system/internal/core/service"
	"github.com/couleurbar/theke-system/internal/infrastructure/config"
	mongorepo "github.com/couleurbar/theke-system/internal/infrastructure/db/mongo"
	redisstore "github.com/couleurbar/theke-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The settler is owned by the caller; its lifecycle outlives request handling.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, settler service.Settler, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("theke"))

	// --- Repositories ---
	members := mongorepo.NewMemberRepository(db)
	sessions := mongorepo.NewSessionRepository(db)
	products := mongorepo.NewProductRepository(db)
	orders := mongorepo.NewOrderRepository(db)
	payments := mongorepo.NewPaymentRepository(db)
	idem := redisstore.NewIdempotencyStore(rdb, cfg.IdempotencyTTL)

	// --- Services ---
	authService := service.NewAuthService(members, cfg.JWTSecret, cfg.TokenTTL)
	orderService := service.NewOrderService(members, sessions, products, orders, idem, settler, log)
	sessionService := service.NewSessionService(sessions, log)
	paymentService := service.NewPaymentService(payments, members, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService, members, cfg.TokenTTL, cfg.Env == "production")
	orderHandler := handler.NewOrderHandler(orderService)
	sessionHandler := handler.NewSessionHandler(sessionService)
	memberHandler := handler.NewMemberHandler(members)
	productHandler := handler.NewProductHandler(products)
	paymentHandler := handler.NewPaymentHandler(paymentService)

	authRequired := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/me", authHandler.Me, authRequired)

	// --- Authenticated API ---
	v1 := e.Group("/v1", authRequired)

	v1.POST("/orders", orderHandler.Submit)

	v1.GET("/products", productHandler.List)
	v1.GET("/members", memberHandler.List)
	v1.GET("/members/:id", memberHandler.Get)
	v1.GET("/members/:id/orders", orderHandler.ListByMember)
	v1.GET("/members/:id/payments", paymentHandler.ListByMember)
	v1.GET("/sessions/active", sessionHandler.Active)

	// --- Admin routes ---
	v1.POST("/sessions", sessionHandler.Create, adminOnly)
	v1.POST("/sessions/:id/close", sessionHandler.Close, adminOnly)
	v1.GET("/sessions", sessionHandler.List, adminOnly)
	v1.GET("/sessions/:id/orders", orderHandler.ListBySession, adminOnly)
	v1.POST("/payments", paymentHandler.Record, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
