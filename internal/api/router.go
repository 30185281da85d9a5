package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wallyverse/social-exchange/internal/api/handler"
	"github.com/wallyverse/social-exchange/internal/core/ports"
)

// Dependencies carries everything the router needs to wire the handlers.
type Dependencies struct {
	Accounts ports.AccountService
	Follows  ports.FollowService
	Market   ports.MarketService
	Currency ports.CurrencyService
	Policies ports.PolicyService

	Mongo *mongo.Database
	Redis *redis.Client
	Log   zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("exchange"))

	// --- Handlers ---
	userHandler := handler.NewUserHandler(deps.Accounts, deps.Follows)
	investorHandler := handler.NewInvestorHandler(deps.Market, deps.Currency)
	adminHandler := handler.NewAdminHandler(deps.Accounts, deps.Currency, deps.Policies)

	// --- Account registry and follow graph ---
	e.POST("/v1/users", userHandler.Create)
	e.PATCH("/v1/users/:user_id", userHandler.UpdateProfile)
	e.GET("/v1/users/email/:email", userHandler.LookupByEmail)
	e.POST("/v1/users/:user_id/follow/:target_id", userHandler.Follow)
	e.POST("/v1/users/:user_id/investor", userHandler.UpgradeToInvestor)

	// --- Share market and currency desk ---
	e.POST("/v1/investors/:user_id/shares/trade", investorHandler.TradeShares)
	e.GET("/v1/investors/:user_id/share", investorHandler.OwnedShare)
	e.POST("/v1/investors/:user_id/currency/trade", investorHandler.TradeCurrency)

	// --- Administration ---
	e.PUT("/v1/admin/policies/minimum-follow-cost", adminHandler.SetMinimumFollowCost)
	e.POST("/v1/admin/currency/quote", adminHandler.QuoteCurrency)
	e.POST("/v1/admin/users/:user_id/freeze", adminHandler.FreezeAccount)
	e.POST("/v1/admin/income/issue", adminHandler.IssueIncome)

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	return e
}
