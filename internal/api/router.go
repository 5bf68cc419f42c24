package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mhdRaihan321/api-expense/internal/api/handler"
	"github.com/mhdRaihan321/api-expense/internal/core/service"
	mongodb "github.com/mhdRaihan321/api-expense/internal/infrastructure/db/mongo"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS()) // allow all origins
	e.Use(echoprometheus.NewMiddleware("expense"))

	// --- Dependencies ---
	accountRepo := mongodb.NewAccountRepository(db)
	accountService := service.NewAccountService(accountRepo, log)
	accountHandler := handler.NewAccountHandler(accountService)

	entryRepo := mongodb.NewEntryRepository(db)
	entryService := service.NewEntryService(entryRepo, log)
	entryHandler := handler.NewEntryHandler(entryService)

	// --- Account routes ---
	users := e.Group("/api/users")
	users.POST("/addUser", accountHandler.AddUser)
	users.POST("/updateUser", accountHandler.UpdateUser)

	// --- Ledger routes ---
	expenses := e.Group("/api/expenses")
	expenses.POST("/add", entryHandler.Add)
	expenses.POST("/edit/:id", entryHandler.Edit)
	expenses.GET("/", entryHandler.List)
	expenses.GET("/load/:uid", entryHandler.ListByOwner)
	expenses.DELETE("/delete/:id", entryHandler.Delete)

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler(db)
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness)     // readiness – is the store up?

	return e
}
