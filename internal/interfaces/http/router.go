package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/putaway-api/internal/application/auth"
	"github.com/jhoicas/putaway-api/internal/application/putaway"
	"github.com/jhoicas/putaway-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	TransferUC *putaway.TransferUseCase
	QueryUC    *putaway.QueryUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
	Log        *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/putaway", AuthMiddleware(deps.JWTSecret))
	handler := NewPutawayHandler(deps.TransferUC, deps.QueryUC, deps.Log)

	// Consultas (cualquier rol autenticado)
	protected.Get("/lot/:lot_no", handler.GetLot)
	protected.Get("/lots/search", handler.SearchLots)
	protected.Get("/bins/search", handler.SearchBins)
	protected.Get("/bin/:location/:bin_no", handler.ValidateBin)
	protected.Get("/transactions/:lot_no/:bin_no", handler.ListTransactions)
	protected.Get("/remarks", handler.ListRemarks)

	// Mutaciones (solo admin y operator)
	mutating := protected.Group("/", RequireRole(rolesThatTransfer...))
	mutating.Post("/transfer/validate", handler.ValidateTransfer)
	mutating.Post("/transfer/committed", handler.TransferCommitted)
	mutating.Post("/transfer", handler.Transfer)
}
