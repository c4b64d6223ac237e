package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"estate-marketplace/internal/domain/user"
	"estate-marketplace/internal/handler/api"
	"estate-marketplace/internal/handler/middleware"
	"estate-marketplace/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	Engine             *gin.Engine
	Config             config.Config
	Logger             *slog.Logger
	UnitHandler        *api.UnitHandler
	ReservationHandler *api.ReservationHandler
	AuthMiddleware     *middleware.AuthMiddleware
	// Limiter may be nil; reservation POSTs are then unthrottled.
	Limiter middleware.TokenTaker
}

func NewRouter(p RouterParams) {
	setupMiddleware(p.Engine, p.Config, p.Logger)
	setupRoutes(p)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	units := p.UnitHandler
	reservations := p.ReservationHandler
	ownerOnly := []gin.HandlerFunc{p.AuthMiddleware.RequireRoleAtLeast(user.RoleDeveloper)}
	throttled := []gin.HandlerFunc{middleware.RateLimit(p.Limiter, p.Logger)}

	apiGroup := engine.Group("/api")
	{
		unitGroup := apiGroup.Group("/units")
		unitGroup.Use(p.AuthMiddleware.RequireAuth())
		addRoutes(unitGroup, []route{
			{Method: http.MethodGet, Path: "/search", Handler: units.SearchUnits},
			{Method: http.MethodGet, Path: "/project/:id", Handler: units.ListProjectUnits},
			{Method: http.MethodGet, Path: "/project/:id/stats", Handler: units.ProjectStats},
			{Method: http.MethodGet, Path: "/:id", Handler: units.GetUnit},

			{Method: http.MethodPost, Path: "/project/:id", Handler: units.CreateUnit, Mw: ownerOnly},
			{Method: http.MethodPost, Path: "/project/:id/bulk", Handler: units.CreateUnitsBulk, Mw: ownerOnly},
			{Method: http.MethodPut, Path: "/:id", Handler: units.UpdateUnit, Mw: ownerOnly},
			{Method: http.MethodPatch, Path: "/:id", Handler: units.UpdateUnit, Mw: ownerOnly},
			{Method: http.MethodDelete, Path: "/:id", Handler: units.DeleteUnit, Mw: ownerOnly},

			{Method: http.MethodPost, Path: "/:id/book", Handler: reservations.Book, Mw: throttled},
			{Method: http.MethodPost, Path: "/:id/confirm-deposit", Handler: reservations.ConfirmDeposit, Mw: ownerOnly},
			{Method: http.MethodPost, Path: "/:id/cancel-booking", Handler: reservations.CancelBooking},
			{Method: http.MethodPost, Path: "/:id/under-contract", Handler: reservations.MarkUnderContract, Mw: ownerOnly},
			{Method: http.MethodPost, Path: "/:id/mark-sold", Handler: reservations.MarkSold, Mw: ownerOnly},
			{Method: http.MethodPost, Path: "/:id/visit", Handler: reservations.RequestVisit, Mw: throttled},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
