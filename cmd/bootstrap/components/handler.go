package components

import (
	"log/slog"

	"estate-marketplace/internal/handler"
	"estate-marketplace/internal/handler/api"
	"estate-marketplace/internal/handler/middleware"
	"estate-marketplace/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewUnitHandler,
		api.NewReservationHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(RegisterRoutes),
)

type routeDeps struct {
	fx.In

	Engine             *gin.Engine
	Config             config.Config
	Logger             *slog.Logger
	UnitHandler        *api.UnitHandler
	ReservationHandler *api.ReservationHandler
	AuthMiddleware     *middleware.AuthMiddleware
	Limiter            middleware.TokenTaker
}

func RegisterRoutes(d routeDeps) {
	handler.NewRouter(handler.RouterParams{
		Engine:             d.Engine,
		Config:             d.Config,
		Logger:             d.Logger,
		UnitHandler:        d.UnitHandler,
		ReservationHandler: d.ReservationHandler,
		AuthMiddleware:     d.AuthMiddleware,
		Limiter:            d.Limiter,
	})
}
