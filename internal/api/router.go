package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"rockroutes/internal/api/controllers"
	"rockroutes/internal/config"
	"rockroutes/pkg/middleware"
	"rockroutes/pkg/utils"
)

// Handlers groups the controllers mounted by NewRouter.
type Handlers struct {
	Accounts *controllers.AccountController
	Gyms     *controllers.GymController
	Routes   *controllers.RouteController

	// Health reports whether dependencies are reachable. Nil means always healthy.
	Health func(ctx context.Context) error
}

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		utils.RegisterJSONFieldNames(v)
	}
}

// NewRouter builds the engine. Auth endpoints are public; everything else
// under the base path passes through gate first.
func NewRouter(cfg *config.Config, log *zap.Logger, gate gin.HandlerFunc, h Handlers) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recovery(log))
	r.Use(middleware.MetricsMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.FrontendURL))

	r.GET("/healthz", func(c *gin.Context) {
		if h.Health != nil {
			if err := h.Health(c.Request.Context()); err != nil {
				log.Warn("health check failed", zap.Error(err))
				utils.RespondError(c, http.StatusServiceUnavailable, "Database unavailable")
				return
			}
		}
		utils.RespondSuccess(c, gin.H{"status": "ok"}, "")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	RegisterRoutes(r.Group(cfg.BasePath), gate, h)

	r.NoRoute(func(c *gin.Context) {
		utils.RespondError(c, http.StatusNotFound, "Not found")
	})

	return r
}

func RegisterRoutes(base *gin.RouterGroup, gate gin.HandlerFunc, h Handlers) {
	authGroup := base.Group("/auth")
	authGroup.POST("/register", h.Accounts.Register)
	authGroup.POST("/login", h.Accounts.Login)
	authGroup.POST("/google", h.Accounts.GoogleAuth)

	protected := base.Group("", gate)
	protected.GET("/user", h.Accounts.GetUser)

	gymsGroup := protected.Group("/gyms")
	gymsGroup.POST("", h.Gyms.CreateGym)
	gymsGroup.GET("", h.Gyms.ListGyms)
	gymsGroup.GET("/:id", h.Gyms.GetGym)
	gymsGroup.PUT("/:id", h.Gyms.UpdateGym)
	gymsGroup.DELETE("/:id", h.Gyms.DeleteGym)

	routesGroup := protected.Group("/routes")
	routesGroup.POST("", h.Routes.CreateRoute)
	routesGroup.GET("", h.Routes.ListRoutes)
	routesGroup.GET("/:id", h.Routes.GetRoute)
	routesGroup.PUT("/:id", h.Routes.UpdateRoute)
	routesGroup.DELETE("/:id", h.Routes.DeleteRoute)
	routesGroup.PUT("/:id/log-attempt", h.Routes.LogAttempt)
	routesGroup.PUT("/:id/toggle-project", h.Routes.ToggleProject)
	routesGroup.PUT("/:id/mark-complete", h.Routes.MarkComplete)
}
