package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"rockroutes/cmd/fx/account_fx"
	"rockroutes/cmd/fx/auth_fx"
	"rockroutes/cmd/fx/config_fx"
	"rockroutes/cmd/fx/controllers_fx"
	"rockroutes/cmd/fx/db_fx"
	"rockroutes/cmd/fx/gym_fx"
	"rockroutes/cmd/fx/logger_fx"
	"rockroutes/cmd/fx/route_fx"
	"rockroutes/internal/api"
	"rockroutes/internal/api/controllers"
	"rockroutes/internal/config"
	"rockroutes/internal/infra"
)

func main() {
	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		db_fx.Module,
		auth_fx.Module,
		account_fx.Module,
		gym_fx.Module,
		route_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, cfg *config.Config, engine *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Info("starting HTTP server",
				zap.String("addr", srv.Addr),
				zap.String("base_path", cfg.BasePath),
				zap.String("env", cfg.AppEnv))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("http server stopped", zap.Error(err))
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	log *zap.Logger,
	db *gorm.DB,
	gate gin.HandlerFunc,
	accountController *controllers.AccountController,
	gymController *controllers.GymController,
	routeController *controllers.RouteController) *gin.Engine {

	return api.NewRouter(cfg, log, gate, api.Handlers{
		Accounts: accountController,
		Gyms:     gymController,
		Routes:   routeController,
		Health: func(ctx context.Context) error {
			return infra.Ping(ctx, db)
		},
	})
}
