// @title        Confeitaria API
// @version      1.0
// @description  CRUD de encomendas e ingredientes da confeitaria.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/MikeMC777/confeitaria/docs"
	"github.com/MikeMC777/confeitaria/internal/config"
	"github.com/MikeMC777/confeitaria/internal/db"
	"github.com/MikeMC777/confeitaria/internal/health"
	"github.com/MikeMC777/confeitaria/internal/httpx"
	"github.com/MikeMC777/confeitaria/internal/ingredient"
	"github.com/MikeMC777/confeitaria/internal/metrics"
	"github.com/MikeMC777/confeitaria/internal/order"
)

func main() {
	cfg := config.Load()
	cfg.SetupLogger()
	gin.SetMode(cfg.GinMode)
	logger := log.WithField("component", "main")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.AutoMigrate {
		if err := db.EnsureSchema(cfg.PostgresDSN); err != nil {
			logger.WithError(err).Fatal("schema")
		}
	}

	pool, err := db.Open(ctx, cfg.PostgresDSN, cfg.DBMaxConns)
	if err != nil {
		logger.WithError(err).Fatal("db connect")
	}
	defer pool.Close()

	m := metrics.New()
	orders := order.NewService(order.NewPGRepo(pool), m)
	ingredients := ingredient.NewService(ingredient.NewPGRepo(pool), m)

	r := newEngine(cfg, m, healthHandler(pool))
	registerRoutes(r, orders, ingredients)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: r}
	errCh := make(chan error, 1)
	go func() {
		logger.Infof("confeitaria-api listening on %s", cfg.HTTPAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Error("http server")
		}
	}

	shCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.WithError(err).Warn("http shutdown")
	}
	logger.Info("bye")
}

// newEngine builds the gin engine with the shared middleware and operational routes.
func newEngine(cfg config.Config, m *metrics.Metrics, hc *health.Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger(), httpx.CORS(cfg.CORSOrigins), m.Middleware())

	r.GET("/healthz", gin.WrapH(hc))
	r.GET("/livez", gin.WrapF(health.LivenessHandler))
	r.GET("/metrics", gin.WrapH(m.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	return r
}

func healthHandler(pool *pgxpool.Pool) *health.Handler {
	hc := health.NewHandler()
	hc.Register("postgres", pool.Ping)
	return hc
}
