package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AndreaBeltramin/castfetch/internal/constants"
	"github.com/AndreaBeltramin/castfetch/internal/middleware"
)

const metricsPath = "/metrics"

func newRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(Logger))
	// promhttp negotiates its own compression
	r.Use(middleware.Gzip(metricsPath))
	r.Use(middleware.CORS())

	r.GET(metricsPath, gin.WrapH(promhttp.Handler()))
	handler.RegisterRoutes(r)
	return r
}

func main() {
	InitializeLogger()
	InitializeConfig()
	InitializeServices(prometheus.DefaultRegisterer)

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: newRouter(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		Logger.Infof("[App] starting %s %s on port %s", constants.AppName, constants.AppVersion, cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			Logger.Fatalf("[App] server failed: %v", err)
		}
	}()

	<-ctx.Done()
	Logger.Infof("[App] shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		Logger.Errorf("[App] graceful shutdown failed: %v", err)
	}
}
