package main

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/AndreaBeltramin/castfetch/internal/config"
	"github.com/AndreaBeltramin/castfetch/internal/handlers"
	"github.com/AndreaBeltramin/castfetch/internal/metrics"
	"github.com/AndreaBeltramin/castfetch/internal/services"
	"github.com/AndreaBeltramin/castfetch/pkg/logger"
)

var (
	Logger           logger.Logger
	cfg              *config.Config
	handler          *handlers.Handler
	serviceContainer *services.Container
)

func InitializeLogger() {
	Logger = logger.New()
}

func InitializeConfig() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		Logger.Fatalf("[App] failed to load configuration: %v", err)
	}

	// LOG_LEVEL may come from the config file, so rebuild the logger at the final level
	Logger = logger.NewWithLevel(cfg.LogLevel)
	Logger.Debugf("[App] configuration: %s", cfg)
}

func InitializeServices(reg prometheus.Registerer) {
	upstream := services.NewUpstream(cfg, Logger, metrics.New(reg))
	serviceContainer = services.NewContainer(upstream)

	handler = handlers.New(serviceContainer)

	Logger.Infof("[App] services initialized, upstream %s", cfg.BaseURL)
}
