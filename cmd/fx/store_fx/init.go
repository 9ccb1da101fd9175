package store_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"autopage/internal/config"
	"autopage/internal/infra"
	"autopage/pkg/logger"
)

var Module = fx.Provide(provideConfig, provideLogger, provideStoreClient)

func provideConfig() config.Config {
	return config.Load()
}

func provideLogger(cfg config.Config) (*zap.Logger, error) {
	return logger.New(cfg.Env)
}

func provideStoreClient(cfg config.Config, log *zap.Logger) *infra.StoreClient {
	return infra.NewStoreClient(cfg, log)
}
