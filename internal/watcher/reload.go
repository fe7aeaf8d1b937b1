package watcher

import (
	"recipebox/internal/config"

	"go.uber.org/zap"
)

// ConfigReloader returns an onChange callback that reloads the config file
// and hands valid configs to apply. Invalid files are logged and ignored so
// the running settings stay in effect.
func ConfigReloader(apply func(*config.Config), logger *zap.Logger) func(path string) {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(path string) {
		cfg, _, err := config.LoadFromPath(path)
		if err != nil {
			logger.Warn("ignoring config change", zap.String("path", path), zap.Error(err))
			return
		}
		logger.Info("config reloaded", zap.String("summary", cfg.Summary()))
		apply(cfg)
	}
}
