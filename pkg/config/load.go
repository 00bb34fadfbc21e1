package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads configuration from the environment, optionally overlaying
// one of the given .env files first. Paths are tried in order; the
// first one found wins. With no paths, the default .env is tried and
// missing files are tolerated.
func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()

	for _, path := range envFilePath {
		foundPath, err := FindEnv(path)
		if err != nil {
			logger.Debug("environment file not found", "path", path, "error", err)
			continue
		}
		if err := godotenv.Load(foundPath); err != nil {
			logger.Error("failed to load environment file", "path", foundPath, "error", err)
			continue
		}
		logger.Info("environment loaded from file", "path", foundPath)
		return loadFromEnv()
	}

	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file found, using system environment")
	}
	return loadFromEnv()
}

func loadFromEnv() (*App, error) {
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	slog.Default().Info("app config loaded",
		"env", cfg.Env,
		"db_path", cfg.DB.Path,
		"server", cfg.Server.Host, "port", cfg.Server.Port,
		"export_dir", cfg.Export.Dir,
		"tares_path", cfg.Tares.Path,
		"currency", cfg.Currency.Code,
	)
	return &cfg, nil
}
