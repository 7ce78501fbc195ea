package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/riskibarqy/football-tables/internal/platform/logging"
)

// Config stores runtime configuration for the tables tooling.
type Config struct {
	AppEnv             string
	LogLevel           logging.Level
	LogFormat          string
	DataRoot           string
	TempDir            string
	CataloguePath      string
	CensusWorkers      int
	CensusDefaultTeams int
}

type envConfig struct {
	AppEnv             string `env:"APP_ENV" env-default:"dev"`
	LogLevel           string `env:"LOG_LEVEL" env-default:"info"`
	LogFormat          string `env:"LOG_FORMAT"`
	DataRoot           string `env:"DATA_ROOT" env-default:"."`
	TempDir            string `env:"TEMP_DIR" env-default:"temp"`
	CataloguePath      string `env:"CATALOGUE_PATH" env-default:"config/leagues.yaml"`
	CensusWorkers      int    `env:"CENSUS_WORKERS" env-default:"4"`
	CensusDefaultTeams int    `env:"CENSUS_DEFAULT_TEAMS" env-default:"20"`
}

func Load() (Config, error) {
	var raw envConfig
	if err := cleanenv.ReadEnv(&raw); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}

	appEnv, err := parseAppEnv(raw.AppEnv)
	if err != nil {
		return Config{}, err
	}

	logFormat := strings.ToLower(strings.TrimSpace(raw.LogFormat))
	if logFormat == "" {
		logFormat = logging.FormatConsole
		if appEnv == EnvProd {
			logFormat = logging.FormatJSON
		}
	}
	if logFormat != logging.FormatConsole && logFormat != logging.FormatJSON {
		return Config{}, fmt.Errorf("invalid LOG_FORMAT %q: valid values are %s, %s", raw.LogFormat, logging.FormatConsole, logging.FormatJSON)
	}

	dataRoot := strings.TrimSpace(raw.DataRoot)
	if dataRoot == "" {
		return Config{}, fmt.Errorf("DATA_ROOT cannot be empty")
	}
	tempDir := strings.TrimSpace(raw.TempDir)
	if tempDir == "" {
		return Config{}, fmt.Errorf("TEMP_DIR cannot be empty")
	}
	if !filepath.IsAbs(tempDir) {
		tempDir = filepath.Join(dataRoot, tempDir)
	}

	cataloguePath := strings.TrimSpace(raw.CataloguePath)
	if cataloguePath == "" {
		return Config{}, fmt.Errorf("CATALOGUE_PATH cannot be empty")
	}
	if !filepath.IsAbs(cataloguePath) {
		cataloguePath = filepath.Join(dataRoot, cataloguePath)
	}

	if raw.CensusWorkers <= 0 {
		return Config{}, fmt.Errorf("CENSUS_WORKERS must be > 0")
	}
	if raw.CensusDefaultTeams < 2 {
		return Config{}, fmt.Errorf("CENSUS_DEFAULT_TEAMS must be >= 2")
	}

	return Config{
		AppEnv:             appEnv,
		LogLevel:           parseLogLevel(raw.LogLevel),
		LogFormat:          logFormat,
		DataRoot:           dataRoot,
		TempDir:            tempDir,
		CataloguePath:      cataloguePath,
		CensusWorkers:      raw.CensusWorkers,
		CensusDefaultTeams: raw.CensusDefaultTeams,
	}, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
