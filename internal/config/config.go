package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	envPrefix    = "launchdeck"
	appDirName   = "LaunchDeck"
	dataFileName = "apps_data.json"
)

// Config holds process-wide settings sourced from the environment.
// An optional .env file in the working directory is loaded first.
type Config struct {
	DataFile  string `envconfig:"DATA_FILE"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	JSONLogs  bool   `envconfig:"JSON_LOGS" default:"false"`
	WatchFile bool   `envconfig:"WATCH_FILE" default:"true"`
}

// Load parses LAUNCHDECK_* environment variables into a Config.
// DataFile falls back to the per-user config directory when unset.
func Load() (Config, error) {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, err
	}

	if cfg.DataFile == "" {
		cfg.DataFile = defaultDataFile()
	}

	return cfg, nil
}

func defaultDataFile() string {
	cfgDir, err := os.UserConfigDir()
	if err != nil || cfgDir == "" {
		home, herr := os.UserHomeDir()
		if herr != nil {
			// Last resort: beside the process working directory.
			return dataFileName
		}
		cfgDir = filepath.Join(home, ".config")
	}
	return filepath.Join(cfgDir, appDirName, dataFileName)
}
