// Package config holds configuration and logger setup.
package config

import (
	"log/slog"
	"os"
	"strings"
)

// Config holds all configuration values.
type Config struct {
	// ProjectsDir is the root folder of project subfolders to scan.
	ProjectsDir string

	// StorePath is the company.json document to merge into.
	StorePath string

	// Logging
	LogFile  string
	LogLevel slog.Level
}

// Load reads configuration from environment variables. The path defaults
// match the fixed relative paths the recovery has always used: the projects
// tree and the store sit next to each other in the working directory.
func Load() Config {
	return Config{
		ProjectsDir: getEnv("COMPANY_PROJECTS_DIR", "_projects"),
		StorePath:   getEnv("COMPANY_STORE", "company.json"),

		LogFile:  getEnv("COMPANY_LOG_FILE", "/tmp/company-recover.log"),
		LogLevel: parseLogLevel(getEnv("COMPANY_LOG_LEVEL", "INFO")),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
