package app

import (
	"strings"
	"time"

	"github.com/quizforge/quizforge-backend/internal/pkg/logger"
	"github.com/quizforge/quizforge-backend/internal/utils"
)

type Config struct {
	Environment string
	Port        string
	SessionTTL  time.Duration
	CORSOrigins string
	EnablePprof bool
	Version     string
}

func LoadConfig(log *logger.Logger) Config {
	environment := utils.GetEnv("APP_ENV", "development", log)
	port := utils.GetEnv("PORT", "8080", log)
	sessionTTLHours := utils.GetEnvAsInt("SESSION_TTL_HOURS", 168, log)
	corsOrigins := utils.GetEnv("CORS_ORIGINS", "", log)
	enablePprof := isTruthy(utils.GetEnv("ENABLE_PPROF", "", log))
	version := utils.GetEnv("APP_VERSION", "dev", log)
	return Config{
		Environment: environment,
		Port:        port,
		SessionTTL:  time.Duration(sessionTTLHours) * time.Hour,
		CORSOrigins: corsOrigins,
		EnablePprof: enablePprof,
		Version:     version,
	}
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
