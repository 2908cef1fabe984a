package config

import (
	"os"
	"strconv"
)

type Config struct {
	APIPort  string
	LogLevel string

	MaxFileSizeMB int
	MaxTextChars  int
	MinTextChars  int

	ExtractWorkers        int
	ExtractTimeoutSeconds int

	TesseractPath string
	TesseractLang string

	APIRateLimitRPS     int
	APIRateLimitBurst   int
	APIMaxConcurrent    int
	APIQueueWaitMillis  int
	BreakerEnabled      bool
	ShutdownGraceSecond int
}

func Load() Config {
	return Config{
		APIPort:  mustEnv("API_PORT", "8080"),
		LogLevel: mustEnv("LOG_LEVEL", "info"),

		MaxFileSizeMB: mustEnvInt("MAX_FILE_SIZE_MB", 50),
		MaxTextChars:  mustEnvInt("MAX_TEXT_CHARS", 100000),
		MinTextChars:  mustEnvInt("MIN_TEXT_CHARS", 10),

		ExtractWorkers:        mustEnvInt("EXTRACT_WORKERS", 4),
		ExtractTimeoutSeconds: mustEnvInt("EXTRACT_TIMEOUT_SECONDS", 30),

		TesseractPath: mustEnv("TESSERACT_PATH", "tesseract"),
		TesseractLang: mustEnv("TESSERACT_LANG", "eng"),

		APIRateLimitRPS:     mustEnvInt("API_RATE_LIMIT_RPS", 20),
		APIRateLimitBurst:   mustEnvInt("API_RATE_LIMIT_BURST", 40),
		APIMaxConcurrent:    mustEnvInt("API_MAX_CONCURRENT", 32),
		APIQueueWaitMillis:  mustEnvInt("API_QUEUE_WAIT_MILLIS", 200),
		BreakerEnabled:      mustEnvBool("BREAKER_ENABLED", true),
		ShutdownGraceSecond: mustEnvInt("SHUTDOWN_GRACE_SECONDS", 10),
	}
}

func (c Config) MaxFileSizeBytes() int64 {
	return int64(c.MaxFileSizeMB) * 1024 * 1024
}

func mustEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func mustEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func mustEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}
