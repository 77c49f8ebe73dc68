package config

import (
	"time"

	"quicknotes/utils"
)

type ServerConfig struct {
	Port           string
	MaxRequestSize int64
	UploadDir      string
	UploadBaseURL  string
	RedisURL       string
	LoginAttempts  int64
	LoginWindow    time.Duration
}

type AuthConfig struct {
	SecretKey string
	TokenTTL  time.Duration
}

func LoadServerConfig() ServerConfig {
	return ServerConfig{
		Port:           utils.GetEnvAsString("PORT", "8080"),
		MaxRequestSize: utils.GetEnvAsInt64("MAX_REQUEST_SIZE", 8<<20),
		UploadDir:      utils.GetEnvAsString("UPLOAD_DIR", "uploads"),
		UploadBaseURL:  utils.GetEnvAsString("UPLOAD_BASE_URL", "/uploads"),
		RedisURL:       utils.GetEnvAsString("REDIS_URL", ""),
		LoginAttempts:  utils.GetEnvAsInt64("LOGIN_ATTEMPTS", 10),
		LoginWindow:    utils.GetEnvAsDuration("LOGIN_WINDOW", time.Minute),
	}
}

func LoadAuthConfig() AuthConfig {
	return AuthConfig{
		SecretKey: utils.GetEnvAsString("JWT_SECRET_KEY", ""),
		// Token lifetime defaults to 600 seconds
		TokenTTL: utils.GetEnvAsDuration("TOKEN_TTL", 600*time.Second),
	}
}
