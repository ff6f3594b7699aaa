package config

import (
	"os"
	"strconv"
)

// Config holds every runtime setting the service reads from the
// environment. cmd/api loads a .env file first, so local development
// only needs a checked-out .env.
type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string

	S3Bucket      string
	S3Region      string
	S3Endpoint    string
	S3PathStyle   bool
	PublicBaseURL string // base URL prepended to stored object keys

	MaxImageWidth uint
}

func Load() *Config {
	return &Config{
		Port:          getEnv("APP_PORT", "8080"),
		DatabaseURL:   getEnv("DATABASE_URL", "postgres://localhost/arcade?sslmode=disable"),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		S3Bucket:      getEnv("S3_BUCKET", ""),
		S3Region:      getEnv("S3_REGION", "us-east-1"),
		S3Endpoint:    getEnv("S3_ENDPOINT", ""),
		S3PathStyle:   getEnv("S3_PATH_STYLE", "false") == "true",
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", ""),
		MaxImageWidth: getEnvUint("MAX_IMAGE_WIDTH", 1600),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvUint(key string, fallback uint) uint {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return fallback
	}
	return uint(n)
}
