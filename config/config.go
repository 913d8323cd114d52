package config

import (
	"os"
	"time"
)

type Config struct {
	Server     ServerConfig
	Storage    StorageConfig
	JWT        JWTConfig
	Cloudinary CloudinaryConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type StorageConfig struct {
	// Driver selects the blob backend: sqlite, mysql or redis.
	Driver string
	// DSN for sqlite is a file path; for mysql a gorm DSN; for redis a
	// redis address (host:port).
	DSN           string
	RedisPassword string
	RedisDB       int
}

type JWTConfig struct {
	Secret string
	Expiry time.Duration
	Issuer string
}

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getenv("PORT", "8080"),
			Env:          getenv("APP_ENV", "development"),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Storage: StorageConfig{
			Driver:        getenv("STORAGE_DRIVER", "sqlite"),
			DSN:           getenv("STORAGE_DSN", "waste_wise.db"),
			RedisPassword: os.Getenv("REDIS_PASSWORD"),
			RedisDB:       0,
		},
		JWT: JWTConfig{
			Secret: getenv("JWT_SECRET", "change-me-in-production"),
			Expiry: 24 * time.Hour,
			Issuer: "waste-wise",
		},
		Cloudinary: CloudinaryConfig{
			CloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
			APIKey:    os.Getenv("CLOUDINARY_API_KEY"),
			APISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
