package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the assembled runtime configuration of the API server.
type Config struct {
	Port string
	Env  string

	DB    DBConfig
	Redis RedisConfig

	JWTSecret string
	JWTExpiry time.Duration

	AdminEmail    string
	AdminPassword string

	Cloudinary CloudinaryConfig

	MediaMaxBytes   int64
	FeeTierCacheTTL time.Duration
	AllowOrigins    string
	LoginRateLimit  int
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

// Enabled reports whether all Cloudinary credentials are present.
func (c CloudinaryConfig) Enabled() bool {
	return c.CloudName != "" && c.APIKey != "" && c.APISecret != ""
}

// LoadEnv loads variables from a .env file if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found: %v", err)
	}
}

// Load reads the environment into a Config, applying defaults.
func Load() Config {
	return Config{
		Port: GetEnv("PORT", "3000"),
		Env:  GetEnv("ENV", "development"),
		DB: DBConfig{
			Host:            GetEnv("DB_HOST", "localhost"),
			Port:            GetEnv("DB_PORT", "5432"),
			User:            GetEnv("DB_USER", "postgres"),
			Password:        GetEnv("DB_PASSWORD", "postgres"),
			Name:            GetEnv("DB_NAME", "cosec"),
			SSLMode:         GetEnv("DB_SSLMODE", "disable"),
			MaxIdleConns:    GetIntEnv("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    GetIntEnv("DB_MAX_OPEN_CONNS", 100),
			ConnMaxLifetime: GetDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			ConnMaxIdleTime: GetDurationEnv("DB_CONN_MAX_IDLE_TIME", 30*time.Minute),
		},
		Redis: RedisConfig{
			Host:     GetEnv("REDIS_HOST", "localhost"),
			Port:     GetEnv("REDIS_PORT", "6379"),
			Password: GetEnv("REDIS_PASSWORD", ""),
			DB:       GetIntEnv("REDIS_DB", 0),
		},
		JWTSecret:     GetEnv("JWT_SECRET", "cosec-dev-secret"),
		JWTExpiry:     GetDurationEnv("JWT_EXPIRY", 24*time.Hour),
		AdminEmail:    strings.ToLower(GetEnv("ADMIN_EMAIL", "admin@cosec.my")),
		AdminPassword: GetEnv("ADMIN_PASSWORD", ""),
		Cloudinary: CloudinaryConfig{
			CloudName: GetEnv("CLOUDINARY_CLOUD_NAME", ""),
			APIKey:    GetEnv("CLOUDINARY_API_KEY", ""),
			APISecret: GetEnv("CLOUDINARY_API_SECRET", ""),
			Folder:    GetEnv("CLOUDINARY_FOLDER", "cosec/specialists"),
		},
		MediaMaxBytes:   GetInt64Env("MEDIA_MAX_BYTES", 5<<20),
		FeeTierCacheTTL: GetDurationEnv("FEE_TIER_CACHE_TTL", 10*time.Minute),
		AllowOrigins:    GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:3001"),
		LoginRateLimit:  GetIntEnv("LOGIN_RATE_LIMIT", 5),
	}
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func GetInt64Env(key string, defaultVal int64) int64 {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.ParseInt(val, 10, 64); err == nil {
			return i
		}
	}
	return defaultVal
}

// GetDurationEnv parses values such as "30m" or "1h".
func GetDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}

// IsProduction checks if the app runs in production mode.
func IsProduction() bool {
	return GetEnv("ENV", "development") == "production"
}
