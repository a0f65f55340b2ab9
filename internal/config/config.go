package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig `json:"server"`

	// MySQL, only used when STORE_BACKEND=mysql
	Database DatabaseConfig `json:"database"`

	// MongoDB, only used when UPLOAD_BACKEND=gridfs
	MongoDB MongoConfig `json:"mongodb"`

	Auth AuthConfig `json:"auth"`

	Upload UploadConfig `json:"upload"`

	Store StoreConfig `json:"store"`
}

// ServerConfig contains server-related configuration
type ServerConfig struct {
	Port            string `json:"port"`
	Host            string `json:"host"`
	MediaServerPort string `json:"media_server_port"`

	// PublicBaseURL is the externally visible scheme+host used inside
	// generated share links. When empty, the request's own origin is used,
	// which is fine for local dev but wrong behind a proxy.
	PublicBaseURL string `json:"public_base_url"`

	Environment string `json:"environment"` // development, staging, production
}

// DatabaseConfig contains MySQL connection configuration
type DatabaseConfig struct {
	Host         string `json:"host"`
	Port         string `json:"port"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	DatabaseName string `json:"database_name"`
	MaxOpenConns int    `json:"max_open_conns"`
	MaxIdleConns int    `json:"max_idle_conns"`
}

// MongoConfig contains MongoDB connection configuration for GridFS uploads
type MongoConfig struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	Database string `json:"database"`
}

// AuthConfig contains session token configuration
type AuthConfig struct {
	JWTSecret     string `json:"-"`
	TokenTTLHours int    `json:"token_ttl_hours"`
}

// UploadConfig contains file upload configuration
type UploadConfig struct {
	Backend  string `json:"backend"` // "disk" (default) or "gridfs"
	Dir      string `json:"dir"`     // disk backend directory
	MaxBytes int64  `json:"max_bytes"`
}

// StoreConfig selects the entity store backend: "memory" (default) or "mysql"
type StoreConfig struct {
	Backend string `json:"backend"`
}

// LoadConfig reads configuration from environment variables, loading a .env
// file first if one exists. Every field has a development default.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using system env variables")
	}

	return &Config{
		Server: ServerConfig{
			Port:            getEnvOrDefault("SERVER_PORT", "5000"),
			Host:            getEnvOrDefault("SERVER_HOST", "0.0.0.0"),
			MediaServerPort: getEnvOrDefault("MEDIA_SERVER_PORT", "8080"),
			PublicBaseURL:   getEnvOrDefault("PUBLIC_BASE_URL", ""),
			Environment:     getEnvOrDefault("ENVIRONMENT", "development"),
		},
		Database: DatabaseConfig{
			Host:         getEnvOrDefault("MYSQL_HOST", "localhost"),
			Port:         getEnvOrDefault("MYSQL_PORT", "3306"),
			Username:     getEnvOrDefault("MYSQL_USERNAME", "bloom"),
			Password:     getEnvOrDefault("MYSQL_PASSWORD", "bloom123"),
			DatabaseName: getEnvOrDefault("MYSQL_DATABASE", "bloomheaven"),
			MaxOpenConns: getEnvIntOrDefault("MYSQL_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvIntOrDefault("MYSQL_MAX_IDLE_CONNS", 5),
		},
		MongoDB: MongoConfig{
			Host:     getEnvOrDefault("MONGO_HOST", "localhost"),
			Port:     getEnvOrDefault("MONGO_PORT", "27017"),
			Username: getEnvOrDefault("MONGO_USERNAME", ""),
			Password: getEnvOrDefault("MONGO_PASSWORD", ""),
			Database: getEnvOrDefault("MONGO_DATABASE", "bloomheaven"),
		},
		Auth: AuthConfig{
			JWTSecret:     getEnvOrDefault("JWT_SECRET", "dev-secret-change-me"),
			TokenTTLHours: getEnvIntOrDefault("TOKEN_TTL_HOURS", 24),
		},
		Upload: UploadConfig{
			Backend:  getEnvOrDefault("UPLOAD_BACKEND", "disk"),
			Dir:      getEnvOrDefault("UPLOAD_DIR", "uploads"),
			MaxBytes: int64(getEnvIntOrDefault("UPLOAD_MAX_BYTES", 10*1024*1024)),
		},
		Store: StoreConfig{
			Backend: getEnvOrDefault("STORE_BACKEND", "memory"),
		},
	}
}

// DSN builds the MySQL connection string from the database config
func (cfg *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DatabaseName,
	)
}

// GetMongoURI builds the MongoDB URI, with or without credentials
func (cfg *Config) GetMongoURI() string {
	if cfg.MongoDB.Username != "" {
		return fmt.Sprintf("mongodb://%s:%s@%s:%s",
			cfg.MongoDB.Username, cfg.MongoDB.Password, cfg.MongoDB.Host, cfg.MongoDB.Port)
	}
	return fmt.Sprintf("mongodb://%s:%s", cfg.MongoDB.Host, cfg.MongoDB.Port)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
