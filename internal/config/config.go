package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	DB        DBConfig
	Server    ServerConfig
	Providers ProvidersConfig
}

// DBType represents database type
type DBType string

const (
	DBTypePostgreSQL DBType = "postgres"
	DBTypeMemory     DBType = "memory"
)

// DBConfig holds database configuration
type DBConfig struct {
	Type     DBType
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port       string
	CORSOrigin string
}

// ProvidersConfig holds settings for the external weather and photo APIs.
// The base URLs are overridable so tests can point the clients at fakes.
type ProvidersConfig struct {
	OpenWeatherKey     string
	OpenWeatherBaseURL string
	UnsplashKey        string
	UnsplashBaseURL    string
	Timeout            time.Duration
}

// DSN returns the database connection string
func (c DBConfig) DSN() string {
	if c.Type == DBTypeMemory {
		// SQLite in-memory database. _fk=1 enables foreign keys on every
		// pooled connection, not just the first one.
		if c.Name != "" && c.Name != "orbis" {
			return fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", c.Name)
		}
		return "file::memory:?cache=shared&_fk=1"
	}
	// PostgreSQL connection string
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode,
	)
}

// IsMemory returns true if using in-memory database
func (c DBConfig) IsMemory() bool {
	return c.Type == DBTypeMemory
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	_ = godotenv.Load()

	dbType := DBType(getEnv("DB_TYPE", "memory"))
	if dbType != DBTypePostgreSQL && dbType != DBTypeMemory {
		dbType = DBTypeMemory
	}

	config := &Config{
		DB: DBConfig{
			Type:     dbType,
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "orbis"),
			Password: getEnv("DB_PASSWORD", "orbis_password"),
			Name:     getEnv("DB_NAME", "orbis"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Server: ServerConfig{
			Port:       getEnv("APP_PORT", "3000"),
			CORSOrigin: getEnv("CORS_ORIGIN", "http://localhost:5173"),
		},
		Providers: ProvidersConfig{
			OpenWeatherKey:     os.Getenv("OPENWEATHER_API_KEY"),
			OpenWeatherBaseURL: getEnv("OPENWEATHER_BASE_URL", "https://api.openweathermap.org"),
			UnsplashKey:        os.Getenv("UNSPLASH_ACCESS_KEY"),
			UnsplashBaseURL:    getEnv("UNSPLASH_BASE_URL", "https://api.unsplash.com"),
			Timeout:            time.Duration(getEnvAsInt("EXTERNAL_TIMEOUT_SECONDS", 10)) * time.Second,
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
