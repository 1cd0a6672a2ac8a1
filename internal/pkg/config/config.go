package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dmpt/absensi/internal/pkg/constants"
	"github.com/dmpt/absensi/internal/pkg/models"
	"github.com/joho/godotenv"
)

// InitConfig loads configuration from the environment. In the local environment the
// dotenv file at configPath is loaded first; variables already set in the process win.
func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" && configPath != "" {
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "absensi")
	configs.App.Environment = GetEnv("APP_ENV", "local")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", false)
	configs.App.Version = GetEnv("APP_VERSION", "dev")

	// Backend config, the VITE_ names are accepted so the web client's .env can be reused
	configs.API.BaseURL = strings.TrimRight(GetEnv("API_URL", GetEnv("VITE_API_URL", "http://localhost:8000")), "/")
	configs.API.AssetURL = strings.TrimRight(GetEnv("ASSET_URL", GetEnv("VITE_ASSET_URL", "http://localhost:8000/storage")), "/")
	configs.API.Timeout = GetEnvAsInt("HTTP_TIMEOUT", 30)

	// Session config
	configs.Session.Store = GetEnv("SESSION_STORE", "file")
	configs.Session.FilePath = GetEnv("SESSION_FILE", defaultSessionFile())
	configs.Session.KeyPrefix = GetEnv("SESSION_KEY_PREFIX", constants.DefaultSessionKeyPrefix)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "localhost")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// Office geofence config, zero values fall back to the built-in office
	configs.Office.Latitude = GetEnvAsFloat("OFFICE_LATITUDE", 0)
	configs.Office.Longitude = GetEnvAsFloat("OFFICE_LONGITUDE", 0)
	configs.Office.RadiusKm = GetEnvAsFloat("OFFICE_RADIUS_KM", 0)

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "local-development-secret")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 720)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "absensi-mockapi")

	// Mock backend config
	configs.MockAPI.Port = GetEnvAsInt("MOCKAPI_PORT", 8000)
	configs.MockAPI.SeedUsername = GetEnv("MOCKAPI_USERNAME", "admin")
	configs.MockAPI.SeedPassword = GetEnv("MOCKAPI_PASSWORD", "password")

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "warn")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	return configs
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "absensi", "session.json")
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
