package models

// Config represents application configuration
type Config struct {
	App     AppConfig
	API     APIConfig
	Session SessionConfig
	Redis   RedisConfig
	Office  OfficeConfig
	JWT     JWTConfig
	MockAPI MockAPIConfig
	Logger  LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// APIConfig contains the backend endpoints used by the client
type APIConfig struct {
	BaseURL  string // backend root, "/api" is appended by the client
	AssetURL string
	Timeout  int    // in seconds
}

// SessionConfig selects where the bearer token is persisted
type SessionConfig struct {
	Store     string // file, redis or memory
	FilePath  string
	KeyPrefix string
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// OfficeConfig contains the attendance geofence
type OfficeConfig struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
}

// JWTConfig contains JWT configuration for the mock backend
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// MockAPIConfig contains the local mock backend configuration
type MockAPIConfig struct {
	Port         int
	SeedUsername string
	SeedPassword string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
