package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Geocoder  GeocoderConfig
	Router    RouterConfig
	HTTP      HTTPClientConfig
	Cache     CacheConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	NewRelic  NewRelicConfig
	Logger    LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int // seconds
	WriteTimeout    int // seconds
	ShutdownTimeout int // seconds
}

// GeocoderConfig points at the Nominatim-compatible geocoding API
type GeocoderConfig struct {
	BaseURL string
}

// RouterConfig points at the OSRM-compatible routing API
type RouterConfig struct {
	BaseURL string
	Profile string
}

// HTTPClientConfig configures outbound requests to both providers
type HTTPClientConfig struct {
	UserAgent string
	Timeout   int // seconds
}

// CacheConfig toggles the Redis response cache
type CacheConfig struct {
	Enabled bool
	TTL     int // seconds
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// RateLimitConfig configures the per-IP limiter on /directions
type RateLimitConfig struct {
	Enabled  bool
	Requests int
	Period   int // seconds
}

// NewRelicConfig contains New Relic APM configuration
type NewRelicConfig struct {
	Enabled     bool
	LicenseKey  string
	AppName     string
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
