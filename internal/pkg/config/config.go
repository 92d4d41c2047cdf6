package config

import (
	"log"
	"strings"

	"github.com/brickroad/brickroad/internal/pkg/models"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// defaults holds the fallback value of every supported environment variable
var defaults = map[string]interface{}{
	"APP_NAME":    "brickroad",
	"APP_ENV":     "local",
	"APP_VERSION": "development",

	"SERVER_HOST":             "",
	"SERVER_PORT":             8080,
	"SERVER_READ_TIMEOUT":     15,
	"SERVER_WRITE_TIMEOUT":    30,
	"SERVER_SHUTDOWN_TIMEOUT": 30,

	"GEOCODER_URL":   "https://nominatim.openstreetmap.org",
	"ROUTER_URL":     "http://router.project-osrm.org",
	"ROUTER_PROFILE": "driving",

	"HTTP_USER_AGENT": "BrickRoad/1.0 (miriambellamy0@gmail.com)",
	"HTTP_TIMEOUT":    30,

	"CACHE_ENABLED": false,
	"CACHE_TTL":     3600,

	"REDIS_HOST":      "localhost",
	"REDIS_PORT":      6379,
	"REDIS_PASSWORD":  "",
	"REDIS_DB":        0,
	"REDIS_POOL_SIZE": 10,

	"RATE_LIMIT_ENABLED":  false,
	"RATE_LIMIT_REQUESTS": 60,
	"RATE_LIMIT_PERIOD":   60,

	"NEW_RELIC_ENABLED":      false,
	"NEW_RELIC_LICENSE_KEY":  "",
	"NEW_RELIC_APP_NAME":     "brickroad",
	"NEW_RELIC_FORWARD_LOGS": false,

	"LOG_LEVEL":     "info",
	"LOG_FILE_PATH": "",
}

// InitConfig loads configuration from the environment. In the local
// environment the file at configPath is loaded into the environment first.
func InitConfig(configPath string) *models.Config {
	v := newViper()
	if v.GetString("APP_ENV") == "local" && configPath != "" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfig(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	return v
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Version = v.GetString("APP_VERSION")

	// Server config
	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	// Providers
	configs.Geocoder.BaseURL = strings.TrimRight(v.GetString("GEOCODER_URL"), "/")
	configs.Router.BaseURL = strings.TrimRight(v.GetString("ROUTER_URL"), "/")
	configs.Router.Profile = v.GetString("ROUTER_PROFILE")

	// Outbound HTTP
	configs.HTTP.UserAgent = v.GetString("HTTP_USER_AGENT")
	configs.HTTP.Timeout = v.GetInt("HTTP_TIMEOUT")

	// Cache config
	configs.Cache.Enabled = v.GetBool("CACHE_ENABLED")
	configs.Cache.TTL = v.GetInt("CACHE_TTL")

	// Redis config
	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	// Rate limit config
	configs.RateLimit.Enabled = v.GetBool("RATE_LIMIT_ENABLED")
	configs.RateLimit.Requests = v.GetInt("RATE_LIMIT_REQUESTS")
	configs.RateLimit.Period = v.GetInt("RATE_LIMIT_PERIOD")

	// NewRelic config
	configs.NewRelic.Enabled = v.GetBool("NEW_RELIC_ENABLED")
	configs.NewRelic.LicenseKey = v.GetString("NEW_RELIC_LICENSE_KEY")
	configs.NewRelic.AppName = v.GetString("NEW_RELIC_APP_NAME")
	configs.NewRelic.ForwardLogs = v.GetBool("NEW_RELIC_FORWARD_LOGS")

	// Logger config
	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	return configs
}

// NeedsRedis reports whether any enabled feature requires a Redis connection
func NeedsRedis(configs *models.Config) bool {
	return configs.Cache.Enabled || configs.RateLimit.Enabled
}
