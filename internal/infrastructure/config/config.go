package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=1h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	Mongo MongoConfig
	Redis RedisConfig
	Media MediaConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=directory"`
	// MaxPoolSize caps the driver pool; zero keeps the connection helper's
	// default.
	MaxPoolSize uint64 `env:"MONGO_MAX_POOL_SIZE"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
	// PoolSize caps the client pool; zero keeps the connection helper's
	// default.
	PoolSize int `env:"REDIS_POOL_SIZE"`
}

// MediaConfig carries the media host (MinIO/S3-compatible) settings, built
// once at startup and handed to the uploader's constructor.
type MediaConfig struct {
	Endpoint  string `env:"MEDIA_ENDPOINT,   default=localhost:9000"`
	AccessKey string `env:"MEDIA_ACCESS_KEY"`
	SecretKey string `env:"MEDIA_SECRET_KEY"`
	Bucket    string `env:"MEDIA_BUCKET,     default=business-images"`
	PublicURL string `env:"MEDIA_PUBLIC_URL, default=http://localhost:9000"`
	UseSSL    bool   `env:"MEDIA_USE_SSL,    default=false"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
