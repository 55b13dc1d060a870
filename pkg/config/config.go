package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvPrefix is empty because every field carries its fully-qualified
	// DRIVELINE_* variable name in its envconfig tag.
	EnvPrefix = ""

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App           AppConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"DRIVELINE_APP_ENV" required:"true"`
	Port         string `envconfig:"DRIVELINE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"DRIVELINE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"DRIVELINE_LOG_WARN_STACK" default:"false"`
	SeedDemoData bool   `envconfig:"DRIVELINE_SEED_DEMO_DATA" default:"true"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type RedisConfig struct {
	URL          string        `envconfig:"DRIVELINE_REDIS_URL" required:"true"`
	Address      string        `envconfig:"DRIVELINE_REDIS_ADDR"`
	Password     string        `envconfig:"DRIVELINE_REDIS_PASSWORD"`
	DB           int           `envconfig:"DRIVELINE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"DRIVELINE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"DRIVELINE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"DRIVELINE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"DRIVELINE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"DRIVELINE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"DRIVELINE_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"DRIVELINE_JWT_ISSUER" required:"true"`
	ExpirationMinutes      int    `envconfig:"DRIVELINE_JWT_EXPIRATION_MINUTES" required:"true"`
	RefreshTokenTTLMinutes int    `envconfig:"DRIVELINE_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"DRIVELINE_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"DRIVELINE_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"DRIVELINE_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"DRIVELINE_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"DRIVELINE_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"DRIVELINE_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit    int           `envconfig:"DRIVELINE_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"DRIVELINE_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"DRIVELINE_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"DRIVELINE_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"DRIVELINE_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}
