package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"ocrflow/pkg/logger"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// artifact store, OCR engine, model serving and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (dev, prod, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"dev" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request.
		// Invocations may block on a cold model load, so this should stay well
		// above the typical OCR latency.
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"30s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"ocrflow" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Artifacts configures the local artifact store holding run and registry
	// model directories.
	Artifacts struct {
		// Root is the directory under which all artifacts are stored.
		Root string `env:"ARTIFACTS_ROOT" env-default:"./data/artifacts" yaml:"root"`
	} `yaml:"artifacts"`

	// OCR configures the host-level OCR engine runtime.
	OCR struct {
		// Languages are the default recognition languages for models that do
		// not pin their own.
		Languages []string `env:"OCR_LANGUAGES" env-default:"eng" yaml:"languages"`
		// DataPath overrides the tesseract tessdata directory. Empty uses the
		// system default.
		DataPath string `env:"OCR_DATA_PATH" yaml:"dataPath"`
	} `yaml:"ocr"`

	// Serving configures endpoint provisioning and the in-memory model cache.
	Serving struct {
		// Workers is the number of river workers processing provisioning jobs.
		Workers int `env:"SERVING_WORKERS" env-default:"5" yaml:"workers"`
		// ProvisionTimeout bounds a single provisioning attempt.
		ProvisionTimeout time.Duration `env:"SERVING_PROVISION_TIMEOUT" env-default:"2m" yaml:"provisionTimeout"`
		// MaxAttempts is the maximum number of attempts for a provisioning job
		// before the endpoint is marked failed.
		MaxAttempts int `env:"SERVING_MAX_ATTEMPTS" env-default:"5" yaml:"maxAttempts"`
		// CacheSize is the maximum number of loaded predictors kept in memory.
		CacheSize int `env:"SERVING_CACHE_SIZE" env-default:"32" yaml:"cacheSize"`
	} `yaml:"serving"`

	// JWT holds the RS256 key material for API authentication. Keys are PEM
	// encoded strings; an empty public key disables authentication.
	JWT struct {
		// PrivateKey signs tokens minted by the jwt subcommand.
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
		// PublicKey verifies bearer tokens on protected routes.
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
	} `yaml:"jwt"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// IsDevelopment reports whether the service runs in the development
// environment, which switches logging and the HTTP framework to debug modes.
func (c *Config) IsDevelopment() bool {
	return c.Environment == logger.EnvDev
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
