// Package config loads the service configuration from an optional .env file,
// a YAML file and environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config represents the application configuration structure.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// SecretKey signs password reset tokens.
	SecretKey string `env:"SECRET_KEY" env-default:"insecure-development-key" yaml:"secretKey"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8000" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"5m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"5m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"2m" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins lists CORS origins; empty allows any origin.
		AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" env-separator:"," yaml:"allowedOrigins"`
		// SSLRedirect redirects plain HTTP requests to HTTPS.
		SSLRedirect bool `env:"SECURE_SSL_REDIRECT" env-default:"false" yaml:"sslRedirect"`
		// HSTSMaxAge enables Strict-Transport-Security when positive.
		HSTSMaxAge time.Duration `env:"SECURE_HSTS_MAX_AGE" env-default:"0s" yaml:"hstsMaxAge"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database Database `yaml:"database"`

	// JWT holds the RS256 key pair used for bearer tokens.
	JWT struct {
		// PrivateKey is the PEM encoded RSA private key used to sign tokens
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
		// PublicKey is the PEM encoded RSA public key used to verify tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// TTL is the lifetime of issued access tokens
		TTL time.Duration `env:"JWT_TTL" env-default:"2160h" yaml:"ttl"`
	} `yaml:"jwt"`

	// Files describes where uploads and docking runs live.
	Files Files `yaml:"files"`

	// Tools locates the external docking toolchain.
	Tools Tools `yaml:"tools"`

	// Worker configures the background job consumer.
	Worker struct {
		// App names the worker; it becomes the river client ID.
		App string `env:"CELERY_APP" env-default:"plasmodocking" yaml:"app"`
		// Queue is the river queue consumed by the worker.
		Queue string `env:"CELERY_QUEUE" env-default:"default" yaml:"queue"`
		// Concurrency is the number of jobs processed in parallel.
		Concurrency int `env:"CELERY_CONCURRENCY" env-default:"1" yaml:"concurrency"`
		// LogLevel overrides the log level of the worker process.
		LogLevel string `env:"CELERY_LOGLEVEL" env-default:"info" yaml:"logLevel"`
		// MetricsAddr serves the worker's Prometheus endpoint; empty disables it.
		MetricsAddr string `env:"WORKER_METRICS_ADDR" env-default:":9100" yaml:"metricsAddr"`
		// InventoryInterval is the period of the storage inventory job.
		InventoryInterval time.Duration `env:"WORKER_INVENTORY_INTERVAL" env-default:"30s" yaml:"inventoryInterval"`
	} `yaml:"worker"`

	// Mail configures outbound email.
	Mail struct {
		// ResendAPIKey enables delivery through Resend.
		ResendAPIKey string `env:"RESEND_API_KEY" yaml:"resendApiKey"`
		// ResendBaseURL overrides the Resend endpoint.
		ResendBaseURL string `env:"RESEND_BASE_URL" yaml:"resendBaseUrl"`
		// From is the sender address.
		From string `env:"DEFAULT_FROM_EMAIL" env-default:"PlasmoDocking <noreply@plasmodocking.dev>" yaml:"from"`
		// FallbackToConsole logs emails instead of sending them.
		FallbackToConsole bool `env:"EMAIL_FALLBACK_TO_CONSOLE" env-default:"false" yaml:"fallbackToConsole"`
		// PasswordResetURL is the frontend page linked from recovery emails.
		PasswordResetURL string `env:"PASSWORD_RESET_URL" yaml:"passwordResetUrl"`
		// Timeout bounds a single delivery request.
		Timeout time.Duration `env:"EMAIL_TIMEOUT" env-default:"10s" yaml:"timeout"`
	} `yaml:"mail"`

	// Entrypoint configures container startup sequencing.
	Entrypoint Entrypoint `yaml:"entrypoint"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Database contains all database connection related configurations.
type Database struct {
	// Username for database authentication
	Username string `env:"POSTGRES_USER" env-default:"postgres" yaml:"username"`
	// Password for database authentication
	Password string `env:"POSTGRES_PASSWORD" env-default:"postgres" yaml:"password"`
	// Host is the database server hostname or IP address
	Host string `env:"POSTGRES_HOST" env-default:"localhost" yaml:"host"`
	// Port is the database server port number
	Port int `env:"POSTGRES_PORT" env-default:"5432" yaml:"port"`
	// SslMode defines the SSL mode for the database connection
	SslMode string `env:"POSTGRES_SSL_MODE" env-default:"disable" yaml:"sslMode"`
	// DatabaseName is the name of the database to connect to
	DatabaseName string `env:"POSTGRES_DB" env-default:"plasmodocking" yaml:"name"`
	// MaxOpenConnections limits the number of open connections to the database
	MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
	// MaxIdleConnections limits the number of connections in the idle connection pool
	MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"2" yaml:"maxIdleConnections"`
	// ConnMaxLifetime is the maximum amount of time a connection may be reused
	ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
	// ConnMaxIdleTime is the maximum amount of time a connection may be idle
	ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
}

// Addr returns host:port of the database server.
func (d Database) Addr() string {
	return net.JoinHostPort(d.Host, strconv.Itoa(d.Port))
}

// Files describes the shared data volume layout.
type Files struct {
	// MoleculesDir stores uploaded receptors and their grid maps.
	MoleculesDir string `env:"MOLECULES_DIR" env-default:"/data/macromoleculas" yaml:"moleculesDir"`
	// ProcessesDir stores docking runs; empty means a "processes" sibling of MoleculesDir.
	ProcessesDir string `env:"PROCESSES_DIR" yaml:"processesDir"`
	// MaxUploadSize limits multipart request bodies in bytes.
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE" env-default:"104857600" yaml:"maxUploadSize"`
}

// ProcessesRoot returns the directory holding docking runs.
func (f Files) ProcessesRoot() string {
	if f.ProcessesDir != "" {
		return f.ProcessesDir
	}

	return filepath.Join(filepath.Dir(filepath.Clean(f.MoleculesDir)), "processes")
}

// Tools locates the docking toolchain binaries and scripts.
type Tools struct {
	AutodockGPU string `env:"AUTODOCK_GPU_PATH" env-default:"/usr/local/bin/autodock_gpu" yaml:"autodockGpu"`
	OpenBabel   string `env:"OBABEL_PATH" env-default:"/usr/bin/obabel" yaml:"openBabel"`
	AutoGrid    string `env:"AUTOGRID_PATH" env-default:"/usr/local/bin/autogrid4" yaml:"autoGrid"`
	PythonSh    string `env:"PYTHONSH_PATH" env-default:"/opt/mgltools/bin/pythonsh" yaml:"pythonSh"`
	// MGLUtilities is the directory with the prepare_*.py scripts.
	MGLUtilities string `env:"MGL_UTILITIES_DIR" env-default:"/opt/mgltools/MGLToolsPckgs/AutoDockTools/Utilities24" yaml:"mglUtilities"` //nolint: lll
	// AD4Parameters is the AD4 parameter file referenced by grid parameter files.
	AD4Parameters string `env:"AD4_PARAMETERS_PATH" env-default:"/opt/autodock/AD4_parameters.dat" yaml:"ad4Parameters"`

	// FldAppendCutoffLine is the number of generated fld header lines kept before the map listing.
	FldAppendCutoffLine int `env:"FLD_APPEND_CUTOFF_LINE" env-default:"23" yaml:"fldAppendCutoffLine"`

	ReceptorTimeout   time.Duration `env:"PREPARE_RECEPTOR_TIMEOUT" env-default:"5m" yaml:"receptorTimeout"`
	GridTimeout       time.Duration `env:"AUTOGRID_TIMEOUT" env-default:"10m" yaml:"gridTimeout"`
	RedockingTimeout  time.Duration `env:"REDOCKING_TIMEOUT" env-default:"10m" yaml:"redockingTimeout"`
	SplitTimeout      time.Duration `env:"OBABEL_TIMEOUT" env-default:"30m" yaml:"splitTimeout"`
	DockingTimeout    time.Duration `env:"DOCKING_TIMEOUT" env-default:"1h" yaml:"dockingTimeout"`
	PrepareRetryDelay time.Duration `env:"PREPARE_RETRY_DELAY" env-default:"60s" yaml:"prepareRetryDelay"`
}

// Entrypoint configures container startup sequencing.
type Entrypoint struct {
	// UID and GID own the data directories when set and running as root.
	UID string `env:"APP_UID" yaml:"uid"`
	GID string `env:"APP_GID" yaml:"gid"`
	// RabbitMQHost and RabbitMQPort are an optional extra readiness target for the worker.
	RabbitMQHost string `env:"RABBITMQ_HOST" yaml:"rabbitmqHost"`
	RabbitMQPort int    `env:"RABBITMQ_PORT" env-default:"5672" yaml:"rabbitmqPort"`
	// ProbeInterval is the delay between two TCP probes.
	ProbeInterval time.Duration `env:"WAIT_PROBE_INTERVAL" env-default:"1s" yaml:"probeInterval"`
	// WaitTimeout bounds the dependency wait; zero waits forever.
	WaitTimeout time.Duration `env:"WAIT_TIMEOUT" env-default:"0s" yaml:"waitTimeout"`
}

// BrokerAddr returns the RabbitMQ host:port, or an empty string when no
// broker host is configured.
func (e Entrypoint) BrokerAddr() string {
	if e.RabbitMQHost == "" {
		return ""
	}

	return net.JoinHostPort(e.RabbitMQHost, strconv.Itoa(e.RabbitMQPort))
}

// Load reads an optional .env file next to configPath, then the YAML file at
// configPath when it exists, and finally applies environment variables and
// defaults. Variables already present in the environment win over .env.
func Load(configPath string) (*Config, error) {
	envFile := filepath.Join(filepath.Dir(configPath), ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("could not read %s: %w", envFile, err)
	}

	var cfg Config
	if _, err := os.Stat(configPath); err == nil {
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("could not read config: %w", err)
		}

		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("could not read config from environment: %w", err)
	}

	return &cfg, nil
}
