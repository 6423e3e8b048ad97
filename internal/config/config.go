package config

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env            string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer     `yaml:"http_server"`
	PostgresServer `yaml:"postgres_server"`
	Media          `yaml:"media"`
	Auth           `yaml:"auth"`
	Pagination     `yaml:"pagination"`
	RateLimit      `yaml:"rate_limit"`
}

type HTTPServer struct {
	Address                 string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8085"`
	ReadTimeout             time.Duration `yaml:"read_timeout" env-default:"15s"`
	WriteTimeout            time.Duration `yaml:"write_timeout" env-default:"15s"`
	IdleTimeout             time.Duration `yaml:"idle_timeout" env-default:"60s"`
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout" env-default:"10s"`
	AllowedOrigins          []string      `yaml:"allowed_origins" env-default:"http://localhost:5173"`
}

type PostgresServer struct {
	Host            string        `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port            int           `yaml:"port" env:"DB_PORT" env-default:"5432"`
	Username        string        `yaml:"username" env:"DB_USER" env-default:"postgres"`
	DBname          string        `yaml:"db_name" env:"DB_NAME" env-default:"postgres"`
	SSLmode         string        `yaml:"ssl_mode" env-default:"disable"`
	MaxOpenConns    int           `yaml:"max_open_conns" env-default:"25"`
	MaxIdleConns    int           `yaml:"max_idle_conns" env-default:"5"`
	MaxLifetime     time.Duration `yaml:"max_lifetime" env-default:"1h"`
	DriverName      string        `yaml:"driver_name" env-default:"postgres"`
	ConnectAttempts int           `yaml:"connect_attempts" env-default:"5"`
	ConnectBackoff  time.Duration `yaml:"connect_backoff" env-default:"1s"`
}

type Media struct {
	Dir           string `yaml:"dir" env:"MEDIA_DIR" env-default:"./uploads"`
	PublicURL     string `yaml:"public_url" env-default:"/uploads"`
	MaxUploadSize int64  `yaml:"max_upload_size" env-default:"10485760"`
	MaxBodySize   int64  `yaml:"max_body_size" env-default:"33554432"`
}

type Auth struct {
	AdminUser string        `yaml:"username" env:"ADMIN_USERNAME" env-default:"admin"`
	TokenTTL  time.Duration `yaml:"token_ttl" env-default:"12h"`
}

type Pagination struct {
	DefaultLimit int64 `yaml:"default_limit" env-default:"10"`
	MaxLimit     int64 `yaml:"max_limit" env-default:"100"`
}

type RateLimit struct {
	Requests      int           `yaml:"requests" env-default:"300"`
	LoginRequests int           `yaml:"login_requests" env-default:"10"`
	Window        time.Duration `yaml:"window" env-default:"1m"`
}

type Secret struct {
	PostgresPassword  string `env:"DB_PASSWORD" env-required:"true"`
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH" env-required:"true"`
	JWTSecret         string `env:"JWT_SECRET" env-required:"true"`
}

func (p PostgresServer) DataSourceName(password string) string {
	if p.DriverName == "pgx" {
		return fmt.Sprintf(
			"postgres://%s:%s@%s:%d/%s?sslmode=%s",
			p.Username, password, p.Host, p.Port, p.DBname, p.SSLmode,
		)
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s "+"password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.Username, password, p.DBname, p.SSLmode,
	)
}

func MustLoad() (*Config, *Secret) {
	configPath, envPath := fetchPaths()
	if configPath == "" {
		log.Fatal("Config path is empty")
	}

	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil {
			log.Fatalf("Env file %s does not exist", envPath)
		}
	} else {
		// .env next to the binary is optional
		_ = godotenv.Load()
	}

	cfg, scr, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return cfg, scr
}

// Load reads the YAML config and the secrets from the environment.
func Load(configPath string) (*Config, *Secret, error) {
	const op = "config.Load"

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, nil, fmt.Errorf("%s: config file %s does not exist", op, configPath)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	scr := &Secret{}
	if err := cleanenv.ReadEnv(scr); err != nil {
		return nil, nil, fmt.Errorf("%s: failed to get secret env: %w", op, err)
	}

	return &cfg, scr, nil
}

func (c *Config) validate() error {
	switch c.DriverName {
	case "postgres", "pgx":
	default:
		return fmt.Errorf("unsupported driver_name %q", c.DriverName)
	}
	if c.DefaultLimit < 1 || c.MaxLimit < c.DefaultLimit {
		return errors.New("pagination limits must satisfy 1 <= default_limit <= max_limit")
	}
	if c.MaxUploadSize <= 0 || c.MaxBodySize < c.MaxUploadSize {
		return errors.New("media sizes must satisfy 0 < max_upload_size <= max_body_size")
	}
	return nil
}

func fetchPaths() (string, string) {
	var configPath, envPath string

	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.StringVar(&envPath, "env", "", "path to env file")
	flag.Parse()

	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}

	return configPath, envPath
}
