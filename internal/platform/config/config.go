package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPath       = "config.yaml"
	DefaultTokenTTL   = 7 * 24 * time.Hour
	DefaultBcryptCost = 12
)

const (
	ImageStoreDisk  = "disk"
	ImageStoreMinio = "minio"
)

// Config es la configuración del proceso. Se carga una sola vez al arrancar
// y se inyecta en los componentes; nadie la muta después.
type Config struct {
	Port    string `yaml:"port"`
	DBDSN   string `yaml:"dbDSN"`
	AppName string `yaml:"appName"`

	LogLevel  string `yaml:"logLevel"`
	LogFormat string `yaml:"logFormat"`

	JWTSecret string        `yaml:"jwtSecret"`
	TokenTTL  time.Duration `yaml:"tokenTTL"`

	BcryptCost  int    `yaml:"bcryptCost"`
	PhoneRegion string `yaml:"phoneRegion"`

	ImageStore string `yaml:"imageStore"`
	ImageDir   string `yaml:"imageDir"`

	MinioEndpoint  string `yaml:"minioEndpoint"`
	MinioAccessKey string `yaml:"minioAccessKey"`
	MinioSecretKey string `yaml:"minioSecretKey"`
	MinioBucket    string `yaml:"minioBucket"`
	MinioUseSSL    bool   `yaml:"minioUseSSL"`

	RedisAddr              string `yaml:"redisAddr"`
	RedisPassword          string `yaml:"redisPassword"`
	AuthRateLimitPerMinute int    `yaml:"authRateLimitPerMinute"`

	CORSOrigin     string `yaml:"corsOrigin"`
	MetricsEnabled bool   `yaml:"metricsEnabled"`
}

func defaults() Config {
	return Config{
		Port:        "8080",
		AppName:     "pet-adoption",
		LogLevel:    "info",
		LogFormat:   "text",
		TokenTTL:    DefaultTokenTTL,
		BcryptCost:  DefaultBcryptCost,
		PhoneRegion: "BR",
		ImageStore:  ImageStoreDisk,
		ImageDir:    "public/images",
		CORSOrigin:  "http://localhost:3000",
	}
}

// Load lee el YAML (si existe) y aplica overrides por env.
// path vacío => CONFIG_PATH o config.yaml. Un archivo ausente no es error:
// en contenedores todo suele venir por env.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path == "" {
		path = strings.TrimSpace(os.Getenv("CONFIG_PATH"))
	}
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		// sin archivo: solo env
	default:
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

type lookupFunc func(string) (string, bool)

func applyEnv(cfg *Config, lookup lookupFunc) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}

	str("PORT", &cfg.Port)
	str("DB_DSN", &cfg.DBDSN)
	str("APP_NAME", &cfg.AppName)
	str("LOG_LEVEL", &cfg.LogLevel)
	str("LOG_FORMAT", &cfg.LogFormat)
	str("JWT_SECRET", &cfg.JWTSecret)
	str("PHONE_REGION", &cfg.PhoneRegion)
	str("IMAGE_STORE", &cfg.ImageStore)
	str("IMAGE_DIR", &cfg.ImageDir)
	str("MINIO_ENDPOINT", &cfg.MinioEndpoint)
	str("MINIO_ACCESS_KEY", &cfg.MinioAccessKey)
	str("MINIO_SECRET_KEY", &cfg.MinioSecretKey)
	str("MINIO_BUCKET", &cfg.MinioBucket)
	str("REDIS_ADDR", &cfg.RedisAddr)
	str("REDIS_PASSWORD", &cfg.RedisPassword)
	str("CORS_ORIGIN", &cfg.CORSOrigin)

	if v, ok := lookup("TOKEN_TTL"); ok && strings.TrimSpace(v) != "" {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: invalid TOKEN_TTL: %w", err)
		}
		cfg.TokenTTL = d
	}
	if v, ok := lookup("BCRYPT_COST"); ok && strings.TrimSpace(v) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: invalid BCRYPT_COST: %w", err)
		}
		cfg.BcryptCost = n
	}
	if v, ok := lookup("AUTH_RATE_LIMIT_PER_MINUTE"); ok && strings.TrimSpace(v) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: invalid AUTH_RATE_LIMIT_PER_MINUTE: %w", err)
		}
		cfg.AuthRateLimitPerMinute = n
	}
	if v, ok := lookup("MINIO_USE_SSL"); ok && strings.TrimSpace(v) != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: invalid MINIO_USE_SSL: %w", err)
		}
		cfg.MinioUseSSL = b
	}
	if v, ok := lookup("METRICS_ENABLED"); ok && strings.TrimSpace(v) != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: invalid METRICS_ENABLED: %w", err)
		}
		cfg.MetricsEnabled = b
	}
	return nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return errors.New("config: port is required")
	}
	if strings.TrimSpace(c.JWTSecret) == "" {
		return errors.New("config: jwtSecret is required (set in config.yaml or JWT_SECRET)")
	}
	if c.TokenTTL <= 0 {
		return errors.New("config: tokenTTL must be > 0")
	}
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return errors.New("config: bcryptCost must be between 4 and 31")
	}
	if c.AuthRateLimitPerMinute < 0 {
		return errors.New("config: authRateLimitPerMinute must be >= 0")
	}

	switch c.ImageStore {
	case ImageStoreDisk:
		if strings.TrimSpace(c.ImageDir) == "" {
			return errors.New("config: imageDir is required for the disk image store")
		}
	case ImageStoreMinio:
		if c.MinioEndpoint == "" || c.MinioAccessKey == "" || c.MinioSecretKey == "" || c.MinioBucket == "" {
			return errors.New("config: minioEndpoint, minioAccessKey, minioSecretKey and minioBucket are required for the minio image store")
		}
	default:
		return fmt.Errorf("config: unknown imageStore %q (disk|minio)", c.ImageStore)
	}
	return nil
}

// Addr devuelve la dirección de escucha (":8080").
func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}
