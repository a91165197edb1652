package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig     `mapstructure:"app"`
	HTTP    HTTPConfig    `mapstructure:"http"`
	Storage StorageConfig `mapstructure:"storage"`
	Charts  ChartsConfig  `mapstructure:"charts"`
}

type AppConfig struct {
	LogMode string `mapstructure:"log_mode"` // dev | prod
}

type HTTPConfig struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type StorageConfig struct {
	Driver          string        `mapstructure:"driver"` // csv | sqlite | postgres
	CSVPath         string        `mapstructure:"csv_path"`
	SQLitePath      string        `mapstructure:"sqlite_path"`
	PostgresDSN     string        `mapstructure:"postgres_dsn"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

type ChartsConfig struct {
	Width    int    `mapstructure:"width"`
	Height   int    `mapstructure:"height"`
	FontPath string `mapstructure:"font_path"`
	FontSize int    `mapstructure:"font_size"`
}

const (
	DriverCSV      = "csv"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

var ErrInvalidConfig = errors.New("invalid config")

// Load reads config.yaml (from ./config or .) or configPath when given,
// then applies TRACKER_* environment overrides.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("TRACKER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// legacy variable name
	_ = v.BindEnv("storage.postgres_dsn", "TRACKER_STORAGE_POSTGRES_DSN", "POSTGRES_DSN")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.log_mode", "dev")

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.shutdown_timeout", 5*time.Second)

	v.SetDefault("storage.driver", DriverCSV)
	v.SetDefault("storage.csv_path", "ai_usage_data.csv")
	v.SetDefault("storage.sqlite_path", "./data/ai_usage.db")
	v.SetDefault("storage.postgres_dsn", "")
	v.SetDefault("storage.max_open_conns", 20)
	v.SetDefault("storage.max_idle_conns", 10)
	v.SetDefault("storage.conn_max_lifetime", 30*time.Minute)

	v.SetDefault("charts.width", 800)
	v.SetDefault("charts.height", 480)
	v.SetDefault("charts.font_path", "")
	v.SetDefault("charts.font_size", 12)
}

func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverCSV:
		if c.Storage.CSVPath == "" {
			return fmt.Errorf("%w: storage.csv_path is empty", ErrInvalidConfig)
		}
	case DriverSQLite:
		if c.Storage.SQLitePath == "" {
			return fmt.Errorf("%w: storage.sqlite_path is empty", ErrInvalidConfig)
		}
	case DriverPostgres:
		if c.Storage.PostgresDSN == "" {
			return fmt.Errorf("%w: POSTGRES_DSN is not set", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown storage.driver %q", ErrInvalidConfig, c.Storage.Driver)
	}

	if c.Charts.Width <= 0 || c.Charts.Height <= 0 {
		return fmt.Errorf("%w: chart size must be positive", ErrInvalidConfig)
	}
	return nil
}
