package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Directions DirectionsConfig
	Hazards    HazardsConfig
	Log        LogConfig
	Worker     WorkerConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// DirectionsConfig configures the external directions provider
// (LocationIQ-compatible OSRM directions API).
type DirectionsConfig struct {
	BaseURL        string
	APIKey         string
	RequestTimeout time.Duration
}

// HazardsConfig bounds the route-annotation hazard queries.
type HazardsConfig struct {
	ProximityDegree float64
	ReportLimit     int
	AlertLimit      int
	SyntheticSeed   int64
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled       bool
	ConsumerGroup string
	BatchSize     int
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Directions: DirectionsConfig{
			BaseURL:        viper.GetString("DIRECTIONS_BASE_URL"),
			APIKey:         viper.GetString("DIRECTIONS_API_KEY"),
			RequestTimeout: time.Duration(viper.GetInt("DIRECTIONS_REQUEST_TIMEOUT")) * time.Second,
		},
		Hazards: HazardsConfig{
			ProximityDegree: viper.GetFloat64("HAZARDS_PROXIMITY_DEGREE"),
			ReportLimit:     viper.GetInt("HAZARDS_REPORT_LIMIT"),
			AlertLimit:      viper.GetInt("HAZARDS_ALERT_LIMIT"),
			SyntheticSeed:   viper.GetInt64("HAZARDS_SYNTHETIC_SEED"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:       viper.GetBool("WORKER_ENABLED"),
			ConsumerGroup: viper.GetString("WORKER_CONSUMER_GROUP"),
			BatchSize:     viper.GetInt("WORKER_BATCH_SIZE"),
		},
	}

	// Set default values if not provided
	if cfg.Directions.BaseURL == "" {
		cfg.Directions.BaseURL = "https://us1.locationiq.com"
	}
	if cfg.Directions.RequestTimeout == 0 {
		cfg.Directions.RequestTimeout = 8 * time.Second
	}
	if cfg.Hazards.ProximityDegree == 0 {
		cfg.Hazards.ProximityDegree = 0.1
	}
	if cfg.Hazards.ReportLimit == 0 {
		cfg.Hazards.ReportLimit = 100
	}
	if cfg.Hazards.AlertLimit == 0 {
		cfg.Hazards.AlertLimit = 50
	}
	if cfg.Worker.ConsumerGroup == "" {
		cfg.Worker.ConsumerGroup = "report-broadcast-workers"
	}
	if cfg.Worker.BatchSize == 0 {
		cfg.Worker.BatchSize = 20
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
