package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	Store  StoreConfig  `yaml:"store"`
	DB     Postgres     `yaml:"database"`
	Redis  Redis        `yaml:"redis"`
	RMQ    RabbitMQ     `yaml:"rabbitmq"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type StoreConfig struct {
	Backend string `yaml:"backend"` // file | postgres | redis
	DataDir string `yaml:"data_dir"`
}

type Postgres struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

func (p Postgres) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		p.User, p.Password, p.Host, p.Port, p.Database,
	)
}

type Redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type RabbitMQ struct {
	Enabled  bool   `yaml:"enabled"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	VHost    string `yaml:"vhost"`
}

func (r RabbitMQ) URL() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/%s", r.User, r.Password, r.Host, r.Port, r.VHost)
}

// Load reads the YAML config at path and applies ORDERUP_* environment
// overrides on top. A missing config file is not an error: defaults plus the
// environment still form a complete configuration.
func Load(path string) (*Config, error) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	applyEnv(cfg)
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{Port: 3000},
		Log:    LogConfig{Level: "info"},
		Store:  StoreConfig{Backend: "file", DataDir: "data"},
		DB: Postgres{
			Host:     "localhost",
			Port:     "5432",
			User:     "postgres",
			Password: "postgres",
			Database: "orderup",
		},
		Redis: Redis{Addr: "localhost:6379"},
		RMQ: RabbitMQ{
			User:     "guest",
			Password: "guest",
			Host:     "localhost",
			Port:     "5672",
		},
	}
}

func applyEnv(cfg *Config) {
	cfg.Log.Level = getEnv("ORDERUP_LOG_LEVEL", cfg.Log.Level)
	cfg.Store.Backend = getEnv("ORDERUP_STORE_BACKEND", cfg.Store.Backend)
	cfg.Store.DataDir = getEnv("ORDERUP_STORE_DATA_DIR", cfg.Store.DataDir)
	cfg.DB.Host = getEnv("ORDERUP_DB_HOST", cfg.DB.Host)
	cfg.DB.Port = getEnv("ORDERUP_DB_PORT", cfg.DB.Port)
	cfg.DB.User = getEnv("ORDERUP_DB_USER", cfg.DB.User)
	cfg.DB.Password = getEnv("ORDERUP_DB_PASSWORD", cfg.DB.Password)
	cfg.DB.Database = getEnv("ORDERUP_DB_NAME", cfg.DB.Database)
	cfg.Redis.Addr = getEnv("ORDERUP_REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = getEnv("ORDERUP_REDIS_PASSWORD", cfg.Redis.Password)
	cfg.RMQ.User = getEnv("ORDERUP_RABBITMQ_USER", cfg.RMQ.User)
	cfg.RMQ.Password = getEnv("ORDERUP_RABBITMQ_PASSWORD", cfg.RMQ.Password)
	cfg.RMQ.Host = getEnv("ORDERUP_RABBITMQ_HOST", cfg.RMQ.Host)
	cfg.RMQ.Port = getEnv("ORDERUP_RABBITMQ_PORT", cfg.RMQ.Port)
	cfg.RMQ.VHost = getEnv("ORDERUP_RABBITMQ_VHOST", cfg.RMQ.VHost)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
