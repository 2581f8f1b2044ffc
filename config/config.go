package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DatasetSourceCSV      = "csv"
	DatasetSourcePostgres = "postgres"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Dataset  DatasetConfig  `yaml:"dataset"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Search   SearchConfig   `yaml:"search"`
	Worker   WorkerConfig   `yaml:"worker"`
}

type HTTPConfig struct {
	Address string `yaml:"address"`
}

type DatasetConfig struct {
	Source       string `yaml:"source"`
	AirportsFile string `yaml:"airports_file"`
	FlightsFile  string `yaml:"flights_file"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// RedisConfig with an empty Addr disables result caching.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// KafkaConfig with no brokers disables search events.
type KafkaConfig struct {
	Brokers           []string `yaml:"brokers"`
	SearchEventsTopic string   `yaml:"search_events_topic"`
	GroupID           string   `yaml:"group_id"`
}

type SearchConfig struct {
	ResultsCacheTTL   int `yaml:"results_cache_ttl_seconds"`
	MaxParallelRoutes int `yaml:"max_parallel_routes"`
}

type WorkerConfig struct {
	ReportIntervalMinutes int `yaml:"report_interval_minutes"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.HTTP.Address == "" {
		c.HTTP.Address = ":8080"
	}
	if c.Dataset.Source == "" {
		c.Dataset.Source = DatasetSourceCSV
	}
	if c.Kafka.SearchEventsTopic == "" {
		c.Kafka.SearchEventsTopic = "route-search-events"
	}
	if c.Kafka.GroupID == "" {
		c.Kafka.GroupID = "routeplanner-worker"
	}
	if c.Search.ResultsCacheTTL <= 0 {
		c.Search.ResultsCacheTTL = 300
	}
	if c.Worker.ReportIntervalMinutes <= 0 {
		c.Worker.ReportIntervalMinutes = 1
	}
}

func (c *Config) validate() error {
	switch c.Dataset.Source {
	case DatasetSourceCSV:
		if c.Dataset.AirportsFile == "" || c.Dataset.FlightsFile == "" {
			return fmt.Errorf("dataset: airports_file and flights_file are required for source %q", DatasetSourceCSV)
		}
	case DatasetSourcePostgres:
	default:
		return fmt.Errorf("dataset: unknown source %q", c.Dataset.Source)
	}
	if c.Search.MaxParallelRoutes < 0 {
		return fmt.Errorf("search: max_parallel_routes must not be negative")
	}
	return nil
}
