// Package config loads service settings from an optional YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"math"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTPAddr string   `yaml:"http_addr"`
	LogLevel string   `yaml:"log_level"`
	Tables   Tables   `yaml:"tables"`
	DynamoDB DynamoDB `yaml:"dynamodb"`
	Postgres Postgres `yaml:"postgres"`
	Kafka    Kafka    `yaml:"kafka"`
}

type Tables struct {
	Orders   string `yaml:"orders"`
	Products string `yaml:"products"`
}

type DynamoDB struct {
	Region string `yaml:"region"`
	// Endpoint overrides the AWS endpoint, e.g. for DynamoDB Local.
	Endpoint string `yaml:"endpoint"`
}

type Postgres struct {
	Host           string        `yaml:"host"`
	Port           int           `yaml:"port"`
	User           string        `yaml:"user"`
	Password       string        `yaml:"password"`
	Database       string        `yaml:"database"`
	SSLMode        string        `yaml:"sslmode"`
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
	QueryTimeout   time.Duration `yaml:"query_timeout"`
}

type Kafka struct {
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
}

func Default() *Config {
	return &Config{
		HTTPAddr: ":8080",
		LogLevel: "info",
		Tables:   Tables{Orders: "Orders", Products: "Products"},
		Postgres: Postgres{
			Host:           "localhost",
			Port:           5432,
			SSLMode:        "require",
			ConnectTimeout: 5 * time.Second,
			QueryTimeout:   3 * time.Second,
		},
		Kafka: Kafka{Topic: "catalog-events"},
	}
}

// Load reads path (skipped when empty), applies environment overrides and validates.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.HTTPAddr = GetEnvStr("HTTP_ADDR", c.HTTPAddr)
	c.LogLevel = GetEnvStr("LOG_LEVEL", c.LogLevel)

	c.Tables.Orders = GetEnvStr("ORDERS_TABLE", c.Tables.Orders)
	c.Tables.Products = GetEnvStr("PRODUCTS_TABLE", c.Tables.Products)

	c.DynamoDB.Region = GetEnvStr("AWS_REGION", c.DynamoDB.Region)
	c.DynamoDB.Endpoint = GetEnvStr("DYNAMODB_ENDPOINT", c.DynamoDB.Endpoint)

	// rds_* names are the ones the deployment templates already export.
	c.Postgres.Host = GetEnvStr("rds_address", c.Postgres.Host)
	c.Postgres.Port = GetEnvInt("rds_port", c.Postgres.Port)
	c.Postgres.User = GetEnvStr("rds_username", c.Postgres.User)
	c.Postgres.Password = GetEnvStr("rds_password", c.Postgres.Password)
	c.Postgres.Database = GetEnvStr("rds_db_name", c.Postgres.Database)
	c.Postgres.SSLMode = GetEnvStr("RDS_SSLMODE", c.Postgres.SSLMode)
	c.Postgres.ConnectTimeout = GetEnvDuration("RDS_CONNECT_TIMEOUT", c.Postgres.ConnectTimeout)
	c.Postgres.QueryTimeout = GetEnvDuration("QUERY_TIMEOUT", c.Postgres.QueryTimeout)

	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = ParseCommaSeparatedList(v)
	}
	c.Kafka.Topic = GetEnvStr("KAFKA_TOPIC", c.Kafka.Topic)
}

func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Tables.Orders) == "" {
		errs = append(errs, errors.New("tables.orders: required"))
	}
	if strings.TrimSpace(c.Tables.Products) == "" {
		errs = append(errs, errors.New("tables.products: required"))
	}
	if c.Tables.Orders != "" && c.Tables.Orders == c.Tables.Products {
		errs = append(errs, errors.New("tables: orders and products must differ"))
	}
	if c.Postgres.Port <= 0 || c.Postgres.Port > 65535 {
		errs = append(errs, fmt.Errorf("postgres.port: %d out of range", c.Postgres.Port))
	}
	if c.Postgres.QueryTimeout <= 0 {
		errs = append(errs, errors.New("postgres.query_timeout: must be positive"))
	}
	if c.Postgres.ConnectTimeout <= 0 {
		errs = append(errs, errors.New("postgres.connect_timeout: must be positive"))
	}
	if len(c.Kafka.Brokers) > 0 && c.Kafka.Topic == "" {
		errs = append(errs, errors.New("kafka.topic: required when brokers are set"))
	}
	return errors.Join(errs...)
}

// PostgresDSN renders the connection URL for pgxpool.
func (c *Config) PostgresDSN() string {
	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(c.Postgres.Host, strconv.Itoa(c.Postgres.Port)),
		Path:   "/" + c.Postgres.Database,
	}
	if c.Postgres.User != "" {
		u.User = url.UserPassword(c.Postgres.User, c.Postgres.Password)
	}
	q := url.Values{}
	if c.Postgres.SSLMode != "" {
		q.Set("sslmode", c.Postgres.SSLMode)
	}
	// libpq reads 0 as "wait forever", so round up to whole seconds.
	secs := int(math.Ceil(c.Postgres.ConnectTimeout.Seconds()))
	q.Set("connect_timeout", strconv.Itoa(max(secs, 1)))
	u.RawQuery = q.Encode()
	return u.String()
}
