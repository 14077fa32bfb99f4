package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env       string          `yaml:"env" env-default:"local"`
	HTTP      HTTPConfig      `yaml:"http"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Signaling SignalingConfig `yaml:"signaling"`
}

type HTTPConfig struct {
	Address        string   `yaml:"address" env-default:""`
	AllowedOrigins []string `yaml:"allowed_origins" env-default:""`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn" env:"DATABASE_DSN" env-default:""`
}

type AuthConfig struct {
	Secret   string        `yaml:"secret" env:"JWT_SECRET" env-default:""`
	TokenTTL time.Duration `yaml:"token_ttl" env-default:"1h"`
}

type SignalingConfig struct {
	HeartbeatInterval  time.Duration `yaml:"heartbeat_interval" env-default:"25s"`
	SendBuffer         int           `yaml:"send_buffer" env-default:"16"`
	StreamRequestLimit int           `yaml:"stream_request_limit" env-default:"5"`
	StreamRequestWin   time.Duration `yaml:"stream_request_window" env-default:"10s"`
}

func MustLoad() *Config {
	configPath := fetchConfigPath()
	if configPath == "" {
		panic("config path is empty")
	}

	return MustLoadPath(configPath)
}

func MustLoadPath(configPath string) *Config {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("cannot read config: " + err.Error())
	}

	cfg.setDefaults()

	return &cfg
}

func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	if res == "" {
		res = "config/local.yaml"
	}

	return res
}

func (c *Config) setDefaults() {
	if c.HTTP.Address == "" {
		c.HTTP.Address = ":8080"
	}
	if len(c.HTTP.AllowedOrigins) == 0 {
		c.HTTP.AllowedOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}
	if c.Signaling.HeartbeatInterval <= 0 {
		c.Signaling.HeartbeatInterval = 25 * time.Second
	}
	if c.Signaling.SendBuffer <= 0 {
		c.Signaling.SendBuffer = 16
	}
	if c.Signaling.StreamRequestLimit <= 0 {
		c.Signaling.StreamRequestLimit = 5
	}
	if c.Signaling.StreamRequestWin <= 0 {
		c.Signaling.StreamRequestWin = 10 * time.Second
	}
}
