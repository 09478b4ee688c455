package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFormat string   `yaml:"log-format" env:"LOG_FORMAT" env-default:"json"`
	HTTPPort  string   `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`

	CORSOrigins    []string      `yaml:"cors-origins" env:"CORS_ORIGINS" env-separator:"," env-default:"http://localhost:3000"`
	HealthInterval time.Duration `yaml:"health-interval" env:"HEALTH_INTERVAL" env-default:"30s"`

	Redis     Redis    `yaml:"redis"`
	Postgres  Postgres `yaml:"postgres"`
	Board     Board    `yaml:"board"`
}

type Redis struct {
	Host    string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	GameTTL time.Duration `yaml:"game-ttl" env:"REDIS_GAME_TTL" env-default:"24h"`
}

type Postgres struct {
	URL      string `yaml:"url" env:"POSTGRES_URL" env-default:"postgres://localhost:5432/tictactoe?sslmode=disable"`
	MaxConns int32  `yaml:"max-conns" env:"POSTGRES_MAX_CONNS" env-default:"10"`
}

// Board limits the size of newly created games.
type Board struct {
	MinSize int `yaml:"min-size" env:"BOARD_MIN_SIZE" env-default:"3"`
	MaxSize int `yaml:"max-size" env:"BOARD_MAX_SIZE" env-default:"15"`
}

var (
	ErrInvalidBoardLimits    = errors.New("invalid board size limits")
	ErrInvalidHealthInterval = errors.New("health interval must be positive")
)

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the config file at path, applying environment overrides and defaults.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Board.Validate(); err != nil {
		return nil, err
	}

	if config.HealthInterval <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidHealthInterval, config.HealthInterval)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

func (that *Board) Validate() error {
	if that.MinSize < 1 || that.MaxSize < that.MinSize {
		return fmt.Errorf("%w: min %d, max %d", ErrInvalidBoardLimits, that.MinSize, that.MaxSize)
	}
	return nil
}
