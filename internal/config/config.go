package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-engine/internal/agent"
)

const (
	ModePlay  = "play"
	ModeArena = "arena"
)

var ErrInvalidConfig = errors.New("invalid config")

var agentKinds = []string{agent.KindMinimax, agent.KindRandom, agent.KindHeuristic}

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Mode     string `yaml:"mode" env:"MODE" env-default:"play"`
	Search   Search `yaml:"search"`
	Play     Play   `yaml:"play"`
	Arena    Arena  `yaml:"arena"`
	Redis    Redis  `yaml:"redis"`
}

type Search struct {
	// Parallelism 0 means one worker per CPU.
	Parallelism int `yaml:"parallelism" env:"SEARCH_PARALLELISM" env-default:"0"`
}

type Play struct {
	Opponent string `yaml:"opponent" env:"PLAY_OPPONENT" env-default:"minimax"`

	// no env-default, cleanenv only fills zero values
	Colors bool `yaml:"colors" env:"PLAY_COLORS"`
}

type Arena struct {
	First      string `yaml:"first" env:"ARENA_FIRST" env-default:"minimax"`
	Second     string `yaml:"second" env:"ARENA_SECOND" env-default:"random"`
	Games      int    `yaml:"games" env:"ARENA_GAMES" env-default:"100"`
	Workers    int    `yaml:"workers" env:"ARENA_WORKERS" env-default:"4"`
	Seed       uint64 `yaml:"seed" env:"ARENA_SEED"`
	ReportPath string `yaml:"report-path" env:"ARENA_REPORT_PATH" env-default:""`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// Load - reads the config file, environment variables override it.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Config) Validate() error {
	if that.Mode != ModePlay && that.Mode != ModeArena {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, that.Mode)
	}

	if that.Search.Parallelism < 0 {
		return fmt.Errorf("%w: search.parallelism must not be negative", ErrInvalidConfig)
	}

	for _, kind := range []string{that.Play.Opponent, that.Arena.First, that.Arena.Second} {
		if !slices.Contains(agentKinds, kind) {
			return fmt.Errorf("%w: unknown agent %q", ErrInvalidConfig, kind)
		}
	}

	if that.Mode == ModeArena && that.Arena.Games <= 0 {
		return fmt.Errorf("%w: arena.games must be positive", ErrInvalidConfig)
	}

	if that.Redis.Enabled && that.Redis.GetRedisAddr() == "" {
		return fmt.Errorf("%w: redis host and port are required", ErrInvalidConfig)
	}

	return nil
}

// GetRedisAddr - host:port, or "" when either part is missing.
func (that *Redis) GetRedisAddr() string {
	if that.Host == "" || that.Port == "" {
		return ""
	}

	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
