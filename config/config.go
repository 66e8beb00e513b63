// Package config reads server and simulator settings from the environment,
// optionally seeded from .env files.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidPort        = errors.New("port must be between 1 and 65535")
	ErrInvalidLogFormat   = errors.New("log format must be text or json")
	ErrInvalidPlayerCount = errors.New("players must be between 3 and 6")
	ErrInvalidInterval    = errors.New("feed interval must be positive")
)

type Config struct {
	Port          int           `env:"CLUEDO_PORT,default=8000"`
	LogLevel      string        `env:"CLUEDO_LOG_LEVEL,default=info"`
	LogFormat     string        `env:"CLUEDO_LOG_FORMAT,default=text"`
	AllowedOrigin string        `env:"CLUEDO_ALLOWED_ORIGIN,default=*"`
	FeedInterval  time.Duration `env:"CLUEDO_FEED_INTERVAL,default=500ms"`
	ReadBuffer    int           `env:"CLUEDO_WS_READ_BUFFER,default=1024"`
	WriteBuffer   int           `env:"CLUEDO_WS_WRITE_BUFFER,default=1024"`

	// Players and Seed drive the command line simulator. A zero seed means
	// seed from the clock.
	Players int   `env:"CLUEDO_PLAYERS,default=4"`
	Seed    int64 `env:"CLUEDO_SEED,default=0"`
}

// Default is the configuration used when nothing is set
func Default() Config {
	return Config{
		Port:          8000,
		LogLevel:      "info",
		LogFormat:     "text",
		AllowedOrigin: "*",
		FeedInterval:  500 * time.Millisecond,
		ReadBuffer:    1024,
		WriteBuffer:   1024,
		Players:       4,
	}
}

// Load reads envFiles into the environment, without overriding variables that
// are already set, then decodes the environment. Missing files are skipped.
func Load(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	cfg := Default()
	if err := envdecode.Decode(&cfg); err != nil {
		if !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
			return Config{}, fmt.Errorf("decoding environment: %w", err)
		}
		cfg = Default()
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return ErrInvalidPort
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return ErrInvalidLogFormat
	}
	if c.Players < 3 || c.Players > 6 {
		return ErrInvalidPlayerCount
	}
	if c.FeedInterval <= 0 {
		return ErrInvalidInterval
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Logger builds a logrus logger writing to out at the configured level and
// format.
func (c Config) Logger(out io.Writer) *logrus.Logger {
	if out == nil {
		out = os.Stderr
	}
	l := logrus.New()
	l.SetOutput(out)
	if level, err := logrus.ParseLevel(c.LogLevel); err == nil {
		l.SetLevel(level)
	}
	if c.LogFormat == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return l
}
