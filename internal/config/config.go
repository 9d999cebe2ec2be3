package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPAddr        = ":8000"
	defaultShutdownTimeout = 10 * time.Second
)

type Config struct {
	StoreURI        string
	DBName          string
	HTTPAddr        string
	LogLevel        slog.Level
	ShutdownTimeout time.Duration
}

// Load reads an optional .env file from the working directory, then the environment.
func Load() (Config, error) {
	return LoadFile(".env")
}

func LoadFile(envPath string) (Config, error) {
	var c Config

	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return c, fmt.Errorf("godotenv.Load[%s]: %w", envPath, err)
	}

	c, err := FromEnv()
	if err != nil {
		return c, fmt.Errorf("FromEnv: %w", err)
	}

	return c, nil
}

func FromEnv() (Config, error) {
	c := Config{
		StoreURI:        os.Getenv("STORE_URI"),
		DBName:          os.Getenv("DB_NAME"),
		HTTPAddr:        os.Getenv("HTTP_ADDR"),
		ShutdownTimeout: defaultShutdownTimeout,
	}

	// MONGO_URI is kept for existing deployments
	if c.StoreURI == "" {
		c.StoreURI = os.Getenv("MONGO_URI")
	}

	if c.HTTPAddr == "" {
		c.HTTPAddr = defaultHTTPAddr
	}

	if s := os.Getenv("LOG_LEVEL"); s != "" {
		if err := c.LogLevel.UnmarshalText([]byte(s)); err != nil {
			return c, fmt.Errorf("LOG_LEVEL[%s]: %w", s, err)
		}
	}

	if s := os.Getenv("SHUTDOWN_TIMEOUT"); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return c, fmt.Errorf("SHUTDOWN_TIMEOUT[%s]: %w", s, err)
		}
		c.ShutdownTimeout = d
	}

	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("c.Validate: %w", err)
	}

	return c, nil
}

func (c Config) Validate() error {
	if c.StoreURI == "" {
		return errors.New("STORE_URI (or MONGO_URI) is empty")
	}

	scheme, err := c.StoreScheme()
	if err != nil {
		return err
	}

	switch scheme {
	case "mongodb", "mongodb+srv":
		if c.DBName == "" {
			return errors.New("DB_NAME is empty")
		}
	case "postgres", "postgresql", "memory":
	default:
		return fmt.Errorf("unsupported store scheme: %s", scheme)
	}

	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive: %s", c.ShutdownTimeout)
	}

	return nil
}

func (c Config) StoreScheme() (string, error) {
	u, err := url.Parse(c.StoreURI)
	if err != nil {
		return "", fmt.Errorf("url.Parse: %w", err)
	}

	return strings.ToLower(u.Scheme), nil
}
