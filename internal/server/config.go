package server

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/iwvelando/loan-revolver/internal/config"
	"github.com/iwvelando/loan-revolver/pkg/constants"
	"gopkg.in/yaml.v3"
)

// Config defines runtime parameters for the HTTP server.
type Config struct {
	Address         string               `yaml:"address"`
	MaxRequestSize  string               `yaml:"maxRequestSize"`
	ShutdownTimeout string               `yaml:"shutdownTimeout"`
	Logging         config.LoggingConfig `yaml:"logging"`

	requestSizeBytes int64
	shutdownTimeout  time.Duration
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Address:          constants.DefaultServerAddress,
		MaxRequestSize:   strconv.FormatInt(constants.DefaultMaxRequestSizeBytes, 10),
		requestSizeBytes: constants.DefaultMaxRequestSizeBytes,
		shutdownTimeout:  constants.DefaultShutdownTimeoutSeconds * time.Second,
	}
}

// LoadConfig loads the server configuration from YAML. If the file does not exist,
// defaults are returned without error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read server config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse server config: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// RequestSizeBytes returns the maximum accepted request body size.
func (c *Config) RequestSizeBytes() int64 {
	return c.requestSizeBytes
}

// ShutdownTimeoutDuration returns how long graceful shutdown may take.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	return c.shutdownTimeout
}

func (c *Config) normalize() error {
	if strings.TrimSpace(c.Address) == "" {
		c.Address = constants.DefaultServerAddress
	}

	size, err := ParseSize(c.MaxRequestSize)
	if err != nil {
		return err
	}
	if size <= 0 {
		size = constants.DefaultMaxRequestSizeBytes
	}
	c.requestSizeBytes = size

	timeout := strings.TrimSpace(c.ShutdownTimeout)
	if timeout == "" {
		c.shutdownTimeout = constants.DefaultShutdownTimeoutSeconds * time.Second
		return nil
	}
	d, err := time.ParseDuration(timeout)
	if err != nil {
		return fmt.Errorf("invalid shutdownTimeout %q: %w", c.ShutdownTimeout, err)
	}
	if d <= 0 {
		return fmt.Errorf("shutdownTimeout must be positive, got %s", c.ShutdownTimeout)
	}
	c.shutdownTimeout = d
	return nil
}

var sizeUnits = map[string]int64{
	"":   1,
	"B":  1,
	"K":  1 << 10,
	"KB": 1 << 10,
	"M":  1 << 20,
	"MB": 1 << 20,
}

// ParseSize converts a human-friendly byte string (e.g., "16K", "1M") into bytes.
func ParseSize(value string) (int64, error) {
	trimmed := strings.ToUpper(strings.TrimSpace(value))
	if trimmed == "" {
		return constants.DefaultMaxRequestSizeBytes, nil
	}

	idx := strings.IndexFunc(trimmed, func(r rune) bool { return !unicode.IsDigit(r) })
	if idx == 0 {
		return 0, fmt.Errorf("invalid size: %s", value)
	}
	numPart, unitPart := trimmed, ""
	if idx > 0 {
		numPart, unitPart = trimmed[:idx], strings.TrimSpace(trimmed[idx:])
	}

	multiplier, ok := sizeUnits[unitPart]
	if !ok {
		return 0, fmt.Errorf("unsupported size unit %q", unitPart)
	}

	n, err := strconv.ParseInt(numPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size value %q: %w", value, err)
	}
	if n > (1<<62)/multiplier {
		return 0, fmt.Errorf("size overflow for value %s", value)
	}
	return n * multiplier, nil
}
