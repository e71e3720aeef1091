package cfg

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"passmint/pkg/domain"
)

const (
	StoreSQLite = "sqlite"
	StoreFile   = "file"
)

type Cfg struct {
	Environment    string
	LogLevel       string
	LogFile        string
	StoreBackend   string
	DataDir        string
	DatabasePath   string
	DBQueryTimeout time.Duration
	DefaultLength  int
}

func Load() (*Cfg, error) {
	// Missing .env is fine; plain env vars still apply.
	_ = godotenv.Load()

	c := &Cfg{}
	c.Environment = getEnv("ENVIRONMENT", "production")
	c.LogLevel = getEnv("LOG_LEVEL", "info")
	c.LogFile = getEnv("LOG_FILE", "")
	c.StoreBackend = getEnv("PASSMINT_STORE", StoreSQLite)

	dataDir, err := defaultDataDir()
	if err != nil {
		return nil, err
	}
	c.DataDir = getEnv("PASSMINT_DATA_DIR", dataDir)
	c.DatabasePath = getEnv("PASSMINT_DB_PATH", filepath.Join(c.DataDir, "passmint.db"))

	c.DBQueryTimeout, err = getDuration("PASSMINT_DB_QUERY_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, err
	}
	c.DefaultLength, err = getInt("PASSMINT_DEFAULT_LENGTH", domain.DefaultLength)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func Validate(c *Cfg) error {
	switch c.StoreBackend {
	case StoreSQLite, StoreFile:
	default:
		return fmt.Errorf("PASSMINT_STORE must be %q or %q, got %q", StoreSQLite, StoreFile, c.StoreBackend)
	}
	if c.DataDir == "" {
		return errors.New("PASSMINT_DATA_DIR is required")
	}
	if c.DatabasePath == "" {
		return errors.New("PASSMINT_DB_PATH is required")
	}
	if c.DBQueryTimeout <= 0 {
		return errors.New("PASSMINT_DB_QUERY_TIMEOUT must be positive")
	}
	if c.DefaultLength < domain.MinLength || c.DefaultLength > domain.MaxLength {
		return fmt.Errorf("PASSMINT_DEFAULT_LENGTH must be in [%d, %d]", domain.MinLength, domain.MaxLength)
	}
	return nil
}

func defaultDataDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "resolve user config dir")
	}
	return filepath.Join(base, "passmint"), nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
func getInt(key string, fallback int) (int, error) {
	s := getEnv(key, "")
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid integer for %s: %w", key, err)
	}
	return v, nil
}
func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	s := getEnv(key, "")
	if s == "" {
		return fallback, nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %w", key, err)
	}
	return v, nil
}
