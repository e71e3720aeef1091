package cfg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passmint/pkg/domain"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StoreSQLite, c.StoreBackend)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, 5*time.Second, c.DBQueryTimeout)
	assert.Equal(t, domain.DefaultLength, c.DefaultLength)
	assert.NotEmpty(t, c.DataDir)
	assert.NotEmpty(t, c.DatabasePath)
	assert.NoError(t, Validate(c))
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PASSMINT_STORE", "file")
	t.Setenv("PASSMINT_DATA_DIR", "/tmp/passmint-test")
	t.Setenv("PASSMINT_DEFAULT_LENGTH", "24")
	t.Setenv("PASSMINT_DB_QUERY_TIMEOUT", "2s")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StoreFile, c.StoreBackend)
	assert.Equal(t, "/tmp/passmint-test", c.DataDir)
	assert.Equal(t, 24, c.DefaultLength)
	assert.Equal(t, 2*time.Second, c.DBQueryTimeout)
}

func TestLoadBadInt(t *testing.T) {
	t.Setenv("PASSMINT_DEFAULT_LENGTH", "lots")
	_, err := Load()
	assert.Error(t, err)
}

func TestValidateBackend(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)
	c.StoreBackend = "etcd"
	assert.Error(t, Validate(c))
}

func TestValidateDefaultLengthRange(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	c.DefaultLength = domain.MinLength - 1
	assert.Error(t, Validate(c))
	c.DefaultLength = domain.MaxLength + 1
	assert.Error(t, Validate(c))
	c.DefaultLength = domain.MaxLength
	assert.NoError(t, Validate(c))
}

func TestValidateQueryTimeout(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)
	c.DBQueryTimeout = 0
	assert.Error(t, Validate(c))
}
