package cli_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/lex/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadServeConfigDefaults(t *testing.T) {
	cfg, err := cli.LoadServeConfig("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "memory", cfg.Store)
}

func TestLoadServeConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "serve.yaml")
	content := `
addr: ":9090"
store: redis
redis:
  addr: "redis.internal:6379"
  db: 2
  ttl: 30m
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := cli.LoadServeConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "redis", cfg.Store)
	assert.Equal(t, "redis.internal:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, 30*time.Minute, cfg.Redis.TTL)
	// Unset fields keep their defaults.
	assert.Equal(t, "lex:session:", cfg.Redis.Prefix)
}

func TestLoadServeConfigMissingFile(t *testing.T) {
	_, err := cli.LoadServeConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
