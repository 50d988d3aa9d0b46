package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads yaml file", func(t *testing.T) {
		// Given: a config file with every section
		path := writeConfig(t, `
log-level: debug
storage: redis
redis:
  host: cache
  port: "6380"
players:
  first: alice
  second: bob
`)

		// When: the config is loaded
		conf, err := Load(path)

		// Then: the file values are used
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, StorageRedis, conf.Storage)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, Players{First: "alice", Second: "bob"}, conf.Players)
	})

	t.Run("Uses defaults without a file", func(t *testing.T) {
		// When: a missing file is loaded
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: defaults apply
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, StorageMemory, conf.Storage)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, "Player 1", conf.Players.First)
		assert.Equal(t, "Player 2", conf.Players.Second)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		// Given: a config file and an environment override
		path := writeConfig(t, "players:\n  first: alice\n")
		t.Setenv("FIRST_PLAYER", "carol")

		// When: the config is loaded
		conf, err := Load(path)

		// Then: the environment wins
		require.NoError(t, err)
		assert.Equal(t, "carol", conf.Players.First)
	})

	t.Run("Rejects unknown storage", func(t *testing.T) {
		// Given: a config file with an unsupported storage
		path := writeConfig(t, "storage: postgres\n")

		// When: the config is loaded
		_, err := Load(path)

		// Then: ErrUnknownStorage is returned
		require.ErrorIs(t, err, ErrUnknownStorage)
	})

	t.Run("MustLoad panics on bad file", func(t *testing.T) {
		// Given: a file that is not yaml
		path := writeConfig(t, "log-level: [\n")

		// When/Then: MustLoad panics
		assert.Panics(t, func() { MustLoad(path) })
	})
}
