package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, home, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(home, "config.yaml"), []byte(content), 0644)
	require.NoError(t, err)
}

func resetState() {
	CloseAll()
	logsDir = ""
	homeDir = ""
	config = loggingConfig{}
	configLoaded = false
	logLevel = LevelInfo
}

func TestInitialize(t *testing.T) {
	t.Run("no config file means logging disabled", func(t *testing.T) {
		defer resetState()
		home := t.TempDir()

		err := Initialize(home)
		require.NoError(t, err)

		assert.False(t, IsDebugMode())
		_, statErr := os.Stat(filepath.Join(home, "logs"))
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("debug mode creates logs directory", func(t *testing.T) {
		defer resetState()
		home := t.TempDir()
		writeConfig(t, home, "logging:\n  debug_mode: true\n  level: debug\n")

		err := Initialize(home)
		require.NoError(t, err)

		assert.True(t, IsDebugMode())
		info, statErr := os.Stat(filepath.Join(home, "logs"))
		require.NoError(t, statErr)
		assert.True(t, info.IsDir())
	})

	t.Run("empty home path rejected", func(t *testing.T) {
		defer resetState()
		err := Initialize("")
		assert.Error(t, err)
	})
}

func TestGet(t *testing.T) {
	t.Run("returns noop logger when disabled", func(t *testing.T) {
		defer resetState()
		home := t.TempDir()
		require.NoError(t, Initialize(home))

		l := Get(CategoryPipeline)
		require.NotNil(t, l)
		assert.Nil(t, l.logger)

		// No-op logger never panics
		l.Info("this goes nowhere")
		l.Error("neither does this")
	})

	t.Run("writes to category file when enabled", func(t *testing.T) {
		defer resetState()
		home := t.TempDir()
		writeConfig(t, home, "logging:\n  debug_mode: true\n  level: debug\n")
		require.NoError(t, Initialize(home))

		l := Get(CategoryFallback)
		require.NotNil(t, l.logger)
		l.Info("selected bucket %s", "anxiety")
		CloseAll()

		entries, err := os.ReadDir(filepath.Join(home, "logs"))
		require.NoError(t, err)

		found := false
		for _, e := range entries {
			if filepath.Ext(e.Name()) == ".log" {
				data, rerr := os.ReadFile(filepath.Join(home, "logs", e.Name()))
				require.NoError(t, rerr)
				if assert.Contains(t, string(data), "selected bucket anxiety") {
					found = true
				}
			}
		}
		assert.True(t, found, "expected a log file containing the message")
	})

	t.Run("same category returns cached logger", func(t *testing.T) {
		defer resetState()
		home := t.TempDir()
		writeConfig(t, home, "logging:\n  debug_mode: true\n")
		require.NoError(t, Initialize(home))

		l1 := Get(CategoryAudio)
		l2 := Get(CategoryAudio)
		assert.Same(t, l1, l2)
	})
}

func TestCategoryFiltering(t *testing.T) {
	defer resetState()
	home := t.TempDir()
	writeConfig(t, home, `logging:
  debug_mode: true
  level: info
  categories:
    audio: false
    pipeline: true
`)
	require.NoError(t, Initialize(home))

	assert.False(t, IsCategoryEnabled(CategoryAudio))
	assert.True(t, IsCategoryEnabled(CategoryPipeline))
	// Categories absent from the map default to enabled
	assert.True(t, IsCategoryEnabled(CategoryStore))
}

func TestLogLevels(t *testing.T) {
	defer resetState()
	home := t.TempDir()
	writeConfig(t, home, "logging:\n  debug_mode: true\n  level: warn\n")
	require.NoError(t, Initialize(home))

	l := Get(CategorySession)
	require.NotNil(t, l.logger)

	l.Debug("debug suppressed")
	l.Info("info suppressed")
	l.Warn("warn visible")
	l.Error("error visible")
	CloseAll()

	entries, err := os.ReadDir(filepath.Join(home, "logs"))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(home, "logs", entries[0].Name()))
	require.NoError(t, err)
	content := string(data)
	assert.NotContains(t, content, "debug suppressed")
	assert.NotContains(t, content, "info suppressed")
	assert.Contains(t, content, "warn visible")
	assert.Contains(t, content, "error visible")
}

func TestTimer(t *testing.T) {
	defer resetState()
	home := t.TempDir()
	writeConfig(t, home, "logging:\n  debug_mode: true\n  level: debug\n")
	require.NoError(t, Initialize(home))

	timer := StartTimer(CategoryAPI, "completion request")
	elapsed := timer.Stop()
	assert.GreaterOrEqual(t, elapsed.Nanoseconds(), int64(0))
}

func TestReloadConfig(t *testing.T) {
	defer resetState()
	home := t.TempDir()
	writeConfig(t, home, "logging:\n  debug_mode: false\n")
	require.NoError(t, Initialize(home))
	assert.False(t, IsDebugMode())

	writeConfig(t, home, "logging:\n  debug_mode: true\n")
	require.NoError(t, ReloadConfig())
	assert.True(t, IsDebugMode())
}
