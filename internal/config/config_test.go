package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnv(t *testing.T, kv map[string]string) {
	t.Helper()
	for _, key := range []string{"LOCALES_DIR", "LOCALE_FILE_PREFIX", "DEFAULT_LOCALE", "DATABASE_URL", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(key, "")
	}
	for k, v := range kv {
		t.Setenv(k, v)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	setEnv(t, nil)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.DefaultLocale)
	assert.Equal(t, "stock_", cfg.LocaleFilePrefix)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Empty(t, cfg.LocalesDir)
	assert.False(t, cfg.PersistenceEnabled())
}

func TestLoadDatabaseURL(t *testing.T) {
	t.Chdir(t.TempDir())
	setEnv(t, map[string]string{
		"DEFAULT_LOCALE": "ro",
		"LOG_LEVEL":      "debug",
		"LOG_FORMAT":     "json",
		"DATABASE_URL":   "postgres://localhost:5432/walletl10n?sslmode=disable",
	})

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.PersistenceEnabled())
}

func TestLoadKeywordDSN(t *testing.T) {
	t.Chdir(t.TempDir())
	setEnv(t, map[string]string{
		"DATABASE_URL": "host=localhost port=5432 user=wallet dbname=walletl10n sslmode=disable",
	})

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.PersistenceEnabled())
	assert.Equal(t, "host=localhost port=5432 user=wallet dbname=walletl10n sslmode=disable", cfg.DatabaseURL)
}

func TestLoadRejectsInvalid(t *testing.T) {
	base := map[string]string{"DEFAULT_LOCALE": "en", "LOG_LEVEL": "info", "LOG_FORMAT": "console"}
	cases := map[string]map[string]string{
		"bad locale":     {"DEFAULT_LOCALE": "not a tag!"},
		"missing dir":    {"LOCALES_DIR": "/definitely/not/here"},
		"bad level":      {"LOG_LEVEL": "loud"},
		"bad format":     {"LOG_FORMAT": "xml"},
		"bad url":        {"DATABASE_URL": "localhost"},
		"unparsable url": {"DATABASE_URL": "postgres://%zz"},
	}
	for name, override := range cases {
		t.Run(name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			env := map[string]string{}
			for k, v := range base {
				env[k] = v
			}
			for k, v := range override {
				env[k] = v
			}
			setEnv(t, env)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
