package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

type Config struct {
	LocalesDir       string
	LocaleFilePrefix string
	DefaultLocale    string
	DatabaseURL      string
	LogLevel         string
	LogFormat        string
}

// Load charge la configuration depuis les variables d'environnement (et un
// fichier .env facultatif) et la valide.
func Load() (*Config, error) {
	// .env est optionnel lorsque les variables sont fournies par l'environnement (Docker, CI, etc.).
	_ = godotenv.Load()

	cfg := &Config{
		LocalesDir:       os.Getenv("LOCALES_DIR"),
		LocaleFilePrefix: envOr("LOCALE_FILE_PREFIX", "stock_"),
		DefaultLocale:    envOr("DEFAULT_LOCALE", "en"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		LogLevel:         envOr("LOG_LEVEL", "info"),
		LogFormat:        envOr("LOG_FORMAT", "console"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// PersistenceEnabled indique si une base de données est configurée.
func (c *Config) PersistenceEnabled() bool {
	return c.DatabaseURL != ""
}

// validate applique toutes les règles sur la configuration chargée.
func (c *Config) validate() error {
	if _, err := language.Parse(c.DefaultLocale); err != nil {
		return fmt.Errorf("config: DEFAULT_LOCALE %q n'est pas une étiquette de langue: %w", c.DefaultLocale, err)
	}

	if c.LocalesDir != "" {
		info, err := os.Stat(c.LocalesDir)
		if err != nil {
			return fmt.Errorf("config: LOCALES_DIR invalide (%q): %w", c.LocalesDir, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("config: LOCALES_DIR %q n'est pas un répertoire", c.LocalesDir)
		}
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("config: LOG_LEVEL %q doit valoir debug, info, warn ou error", c.LogLevel)
	}

	switch strings.ToLower(c.LogFormat) {
	case "console", "json":
	default:
		return fmt.Errorf("config: LOG_FORMAT %q doit valoir console ou json", c.LogFormat)
	}

	c.DatabaseURL = strings.TrimSpace(c.DatabaseURL)
	if c.DatabaseURL == "" {
		return nil
	}
	// URL postgres:// ou forme clé=valeur, comme pgxpool.New.
	if _, err := pgxpool.ParseConfig(c.DatabaseURL); err != nil {
		return fmt.Errorf("config: DATABASE_URL invalide: %w", err)
	}

	return nil
}
