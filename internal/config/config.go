package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the process configuration.
type Config struct {
	App    AppConfig
	Log    LogConfig
	Ledger LedgerConfig
	Report ReportConfig
}

type AppConfig struct {
	Env string // development, production
}

type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // console, json
	Output string // stdout, stderr, or file path
}

type LedgerConfig struct {
	CurrencySymbol string
	Locale         string
	SeedDemo       bool   // load the embedded demo customers, suppliers and items at startup
	SeedFile       string // YAML seed file loaded instead of the embedded demo
}

type ReportConfig struct {
	Title     string
	PageLines int // lines per page before a new page is begun
}

// Load reads configuration.
// Priority (highest to lowest):
//  1. Environment variables with KHATA_ prefix (e.g. KHATA_LEDGER_LOCALE)
//  2. config.yaml in the working directory
//  3. Built-in defaults
//
// Call godotenv.Load before Load so .env values are visible as environment.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("KHATA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Env: v.GetString("app.env"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		Ledger: LedgerConfig{
			CurrencySymbol: v.GetString("ledger.currency_symbol"),
			Locale:         v.GetString("ledger.locale"),
			SeedDemo:       v.GetBool("ledger.seed_demo"),
			SeedFile:       v.GetString("ledger.seed_file"),
		},
		Report: ReportConfig{
			Title:     v.GetString("report.title"),
			PageLines: v.GetInt("report.page_lines"),
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stderr")
	v.SetDefault("ledger.currency_symbol", "₹")
	v.SetDefault("ledger.locale", "en-IN")
	v.SetDefault("ledger.seed_demo", true)
	v.SetDefault("ledger.seed_file", "")
	v.SetDefault("report.title", "KhataBook Business Report")
	v.SetDefault("report.page_lines", 40)
}

// Validate checks values that would otherwise fail later at an awkward point.
func (c *Config) Validate() error {
	if c.Report.PageLines <= 0 {
		return fmt.Errorf("report.page_lines must be positive, got %d", c.Report.PageLines)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json, got %q", c.Log.Format)
	}
	return nil
}

// IsProduction reports whether the app runs in the production environment.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
