package config_test

import (
	"testing"

	"khata-ledger/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "₹", cfg.Ledger.CurrencySymbol)
	assert.Equal(t, "en-IN", cfg.Ledger.Locale)
	assert.True(t, cfg.Ledger.SeedDemo)
	assert.Equal(t, "KhataBook Business Report", cfg.Report.Title)
	assert.Equal(t, 40, cfg.Report.PageLines)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("KHATA_APP_ENV", "production")
	t.Setenv("KHATA_LOG_FORMAT", "json")
	t.Setenv("KHATA_LEDGER_SEED_DEMO", "false")
	t.Setenv("KHATA_REPORT_PAGE_LINES", "25")
	t.Setenv("KHATA_LEDGER_CURRENCY_SYMBOL", "$")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "json", cfg.Log.Format)
	assert.False(t, cfg.Ledger.SeedDemo)
	assert.Equal(t, 25, cfg.Report.PageLines)
	assert.Equal(t, "$", cfg.Ledger.CurrencySymbol)
}

func TestLoad_RejectsBadValues(t *testing.T) {
	t.Setenv("KHATA_REPORT_PAGE_LINES", "0")
	_, err := config.Load()
	assert.ErrorContains(t, err, "report.page_lines")
}

func TestValidate_LogFormat(t *testing.T) {
	cfg := &config.Config{
		Log:    config.LogConfig{Format: "xml"},
		Report: config.ReportConfig{PageLines: 10},
	}
	assert.ErrorContains(t, cfg.Validate(), "log.format")
}
