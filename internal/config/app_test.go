package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// setRequiredEnv fills in the minimum the validator demands.
func setRequiredEnv(t *testing.T) {
	t.Setenv("NOTION_API_TOKEN", "secret-token")
	t.Setenv("NOTION_DATABASE_ID", "db-latest")
	t.Setenv("RATES_JSON_URL", "https://example.com/latest.json")
}

// unsetenv clears a variable for the duration of the test; t.Setenv
// registers the restore, os.Unsetenv does the clearing.
func unsetenv(t *testing.T, key string) {
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestInit_MissingToken(t *testing.T) {
	setRequiredEnv(t)
	unsetenv(t, "NOTION_API_TOKEN")

	_, err := Init()
	require.Error(t, err)
	require.Contains(t, err.Error(), "NOTION_API_TOKEN")
}

func TestInit_MissingDatabaseID(t *testing.T) {
	setRequiredEnv(t)
	unsetenv(t, "NOTION_DATABASE_ID")

	_, err := Init()
	require.Error(t, err)
	require.Contains(t, err.Error(), "NOTION_DATABASE_ID")
}

func TestInit_MissingFeedURL(t *testing.T) {
	setRequiredEnv(t)
	unsetenv(t, "RATES_JSON_URL")
	unsetenv(t, "PAGES_RATES_URL")
	unsetenv(t, "RAW_RATES_URL")

	_, err := Init()
	require.Error(t, err)
	require.Contains(t, err.Error(), "RATES_JSON_URL")
}

func TestInit_BindsEnvValues(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("NOTION_HISTORY_DATABASE_ID", "db-history")
	t.Setenv("PAGES_RATES_URL", "https://pages.example.com/latest.json")
	t.Setenv("RAW_RATES_URL", "https://raw.example.com/latest.json")
	t.Setenv("CURRENCY_FILTER", "usd,eur")

	cfg, err := Init()
	require.NoError(t, err)
	require.Equal(t, "secret-token", cfg.Notion.Token)
	require.Equal(t, "db-latest", cfg.Notion.DatabaseID)
	require.Equal(t, "db-history", cfg.Notion.HistoryDatabaseID)
	require.Equal(t, "usd,eur", cfg.Feed.CurrencyFilter)
	require.Equal(t, []string{
		"https://example.com/latest.json",
		"https://pages.example.com/latest.json",
		"https://raw.example.com/latest.json",
	}, cfg.Feed.URLs())
}

func TestInit_DefaultCurrencyFilterIsUSD(t *testing.T) {
	setRequiredEnv(t)
	unsetenv(t, "CURRENCY_FILTER")

	cfg, err := Init()
	require.NoError(t, err)
	require.Equal(t, "USD", cfg.Feed.CurrencyFilter)
}

func TestInit_ExplicitlyEmptyCurrencyFilterMeansAllowAll(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CURRENCY_FILTER", "")

	cfg, err := Init()
	require.NoError(t, err)
	require.Empty(t, cfg.Feed.CurrencyFilter, "empty filter must survive as empty, not fall back to the USD default")
}

func TestInit_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Init()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.HTTPServer.Port)
	require.Equal(t, 30, cfg.HTTPClient.TimeoutSeconds)
	require.Equal(t, "0 7 * * *", cfg.Scheduler.Cron)
	require.Equal(t, "https://api.notion.com", cfg.Notion.BaseURL)
	require.Equal(t, "2022-06-28", cfg.Notion.Version)
	require.EqualValues(t, 1024, cfg.Cache.MaxItems)
}
