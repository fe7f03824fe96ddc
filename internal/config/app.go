package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTPServer struct {
	Port string `mapstructure:"port"`
}

type HTTPClient struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

type Scheduler struct {
	Cron string `mapstructure:"cron"`
}

type Logging struct {
	Level string `mapstructure:"level"`
}

type Cache struct {
	MaxItems int64 `mapstructure:"max_items"`
}

type Notion struct {
	BaseURL           string `mapstructure:"base_url"`
	Version           string `mapstructure:"version"`
	Token             string `mapstructure:"token"`
	DatabaseID        string `mapstructure:"database_id"`
	HistoryDatabaseID string `mapstructure:"history_database_id"`
}

type Feed struct {
	URL            string `mapstructure:"url"`
	PagesURL       string `mapstructure:"pages_url"`
	RawURL         string `mapstructure:"raw_url"`
	CurrencyFilter string `mapstructure:"currency_filter"`
}

// URLs returns the candidate feed URLs in fallback order, empty entries
// removed.
func (f Feed) URLs() []string {
	var urls []string
	for _, u := range []string{f.URL, f.PagesURL, f.RawURL} {
		if u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}

type AppConfig struct {
	HTTPServer HTTPServer `mapstructure:"http_server"`
	HTTPClient HTTPClient `mapstructure:"http_client"`
	Scheduler  Scheduler  `mapstructure:"scheduler"`
	Logging    Logging    `mapstructure:"logging"`
	Cache      Cache      `mapstructure:"cache"`
	Notion     Notion     `mapstructure:"notion"`
	Feed       Feed       `mapstructure:"feed"`
}

func Init() (*AppConfig, error) {
	var cfg AppConfig

	// .env is optional: in CI and scheduled environments everything comes
	// from the process environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	// An explicitly empty CURRENCY_FILTER means "push every currency";
	// without this viper treats empty env values as unset and the "USD"
	// default would win.
	viper.AllowEmptyEnv(true)

	viper.SetConfigFile("config.yaml")
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	viper.SetDefault("http_server.port", "8080")
	viper.SetDefault("http_client.timeout_seconds", 30)
	viper.SetDefault("scheduler.cron", "0 7 * * *")
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("cache.max_items", 1024)
	viper.SetDefault("notion.base_url", "https://api.notion.com")
	viper.SetDefault("notion.version", "2022-06-28")
	viper.SetDefault("feed.currency_filter", "USD")

	// notion env vars
	_ = viper.BindEnv("notion.token", "NOTION_API_TOKEN")
	_ = viper.BindEnv("notion.database_id", "NOTION_DATABASE_ID")
	_ = viper.BindEnv("notion.history_database_id", "NOTION_HISTORY_DATABASE_ID")

	// feed env vars
	_ = viper.BindEnv("feed.url", "RATES_JSON_URL")
	_ = viper.BindEnv("feed.pages_url", "PAGES_RATES_URL")
	_ = viper.BindEnv("feed.raw_url", "RAW_RATES_URL")
	_ = viper.BindEnv("feed.currency_filter", "CURRENCY_FILTER")

	// http client env vars
	_ = viper.BindEnv("http_client.timeout_seconds", "HTTP_CLIENT_TIMEOUT_SECONDS")

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *AppConfig) validate() error {
	if cfg.Notion.Token == "" {
		return errors.New("missing env NOTION_API_TOKEN")
	}
	if cfg.Notion.DatabaseID == "" {
		return errors.New("missing env NOTION_DATABASE_ID")
	}
	if len(cfg.Feed.URLs()) == 0 {
		return errors.New("missing env RATES_JSON_URL (no feed URL configured)")
	}
	return nil
}
