package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ratepush/internal/adapters"
	"ratepush/internal/adapters/cache"
	"ratepush/internal/adapters/httpclient"
	"ratepush/internal/adapters/notion"
	"ratepush/internal/api"
	"ratepush/internal/config"
	httpserver "ratepush/internal/platform/http"
	"ratepush/internal/push"
	"ratepush/internal/push/handler"

	"github.com/sirupsen/logrus"
)

// Run wires the application components, starts HTTP server and scheduler.
func Run() error {
	appCfg, err := initConfigAndLogger()
	if err != nil {
		return err
	}

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	service, pageIDCache, err := buildService(ctx, appCfg)
	if err != nil {
		return err
	}
	defer pageIDCache.Close()

	// Scheduler fires the daily sync
	scheduler := push.NewScheduler(service, appCfg.Scheduler.Cron)
	defer func() {
		if shutDownErr := scheduler.Shutdown(); shutDownErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", shutDownErr)
		}
	}()
	if startErr := scheduler.Start(ctx); startErr != nil {
		logrus.WithError(startErr).Error("Failed to start scheduler")
		return startErr
	}
	logrus.Info("✅ Scheduler activation successful")

	// Handlers and router
	syncHandler := handler.NewSyncHandler(service)
	router := api.NewRouter(syncHandler)

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}

// RunOnce executes a single sync and exits: the mode used by CI and
// manual invocations.
func RunOnce() error {
	appCfg, err := initConfigAndLogger()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	service, pageIDCache, err := buildService(ctx, appCfg)
	if err != nil {
		return err
	}
	defer pageIDCache.Close()

	report, err := service.RunOnce(ctx)
	if err != nil {
		logrus.WithError(err).Errorf("Sync run %s failed", report.RunID)
		return err
	}
	logrus.Infof("Sync run %s finished: %d created, %d updated, %d failed for %s",
		report.RunID, report.Created, report.Updated, report.Failed, report.FeedDate)
	return nil
}

func initConfigAndLogger() (*config.AppConfig, error) {
	appCfg, err := config.Init()
	if err != nil {
		return nil, err
	}

	logrus.SetOutput(os.Stdout)
	if parsedLvl, parseErr := logrus.ParseLevel(appCfg.Logging.Level); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	logrus.Info("✅ Config initialization successful")
	return appCfg, nil
}

// buildService assembles the pipeline: feed client, Notion stores,
// page-ID cache.
func buildService(ctx context.Context, appCfg *config.AppConfig) (*push.Service, adapters.PageIDCache, error) {
	httpTimeout := time.Duration(appCfg.HTTPClient.TimeoutSeconds) * time.Second
	if httpTimeout <= 0 {
		httpTimeout = 30 * time.Second
	}
	baseHTTPClient := &http.Client{Timeout: httpTimeout}

	feedClient := httpclient.NewFeedClient(baseHTTPClient, appCfg.Feed.URLs())

	notionClient := notion.NewClient(baseHTTPClient, appCfg.Notion.BaseURL, appCfg.Notion.Version, appCfg.Notion.Token)
	stores := []adapters.PageStore{notion.NewLatestStore(notionClient, appCfg.Notion.DatabaseID)}
	if appCfg.Notion.HistoryDatabaseID != "" {
		stores = append(stores, notion.NewHistoryStore(notionClient, appCfg.Notion.HistoryDatabaseID))
	}

	pageIDCache, err := cache.NewPageIDCache(appCfg.Cache.MaxItems)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create page id cache: %w", err)
	}

	allow := push.ParseCurrencyFilter(appCfg.Feed.CurrencyFilter)
	service := push.NewService(ctx, feedClient, stores, pageIDCache, allow)
	return service, pageIDCache, nil
}
