package main

import (
	"flag"
	"os"

	"ratepush/internal/app"

	"github.com/sirupsen/logrus"
)

// @title ratepush API
// @version 1.0
// @description Pushes daily AUD exchange rates from the published JSON feed into Notion databases.
// @BasePath /api/v1
func main() {
	once := flag.Bool("once", false, "run a single sync and exit")
	flag.Parse()

	if *once {
		if err := app.RunOnce(); err != nil {
			logrus.WithError(err).Error("Sync failed")
			os.Exit(1)
		}
		return
	}

	if err := app.Run(); err != nil {
		logrus.WithError(err).Error("Application stopped with error")
		os.Exit(1)
	}
}
