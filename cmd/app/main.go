// Filter Explorer: browse image filters and adjust their inputs live.
package main

import (
	"context"
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/theme"
	_ "github.com/gogpu/gg/gpu"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"filter-explorer/internal/config"
	"filter-explorer/internal/filters"
	"filter-explorer/internal/filters/opencv"
	"filter-explorer/internal/gui"
	"filter-explorer/internal/headless"
)

const (
	AppName    = "Filter Explorer"
	AppID      = "com.example.filter-explorer"
	AppVersion = "1.0.0"
)

func main() {
	fs := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	config.RegisterFlags(fs)
	_ = fs.Parse(os.Args[1:])

	cfg, err := config.LoadConfig(fs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(2)
	}

	logger := initLogger(cfg.Debug)
	logger.WithFields(logrus.Fields{
		"version":    AppVersion,
		"debug_mode": cfg.Debug,
	}).Info("Starting " + AppName)
	logger.WithFields(cfg.Fields()).Debug("Configuration loaded")

	filters.SetLogger(logger.WithField("component", "filters"))
	opencv.Register()

	if cfg.Headless {
		ctx, cancel := context.WithTimeout(context.Background(), headless.DefaultTimeout)
		_, err := headless.Run(ctx, cfg, logger)
		cancel()
		if err != nil {
			logger.WithError(err).Error("Headless render failed")
			os.Exit(1)
		}
		return
	}

	myApp := app.NewWithID(AppID)
	myApp.SetIcon(theme.ColorPaletteIcon())
	myApp.Settings().SetTheme(theme.DefaultTheme())

	mainApp := gui.NewApplication(myApp, cfg, logger)
	mainApp.ShowAndRun()

	logger.Info("Application shutting down gracefully")
}

// initLogger initializes the logger with appropriate level
func initLogger(debugMode bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	if debugMode {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
		logger.Debug("Debug logging enabled")
	} else {
		logger.SetLevel(logrus.InfoLevel)
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	return logger
}
