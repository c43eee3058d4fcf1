package main

import (
	"fmt"

	deadtime "github.com/next-exp/deadtime_go/pkg"
	"github.com/next-exp/deadtime_go/pkg/logging"
)

func printConfiguration(config deadtime.Configuration, logger logging.Logger) {
	logger.Info(fmt.Sprintf("File in: %s", config.FileIn), "config")
	logger.Info(fmt.Sprintf("File out: %s", config.FileOut), "config")
	logger.Info(fmt.Sprintf("Background file: %s", config.BackgroundFile), "config")
	logger.Info(fmt.Sprintf("Dead time: %g s", config.DeadTime), "config")
	logger.Info(fmt.Sprintf("Paralyzable: %t", config.Paralyzable), "config")
	logger.Info(fmt.Sprintf("Dead time sigma: %g s", config.DtSigma), "config")
	logger.Info(fmt.Sprintf("Seed: %d", config.Seed), "config")
	logger.Info(fmt.Sprintf("Write diagnostics: %t", config.WriteDiagnostics), "config")
	logger.Info(fmt.Sprintf("No DB: %t", config.NoDB), "config")
	logger.Info(fmt.Sprintf("Host: %s", config.Host), "config")
	logger.Info(fmt.Sprintf("DB name: %s", config.DBName), "config")
	logger.Info(fmt.Sprintf("Verbosity: %d", config.Verbosity), "config")
}
