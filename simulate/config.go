package main

import (
	"fmt"

	deadtime "github.com/next-exp/deadtime_go/pkg"
	"github.com/next-exp/deadtime_go/pkg/logging"
)

func printConfiguration(config deadtime.Configuration, logger logging.Logger) {
	logger.Info(fmt.Sprintf("Rate: %g counts/s", config.Rate), "config")
	logger.Info(fmt.Sprintf("Background rate: %g counts/s", config.BackgroundRate), "config")
	logger.Info(fmt.Sprintf("Duration: %g s", config.Duration), "config")
	logger.Info(fmt.Sprintf("Dead times: %v", config.DeadTimes), "config")
	logger.Info(fmt.Sprintf("Paralyzable: %t", config.Paralyzable), "config")
	logger.Info(fmt.Sprintf("Dead time sigma: %g s", config.DtSigma), "config")
	logger.Info(fmt.Sprintf("Repetitions: %d", config.Repetitions), "config")
	logger.Info(fmt.Sprintf("Seed: %d", config.Seed), "config")
	logger.Info(fmt.Sprintf("Number of workers: %d", config.NumWorkers), "config")
	logger.Info(fmt.Sprintf("Verbosity: %d", config.Verbosity), "config")
}
