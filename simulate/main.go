package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	deadtime "github.com/next-exp/deadtime_go/pkg"
	"github.com/next-exp/deadtime_go/pkg/logging"
)

var configuration deadtime.Configuration

var (
	logger         logging.Logger
	VerbosityLevel int
)

func init() {
	logger = logging.New(os.Stdout, os.Stderr)
}

func main() {
	configFilename := flag.String("config", "", "Configuration file path")
	paralyzable := flag.Bool("paralyzable", false, "Use the paralyzable model")
	workers := flag.Int("workers", 0, "Number of workers, overrides the configuration")
	flag.Parse()

	var err error
	configuration = deadtime.DefaultConfiguration()
	if *configFilename != "" {
		configuration, err = deadtime.LoadConfiguration(*configFilename)
		if err != nil {
			message := fmt.Errorf("Error reading configuration file: %w", err)
			logger.Error(message.Error())
			os.Exit(1)
		}
	}
	if *paralyzable {
		configuration.Paralyzable = true
	}
	if *workers > 0 {
		configuration.NumWorkers = *workers
	}
	deadtime.SetLogger(logger)

	VerbosityLevel = configuration.Verbosity
	if VerbosityLevel > 0 {
		printConfiguration(configuration, logger)
	}

	start := time.Now()
	results := runSimulations(configuration, makeJobs(configuration))

	fmt.Println("dead_time\trep\tincident\tdetected\tmeasured_rate\texpected_rate\tdead_fraction")
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			message := fmt.Errorf("simulation %d failed: %w", r.Job.ID, r.Err)
			logger.Error(message.Error())
			failed++
			continue
		}
		fmt.Printf("%g\t%d\t%d\t%d\t%.3f\t%.3f\t%.4f\n", r.Job.DeadTime, r.Job.Repetition,
			r.Incident, r.Detected, r.MeasuredRate, r.ExpectedRate, r.DeadFraction)
	}

	duration := time.Since(start)
	if VerbosityLevel > 0 {
		logger.Info(fmt.Sprintf("Total time: %d ms", duration.Milliseconds()), "main")
	}
	if failed > 0 {
		os.Exit(1)
	}
}
