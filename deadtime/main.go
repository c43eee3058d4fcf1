package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	sqlx "github.com/jmoiron/sqlx"
	deadtime "github.com/next-exp/deadtime_go/pkg"
	"github.com/next-exp/deadtime_go/pkg/hdf5io"
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
	os.Exit(run())
}

func run() int {
	configFilename := flag.String("config", "", "Configuration file path")
	listRuns := flag.Int("list", 0, "List the last N runs stored in the database and exit")
	flag.Parse()

	var err error
	configuration, err = deadtime.LoadConfiguration(*configFilename)
	if err != nil {
		message := fmt.Errorf("Error reading configuration file: %w", err)
		logger.Error(message.Error())
		return 1
	}
	deadtime.SetLogger(logger)

	VerbosityLevel = configuration.Verbosity
	if VerbosityLevel > 0 {
		message := fmt.Sprintf("Reading configuration file: %s", *configFilename)
		logger.Info(message, "main")
		printConfiguration(configuration, logger)
	}

	ctx := context.Background()

	var store *deadtime.RunStore
	if !configuration.NoDB {
		dbConn, err := deadtime.ConnectToDatabase(configuration.User, configuration.Passwd, configuration.Host, configuration.DBName)
		if err != nil {
			message := fmt.Errorf("Error connection to database: %w", err)
			logger.Error(message.Error())
			return 1
		}
		defer dbConn.Close()
		store, err = openRunStore(ctx, dbConn)
		if err != nil {
			logger.Error(err.Error())
			return 1
		}
	}

	if *listRuns > 0 {
		if store == nil {
			logger.Error("cannot list runs with no_db set")
			return 1
		}
		if err := printRuns(ctx, store, *listRuns); err != nil {
			logger.Error(err.Error())
			return 1
		}
		return 0
	}

	start := time.Now()
	if err := process(ctx, configuration, store); err != nil {
		logger.Error(err.Error())
		return 1
	}
	if VerbosityLevel > 0 {
		message := fmt.Sprintf("Total time: %d ms", time.Since(start).Milliseconds())
		logger.Info(message, "main")
	}
	return 0
}

func openRunStore(ctx context.Context, dbConn *sqlx.DB) (*deadtime.RunStore, error) {
	store := deadtime.NewRunStore(dbConn)
	store.Verbosity = VerbosityLevel
	if err := store.EnsureSchema(ctx); err != nil {
		return nil, err
	}
	return store, nil
}

func process(ctx context.Context, config deadtime.Configuration, store *deadtime.RunStore) error {
	events, err := hdf5io.ReadEvents(config.FileIn)
	if err != nil {
		return fmt.Errorf("error reading events: %w", err)
	}
	if VerbosityLevel > 0 {
		message := fmt.Sprintf("Number of events: %d", len(events.Time))
		logger.Info(message, "main")
	}

	opts := deadtime.Options{
		Paralyzable:       config.Paralyzable,
		DtSigma:           config.DtSigma,
		Seed:              config.Seed,
		ReturnDiagnostics: config.WriteDiagnostics,
	}
	if config.BackgroundFile != "" {
		bkg, err := hdf5io.ReadEvents(config.BackgroundFile)
		if err != nil {
			return fmt.Errorf("error reading background events: %w", err)
		}
		opts.Background = bkg.Time
		if VerbosityLevel > 0 {
			message := fmt.Sprintf("Number of background events: %d", len(bkg.Time))
			logger.Info(message, "main")
		}
	}

	filtered, result, err := deadtime.FilterEventList(events, config.DeadTime, opts)
	if err != nil {
		return fmt.Errorf("error filtering events: %w", err)
	}
	message := fmt.Sprintf("Events retained: %d/%d (dead fraction %.4f), background retained: %d/%d",
		len(result.Events), result.SourceIn, result.DeadFraction(), result.BackgroundOut, result.BackgroundIn)
	logger.Info(message, "main")

	if err := writeOutput(config, filtered, result, opts); err != nil {
		return err
	}

	if store != nil {
		id, err := store.SaveRun(ctx, deadtime.NewRunRecord(config.FileIn, config.DeadTime, opts, result))
		if err != nil {
			return err
		}
		if VerbosityLevel > 0 {
			logger.Info(fmt.Sprintf("Run stored with id %d", id), "main")
		}
	}
	return nil
}

func writeOutput(config deadtime.Configuration, filtered *deadtime.EventList, result *deadtime.Result, opts deadtime.Options) error {
	writer, err := hdf5io.NewWriter(config.FileOut)
	if err != nil {
		return fmt.Errorf("error creating output: %w", err)
	}
	if err := writer.WriteEvents(filtered); err != nil {
		writer.Close()
		return fmt.Errorf("error writing events: %w", err)
	}
	if result.Diagnostics != nil {
		if err := writer.WriteDiagnostics(result.Diagnostics, config.DeadTime, opts); err != nil {
			writer.Close()
			return fmt.Errorf("error writing diagnostics: %w", err)
		}
	}
	return writer.Close()
}

func printRuns(ctx context.Context, store *deadtime.RunStore, limit int) error {
	runs, err := store.ListRuns(ctx, limit)
	if err != nil {
		return err
	}
	for _, run := range runs {
		model := "non-paralyzable"
		if run.Paralyzable {
			model = "paralyzable"
		}
		fmt.Printf("%d\t%s\t%s\tdt=%g\tsigma=%g\t%d/%d\t%s\n", run.ID, run.Created.Format(time.RFC3339),
			model, run.DeadTime, run.DtSigma, run.SourceOut, run.SourceIn, run.FileIn)
	}
	return nil
}
