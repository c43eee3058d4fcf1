package deadtime

import (
	"context"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	sqlx "github.com/jmoiron/sqlx" //make alias name the package to sqlx
)

func ConnectToDatabase(user string, pass string, host string, dbname string) (*sqlx.DB, error) {
	port := "3306"
	dbURI := fmt.Sprintf("%s:%s@(%s:%s)/%s?parseTime=true", user, pass, host, port, dbname)
	db, err := sqlx.Connect("mysql", dbURI)
	return db, err
}

// RunRecord is the bookkeeping entry of one filtering run.
type RunRecord struct {
	ID            int64     `db:"RunID"`
	FileIn        string    `db:"FileIn"`
	DeadTime      float64   `db:"DeadTime"`
	Paralyzable   bool      `db:"Paralyzable"`
	DtSigma       float64   `db:"DtSigma"`
	SourceIn      int       `db:"SourceIn"`
	SourceOut     int       `db:"SourceOut"`
	BackgroundIn  int       `db:"BackgroundIn"`
	BackgroundOut int       `db:"BackgroundOut"`
	Created       time.Time `db:"Created"`
}

func NewRunRecord(fileIn string, deadTime float64, opts Options, result *Result) RunRecord {
	return RunRecord{
		FileIn:        fileIn,
		DeadTime:      deadTime,
		Paralyzable:   opts.Paralyzable,
		DtSigma:       opts.DtSigma,
		SourceIn:      result.SourceIn,
		SourceOut:     len(result.Events),
		BackgroundIn:  result.BackgroundIn,
		BackgroundOut: result.BackgroundOut,
		Created:       time.Now().UTC(),
	}
}

type RunStore struct {
	db        *sqlx.DB
	Verbosity int
}

func NewRunStore(db *sqlx.DB) *RunStore {
	return &RunStore{db: db}
}

const runsSchema = `CREATE TABLE IF NOT EXISTS DeadTimeRuns (
	RunID BIGINT AUTO_INCREMENT PRIMARY KEY,
	FileIn VARCHAR(512) NOT NULL,
	DeadTime DOUBLE NOT NULL,
	Paralyzable BOOLEAN NOT NULL,
	DtSigma DOUBLE NOT NULL,
	SourceIn INT NOT NULL,
	SourceOut INT NOT NULL,
	BackgroundIn INT NOT NULL,
	BackgroundOut INT NOT NULL,
	Created DATETIME NOT NULL
)`

const runColumns = "RunID, FileIn, DeadTime, Paralyzable, DtSigma, SourceIn, SourceOut, BackgroundIn, BackgroundOut, Created"

func (s *RunStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, runsSchema); err != nil {
		return fmt.Errorf("error creating DeadTimeRuns table: %w", err)
	}
	return nil
}

// SaveRun inserts the record and returns its new ID.
func (s *RunStore) SaveRun(ctx context.Context, run RunRecord) (int64, error) {
	query := `INSERT INTO DeadTimeRuns
		(FileIn, DeadTime, Paralyzable, DtSigma, SourceIn, SourceOut, BackgroundIn, BackgroundOut, Created)
		VALUES (:FileIn, :DeadTime, :Paralyzable, :DtSigma, :SourceIn, :SourceOut, :BackgroundIn, :BackgroundOut, :Created)`
	if s.Verbosity > 0 {
		logger.Info(fmt.Sprintf("Saving run for %s", run.FileIn), "database")
	}
	res, err := s.db.NamedExecContext(ctx, query, run)
	if err != nil {
		return 0, fmt.Errorf("error inserting run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("error reading run id: %w", err)
	}
	if s.Verbosity > 2 {
		logger.Info(fmt.Sprintf("Run %d saved", id), "database")
	}
	return id, nil
}

func (s *RunStore) GetRun(ctx context.Context, id int64) (RunRecord, error) {
	var run RunRecord
	query := "SELECT " + runColumns + " FROM DeadTimeRuns WHERE RunID = ?"
	if err := s.db.GetContext(ctx, &run, query, id); err != nil {
		return RunRecord{}, fmt.Errorf("error querying run %d: %w", id, err)
	}
	return run, nil
}

// ListRuns returns the most recent runs first.
func (s *RunStore) ListRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	runs := make([]RunRecord, 0)
	query := "SELECT " + runColumns + " FROM DeadTimeRuns ORDER BY RunID DESC LIMIT ?"
	if err := s.db.SelectContext(ctx, &runs, query, limit); err != nil {
		return nil, fmt.Errorf("error querying runs: %w", err)
	}
	return runs, nil
}
