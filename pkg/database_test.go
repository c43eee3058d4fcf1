package deadtime

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sqlx "github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*RunStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRunStore(sqlx.NewDb(db, "mysql")), mock
}

var runRowColumns = []string{"RunID", "FileIn", "DeadTime", "Paralyzable", "DtSigma",
	"SourceIn", "SourceOut", "BackgroundIn", "BackgroundOut", "Created"}

func TestNewRunRecord(t *testing.T) {
	result, err := Filter([]float64{1.1, 2, 2.2, 3, 3.2}, 0.11, Options{
		Paralyzable: true,
		Background:  []float64{1, 3.1},
	})
	require.NoError(t, err)

	run := NewRunRecord("events.h5", 0.11, Options{Paralyzable: true}, result)
	assert.Equal(t, "events.h5", run.FileIn)
	assert.True(t, run.Paralyzable)
	assert.Equal(t, 5, run.SourceIn)
	assert.Equal(t, 3, run.SourceOut)
	assert.Equal(t, 2, run.BackgroundIn)
	assert.Equal(t, 1, run.BackgroundOut)
	assert.False(t, run.Created.IsZero())
}

func TestSaveRun(t *testing.T) {
	store, mock := newMockStore(t)
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	run := RunRecord{
		FileIn:        "events.h5",
		DeadTime:      0.11,
		Paralyzable:   false,
		DtSigma:       0.001,
		SourceIn:      10,
		SourceOut:     5,
		BackgroundIn:  0,
		BackgroundOut: 0,
		Created:       created,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO DeadTimeRuns")).
		WithArgs("events.h5", 0.11, false, 0.001, 10, 5, 0, 0, created).
		WillReturnResult(sqlmock.NewResult(7, 1))

	id, err := store.SaveRun(context.Background(), run)
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchema(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS DeadTimeRuns")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, store.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAndListRuns(t *testing.T) {
	store, mock := newMockStore(t)
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM DeadTimeRuns WHERE RunID = ?")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(runRowColumns).
			AddRow(int64(3), "a.h5", 0.11, true, 0.0, 7, 4, 2, 1, created))

	run, err := store.GetRun(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), run.ID)
	assert.Equal(t, "a.h5", run.FileIn)
	assert.True(t, run.Paralyzable)
	assert.Equal(t, 4, run.SourceOut)
	assert.Equal(t, created, run.Created)

	mock.ExpectQuery(regexp.QuoteMeta("FROM DeadTimeRuns ORDER BY RunID DESC LIMIT ?")).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows(runRowColumns).
			AddRow(int64(5), "c.h5", 0.2, false, 0.0, 10, 9, 0, 0, created).
			AddRow(int64(4), "b.h5", 0.1, false, 0.01, 10, 8, 0, 0, created))

	runs, err := store.ListRuns(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, int64(5), runs[0].ID)
	assert.Equal(t, "b.h5", runs[1].FileIn)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRunError(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows(runRowColumns))

	_, err := store.GetRun(context.Background(), 1)
	assert.Error(t, err)
}
