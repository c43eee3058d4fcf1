package main

import (
	"testing"

	deadtime "github.com/next-exp/deadtime_go/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfiguration() deadtime.Configuration {
	config := deadtime.DefaultConfiguration()
	config.Rate = 1000
	config.Duration = 50
	config.DeadTimes = []float64{5e-4, 1e-3}
	config.Repetitions = 2
	config.Seed = 17
	return config
}

func TestMakeJobs(t *testing.T) {
	jobs := makeJobs(testConfiguration())
	require.Len(t, jobs, 4)
	for i, job := range jobs {
		assert.Equal(t, i, job.ID)
	}
	assert.Equal(t, 1e-3, jobs[3].DeadTime)
	assert.Equal(t, 1, jobs[3].Repetition)
}

func TestRunSimulationsIsIndependentOfWorkers(t *testing.T) {
	config := testConfiguration()
	config.BackgroundRate = 100
	config.DtSigma = 1e-4

	config.NumWorkers = 1
	serial := runSimulations(config, makeJobs(config))
	config.NumWorkers = 4
	parallel := runSimulations(config, makeJobs(config))

	require.Len(t, serial, 4)
	assert.Equal(t, serial, parallel)
	for _, r := range serial {
		require.NoError(t, r.Err)
		assert.InEpsilon(t, r.ExpectedRate, r.MeasuredRate, 0.05)
	}
}

func TestSimulateJobParalyzable(t *testing.T) {
	config := testConfiguration()
	config.Paralyzable = true
	r := simulateJob(config, SimJob{ID: 0, DeadTime: 1e-3})
	require.NoError(t, r.Err)
	assert.Less(t, r.Detected, r.Incident)
	assert.InEpsilon(t, r.ExpectedRate, r.MeasuredRate, 0.05)
	assert.Greater(t, r.DeadFraction, 0.5)
}

func TestSimulateJobError(t *testing.T) {
	config := testConfiguration()
	config.Rate = 0
	r := simulateJob(config, SimJob{ID: 0, DeadTime: 1e-3})
	assert.Error(t, r.Err)
}
