package main

import (
	"fmt"
	"math/rand/v2"
	"sort"

	deadtime "github.com/next-exp/deadtime_go/pkg"
)

type SimJob struct {
	ID         int
	DeadTime   float64
	Repetition int
}

type SimResult struct {
	Job           SimJob
	Incident      int
	Detected      int
	MeasuredRate  float64
	ExpectedRate  float64
	DeadFraction  float64
	BackgroundOut int
	Err           error
}

func makeJobs(config deadtime.Configuration) []SimJob {
	jobs := make([]SimJob, 0, len(config.DeadTimes)*config.Repetitions)
	for _, dt := range config.DeadTimes {
		for rep := 0; rep < config.Repetitions; rep++ {
			jobs = append(jobs, SimJob{ID: len(jobs), DeadTime: dt, Repetition: rep})
		}
	}
	return jobs
}

// simulateJob draws the source and background streams and filters them. The
// random stream depends only on the seed and the job ID.
func simulateJob(config deadtime.Configuration, job SimJob) SimResult {
	result := SimResult{Job: job}
	rng := rand.New(rand.NewPCG(config.Seed, uint64(job.ID)))

	events, err := deadtime.SimulatePoisson(config.Rate, 0, config.Duration, rng)
	if err != nil {
		result.Err = err
		return result
	}
	opts := deadtime.Options{
		Paralyzable: config.Paralyzable,
		DtSigma:     config.DtSigma,
		Rand:        rng,
	}
	totalRate := config.Rate
	if config.BackgroundRate > 0 {
		opts.Background, err = deadtime.SimulatePoisson(config.BackgroundRate, 0, config.Duration, rng)
		if err != nil {
			result.Err = err
			return result
		}
		totalRate += config.BackgroundRate
	}

	filtered, err := deadtime.Filter(events, job.DeadTime, opts)
	if err != nil {
		result.Err = err
		return result
	}
	result.Incident = len(events) + len(opts.Background)
	result.Detected = len(filtered.Events) + filtered.BackgroundOut
	result.BackgroundOut = filtered.BackgroundOut
	result.DeadFraction = filtered.DeadFraction()
	if config.Duration > 0 {
		result.MeasuredRate = float64(result.Detected) / config.Duration
	}
	result.ExpectedRate = deadtime.DetectedRate(job.DeadTime, totalRate, config.Paralyzable)
	return result
}

func worker(id int, config deadtime.Configuration, jobs <-chan SimJob, results chan<- SimResult) {
	for job := range jobs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					results <- SimResult{Job: job, Err: fmt.Errorf("worker %d recovered from panic: %v", id, r)}
				}
			}()
			if VerbosityLevel > 1 {
				message := fmt.Sprintf("Worker %d processing job %d", id, job.ID)
				logger.Info(message, "worker")
			}
			results <- simulateJob(config, job)
		}()
	}
}

func sendJobsToWorkers(jobList []SimJob, jobs chan<- SimJob) {
	for _, job := range jobList {
		jobs <- job
	}
	close(jobs)
}

// runSimulations spreads the jobs over config.NumWorkers workers and returns
// the results ordered by job ID.
func runSimulations(config deadtime.Configuration, jobList []SimJob) []SimResult {
	jobs := make(chan SimJob, 100)
	results := make(chan SimResult, 100)

	for w := 1; w <= config.NumWorkers; w++ {
		go worker(w, config, jobs, results)
	}
	go sendJobsToWorkers(jobList, jobs)

	collected := make([]SimResult, 0, len(jobList))
	for len(collected) < len(jobList) {
		collected = append(collected, <-results)
	}
	sort.Slice(collected, func(i, j int) bool {
		return collected[i].Job.ID < collected[j].Job.ID
	})
	return collected
}
