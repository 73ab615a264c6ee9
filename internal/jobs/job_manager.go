package jobs

import (
	"fmt"
	"log/slog"

	"grubdash/internal/core/application/usecases/queries"
)

// Job is a scheduled task controlled by the JobManager.
type Job interface {
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	jobs    []Job
	started []Job
}

// NewJobManager creates a new job manager with all required jobs.
// An empty reportSchedule leaves the collection report disabled.
func NewJobManager(
	listDishes queries.ListDishesQueryHandler,
	listOrders queries.ListOrdersQueryHandler,
	reportSchedule string,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{}
	if reportSchedule != "" {
		jm.jobs = append(jm.jobs, NewCollectionReportJob(listDishes, listOrders, reportSchedule, logger))
	}
	return jm
}

// StartAll starts all scheduled jobs.
// If a job fails to start, the jobs already started are stopped again.
func (jm *JobManager) StartAll() error {
	for _, job := range jm.jobs {
		if err := job.Start(); err != nil {
			jm.StopAll()
			return fmt.Errorf("failed to start %T: %w", job, err)
		}
		jm.started = append(jm.started, job)
	}
	return nil
}

// StopAll stops all started jobs gracefully.
func (jm *JobManager) StopAll() {
	for i := len(jm.started) - 1; i >= 0; i-- {
		jm.started[i].Stop()
	}
	jm.started = nil
}

// Len returns the number of configured jobs.
func (jm *JobManager) Len() int {
	return len(jm.jobs)
}
