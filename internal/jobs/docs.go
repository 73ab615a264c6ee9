// Package jobs provides scheduled background tasks for the dishes and orders service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. CollectionReportJob - logs how many dishes and orders are stored and how
// the orders are spread across the lifecycle statuses
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(listDishesHandler, listOrdersHandler, "@every 1m", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The schedule accepts standard five-field cron expressions and descriptors
// such as "@hourly" or "@every 30s". An empty schedule disables the job.
//
// # Error Handling
//
// Jobs only read committed state. A failed run is logged and the next run
// starts from scratch.
package jobs
