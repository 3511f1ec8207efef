// Package jobs provides scheduled background tasks for the pizzeria system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the order workflow.
//
// # Available Jobs
//
// 1. OrderStatsJob - Runs every minute to log the order count per status
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(orderStatsHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Query failures are logged and the job keeps its schedule; a transient
// database error must not stop the census.
package jobs
