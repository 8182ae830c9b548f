// Package jobs provides scheduled background tasks for the fulfillment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order fulfillment.
//
// # Available Jobs
//
// 1. BacklogProcessingJob - Runs every second to drain the order backlog, one order per tick
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(processNextOrderHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The job uses the cron expression "* * * * * *" which means it runs every
// second. Priority lane orders are always taken before regular lane orders.
//
// # Error Handling
//
// - An empty backlog is the expected idle state and is not logged
// - All other errors are logged as they indicate system issues
package jobs
