// Package jobs provides scheduled background tasks for the order system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the marketplace.
//
// # Available Jobs
//
// 1. OutboxRelayJob - Runs every second to publish staged domain events to the broker in commit order
// 2. StaleOrderEscalationJob - Runs every thirty seconds to flag marketplace orders no driver has claimed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(outbox, publisher, escalateHandler, waitingTTL, logger)
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
// - The relay job publishes in sequence order and stops a batch at the first broker error
// - Replays after a crash are possible; consumers deduplicate on the message sequence number
// - Failed job starts will stop any already running jobs
package jobs
