// Package jobs provides scheduled background tasks.
//
// Jobs use github.com/robfig/cron/v3 with a seconds field, so the default
// schedule "* * * * * *" fires every second. A tick is skipped while the
// previous run of the same job is still going.
//
// # Available Jobs
//
//   - OutboxRelayJob publishes stored order events to the message broker.
//
// # Usage
//
//	relay := jobs.NewOutboxRelayJob(publishHandler, cmd, cfg.OutboxSchedule, logger)
//	jobManager := jobs.NewJobManager(relay)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
