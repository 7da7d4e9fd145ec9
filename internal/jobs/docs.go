// Package jobs provides the scheduled background work of the dispatch service.
//
// Jobs are driven by github.com/robfig/cron/v3 with a seconds field in the
// schedule. Every job implements Job and is registered on a JobManager under
// a name and a cron spec.
//
// # Available Jobs
//
// 1. EventRetentionJob - deletes realtime events older than the retention horizon
// 2. AutoDispatchJob - runs auto-assign for ready delivery orders without a courier
//
// # Usage
//
//	manager := jobs.NewJobManager(logger)
//	if err := manager.Register("event_retention", "0 */10 * * * *", retentionJob); err != nil {
//		return err
//	}
//	manager.Start()
//	defer manager.Stop(ctx)
//
// # Scheduling
//
// A run that is still in progress when its next tick fires makes that tick a
// no-op, so a slow sweep never overlaps itself. A panic inside a job is
// recovered and logged.
//
// # Error Handling
//
//   - Negative auto-assign outcomes (no couriers, already assigned) are logged at debug
//   - Infrastructure errors are logged at error level and counted in dispatch_job_runs_total
//   - A failure for one order never stops the rest of the batch
package jobs
