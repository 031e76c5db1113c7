// Package jobs provides scheduled background tasks for the order service.
//
// Jobs run on github.com/robfig/cron/v3 and call command handlers directly.
//
// # Available Jobs
//
// ArchiveSettledOrdersJob flags DELIVERED and CANCELLED orders that have not changed
// for the configured retention as archived, together with their audit entries and
// delivery agent mappings. Archived orders stay readable.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(archiveHandler, "@every 1h", 30*24*time.Hour, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed pass is logged and retried on the next tick. An invalid schedule or a
// non-positive retention fails StartAll.
package jobs
