package jobs

import (
	"context"
	"log/slog"
	"time"

	"orderlifecycle/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

type archiveSettledOrdersHandler interface {
	Handle(ctx context.Context, cmd commands.ArchiveSettledOrdersCommand) (commands.ArchiveSettledOrdersResult, error)
}

// ArchiveSettledOrdersJob periodically archives delivered and cancelled orders
// that have not changed for longer than the retention period.
type ArchiveSettledOrdersJob struct {
	handler   archiveSettledOrdersHandler
	schedule  string
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewArchiveSettledOrdersJob accepts any robfig/cron schedule, descriptors like "@every 1h" included.
func NewArchiveSettledOrdersJob(
	handler archiveSettledOrdersHandler,
	schedule string,
	retention time.Duration,
	logger *slog.Logger,
) *ArchiveSettledOrdersJob {
	return &ArchiveSettledOrdersJob{
		handler:   handler,
		schedule:  schedule,
		retention: retention,
		cron:      cron.New(),
		logger:    logger.With("component", "archive_settled_orders_job"),
	}
}

// Start validates the retention and schedules the run.
func (j *ArchiveSettledOrdersJob) Start() error {
	if _, err := commands.NewArchiveSettledOrdersCommand(j.retention); err != nil {
		return err
	}

	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Archive job started",
		"schedule", j.schedule, "retention", j.retention.String())
	return nil
}

// Run performs one archival pass. Failures are logged and retried on the next tick.
func (j *ArchiveSettledOrdersJob) Run(ctx context.Context) {
	cmd, err := commands.NewArchiveSettledOrdersCommand(j.retention)
	if err != nil {
		j.logger.ErrorContext(ctx, "Archive job misconfigured", "error", err)
		return
	}

	result, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Archive job failed", "error", err)
		return
	}

	if result.Orders > 0 {
		j.logger.InfoContext(ctx, "Archived settled orders",
			"orders", result.Orders, "entries", result.Entries, "mappings", result.Mappings)
	}
}

// Stop waits for a running pass to finish.
func (j *ArchiveSettledOrdersJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Archive job stopped")
}
