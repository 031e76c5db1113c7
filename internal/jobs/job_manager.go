package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// JobManager starts and stops the background jobs together.
type JobManager struct {
	archiveJob *ArchiveSettledOrdersJob
}

func NewJobManager(
	archiveHandler archiveSettledOrdersHandler,
	archiveSchedule string,
	archiveRetention time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		archiveJob: NewArchiveSettledOrdersJob(archiveHandler, archiveSchedule, archiveRetention, logger),
	}
}

// StartAll returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.archiveJob.Start(); err != nil {
		return fmt.Errorf("failed to start archive job: %w", err)
	}

	return nil
}

func (jm *JobManager) StopAll() {
	jm.archiveJob.Stop()
}
