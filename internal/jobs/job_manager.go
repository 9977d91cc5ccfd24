package jobs

import (
	"fmt"

	"go.uber.org/zap"

	"dispatch/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	mapResizeJob *MapResizeJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(surface ports.MapSurface, log *zap.Logger) *JobManager {
	return &JobManager{
		mapResizeJob: NewMapResizeJob(surface, log),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.mapResizeJob.Start(); err != nil {
		return fmt.Errorf("failed to start map resize job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.mapResizeJob.Stop()
}
