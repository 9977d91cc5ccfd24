package jobs

import (
	"context"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"dispatch/internal/core/ports"
)

// resizeSchedule fires every two seconds; frequent enough that a resized
// widget never stays distorted noticeably long.
const resizeSchedule = "*/2 * * * * *"

// MapResizeJob periodically asks connected map widgets to reconcile their
// size with their container. Skips ticks while no widget is connected.
type MapResizeJob struct {
	surface ports.MapSurface
	cron    *cron.Cron
	log     *zap.Logger
}

// NewMapResizeJob creates a job that drives size reconciliation on the surface.
func NewMapResizeJob(surface ports.MapSurface, log *zap.Logger) *MapResizeJob {
	return &MapResizeJob{
		surface: surface,
		cron:    cron.New(cron.WithSeconds()),
		log:     log.With(zap.String("component", "map_resize_job")),
	}
}

// Start begins the periodic size reconciliation.
func (j *MapResizeJob) Start() error {
	_, err := j.cron.AddFunc(resizeSchedule, func() {
		if !j.surface.Ready() {
			return
		}

		if err := j.surface.InvalidateSize(context.Background()); err != nil {
			j.log.Warn("map resize tick failed", zap.Error(err))
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.log.Info("map resize job started")
	return nil
}

// Stop stops the job.
func (j *MapResizeJob) Stop() {
	j.cron.Stop()
	j.log.Info("map resize job stopped")
}
