// Package jobs provides scheduled background tasks for the dispatch client.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic reconciliation the map surface needs.
//
// # Available Jobs
//
// 1. MapResizeJob - Periodically tells connected map widgets to reconcile
// their internal size with their container. Browser layout changes (sidebar
// toggles, window resizes) otherwise leave the map rendering a stale size.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(surface, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		logger.Fatal("failed to start jobs", zap.Error(err))
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Surface errors are logged and ignored: size reconciliation is a visual
// concern, and the next tick retries anyway.
package jobs
