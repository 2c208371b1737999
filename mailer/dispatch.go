package mailer

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Job func(ctx context.Context) error

// Dispatcher runs notification jobs. Submit never returns an error and
// never blocks the caller; a job failure is logged by the dispatcher and
// treated as unobservable by the submitting workflow.
type Dispatcher interface {
	Submit(job Job)
}

func NewDispatcher(cfg *Config, logger *zap.SugaredLogger, lifecycle fx.Lifecycle) Dispatcher {
	if !cfg.DeferSends {
		return NewInlineDispatcher(logger)
	}

	dispatcher := NewQueuedDispatcher(cfg.QueueSize, logger)
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			dispatcher.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return dispatcher.Stop(ctx)
		},
	})
	return dispatcher
}

func NewInlineDispatcher(logger *zap.SugaredLogger) Dispatcher {
	return &inlineDispatcher{logger: logger}
}

type inlineDispatcher struct {
	logger *zap.SugaredLogger
}

func (d *inlineDispatcher) Submit(job Job) {
	if err := job(context.Background()); err != nil {
		d.logger.Errorw("notification job failed", zap.Error(err))
	}
}

func NewQueuedDispatcher(queueSize int, logger *zap.SugaredLogger) *QueuedDispatcher {
	return &QueuedDispatcher{
		jobs:   make(chan Job, queueSize),
		done:   make(chan struct{}),
		logger: logger,
	}
}

// QueuedDispatcher runs jobs on a single background worker. Submitted jobs
// are dropped when the queue is saturated so that a slow mail server can
// never back-pressure request handling.
type QueuedDispatcher struct {
	jobs   chan Job
	done   chan struct{}
	logger *zap.SugaredLogger
}

var _ Dispatcher = &QueuedDispatcher{}

func (d *QueuedDispatcher) Submit(job Job) {
	select {
	case d.jobs <- job:
	default:
		d.logger.Warnw("notification queue is full, dropping job")
	}
}

func (d *QueuedDispatcher) Start() {
	go func() {
		defer close(d.done)
		for job := range d.jobs {
			if err := job(context.Background()); err != nil {
				d.logger.Errorw("notification job failed", zap.Error(err))
			}
		}
	}()
}

// Stop closes the queue and waits for the worker to drain pending jobs.
func (d *QueuedDispatcher) Stop(ctx context.Context) error {
	close(d.jobs)
	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
