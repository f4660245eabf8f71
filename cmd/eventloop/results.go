package main

import (
	"log/slog"

	"github.com/hackebrot/go-event-loop/internal/scenario"
	"github.com/hackebrot/go-event-loop/pkg/scheduler"
)

// processResults logs each invocation in execution order and a per-queue summary.
func processResults(logger *slog.Logger, res *scenario.Result) {
	var perQueue [scheduler.QueueCount]int
	for i, inv := range res.Invocations {
		perQueue[inv.Queue]++
		logger.Info(
			"task invoked",
			"seq", i+1,
			"tick", inv.Tick,
			"queue", inv.Queue.String(),
			"task_id", inv.Name,
		)
	}

	args := []any{
		"count", len(res.Invocations),
		"ticks", res.Ticks,
		"pending", res.Pending,
	}
	for _, q := range scheduler.Queues() {
		if perQueue[q] > 0 {
			args = append(args, q.String(), perQueue[q])
		}
	}

	logger.Info("scenario summary", args...)
}

// traceObserver logs scheduler events. Empty priority flushes are skipped.
type traceObserver struct {
	logger *slog.Logger
}

func newTraceObserver(logger *slog.Logger) *traceObserver {
	return &traceObserver{logger: logger}
}

func (o *traceObserver) Observe(e scheduler.Event) {
	switch e.Kind {
	case scheduler.EventFlushStarted:
		return
	case scheduler.EventFlushCompleted:
		if e.Invoked > 0 {
			o.logger.Info(e.Kind.String(), "tick", e.Tick, "invoked", e.Invoked)
		}
	case scheduler.EventTickStarted, scheduler.EventTickCompleted:
		o.logger.Info(e.Kind.String(), "tick", e.Tick)
	case scheduler.EventPhaseStarted:
		o.logger.Info(e.Kind.String(), "tick", e.Tick, "phase", e.Queue.String())
	case scheduler.EventPhaseCompleted:
		o.logger.Info(e.Kind.String(), "tick", e.Tick, "phase", e.Queue.String(), "invoked", e.Invoked)
	case scheduler.EventTaskInvoked:
		o.logger.Debug(e.Kind.String(), "tick", e.Tick, "queue", e.Queue.String(), "task_id", e.TaskID)
	case scheduler.EventTaskFailed:
		o.logger.Warn(e.Kind.String(), "tick", e.Tick, "queue", e.Queue.String(), "task_id", e.TaskID, "error", e.Err)
	}
}

var _ scheduler.Observer = (*traceObserver)(nil)
