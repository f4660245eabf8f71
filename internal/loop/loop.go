// Package loop implements a deterministic, single-threaded phase scheduler.
//
// Each tick runs the phases timers, pending, idle-prepare, poll, check and
// closing in that order. Before every phase and after every single phase task
// the two priority queues are flushed: priority-immediate to empty, then
// priority-deferred to empty.
//
// A Loop is not safe for concurrent use. Tasks run synchronously on the
// goroutine that called Tick.
package loop

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hackebrot/go-event-loop/pkg/scheduler"
)

// Loop is a phase scheduler owning eight FIFO queues.
type Loop struct {
	queues        [scheduler.QueueCount]taskQueue
	observer      scheduler.Observer
	logger        *slog.Logger
	isolateFaults bool
	ticks         uint64
}

// New creates a Loop with all queues empty.
func New(opts ...Option) *Loop {
	l := &Loop{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Enqueue appends a task to the end of the named queue.
func (l *Loop) Enqueue(queue scheduler.Queue, task scheduler.Task) error {
	if !queue.Valid() {
		return fmt.Errorf("enqueue: %w: %d", scheduler.ErrUnknownQueue, int(queue))
	}
	if err := scheduler.ValidateTask(task); err != nil {
		return fmt.Errorf("enqueue into %s: %w", queue, err)
	}
	l.queues[queue].push(task)
	return nil
}

// EnqueueImmediate appends fn to the priority-immediate queue.
func (l *Loop) EnqueueImmediate(fn func()) error {
	return l.enqueueFunc(scheduler.QueuePriorityImmediate, fn)
}

// EnqueueDeferred appends fn to the priority-deferred queue.
func (l *Loop) EnqueueDeferred(fn func()) error {
	return l.enqueueFunc(scheduler.QueuePriorityDeferred, fn)
}

// EnqueueTimer appends fn to the timers phase. Timers run unconditionally
// when the phase is reached.
func (l *Loop) EnqueueTimer(fn func()) error {
	return l.enqueueFunc(scheduler.QueueTimers, fn)
}

func (l *Loop) EnqueuePending(fn func()) error {
	return l.enqueueFunc(scheduler.QueuePending, fn)
}

func (l *Loop) EnqueueIdlePrepare(fn func()) error {
	return l.enqueueFunc(scheduler.QueueIdlePrepare, fn)
}

func (l *Loop) EnqueuePoll(fn func()) error {
	return l.enqueueFunc(scheduler.QueuePoll, fn)
}

func (l *Loop) EnqueueCheck(fn func()) error {
	return l.enqueueFunc(scheduler.QueueCheck, fn)
}

func (l *Loop) EnqueueClosing(fn func()) error {
	return l.enqueueFunc(scheduler.QueueClosing, fn)
}

func (l *Loop) enqueueFunc(queue scheduler.Queue, fn func()) error {
	if fn == nil {
		return fmt.Errorf("enqueue into %s: %w", queue, scheduler.ErrInvalidTask)
	}
	return l.Enqueue(queue, scheduler.TaskFunc(fn))
}

// Tick advances the loop by one round, running every phase once in order.
//
// Unless fault isolation is enabled, the first task error aborts the tick and
// is returned as a *scheduler.TaskError, and panics propagate to the caller.
// Tasks that were not reached stay queued for later ticks.
func (l *Loop) Tick() error {
	l.ticks++
	l.logger.Debug("tick started", "tick", l.ticks, "pending_tasks", l.PendingTasksCount())
	l.emit(scheduler.Event{Kind: scheduler.EventTickStarted, Tick: l.ticks, Queue: scheduler.QueueNone})

	for _, phase := range scheduler.Phases() {
		if err := l.runPhase(phase); err != nil {
			return err
		}
	}

	l.emit(scheduler.Event{Kind: scheduler.EventTickCompleted, Tick: l.ticks, Queue: scheduler.QueueNone})
	l.logger.Debug("tick completed", "tick", l.ticks, "pending_tasks", l.PendingTasksCount())
	return nil
}

// RunUntilIdle ticks until every queue is empty and returns the number of
// ticks run. The context is checked between ticks. If work remains after
// maxTicks ticks it returns scheduler.ErrTickLimit; maxTicks <= 0 means no limit.
func (l *Loop) RunUntilIdle(ctx context.Context, maxTicks int) (int, error) {
	ticks := 0
	for l.PendingTasksCount() > 0 {
		if maxTicks > 0 && ticks >= maxTicks {
			return ticks, fmt.Errorf("after %d ticks, %d tasks pending: %w", ticks, l.PendingTasksCount(), scheduler.ErrTickLimit)
		}

		select {
		case <-ctx.Done():
			return ticks, ctx.Err()
		default:
		}

		ticks++
		if err := l.Tick(); err != nil {
			return ticks, err
		}
	}
	return ticks, nil
}

// runPhase flushes the priority queues, then drains the phase queue,
// flushing again after each task. The length is re-read every iteration so
// tasks the phase adds to itself run in the same call.
func (l *Loop) runPhase(phase scheduler.Queue) error {
	l.emit(scheduler.Event{Kind: scheduler.EventPhaseStarted, Tick: l.ticks, Queue: phase})

	if err := l.flushPriority(); err != nil {
		return err
	}

	invoked := 0
	for l.queues[phase].len() > 0 {
		if err := l.invokeNext(phase); err != nil {
			return err
		}
		invoked++

		if err := l.flushPriority(); err != nil {
			return err
		}
	}

	l.emit(scheduler.Event{Kind: scheduler.EventPhaseCompleted, Tick: l.ticks, Queue: phase, Invoked: invoked})
	return nil
}

// flushPriority drains priority-immediate to empty, then priority-deferred
// to empty. Tasks added to priority-immediate while priority-deferred drains
// wait for the next flush.
func (l *Loop) flushPriority() error {
	l.emit(scheduler.Event{Kind: scheduler.EventFlushStarted, Tick: l.ticks, Queue: scheduler.QueueNone})

	immediate, err := l.drain(scheduler.QueuePriorityImmediate)
	if err != nil {
		return err
	}
	deferred, err := l.drain(scheduler.QueuePriorityDeferred)
	if err != nil {
		return err
	}

	l.emit(scheduler.Event{Kind: scheduler.EventFlushCompleted, Tick: l.ticks, Queue: scheduler.QueueNone, Invoked: immediate + deferred})
	return nil
}

func (l *Loop) drain(queue scheduler.Queue) (int, error) {
	invoked := 0
	for l.queues[queue].len() > 0 {
		if err := l.invokeNext(queue); err != nil {
			return invoked, err
		}
		invoked++
	}
	return invoked, nil
}

// invokeNext removes the head of queue and runs it.
func (l *Loop) invokeNext(queue scheduler.Queue) error {
	task, ok := l.queues[queue].pop()
	if !ok {
		return nil
	}

	id := scheduler.TaskID(task)
	l.emit(scheduler.Event{Kind: scheduler.EventTaskInvoked, Tick: l.ticks, Queue: queue, TaskID: id})

	var err error
	if l.isolateFaults {
		err = l.executeIsolated(task)
	} else {
		err = task.Execute()
	}
	if err == nil {
		return nil
	}

	taskErr := &scheduler.TaskError{Queue: queue, Tick: l.ticks, TaskID: id, Err: err}
	l.emit(scheduler.Event{Kind: scheduler.EventTaskFailed, Tick: l.ticks, Queue: queue, TaskID: id, Err: taskErr})

	if l.isolateFaults {
		l.logger.Error("error executing task", "tick", l.ticks, "queue", queue.String(), "task_id", id, "error", err)
		return nil
	}
	return taskErr
}

// executeIsolated runs task, converting a panic into an error.
func (l *Loop) executeIsolated(task scheduler.Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r}
		}
	}()
	return task.Execute()
}

func (l *Loop) emit(e scheduler.Event) {
	if l.observer != nil {
		l.observer.Observe(e)
	}
}

// Len returns the number of tasks waiting in queue.
func (l *Loop) Len(queue scheduler.Queue) int {
	if !queue.Valid() {
		return 0
	}
	return l.queues[queue].len()
}

// PendingTasksCount returns the number of tasks waiting across all queues.
func (l *Loop) PendingTasksCount() int {
	n := 0
	for i := range l.queues {
		n += l.queues[i].len()
	}
	return n
}

// Ticks returns the number of ticks started so far.
func (l *Loop) Ticks() uint64 {
	return l.ticks
}

var _ scheduler.Scheduler = (*Loop)(nil)
