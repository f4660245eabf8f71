package scheduler

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTask is returned when enqueuing something that cannot be invoked.
	ErrInvalidTask = errors.New("task is not invocable")

	// ErrUnknownQueue is returned for a queue outside the closed set of eight.
	ErrUnknownQueue = errors.New("unknown queue")

	// ErrTickLimit is returned when work remains after the allowed number of ticks.
	ErrTickLimit = errors.New("tick limit reached with pending tasks")
)

// TaskError wraps a failure returned by a task during a tick.
type TaskError struct {
	Queue  Queue
	Tick   uint64
	TaskID string
	Err    error
}

func (e *TaskError) Error() string {
	if e.TaskID != "" {
		return fmt.Sprintf("tick %d: %s: task %s: %v", e.Tick, e.Queue, e.TaskID, e.Err)
	}
	return fmt.Sprintf("tick %d: %s: %v", e.Tick, e.Queue, e.Err)
}

func (e *TaskError) Unwrap() error {
	return e.Err
}
