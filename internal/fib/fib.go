// Package fib provides CPU-bound work items that compute Fibonacci numbers.
package fib

import (
	"fmt"
	"log/slog"

	"github.com/hackebrot/go-fibonacci"
)

// Task computes the nth Fibonacci number using a specified strategy.
type Task struct {
	id       string
	n        int
	strategy fibonacci.Strategy
}

// Execute computes the Fibonacci number and logs the result.
func (t *Task) Execute() error {
	if t.n < 0 {
		return fmt.Errorf("computation failed: n=%d is negative", t.n)
	}

	slog.Debug("starting computation", "task_id", t.id, "n", t.n)
	r := t.strategy.Compute(t.n)
	slog.Info("computation complete", "task_id", t.id, "n", t.n, "result", r)

	return nil
}

// ID returns the task identifier.
func (t *Task) ID() string {
	return t.id
}

// NewTask creates a new Fibonacci computation task.
// A nil strategy falls back to the recursive implementation.
func NewTask(id string, n int, strategy fibonacci.Strategy) *Task {
	if strategy == nil {
		strategy = fibonacci.NewRecursive()
	}
	return &Task{
		id:       id,
		n:        n,
		strategy: strategy,
	}
}
