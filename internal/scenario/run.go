package scenario

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/hackebrot/go-event-loop/internal/fib"
	"github.com/hackebrot/go-event-loop/internal/loop"
	"github.com/hackebrot/go-event-loop/pkg/scheduler"
)

// ErrUnexpectedOrder is returned when a scenario's invocation order differs
// from its expectation.
var ErrUnexpectedOrder = errors.New("unexpected invocation order")

// Invocation records one task execution.
type Invocation struct {
	Tick  uint64
	Queue scheduler.Queue
	Name  string
}

// Result is the outcome of running a scenario.
type Result struct {
	Scenario    string
	Invocations []Invocation
	Ticks       int

	// Pending counts tasks still queued when the run stopped.
	Pending int
}

// Order returns the names of the invoked items in execution order.
func (r *Result) Order() []string {
	order := make([]string, len(r.Invocations))
	for i, inv := range r.Invocations {
		order[i] = inv.Name
	}
	return order
}

// Run executes the scenario on a fresh loop configured with opts.
//
// The result is returned even when err is non-nil, covering whatever ran
// before the failure.
func (s *Scenario) Run(ctx context.Context, opts ...loop.Option) (*Result, error) {
	r := &runner{
		loop:   loop.New(opts...),
		result: &Result{Scenario: s.Name},
	}

	for i := range s.Items {
		if err := r.enqueue(&s.Items[i]); err != nil {
			return r.result, err
		}
	}

	err := r.run(ctx, s)
	r.result.Pending = r.loop.PendingTasksCount()
	if err != nil {
		return r.result, fmt.Errorf("run scenario %q: %w", s.Name, err)
	}

	if s.Expect != nil && !slices.Equal(r.result.Order(), s.Expect) {
		return r.result, fmt.Errorf("scenario %q: %w: got %v, want %v", s.Name, ErrUnexpectedOrder, r.result.Order(), s.Expect)
	}
	return r.result, nil
}

type runner struct {
	loop   *loop.Loop
	result *Result
}

func (r *runner) run(ctx context.Context, s *Scenario) error {
	if s.Ticks > 0 {
		for range s.Ticks {
			if err := ctx.Err(); err != nil {
				return err
			}
			r.result.Ticks++
			if err := r.loop.Tick(); err != nil {
				return err
			}
		}
		return nil
	}

	maxTicks := s.MaxTicks
	if maxTicks == 0 {
		maxTicks = DefaultMaxTicks
	}
	ticks, err := r.loop.RunUntilIdle(ctx, maxTicks)
	r.result.Ticks = ticks
	return err
}

func (r *runner) enqueue(it *Item) error {
	return r.loop.Enqueue(it.queue(), &itemTask{item: it, runner: r})
}

// itemTask adapts a scenario item to scheduler.Task.
type itemTask struct {
	item   *Item
	runner *runner
}

func (t *itemTask) ID() string {
	return t.item.Name
}

func (t *itemTask) Execute() error {
	t.runner.result.Invocations = append(t.runner.result.Invocations, Invocation{
		Tick:  t.runner.loop.Ticks(),
		Queue: t.item.queue(),
		Name:  t.item.Name,
	})

	if t.item.Panic != "" {
		panic(t.item.Panic)
	}

	for i := range t.item.Then {
		if err := t.runner.enqueue(&t.item.Then[i]); err != nil {
			return err
		}
	}

	if t.item.Fib != nil {
		if err := fib.NewTask(t.item.Name, *t.item.Fib, nil).Execute(); err != nil {
			return err
		}
	}

	if t.item.Fail != "" {
		return errors.New(t.item.Fail)
	}
	return nil
}
