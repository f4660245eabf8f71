package scheduler

import "reflect"

// Task represents a deferred unit of work held by one of the scheduler's queues.
type Task interface {
	// Execute runs the task and returns an error if the execution fails.
	// A task may enqueue further tasks into any queue, including the one
	// currently draining.
	Execute() error
}

// Identifier is implemented by tasks that carry a label for tracing.
type Identifier interface {
	// ID returns a unique identifier for this task (used for logging).
	ID() string
}

// TaskFunc adapts a plain function to the Task interface.
type TaskFunc func()

// Execute calls f.
func (f TaskFunc) Execute() error {
	f()
	return nil
}

// ValidateTask reports whether task can be invoked.
func ValidateTask(task Task) error {
	if task == nil {
		return ErrInvalidTask
	}
	// A typed nil passes the interface check but cannot be executed.
	v := reflect.ValueOf(task)
	switch v.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Chan, reflect.Interface, reflect.Slice:
		if v.IsNil() {
			return ErrInvalidTask
		}
	}
	return nil
}

// TaskID returns the task's label, or "" when it has none.
func TaskID(task Task) string {
	if id, ok := task.(Identifier); ok {
		return id.ID()
	}
	return ""
}
