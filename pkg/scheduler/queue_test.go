package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQueue(t *testing.T) {
	for _, q := range Queues() {
		got, err := ParseQueue(q.String())
		require.NoError(t, err)
		assert.Equal(t, q, got)
	}

	_, err := ParseQueue("microtasks")
	assert.ErrorIs(t, err, ErrUnknownQueue)
}

func TestPhases(t *testing.T) {
	assert.Equal(t, []Queue{QueueTimers, QueuePending, QueueIdlePrepare, QueuePoll, QueueCheck, QueueClosing}, Phases())

	for _, q := range Queues() {
		assert.Equal(t, q != QueuePriorityImmediate && q != QueuePriorityDeferred, q.IsPhase(), q.String())
	}
}

func TestQueueString(t *testing.T) {
	assert.Equal(t, "idle-prepare", QueueIdlePrepare.String())
	assert.Equal(t, "queue(9)", Queue(9).String())
	assert.False(t, QueueNone.Valid())
	assert.False(t, QueueNone.IsPhase())
	assert.Equal(t, "none", QueueNone.String())
	assert.Len(t, Queues(), QueueCount)
}

type namedTask struct{}

func (namedTask) Execute() error { return nil }
func (namedTask) ID() string     { return "named" }

type pointerTask struct{ runs int }

func (p *pointerTask) Execute() error {
	p.runs++
	return nil
}

func TestValidateTask(t *testing.T) {
	assert.ErrorIs(t, ValidateTask(nil), ErrInvalidTask)
	assert.ErrorIs(t, ValidateTask(TaskFunc(nil)), ErrInvalidTask)
	assert.ErrorIs(t, ValidateTask((*pointerTask)(nil)), ErrInvalidTask)
	assert.NoError(t, ValidateTask(&pointerTask{}))
	assert.NoError(t, ValidateTask(TaskFunc(func() {})))
	assert.NoError(t, ValidateTask(namedTask{}))

	assert.Equal(t, "named", TaskID(namedTask{}))
	assert.Empty(t, TaskID(TaskFunc(func() {})))
}

func TestTaskErrorMessage(t *testing.T) {
	err := &TaskError{Queue: QueuePoll, Tick: 3, TaskID: "a", Err: ErrInvalidTask}
	assert.Equal(t, "tick 3: poll: task a: task is not invocable", err.Error())
	assert.ErrorIs(t, err, ErrInvalidTask)

	err.TaskID = ""
	assert.Equal(t, "tick 3: poll: task is not invocable", err.Error())
}
