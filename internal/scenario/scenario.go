// Package scenario loads scripted workloads for the event loop from YAML
// files and runs them, recording the order in which tasks execute.
//
// A scenario lists items, each bound to a named queue. When an item runs it
// records itself, enqueues its "then" children, performs its optional
// workload and finally fails if asked to.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	yaml "go.yaml.in/yaml/v3"

	"github.com/hackebrot/go-event-loop/pkg/scheduler"
)

// DefaultMaxTicks bounds run-until-idle scenarios.
const DefaultMaxTicks = 100

// Scenario describes a workload and, optionally, the order it must produce.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`

	// Ticks runs exactly this many ticks. When zero the scenario runs until
	// every queue is empty, bounded by MaxTicks.
	Ticks    int `yaml:"ticks,omitempty"`
	MaxTicks int `yaml:"max_ticks,omitempty"`

	Items  []Item   `yaml:"items"`
	Expect []string `yaml:"expect,omitempty"`
}

// Item is a task enqueued into Queue, either up front or by its parent.
type Item struct {
	Name  string `yaml:"name"`
	Queue string `yaml:"queue"`

	// Fib computes the nth Fibonacci number when set. Negative values fail.
	Fib *int `yaml:"fib,omitempty"`

	// Fail makes the item return an error with this message.
	Fail string `yaml:"fail,omitempty"`

	// Panic makes the item panic with this value.
	Panic string `yaml:"panic,omitempty"`

	Then []Item `yaml:"then,omitempty"`
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a YAML scenario. Unknown fields are rejected.
func Parse(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("parse scenario: empty document")
		}
		return nil, fmt.Errorf("parse scenario: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that every item names a known queue and that tick limits
// are consistent.
func (s *Scenario) Validate() error {
	var errs []error

	if s.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if s.Ticks < 0 {
		errs = append(errs, fmt.Errorf("ticks must not be negative, got %d", s.Ticks))
	}
	if s.MaxTicks < 0 {
		errs = append(errs, fmt.Errorf("max_ticks must not be negative, got %d", s.MaxTicks))
	}
	if s.Ticks > 0 && s.MaxTicks > 0 {
		errs = append(errs, errors.New("ticks and max_ticks are mutually exclusive"))
	}
	if len(s.Items) == 0 {
		errs = append(errs, errors.New("at least one item is required"))
	}

	for i := range s.Items {
		errs = append(errs, s.Items[i].validate(fmt.Sprintf("items[%d]", i))...)
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid scenario %q: %w", s.Name, err)
	}
	return nil
}

func (it *Item) validate(path string) []error {
	var errs []error

	if it.Name == "" {
		errs = append(errs, fmt.Errorf("%s: name is required", path))
	}
	if _, err := scheduler.ParseQueue(it.Queue); err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", path, err))
	}
	if it.Fail != "" && it.Panic != "" {
		errs = append(errs, fmt.Errorf("%s: fail and panic are mutually exclusive", path))
	}

	for i := range it.Then {
		errs = append(errs, it.Then[i].validate(fmt.Sprintf("%s.then[%d]", path, i))...)
	}
	return errs
}

// queue returns the item's parsed queue. Validate must have succeeded.
func (it *Item) queue() scheduler.Queue {
	q, _ := scheduler.ParseQueue(it.Queue)
	return q
}
