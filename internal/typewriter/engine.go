package typewriter

import (
	"context"
	"log"
	"sync"
	"time"
)

// Sink receives every rendered text. SetText is called with the engine
// locked, so it must not call back into the engine.
type Sink interface {
	SetText(text string)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(text string)

func (f SinkFunc) SetText(text string) { f(text) }

// Timer is a pending scheduled step.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Option customizes an Engine.
type Option func(*Engine)

// WithScheduler replaces the wall-clock scheduler.
func WithScheduler(s Scheduler) Option {
	return func(e *Engine) {
		if s != nil {
			e.scheduler = s
		}
	}
}

// WithLogger sets the logger used for lifecycle messages.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// Engine drives a Machine from timer callbacks and pushes each rendered text
// to its sink. Steps never overlap: each one schedules the next.
type Engine struct {
	mu        sync.Mutex
	machine   *Machine
	sink      Sink
	timing    Timing
	scheduler Scheduler
	logger    *log.Logger
	pending   Timer
	started   bool
	stopped   bool
}

// New validates its inputs and returns an engine that has not started yet.
func New(phrases []string, sink Sink, timing Timing, opts ...Option) (*Engine, error) {
	if sink == nil {
		return nil, &ConfigurationError{Field: "sink", Reason: "is nil"}
	}
	if err := timing.Validate(); err != nil {
		return nil, err
	}
	machine, err := NewMachine(phrases)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		machine:   machine,
		sink:      sink,
		timing:    timing,
		scheduler: realScheduler{},
		logger:    log.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Start schedules the first step after the start delay. Calling Start again,
// or after Stop, does nothing.
func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.started || e.stopped {
		return
	}
	e.started = true
	e.logger.Printf("typewriter: starting %d phrases after %s", len(e.machine.phrases), e.timing.StartDelay)
	e.pending = e.scheduler.AfterFunc(e.timing.StartDelay, e.fire)
}

// Stop cancels the pending step. No SetText happens once Stop returns.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped {
		return
	}
	e.stopped = true
	if e.pending != nil {
		e.pending.Stop()
		e.pending = nil
	}
}

// Run starts the engine and blocks until ctx is done.
func (e *Engine) Run(ctx context.Context) error {
	e.Start()
	<-ctx.Done()
	e.Stop()
	return ctx.Err()
}

// State returns the machine snapshot.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.machine.State()
}

func (e *Engine) fire() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped {
		return
	}

	text, rendered, next := e.machine.Step(e.timing)
	if rendered {
		e.sink.SetText(text)
	}
	e.pending = e.scheduler.AfterFunc(next, e.fire)
}
