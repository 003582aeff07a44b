package domain

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// ErrSignalSetup is returned when the interrupt handler cannot be installed.
// It aborts the invocation before any event is written.
var ErrSignalSetup = errors.New("signal handler installation failed")

// ErrInterrupted is the cancellation cause set by an operator interrupt.
var ErrInterrupted = errors.New("interrupted")

const interruptExitCode = 130

// InterruptSource turns operator interrupts into context cancellation.
type InterruptSource interface {
	// Arm returns a context that is cancelled by the next interrupt and a
	// disarm func that must be called when the invocation ends. Interrupts
	// that arrive while nothing is armed are not carried over.
	Arm(ctx context.Context) (context.Context, context.CancelFunc, error)
}

// InterruptFunc adapts a function to InterruptSource.
type InterruptFunc func(ctx context.Context) (context.Context, context.CancelFunc, error)

// Arm implements InterruptSource.
func (f InterruptFunc) Arm(ctx context.Context) (context.Context, context.CancelFunc, error) {
	return f(ctx)
}

type signalInterrupts struct {
	once sync.Once

	mu         sync.Mutex
	generation uint64
	active     context.Context
	cancel     context.CancelCauseFunc
}

var processInterrupts = &signalInterrupts{}

// SignalInterrupts returns the process-wide SIGINT/SIGTERM source. The OS
// handler is installed on first use.
func SignalInterrupts() InterruptSource {
	return processInterrupts
}

func (s *signalInterrupts) Arm(parent context.Context) (context.Context, context.CancelFunc, error) {
	s.once.Do(s.install)

	ctx, cancel := context.WithCancelCause(parent)

	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.active = ctx
	s.cancel = cancel
	s.mu.Unlock()

	disarm := func() {
		s.mu.Lock()
		if s.generation == gen {
			s.active = nil
			s.cancel = nil
		}
		s.mu.Unlock()

		cancel(nil)
	}

	return ctx, disarm, nil
}

func (s *signalInterrupts) install() {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	go func() {
		for sig := range signals {
			s.deliver(sig)
		}
	}()
}

func (s *signalInterrupts) deliver(sig os.Signal) {
	s.mu.Lock()
	active, cancel := s.active, s.cancel
	s.mu.Unlock()

	if cancel == nil {
		slog.Debug("Ignoring interrupt outside of a run", "signal", sig)
		return
	}

	// A second interrupt while the first is still being honoured aborts the
	// process. Every event already appended is on disk.
	if active.Err() != nil {
		slog.Warn("Second interrupt received, exiting", "signal", sig)
		os.Exit(interruptExitCode)
	}

	slog.Info("Interrupt received, stopping before the next mutant", "signal", sig)
	cancel(ErrInterrupted)
}
