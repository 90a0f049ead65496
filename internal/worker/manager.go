package worker

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

const defaultShutdownTimeout = 30 * time.Second

// WorkerManager runs registered workers and stops them together
type WorkerManager struct {
	workers         []Worker
	logger          *zap.Logger
	wg              sync.WaitGroup
	mu              sync.Mutex
	shutdownTimeout time.Duration

	// running holds workers whose Start has not returned; failures holds
	// the error each failed worker exited with.
	running  map[string]struct{}
	failures map[string]error
}

func NewWorkerManager(logger *zap.Logger) *WorkerManager {
	return &WorkerManager{
		workers:         make([]Worker, 0),
		logger:          logger,
		shutdownTimeout: defaultShutdownTimeout,
		running:         make(map[string]struct{}),
		failures:        make(map[string]error),
	}
}

func (m *WorkerManager) Register(w Worker) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.workers = append(m.workers, w)
	m.logger.Info("Worker registered", zap.String("name", w.Name()))
}

// Start launches every worker in its own goroutine and returns immediately.
func (m *WorkerManager) Start(ctx context.Context) error {
	m.mu.Lock()
	workers := make([]Worker, len(m.workers))
	copy(workers, m.workers)
	m.mu.Unlock()

	if len(workers) == 0 {
		return fmt.Errorf("no workers registered")
	}

	m.logger.Info("Starting workers", zap.Int("count", len(workers)))

	for _, worker := range workers {
		m.mu.Lock()
		m.running[worker.Name()] = struct{}{}
		delete(m.failures, worker.Name())
		m.mu.Unlock()

		m.wg.Add(1)
		go func(w Worker) {
			defer m.wg.Done()

			m.logger.Info("Starting worker", zap.String("name", w.Name()))
			err := w.Start(ctx)

			m.mu.Lock()
			delete(m.running, w.Name())
			if err != nil && ctx.Err() == nil {
				m.failures[w.Name()] = err
			}
			m.mu.Unlock()

			if err != nil && ctx.Err() == nil {
				m.logger.Error("Worker failed",
					zap.String("name", w.Name()),
					zap.Error(err))
			}
		}(worker)
	}

	return nil
}

// Failures returns the error each worker exited with, keyed by worker name.
// Workers that are still running or exited cleanly are absent.
func (m *WorkerManager) Failures() map[string]error {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[string]error, len(m.failures))
	for name, err := range m.failures {
		out[name] = err
	}
	return out
}

// Running lists the workers whose Start has not returned, sorted by name.
func (m *WorkerManager) Running() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	names := make([]string, 0, len(m.running))
	for name := range m.running {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Stop signals every worker and waits up to the shutdown timeout. The
// returned error joins stop failures, worker failures and, on timeout, the
// names of the workers that did not exit.
func (m *WorkerManager) Stop() error {
	m.mu.Lock()
	workers := make([]Worker, len(m.workers))
	copy(workers, m.workers)
	m.mu.Unlock()

	m.logger.Info("Stopping workers", zap.Int("count", len(workers)))

	var errs []error
	for _, worker := range workers {
		if err := worker.Stop(); err != nil {
			m.logger.Error("Failed to stop worker",
				zap.String("name", worker.Name()),
				zap.Error(err))
			errs = append(errs, fmt.Errorf("stop %s: %w", worker.Name(), err))
		}
	}

	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		m.logger.Info("All workers stopped")
	case <-time.After(m.shutdownTimeout):
		stuck := m.Running()
		m.logger.Warn("Workers shutdown timed out, an import may not have completed",
			zap.Duration("timeout", m.shutdownTimeout),
			zap.Strings("running", stuck))
		errs = append(errs, fmt.Errorf("workers shutdown timed out after %v: %v", m.shutdownTimeout, stuck))
	}

	failures := m.Failures()
	names := make([]string, 0, len(failures))
	for name := range failures {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		errs = append(errs, fmt.Errorf("worker %s: %w", name, failures[name]))
	}

	return errors.Join(errs...)
}
