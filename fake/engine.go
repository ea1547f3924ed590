// File: fake/engine.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Asynchronous completion engine over the fake transport. Begin issues an
// operation and schedules its completion on a worker pool, optionally after
// a fixed delay, giving tests and demos realistic out-of-order completions.

package fake

import (
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/momentics/hioload-req/api"
	"github.com/momentics/hioload-req/control"
	"github.com/momentics/hioload-req/internal/concurrency"
	"github.com/momentics/hioload-req/request"
)

// ErrEngineClosed completes handles stranded by an engine shutdown.
var ErrEngineClosed = errors.New("completion engine closed")

// EngineConfig bundles the engine's tunables.
type EngineConfig struct {
	// Workers is the completion pool size. <= 0 means runtime.NumCPU().
	Workers int
	// QueueCapacity bounds scheduled, not yet executed completions.
	QueueCapacity int
	// CompletionDelay is slept before a scheduled completion is signaled.
	CompletionDelay time.Duration
	// Logger receives completion events at debug level; nil means no logging.
	Logger *zap.Logger
	// Control, when set, drives hot resizing: the engine re-reads
	// "engine.workers" on every reload.
	Control *control.ConfigStore
	// Probes, when set, gets an "engine" state probe registered.
	Probes *control.DebugProbes
}

// DefaultEngineConfig returns a config suited for unit tests: immediate
// completions, small pool.
func DefaultEngineConfig() *EngineConfig {
	return &EngineConfig{
		Workers:       2,
		QueueCapacity: 256,
	}
}

// Engine drives handle completions asynchronously.
type Engine struct {
	tr     *Transport
	disp   *concurrency.Dispatcher
	log    *zap.Logger
	delay  time.Duration
	cfg    *EngineConfig
	stopCh chan struct{}
	once   sync.Once
}

// NewEngine builds an engine with its own fake Transport.
func NewEngine(cfg *EngineConfig) *Engine {
	if cfg == nil {
		cfg = DefaultEngineConfig()
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	e := &Engine{
		tr:     NewTransport(),
		disp:   concurrency.NewDispatcher(cfg.Workers, cfg.QueueCapacity),
		log:    log,
		delay:  cfg.CompletionDelay,
		cfg:    cfg,
		stopCh: make(chan struct{}),
	}
	if cfg.Control != nil {
		cfg.Control.OnReload(func() {
			n := cfg.Control.GetInt("engine.workers", e.disp.NumWorkers())
			e.log.Debug("engine resize", zap.Int("workers", n))
			e.disp.Resize(n)
		})
	}
	if cfg.Probes != nil {
		cfg.Probes.RegisterProbe("engine", func() any {
			return e.disp.Stats()
		})
	}
	return e
}

// Transport exposes the engine's fake transport for direct manipulation.
func (e *Engine) Transport() *Transport { return e.tr }

// Begin issues an operation completing asynchronously with stat and returns
// its request handle. If the completion pool cannot accept the task the
// handle is signaled inline instead.
func (e *Engine) Begin(stat api.Status) *request.Request {
	h := e.tr.Issue()
	e.schedule(h, func() {
		e.tr.Signal(h, stat)
		e.log.Debug("operation signaled", zap.Uint64("handle", uint64(h)))
	})
	return request.NewWithHandle(e.tr, h)
}

// BeginFailed issues an operation completing asynchronously with a transport
// failure.
func (e *Engine) BeginFailed(cause error) *request.Request {
	h := e.tr.Issue()
	e.schedule(h, func() {
		e.tr.Fail(h, cause)
		e.log.Debug("operation failed", zap.Uint64("handle", uint64(h)))
	})
	return request.NewWithHandle(e.tr, h)
}

func (e *Engine) schedule(h api.Handle, complete func()) {
	task := complete
	if e.delay > 0 {
		task = func() {
			// Interruptible delay: a closing engine must not hold a worker
			// hostage; the stranded handle is failed from Close instead.
			timer := time.NewTimer(e.delay)
			defer timer.Stop()
			select {
			case <-timer.C:
			case <-e.stopCh:
				return
			}
			complete()
		}
	}
	if err := e.disp.Submit(task); err != nil {
		// Pool closed or saturated: complete inline rather than deadlock a
		// future Wait on a handle nobody will ever signal.
		e.log.Warn("inline completion", zap.Uint64("handle", uint64(h)), zap.Error(err))
		complete()
	}
}

// Close stops the completion pool and fails every still-pending handle, so
// waiters blocked on them unblock with a transport error. Workers are joined
// before Close returns.
func (e *Engine) Close() {
	e.once.Do(func() {
		close(e.stopCh)
		e.disp.Close()
		if e.cfg.Probes != nil {
			e.cfg.Probes.RemoveProbe("engine")
		}
		e.tr.mu.Lock()
		stranded := make([]api.Handle, 0, len(e.tr.pending))
		for h := range e.tr.pending {
			stranded = append(stranded, h)
		}
		e.tr.mu.Unlock()
		for _, h := range stranded {
			e.tr.Fail(h, ErrEngineClosed)
		}
	})
}
