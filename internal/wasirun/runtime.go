// Package wasirun executes wasm-compiled command-line programs natively.
//
// A CLI built for GOOS=wasip1 can be run under wazero with an argument vector
// assembled from a URL query string, reproducing what the browser host would
// feed it without opening a browser.
package wasirun

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
	"go.uber.org/zap"
)

// Runtime manages the wazero runtime lifecycle. Create one per process; it
// caches compiled modules so repeat runs skip compilation.
type Runtime struct {
	runtime wazero.Runtime

	// Compiled module cache (key: module name/path).
	modules sync.Map // map[string]*CompiledModule

	config *Config
	logger *zap.Logger

	closeOnce sync.Once
	closed    chan struct{}
}

// Config holds runtime configuration.
type Config struct {
	// On-disk compilation cache directory. Empty means in-memory only.
	CacheDir string

	// Per-run execution timeout. Zero disables the timeout.
	Timeout time.Duration
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		CacheDir: "",
		Timeout:  30 * time.Second,
	}
}

// CompiledModule wraps a wazero.CompiledModule with metadata.
type CompiledModule struct {
	Module wazero.CompiledModule

	Name      string
	SizeBytes int64

	// Compilation timestamp.
	CompiledAt int64
}

// NewRuntime creates and initializes a wazero runtime with WASI available to
// guest modules.
func NewRuntime(ctx context.Context, logger *zap.Logger, config *Config) (*Runtime, error) {
	if config == nil {
		config = DefaultConfig()
	}

	// CloseOnContextDone lets a context deadline interrupt a running guest.
	rcfg := wazero.NewRuntimeConfig().WithCloseOnContextDone(true)

	if config.CacheDir != "" {
		cache, err := wazero.NewCompilationCacheWithDir(config.CacheDir)
		if err != nil {
			return nil, fmt.Errorf("failed to open compilation cache at %s: %w", config.CacheDir, err)
		}
		rcfg = rcfg.WithCompilationCache(cache)
	}

	r := wazero.NewRuntimeWithConfig(ctx, rcfg)

	if _, err := wasi_snapshot_preview1.Instantiate(ctx, r); err != nil {
		_ = r.Close(ctx)
		return nil, fmt.Errorf("failed to instantiate WASI host module: %w", err)
	}

	runtime := &Runtime{
		runtime: r,
		config:  config,
		logger:  logger.With(zap.String("component", "wasi-runtime")),
		closed:  make(chan struct{}),
	}

	runtime.logger.Info("WASI runtime initialized",
		zap.String("cache_dir", config.CacheDir),
		zap.Duration("timeout", config.Timeout),
	)

	return runtime, nil
}

// Close gracefully shuts down the runtime. Safe to call multiple times.
func (r *Runtime) Close(ctx context.Context) error {
	var err error
	r.closeOnce.Do(func() {
		r.logger.Info("Shutting down WASI runtime")

		// Closes compiled modules too.
		err = r.runtime.Close(ctx)

		close(r.closed)
	})
	return err
}

// IsClosed reports whether the runtime has been closed.
func (r *Runtime) IsClosed() bool {
	select {
	case <-r.closed:
		return true
	default:
		return false
	}
}

func (r *Runtime) getCompiledModule(name string) (*CompiledModule, bool) {
	if val, ok := r.modules.Load(name); ok {
		if mod, ok := val.(*CompiledModule); ok {
			return mod, true
		}
	}
	return nil, false
}

func (r *Runtime) storeCompiledModule(module *CompiledModule) {
	r.modules.Store(module.Name, module)
}
