package wasirun

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/sys"
	"go.uber.org/zap"
)

// Compile compiles wasm bytecode, reusing the cache when the name was seen
// before.
func (r *Runtime) Compile(ctx context.Context, name string, wasmBytes []byte) (*CompiledModule, error) {
	if cached, ok := r.getCompiledModule(name); ok {
		r.logger.Debug("Module cache hit", zap.String("module", name))
		return cached, nil
	}

	r.logger.Info("Compiling wasm module",
		zap.String("module", name),
		zap.Int("size_bytes", len(wasmBytes)),
	)

	startTime := time.Now()

	compiled, err := r.runtime.CompileModule(ctx, wasmBytes)
	if err != nil {
		return nil, &CompilationError{
			ModuleName: name,
			Err:        err,
		}
	}

	module := &CompiledModule{
		Module:     compiled,
		Name:       name,
		SizeBytes:  int64(len(wasmBytes)),
		CompiledAt: time.Now().Unix(),
	}
	r.storeCompiledModule(module)

	r.logger.Info("Module compiled",
		zap.String("module", name),
		zap.Duration("duration", time.Since(startTime)),
	)

	return module, nil
}

// CompileFile compiles a wasm module from a file, keyed by its path.
func (r *Runtime) CompileFile(ctx context.Context, path string) (*CompiledModule, error) {
	if cached, ok := r.getCompiledModule(path); ok {
		r.logger.Debug("Module cache hit", zap.String("module", path))
		return cached, nil
	}

	wasmBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read module %s: %w", path, err)
	}
	return r.Compile(ctx, path, wasmBytes)
}

// Invocation describes one guest run: the argument vector the guest sees and
// where its stdio goes.
type Invocation struct {
	// Argv0 is the program name the guest observes. Defaults to the
	// module name.
	Argv0 string

	// Args is the argument vector, without the program name.
	Args []string

	// Env holds guest environment variables.
	Env map[string]string

	// Stdout and Stderr receive guest output. Defaults: os.Stdout and
	// os.Stderr.
	Stdout io.Writer
	Stderr io.Writer

	// Stdin feeds the guest. Nil means no input.
	Stdin io.Reader
}

// Run instantiates the module as a WASI command and executes it to
// completion. A non-zero guest exit comes back as *GuestExitError; a run past
// the configured timeout comes back as *TimeoutError.
func (r *Runtime) Run(ctx context.Context, module *CompiledModule, inv Invocation) error {
	if r.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.config.Timeout)
		defer cancel()
	}

	argv0 := inv.Argv0
	if argv0 == "" {
		argv0 = module.Name
	}
	stdout := inv.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := inv.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	// Anonymous instance name so the same module can run repeatedly.
	cfg := wazero.NewModuleConfig().
		WithName("").
		WithArgs(append([]string{argv0}, inv.Args...)...).
		WithStdout(stdout).
		WithStderr(stderr).
		WithRandSource(rand.Reader).
		WithSysWalltime().
		WithSysNanotime()
	if inv.Stdin != nil {
		cfg = cfg.WithStdin(inv.Stdin)
	}
	for _, k := range sortedKeys(inv.Env) {
		cfg = cfg.WithEnv(k, inv.Env[k])
	}

	r.logger.Info("Running wasm module",
		zap.String("module", module.Name),
		zap.Strings("args", inv.Args),
	)

	// InstantiateModule runs the WASI _start function to completion.
	mod, err := r.runtime.InstantiateModule(ctx, module.Module, cfg)
	if mod != nil {
		defer mod.Close(context.WithoutCancel(ctx))
	}
	if err != nil {
		var exitErr *sys.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.ExitCode() == 0 {
				return nil
			}
			return &GuestExitError{
				ModuleName: module.Name,
				Code:       exitErr.ExitCode(),
			}
		}
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return &TimeoutError{Duration: r.config.Timeout}
		}
		return &InstantiationError{
			ModuleName: module.Name,
			Err:        err,
		}
	}

	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
