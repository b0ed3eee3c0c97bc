// Command wasirun executes a wasm-compiled CLI natively under wazero,
// optionally feeding it arguments tokenized from a URL query string — the
// same vector the browser host would produce, without opening a browser.
//
//	wasirun demo.wasm --value=3.14 -v
//	wasirun --query '?--value=3.14&-v' demo.wasm
package main

import (
	"context"
	"errors"
	"os"

	"github.com/wecli/weflag"
	"github.com/wecli/weflag/internal/config"
	"github.com/wecli/weflag/internal/wasirun"
	"github.com/wecli/weflag/pkg/urlargs"
	"go.uber.org/zap"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	cmd := weflag.New("wasirun").
		WithVersion(version).
		WithAbout("Run a wasm-compiled command-line program natively")
	cmd.Flags.String("config", "", "Path to configuration file")
	cmd.Flags.String("log-level", "", "Log level (debug, info, warn, error); overrides config")
	cmd.Flags.StringP("query", "q", "", "URL query string tokenized into guest arguments")
	cmd.Flags.String("argv0", "", "Program name the guest observes (default: module path)")

	matches := cmd.GetMatches()

	configPath, _ := matches.GetString("config")
	cfg, err := config.LoadRunnerConfig(configPath)
	if err != nil {
		// No logger yet.
		os.Stderr.WriteString("failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	logLevel := cfg.LogLevel
	if override, _ := matches.GetString("log-level"); override != "" {
		logLevel = override
	}

	var logger *zap.Logger
	if logLevel == "debug" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting wasirun",
		zap.String("version", version),
		zap.String("commit", commit),
	)

	if matches.NArg() < 1 {
		logger.Fatal("No wasm module given; usage: wasirun [flags] <module.wasm> [guest args]")
	}
	modulePath := matches.Arg(0)

	guestArgs := matches.Args()[1:]
	if query, _ := matches.GetString("query"); query != "" {
		if len(guestArgs) > 0 {
			logger.Fatal("Pass guest arguments either positionally or via --query, not both")
		}
		guestArgs, err = urlargs.Parse(query)
		if err != nil {
			logger.Fatal("Failed to tokenize query string", zap.Error(err))
		}
	}

	ctx := context.Background()

	runtime, err := wasirun.NewRuntime(ctx, logger, &wasirun.Config{
		CacheDir: cfg.Wasm.CacheDir,
		Timeout:  cfg.Wasm.Timeout(),
	})
	if err != nil {
		logger.Fatal("Failed to initialize wasm runtime", zap.Error(err))
	}
	defer runtime.Close(ctx)

	module, err := runtime.CompileFile(ctx, modulePath)
	if err != nil {
		logger.Fatal("Failed to compile module", zap.Error(err))
	}

	argv0, _ := matches.GetString("argv0")
	err = runtime.Run(ctx, module, wasirun.Invocation{
		Argv0: argv0,
		Args:  guestArgs,
		Stdin: os.Stdin,
	})
	if err != nil {
		var exitErr *wasirun.GuestExitError
		if errors.As(err, &exitErr) {
			// Propagate the guest's exit code.
			runtime.Close(ctx)
			logger.Sync()
			os.Exit(int(exitErr.Code))
		}
		logger.Fatal("Run failed", zap.Error(err))
	}
}
