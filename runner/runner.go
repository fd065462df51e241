// Package runner removes the common boilerplate from the demo programs' main.
package runner

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/zircuit-labs/zkr-go-delegates/calm"
	"github.com/zircuit-labs/zkr-go-delegates/config"
	"github.com/zircuit-labs/zkr-go-delegates/log"
	"github.com/zircuit-labs/zkr-go-delegates/log/identity"
	"github.com/zircuit-labs/zkr-go-delegates/xerrors/errclass"
	"github.com/zircuit-labs/zkr-go-delegates/xerrors/stacktrace"
)

const (
	exitOK    = 0
	exitError = 1
	exitPanic = 2 // go standard exit code on panic
	cfgPath   = "runner"
)

type runnerConfig struct {
	LogLevel string
}

// Runnable is the body of a program. Anything it writes to stdout is the
// program's output; logs go to stderr.
type Runnable func(cfg *config.Configuration, stdout io.Writer, logger *slog.Logger) error

// Run executes run with os.Args and exits the process with its status.
func Run(serviceName string, f fs.FS, run Runnable) {
	os.Exit(Execute(serviceName, f, os.Args[1:], os.Stdout, os.Stderr, run)) //revive:disable:deep-exit // intentional
}

// Execute parses args, sets up logging and configuration, then calls run
// guarded against panics. It returns the process exit status: 0 on success,
// 1 on error and 2 if run panicked.
//
// settings are read from f unless --settings names a TOML file on disk.
func Execute(serviceName string, f fs.FS, args []string, stdout, stderr io.Writer, run Runnable) int {
	identity.SetServiceName(serviceName)
	name, id := identity.WhoAmI()

	logger, err := log.NewLogger(
		log.WithServiceName(name),
		log.WithInstanceID(id),
		log.WithWriter(stderr),
	)
	if err != nil {
		fmt.Fprintf(stderr, "failed to create logger: %s\n", err)
		return exitError
	}

	err = calm.Unpanic(func() error {
		return protectedRun(serviceName, f, args, stdout, run, logger)
	})

	switch errclass.GetClass(err) {
	case errclass.Nil:
		logger.Debug("program exited normally")
		return exitOK
	case errclass.Panic:
		logger.Error("program failed with panic", log.ErrAttr(err))
		return exitPanic
	default:
		logger.Error("program failed with error", log.ErrAttr(err))
		return exitError
	}
}

func protectedRun(serviceName string, f fs.FS, args []string, stdout io.Writer, run Runnable, logger *slog.Logger) error {
	flags := pflag.NewFlagSet(serviceName, pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	settings := flags.String("settings", "", "path to a TOML settings file used instead of the built-in one")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintf(stdout, "Usage of %s:\n%s", serviceName, flags.FlagUsages())
			return nil
		}
		return errclass.WrapAs(stacktrace.Wrap(err), errclass.Persistent)
	}

	var opts []config.Option
	if *settings != "" {
		f = os.DirFS(filepath.Dir(*settings))
		opts = append(opts, config.WithFilePath(filepath.Base(*settings)))
	}

	cfg, err := config.NewConfiguration(f, opts...)
	if err != nil {
		return err
	}

	rc := runnerConfig{}
	if err := cfg.Unmarshal(cfgPath, &rc); err != nil {
		return err
	}
	if err := log.SetLogLevel(rc.LogLevel); err != nil {
		logger.Error("failed to set log level", log.ErrAttr(err))
	}

	logger.Debug("program starting", slog.String("environment", cfg.Environment()))
	return run(cfg, stdout, logger)
}
