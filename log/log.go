// Package log builds the structured loggers used across the module.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/rs/zerolog"
	slogcommon "github.com/samber/slog-common"
	slogzerolog "github.com/samber/slog-zerolog/v2"

	"github.com/zircuit-labs/zkr-go-delegates/xerrors"
	"github.com/zircuit-labs/zkr-go-delegates/xerrors/errclass"
	"github.com/zircuit-labs/zkr-go-delegates/xerrors/errcontext"
	"github.com/zircuit-labs/zkr-go-delegates/xerrors/stacktrace"
)

const (
	ErrorKey        = "error"
	ErrorContextKey = "error_context"
	SourceKey       = "source"
	StackTraceKey   = "stacktrace"
	ErrClassKey     = "class"
)

var logLevel = &slog.LevelVar{}

// SetLogLevel changes the level of every logger made by NewLogger.
// An empty level leaves it unchanged.
func SetLogLevel(level string) error {
	if level == "" {
		return nil
	}
	if err := logLevel.UnmarshalText([]byte(level)); err != nil {
		return errclass.WrapAs(stacktrace.Wrap(err), errclass.Persistent)
	}
	return nil
}

// ErrAttr is a helper for logging error values.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrorKey, err)
}

type options struct {
	serviceName string
	instanceID  string
	writer      io.Writer
}

// Option is an option func for NewLogger.
type Option func(options *options)

func WithServiceName(name string) Option {
	return func(options *options) {
		options.serviceName = name
	}
}

func WithInstanceID(id string) Option {
	return func(options *options) {
		options.instanceID = id
	}
}

// WithWriter sets where log lines go. Defaults to stderr so that stdout
// stays free for program output.
func WithWriter(w io.Writer) Option {
	return func(options *options) {
		options.writer = w
	}
}

// NewLogger creates a JSON slog logger backed by zerolog.
func NewLogger(opts ...Option) (*slog.Logger, error) {
	options := options{
		serviceName: "unknown",
		writer:      os.Stderr,
	}
	for _, opt := range opts {
		opt(&options)
	}
	if options.writer == nil {
		return nil, fmt.Errorf("log writer must not be nil")
	}

	// ms granularity is enough for a demo binary
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs

	// the handler stamps each record with its own time field
	zctx := zerolog.New(options.writer).With().
		Str("service", options.serviceName)
	if options.instanceID != "" {
		zctx = zctx.Str("instance", options.instanceID)
	}
	zlogger := zctx.Logger()

	return slog.New(slogzerolog.Option{
		Converter: CustomSlogConverter,
		Level:     logLevel,
		Logger:    &zlogger,
	}.NewZerologHandler()), nil
}

// NewTestLogger creates a logger that writes through t.Log, so output only
// shows for failing tests. Using it after the test ends panics.
func NewTestLogger(t *testing.T) *slog.Logger {
	t.Helper()
	return slogt.New(t, slogt.JSON()).With(slog.String("test", t.Name()))
}

// CustomSlogConverter follows slogcommon's default converter but expands
// error attributes with expandError.
func CustomSlogConverter(addSource bool, replaceAttr func(groups []string, a slog.Attr) slog.Attr, loggerAttr []slog.Attr, groups []string, record *slog.Record) map[string]any {
	attrs := slogcommon.AppendRecordAttrsToAttrs(loggerAttr, groups, record)
	attrs = expandError(attrs)
	if addSource {
		attrs = append(attrs, slogcommon.Source(SourceKey, record))
	}
	attrs = slogcommon.ReplaceAttrs(replaceAttr, []string{}, attrs...)
	return slogcommon.AttrsToMap(attrs...)
}

// expandError replaces a top level "error" attribute holding an error with
// its message, and adds an "error_context" attribute with the class, stack
// trace and errcontext attributes of each joined member that has any.
// Joined errors get one "error_N" group per member inside "error_context".
func expandError(attrs []slog.Attr) []slog.Attr {
	out := make([]slog.Attr, 0, len(attrs)+1)
	var details [][]any

	for _, a := range attrs {
		err, ok := a.Value.Any().(error)
		if a.Key != ErrorKey || a.Value.Kind() != slog.KindAny || !ok || err == nil {
			out = append(out, a)
			continue
		}

		members := xerrors.Unjoin(err)
		messages := make([]string, len(members))
		details = make([][]any, len(members))
		for i, m := range members {
			messages[i] = m.Error()
			details[i] = errorDetail(m)
		}

		if len(members) == 1 {
			out = append(out, slog.String(ErrorKey, err.Error()))
		} else {
			out = append(out, slog.Any(ErrorKey, messages))
		}
	}

	switch {
	case len(details) == 1:
		if len(details[0]) > 1 {
			out = append(out, slog.Group(ErrorContextKey, details[0]...))
		}
	case len(details) > 1:
		groups := make([]any, len(details))
		for i, d := range details {
			groups[i] = slog.Group(fmt.Sprintf("error_%d", i), d...)
		}
		out = append(out, slog.Group(ErrorContextKey, groups...))
	}
	return out
}

func errorDetail(err error) []any {
	detail := []any{slog.String(ErrorKey, err.Error())}
	if trace := stacktrace.Extract(err); trace != nil {
		detail = append(detail, slog.Any(StackTraceKey, trace))
	}
	if class := errclass.GetClass(err); class != errclass.Unknown {
		detail = append(detail, slog.String(ErrClassKey, class.String()))
	}
	for _, attr := range errcontext.Get(err).Flatten() {
		detail = append(detail, attr)
	}
	return detail
}
