// Package stacktrace records where an error was first observed.
package stacktrace

import (
	"errors"
	"runtime"
	"strings"

	"github.com/zircuit-labs/zkr-go-delegates/xerrors"
)

const (
	maxFrames = 50

	// skips runtime.Callers, GetStack and Wrap
	wrapSkip = 3
)

// Frame is one call site in a StackTrace.
type Frame struct {
	File       string `json:"source"`
	LineNumber int    `json:"line"`
	Function   string `json:"func"`
}

// StackTrace is a list of frames, innermost first.
type StackTrace []Frame

// GetStack captures the current call stack. skip follows runtime.Callers,
// so 1 makes GetStack itself the first frame. Frames from the runtime and
// testing packages are dropped when skipStd is set.
func GetStack(skip int, skipStd bool) StackTrace {
	pc := make([]uintptr, maxFrames)
	pc = pc[:runtime.Callers(skip, pc)]
	if len(pc) == 0 {
		return nil
	}

	var trace StackTrace
	frames := runtime.CallersFrames(pc)
	for {
		frame, more := frames.Next()
		if !skipStd || !isStdFrame(frame) {
			trace = append(trace, Frame{
				File:       frame.File,
				LineNumber: frame.Line,
				Function:   frame.Function,
			})
		}
		if !more {
			break
		}
	}
	return trace
}

func isStdFrame(frame runtime.Frame) bool {
	for _, pkg := range []string{"runtime", "testing"} {
		if strings.HasPrefix(frame.Function, pkg+".") && strings.Contains(frame.File, "/src/"+pkg+"/") {
			return true
		}
	}
	return false
}

// Wrap attaches the caller's stack to err unless err already carries one.
// Each member of a joined error is wrapped on its own, all with the same stack.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	return wrap(err, GetStack(wrapSkip, true))
}

func wrap(err error, trace StackTrace) error {
	if joined := xerrors.Unjoin(err); len(joined) > 1 {
		wrapped := make([]error, len(joined))
		for i, e := range joined {
			wrapped[i] = wrap(e, trace)
		}
		return errors.Join(wrapped...)
	}
	if _, ok := xerrors.Extract[StackTrace](err); ok {
		return err
	}
	return xerrors.Extend(trace, err)
}

// Extract returns the stack attached to err, or nil.
func Extract(err error) StackTrace {
	trace, _ := xerrors.Extract[StackTrace](err)
	return trace
}
