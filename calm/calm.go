// Package calm turns panics into errors.
package calm

import (
	"fmt"

	"github.com/zircuit-labs/zkr-go-delegates/xerrors"
	"github.com/zircuit-labs/zkr-go-delegates/xerrors/errclass"
	"github.com/zircuit-labs/zkr-go-delegates/xerrors/stacktrace"
)

// skips runtime.Callers, GetStack and the deferred recover func;
// runtime frames such as gopanic are filtered by GetStack.
const panicSkip = 3

// Unpanic runs f and returns a Panic class error, carrying the stack of the
// panicking frame, if f panics. Panics in goroutines started by f are not caught.
func Unpanic(f func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			perr := xerrors.Extend(stacktrace.GetStack(panicSkip, true), fmt.Errorf("panic: %v", r))
			err = errclass.WrapAs(perr, errclass.Panic)
		}
	}()

	return f()
}
