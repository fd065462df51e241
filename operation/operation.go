// Package operation selects a binary arithmetic function at runtime.
package operation

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/zircuit-labs/zkr-go-delegates/xerrors/errclass"
	"github.com/zircuit-labs/zkr-go-delegates/xerrors/errcontext"
	"github.com/zircuit-labs/zkr-go-delegates/xerrors/stacktrace"
)

// Number is the set of operand types an Operation accepts.
type Number interface {
	constraints.Integer | constraints.Float
}

// Operation is a pure binary function.
type Operation[N Number] func(a, b N) N

// ErrUnbound is returned when dispatching through a Binding with no operation.
var ErrUnbound = errors.New("no operation bound")

// Add returns a + b.
func Add[N Number](a, b N) N {
	return a + b
}

// Subtract returns a - b.
func Subtract[N Number](a, b N) N {
	return a - b
}

// Multiply returns a * b.
func Multiply[N Number](a, b N) N {
	return a * b
}

// Dispatch invokes op on a and b. Which function runs is decided by the
// value of op at the call, so reassigning the caller's variable between
// calls changes the result.
func Dispatch[N Number](op Operation[N], a, b N) N {
	return op(a, b)
}

// Binding holds the operation currently selected. The zero value is unbound.
type Binding[N Number] struct {
	op Operation[N]
}

// Bind replaces the bound operation.
func (b *Binding[N]) Bind(op Operation[N]) {
	b.op = op
}

// Dispatch invokes whatever operation is bound now.
func (b *Binding[N]) Dispatch(x, y N) (N, error) {
	if b.op == nil {
		var zero N
		return zero, stacktrace.Wrap(ErrUnbound)
	}
	return Dispatch(b.op, x, y), nil
}

// Names accepted by Lookup.
const (
	AddName      = "add"
	SubtractName = "sub"
	MultiplyName = "mul"
)

// Lookup returns the operation registered under name.
func Lookup[N Number](name string) (Operation[N], error) {
	table := map[string]Operation[N]{
		AddName:      Add[N],
		SubtractName: Subtract[N],
		MultiplyName: Multiply[N],
	}
	if op, ok := table[name]; ok {
		return op, nil
	}

	err := fmt.Errorf("unknown operation %q", name)
	err = errcontext.Add(err, slog.Any("known", slices.Sorted(maps.Keys(table))))
	return nil, errclass.WrapAs(stacktrace.Wrap(err), errclass.Persistent)
}
