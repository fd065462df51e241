// Package showcase writes the filter and dispatch demonstrations to a writer.
package showcase

import (
	"bufio"
	"io"
	"iter"
	"strconv"

	zkriter "github.com/zircuit-labs/zkr-go-delegates/iter"
	"github.com/zircuit-labs/zkr-go-delegates/operation"
	"github.com/zircuit-labs/zkr-go-delegates/predicate"
	"github.com/zircuit-labs/zkr-go-delegates/xerrors/stacktrace"
)

// RunFilter writes, for each predicate in turn, the matching elements of
// source one per line followed by a blank line. source is ranged over once
// per predicate, so it must be restartable.
func RunFilter(w io.Writer, source iter.Seq[int], preds []predicate.Named[int]) error {
	bw := bufio.NewWriter(w)
	for _, p := range preds {
		for v := range zkriter.Filter(p.Test, source) {
			if err := writeLine(bw, v); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return stacktrace.Wrap(err)
		}
	}
	return stacktrace.Wrap(bw.Flush())
}

// RunDispatch binds each of ops in turn to a single variable and writes
// the result of dispatching it on a and b.
func RunDispatch(w io.Writer, a, b int, ops ...operation.Operation[int]) error {
	bw := bufio.NewWriter(w)
	var op operation.Operation[int]
	for _, next := range ops {
		op = next
		if err := writeLine(bw, operation.Dispatch(op, a, b)); err != nil {
			return err
		}
	}
	return stacktrace.Wrap(bw.Flush())
}

func writeLine(w *bufio.Writer, v int) error {
	if _, err := w.WriteString(strconv.Itoa(v)); err != nil {
		return stacktrace.Wrap(err)
	}
	return stacktrace.Wrap(w.WriteByte('\n'))
}
