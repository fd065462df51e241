// Package errcontext attaches slog attributes to an error so they are logged with it.
package errcontext

import (
	"errors"
	"log/slog"
	"maps"
	"slices"

	"github.com/zircuit-labs/zkr-go-delegates/xerrors"
)

// Context is a set of log attributes keyed by attribute name.
type Context map[string]slog.Value

// Flatten returns the attributes sorted by key.
func (c Context) Flatten() []slog.Attr {
	attrs := make([]slog.Attr, 0, len(c))
	for _, key := range slices.Sorted(maps.Keys(c)) {
		attrs = append(attrs, slog.Attr{Key: key, Value: c[key]})
	}
	return attrs
}

// Add merges attrs into the context already carried by err. Later keys
// replace earlier ones. Members of a joined error each get the attrs.
func Add(err error, attrs ...slog.Attr) error {
	if err == nil {
		return nil
	}
	if joined := xerrors.Unjoin(err); len(joined) > 1 {
		added := make([]error, len(joined))
		for i, e := range joined {
			added[i] = Add(e, attrs...)
		}
		return errors.Join(added...)
	}

	ctx := maps.Clone(Get(err))
	if ctx == nil {
		ctx = make(Context, len(attrs))
	}
	for _, attr := range attrs {
		ctx[attr.Key] = attr.Value
	}
	return xerrors.Extend(ctx, err)
}

// Get returns the newest Context carried by err, or nil.
func Get(err error) Context {
	ctx, _ := xerrors.Extract[Context](err)
	return ctx
}
