package predicate

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/zircuit-labs/zkr-go-delegates/collections"
	zkriter "github.com/zircuit-labs/zkr-go-delegates/iter"
	"github.com/zircuit-labs/zkr-go-delegates/xerrors/errclass"
	"github.com/zircuit-labs/zkr-go-delegates/xerrors/errcontext"
	"github.com/zircuit-labs/zkr-go-delegates/xerrors/stacktrace"
)

// Names of the default predicates, in demo order.
const (
	Even  = "even"
	Odd   = "odd"
	Gt50  = "gt50"
	Prime = "prime"
)

// Named pairs a predicate with the name it is selected by.
type Named[N constraints.Integer] struct {
	Name string
	Test zkriter.Predicate[N]
}

// Defaults returns the demonstration predicates in the order they are shown.
func Defaults[N constraints.Integer]() []Named[N] {
	return []Named[N]{
		{Name: Even, Test: IsEven[N]},
		{Name: Odd, Test: IsOdd[N]},
		{Name: Gt50, Test: GreaterThan(N(50))},
		{Name: Prime, Test: IsPrime[N]},
	}
}

// Lookup resolves names against Defaults, keeping the order of names.
// Every unknown name is reported in a single Persistent error.
func Lookup[N constraints.Integer](names ...string) ([]Named[N], error) {
	defaults := Defaults[N]()
	known := collections.NewSet[string]()
	for _, p := range defaults {
		known.Add(p.Name)
	}

	if unknown := collections.NewSet(names...).Difference(known); !unknown.Empty() {
		missing := slices.Sorted(unknown.Iter())
		err := fmt.Errorf("unknown predicates: %s", strings.Join(missing, ", "))
		err = errcontext.Add(err, slog.Any("known", slices.Sorted(known.Iter())))
		return nil, errclass.WrapAs(stacktrace.Wrap(err), errclass.Persistent)
	}

	selected := make([]Named[N], 0, len(names))
	for _, name := range names {
		i := slices.IndexFunc(defaults, func(p Named[N]) bool { return p.Name == name })
		selected = append(selected, defaults[i])
	}
	return selected, nil
}
