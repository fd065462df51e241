package showcase

import (
	"io"
	"log/slog"

	"github.com/zircuit-labs/zkr-go-delegates/config"
	zkriter "github.com/zircuit-labs/zkr-go-delegates/iter"
	"github.com/zircuit-labs/zkr-go-delegates/operation"
	"github.com/zircuit-labs/zkr-go-delegates/predicate"
)

const (
	filterCfgPath   = "filter"
	dispatchCfgPath = "dispatch"
)

// FilterSettings configures FilterProgram.
type FilterSettings struct {
	Start      int
	Count      int
	Predicates []string
}

// DispatchSettings configures DispatchProgram.
type DispatchSettings struct {
	A          int
	B          int
	Operations []string
}

// FilterProgram filters the configured range with the configured predicates.
// Unset settings fall back to 1..100 and every default predicate.
func FilterProgram(cfg *config.Configuration, stdout io.Writer, logger *slog.Logger) error {
	settings := FilterSettings{Start: 1, Count: 100}
	if err := cfg.Unmarshal(filterCfgPath, &settings); err != nil {
		return err
	}
	if len(settings.Predicates) == 0 {
		for _, p := range predicate.Defaults[int]() {
			settings.Predicates = append(settings.Predicates, p.Name)
		}
	}

	preds, err := predicate.Lookup[int](settings.Predicates...)
	if err != nil {
		return err
	}

	logger.Debug("filtering",
		slog.Int("start", settings.Start),
		slog.Int("count", settings.Count),
		slog.Any("predicates", settings.Predicates),
	)
	return RunFilter(stdout, zkriter.Range(settings.Start, settings.Count), preds)
}

// DispatchProgram dispatches the configured operations on the configured
// operands. Unset settings fall back to add then sub on 1 and 2.
func DispatchProgram(cfg *config.Configuration, stdout io.Writer, logger *slog.Logger) error {
	settings := DispatchSettings{A: 1, B: 2}
	if err := cfg.Unmarshal(dispatchCfgPath, &settings); err != nil {
		return err
	}
	if len(settings.Operations) == 0 {
		settings.Operations = []string{operation.AddName, operation.SubtractName}
	}

	ops := make([]operation.Operation[int], 0, len(settings.Operations))
	for _, name := range settings.Operations {
		op, err := operation.Lookup[int](name)
		if err != nil {
			return err
		}
		ops = append(ops, op)
	}

	logger.Debug("dispatching",
		slog.Int("a", settings.A),
		slog.Int("b", settings.B),
		slog.Any("operations", settings.Operations),
	)
	return RunDispatch(stdout, settings.A, settings.B, ops...)
}
