package resolve

import (
	"go.uber.org/zap"
)

// RunOptions parameterizes one engine invocation.
type RunOptions struct {
	// Target enables filtering when non-empty; empty means resolve only.
	Target []string

	Exclusively      bool
	MatchAll         bool
	IncludeUncertain bool

	// WithReasons enables the uncertainty classifier. Required when
	// IncludeUncertain is set, and used by callers that attach a validity
	// report to unfiltered results.
	WithReasons bool

	// Vocabulary is the reference vocabulary for the validity check,
	// passed explicitly per invocation so resolution stays a pure function
	// of its inputs. Nil skips the check.
	Vocabulary *ValueSet
}

// Engine runs the full pipeline for one attribute: aggregate candidates,
// resolve, classify, filter. Invocations with identical inputs yield
// identical results.
type Engine struct {
	desc   Descriptor
	logger *zap.SugaredLogger
}

// NewEngine creates an engine for the attribute described by desc.
// logger may be nil for silent operation.
func NewEngine(desc Descriptor, logger *zap.SugaredLogger) *Engine {
	return &Engine{desc: desc, logger: logger}
}

// Descriptor returns the attribute descriptor the engine was built with.
func (e *Engine) Descriptor() Descriptor {
	return e.desc
}

// Run resolves one record per key and, when opts.Target is non-empty,
// filters the records against the target set.
func (e *Engine) Run(keys []Key, fine []FineObservation, coarse []CoarseObservation, opts RunOptions) []Record {
	candidates := Aggregate(keys, fine, coarse)

	records := make([]Record, 0, len(candidates))
	unresolved := 0
	flagged := 0
	for _, c := range candidates {
		value, source := Resolve(c)
		rec := Record{Key: c.Key, Value: value, Source: source}
		if opts.WithReasons {
			rec.Reason = e.desc.Classify(c, value, source, opts.Vocabulary)
		}
		if rec.Value == "" {
			unresolved++
		}
		if rec.Reason != "" {
			flagged++
		}
		records = append(records, rec)
	}

	if e.logger != nil {
		e.logger.Debugw("Attribute resolution complete",
			"attribute", e.desc.Attribute,
			"records", len(records),
			"unresolved", unresolved,
			"flagged", flagged,
		)
	}

	if len(opts.Target) == 0 {
		return records
	}

	filtered := Filter(records, FilterOptions{
		Target:           opts.Target,
		Exclusively:      opts.Exclusively,
		MatchAll:         opts.MatchAll,
		IncludeUncertain: opts.IncludeUncertain,
	})

	if e.logger != nil {
		e.logger.Debugw("Target filtering complete",
			"attribute", e.desc.Attribute,
			"target", opts.Target,
			"matched", len(filtered),
		)
	}

	return filtered
}
