// Package udf defines the contract between the host query engine and the
// functions in this module, and a registry to look them up by name.
//
// The host creates one function instance per task and calls it from a single
// goroutine. Instances keep their scratch state in their own fields; nothing
// here is shared between instances.
package udf

import (
	"go.uber.org/zap"
)

// Type is the kind of an argument or result value.
type Type int

const (
	Any Type = iota
	String
	Int
	Bool
	Binary
	Struct
	List
)

func (t Type) String() string {
	switch t {
	case Any:
		return "any"
	case String:
		return "string"
	case Int:
		return "int"
	case Bool:
		return "bool"
	case Binary:
		return "binary"
	case Struct:
		return "struct"
	case List:
		return "list"
	}
	return "unknown"
}

// Scalar is a row-at-a-time function.
type Scalar interface {
	// Initialize checks the argument types once, before any row, and returns
	// the result type.
	Initialize(args []Type) (Type, error)

	// Evaluate computes the result for one row. A nil result is SQL NULL.
	Evaluate(args []interface{}) (interface{}, error)
}

// TableGenerating turns one input row into zero or more output rows.
type TableGenerating interface {
	// Initialize checks the argument types and returns the output row schema.
	Initialize(args []Type) ([]Type, error)

	// Process handles one input row, forwarding output rows to out.
	Process(args []interface{}, out Collector) error

	// Close is called once after the last row.
	Close() error
}

// Aggregate is a group-at-a-time function. The host may run it in partial
// mode (Iterate then Partial) on several workers and combine the partials
// with Merge on another before calling Terminate.
type Aggregate interface {
	Initialize(args []Type) (Type, error)

	// Reset clears the state so the instance can be reused for another group.
	Reset()

	Iterate(args []interface{}) error

	// Partial serializes the intermediate state.
	Partial() ([]byte, error)

	// Merge folds a serialized partial into the state.
	Merge(partial []byte) error

	Terminate() (interface{}, error)
}

// Collector receives the output rows of a table-generating function.
type Collector interface {
	Collect(row []interface{}) error
}

// CollectorFunc adapts a function to the Collector interface.
type CollectorFunc func(row []interface{}) error

// Collect calls f(row).
func (f CollectorFunc) Collect(row []interface{}) error {
	return f(row)
}

// Reporter receives job counters. Counters are for observability only.
type Reporter interface {
	IncrCounter(group, counter string, amount int64)
}

// NopReporter discards counters.
type NopReporter struct{}

// IncrCounter does nothing.
func (NopReporter) IncrCounter(string, string, int64) {}

// Env holds the collaborators handed to each new function instance.
type Env struct {
	Logger   *zap.Logger
	Reporter Reporter
}

// withDefaults fills in no-op collaborators.
func (e Env) withDefaults() Env {
	if e.Logger == nil {
		e.Logger = zap.NewNop()
	}
	if e.Reporter == nil {
		e.Reporter = NopReporter{}
	}
	return e
}
