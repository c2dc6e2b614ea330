package udf

import (
	"fmt"
	"sort"
	"strings"

	"github.com/klout/brickhouse/kit/platform/errors"
	"go.uber.org/multierr"
)

// Kind tells which contract a Definition implements.
type Kind int

const (
	ScalarKind Kind = iota + 1
	TableKind
	AggregateKind
)

func (k Kind) String() string {
	switch k {
	case ScalarKind:
		return "scalar"
	case TableKind:
		return "table"
	case AggregateKind:
		return "aggregate"
	}
	return "unknown"
}

// Definition names a function and how to build a fresh instance of it.
// Exactly one of the constructors must be set.
type Definition struct {
	Name         string
	Description  string
	NewScalar    func(Env) Scalar
	NewTable     func(Env) TableGenerating
	NewAggregate func(Env) Aggregate
}

// Kind returns the contract implemented by d, or 0 when d does not set
// exactly one constructor.
func (d Definition) Kind() Kind {
	var kind Kind
	n := 0
	if d.NewScalar != nil {
		kind, n = ScalarKind, n+1
	}
	if d.NewTable != nil {
		kind, n = TableKind, n+1
	}
	if d.NewAggregate != nil {
		kind, n = AggregateKind, n+1
	}
	if n != 1 {
		return 0
	}
	return kind
}

// Registry maps case-insensitive function names to definitions. Every lookup
// returns a new instance wired to the registry's Env.
//
// A Registry is not safe for concurrent registration; register everything
// up front, then look up from any goroutine.
type Registry struct {
	env  Env
	defs map[string]Definition
}

// NewRegistry returns an empty registry handing env to new instances.
func NewRegistry(env Env) *Registry {
	return &Registry{
		env:  env.withDefaults(),
		defs: make(map[string]Definition),
	}
}

// Register adds d. Duplicate names and definitions without exactly one
// constructor are rejected.
func (r *Registry) Register(d Definition) error {
	const op = "udf.Register"
	if d.Name == "" {
		return errors.Invalidf(op, "function name required")
	}
	if d.Kind() == 0 {
		return errors.Invalidf(op, "function %q must set exactly one constructor", d.Name)
	}
	key := strings.ToLower(d.Name)
	if _, ok := r.defs[key]; ok {
		return &errors.Error{
			Code: errors.EConflict,
			Op:   op,
			Msg:  fmt.Sprintf("function %q already registered", d.Name),
		}
	}
	r.defs[key] = d
	return nil
}

// RegisterAll registers every definition and returns all failures combined.
func (r *Registry) RegisterAll(defs ...Definition) error {
	var err error
	for _, d := range defs {
		err = multierr.Append(err, r.Register(d))
	}
	return err
}

// Definition returns the definition registered under name.
func (r *Registry) Definition(name string) (Definition, bool) {
	d, ok := r.defs[strings.ToLower(name)]
	return d, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.defs))
	for _, d := range r.defs {
		names = append(names, d.Name)
	}
	sort.Strings(names)
	return names
}

// Scalar returns a new instance of the scalar function name.
func (r *Registry) Scalar(name string) (Scalar, error) {
	d, err := r.lookup(name, ScalarKind)
	if err != nil {
		return nil, err
	}
	return d.NewScalar(r.env), nil
}

// Table returns a new instance of the table-generating function name.
func (r *Registry) Table(name string) (TableGenerating, error) {
	d, err := r.lookup(name, TableKind)
	if err != nil {
		return nil, err
	}
	return d.NewTable(r.env), nil
}

// Aggregate returns a new instance of the aggregate function name.
func (r *Registry) Aggregate(name string) (Aggregate, error) {
	d, err := r.lookup(name, AggregateKind)
	if err != nil {
		return nil, err
	}
	return d.NewAggregate(r.env), nil
}

func (r *Registry) lookup(name string, kind Kind) (Definition, error) {
	const op = "udf.Lookup"
	d, ok := r.Definition(name)
	if !ok {
		return Definition{}, &errors.Error{
			Code: errors.ENotFound,
			Op:   op,
			Msg:  fmt.Sprintf("function %q not found", name),
		}
	}
	if d.Kind() != kind {
		return Definition{}, errors.Invalidf(op, "function %q is a %s function, not %s", name, d.Kind(), kind)
	}
	return d, nil
}
