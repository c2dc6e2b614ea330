// Package builtin holds the functions shipped with the module and registers
// them by name.
package builtin

import (
	"github.com/klout/brickhouse/udf"
)

// Definitions returns every builtin function definition.
func Definitions() []udf.Definition {
	defs := scalarDefinitions()
	defs = append(defs, tableDefinitions()...)
	defs = append(defs, hllDefinitions()...)
	return defs
}

// Register adds every builtin function to r.
func Register(r *udf.Registry) error {
	return r.RegisterAll(Definitions()...)
}

// NewRegistry returns a registry holding the builtin functions.
func NewRegistry(env udf.Env) (*udf.Registry, error) {
	r := udf.NewRegistry(env)
	if err := Register(r); err != nil {
		return nil, err
	}
	return r, nil
}
