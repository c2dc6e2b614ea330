package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/klout/brickhouse/udf"
	"github.com/klout/brickhouse/udf/builtin"
	"github.com/spf13/cobra"
)

func (c *Command) functionsCommand() (*cobra.Command, error) {
	return &cobra.Command{
		Use:   "functions",
		Short: "List the registered functions",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			r, err := builtin.NewRegistry(udf.Env{})
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(c.Stdout, 8, 8, 1, '\t', 0)
			fmt.Fprintln(tw, "Name\tKind\tDescription")
			for _, name := range r.Names() {
				d, _ := r.Definition(name)
				fmt.Fprintf(tw, "%s\t%s\t%s\n", d.Name, d.Kind(), d.Description)
			}
			return tw.Flush()
		},
	}, nil
}
