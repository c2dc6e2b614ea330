package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/klout/brickhouse/kit/cli"
	"github.com/klout/brickhouse/xunit"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func (c *Command) validateCommand() (*cobra.Command, error) {
	var ypaths bool
	cmd := &cobra.Command{
		Use:   "validate [files...]",
		Short: "Report whether every line is a well-formed xunit",
		Args:  cobra.ArbitraryArgs,
	}
	if err := cli.BindOptions(c.v, cmd, []cli.Opt{
		{
			DestP: &ypaths,
			Flag:  "ypath",
			Desc:  "validate ypaths instead of xunits",
		},
	}); err != nil {
		return nil, err
	}

	cmd.RunE = func(_ *cobra.Command, args []string) error {
		valid := xunit.IsValidXUnit
		if ypaths {
			valid = xunit.IsValidYPath
		}
		if len(args) == 0 {
			args = []string{"-"}
		}
		for _, path := range args {
			if err := c.validate(path, valid); err != nil {
				return err
			}
		}
		return nil
	}
	return cmd, nil
}

func (c *Command) validate(path string, valid func(string) bool) error {
	r, err := c.open(path)
	if err != nil {
		return err
	}
	defer r.Close()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		s := strings.TrimSpace(scanner.Text())
		if s == "" {
			continue
		}
		result := "invalid"
		if valid(s) {
			result = "valid"
		}
		if _, err := fmt.Fprintf(c.Stdout, "%s\t%s\n", result, s); err != nil {
			return errors.Wrap(err, "write output")
		}
	}
	return errors.Wrapf(scanner.Err(), "read %s", path)
}
