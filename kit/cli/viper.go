package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// Opt is a single command-line option
type Opt struct {
	DestP    interface{} // pointer to the destination
	Flag     string
	Short    rune // single-character shorthand, optional
	Default  interface{}
	Desc     string
	Required bool
}

// Program parses CLI options
type Program struct {
	// Run is invoked by cobra on execute with the positional arguments.
	// A program without Run only groups subcommands.
	Run func(args []string) error
	// Name is the name of the program in help usage and the env var prefix.
	Name string
	// Args validates the positional arguments. Defaults to cobra.NoArgs.
	Args cobra.PositionalArgs
	// Opts are the command line/env var options to the program
	Opts []Opt
}

// NewCommand creates a new cobra command to be executed that respects env vars.
//
// Uses the upper-case version of the program's name as a prefix
// to all environment variables.
//
// This is to simplify the viper/cobra boilerplate.
func NewCommand(v *viper.Viper, p *Program) (*cobra.Command, error) {
	args := p.Args
	if args == nil {
		args = cobra.NoArgs
	}
	cmd := &cobra.Command{
		Use:          p.Name,
		Args:         args,
		SilenceUsage: true,
	}
	if p.Run != nil {
		cmd.RunE = func(_ *cobra.Command, args []string) error {
			return p.Run(args)
		}
	}

	v.SetEnvPrefix(strings.ToUpper(p.Name))
	v.AutomaticEnv()
	// This normalizes "-" to an underscore in env names.
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	if err := BindOptions(v, cmd, p.Opts); err != nil {
		return nil, err
	}
	return cmd, nil
}

// BindOptions adds opts to the specified command and automatically
// registers those options with viper. A value found in the environment
// replaces the option's default; a flag given on the command line wins over
// both.
func BindOptions(v *viper.Viper, cmd *cobra.Command, opts []Opt) error {
	return bindOptions(v, cmd, cmd.Flags(), opts)
}

// BindPersistentOptions is like BindOptions, but the flags are also accepted
// by every subcommand of cmd.
func BindPersistentOptions(v *viper.Viper, cmd *cobra.Command, opts []Opt) error {
	return bindOptions(v, cmd, cmd.PersistentFlags(), opts)
}

func bindOptions(v *viper.Viper, cmd *cobra.Command, flags *pflag.FlagSet, opts []Opt) error {
	for _, o := range opts {
		short := ""
		if o.Short != 0 {
			short = string(o.Short)
		}

		switch destP := o.DestP.(type) {
		case *string:
			var d string
			if o.Default != nil {
				d = o.Default.(string)
			}
			flags.StringVarP(destP, o.Flag, short, d, o.Desc)
			if err := v.BindPFlag(o.Flag, flags.Lookup(o.Flag)); err != nil {
				return err
			}
			*destP = v.GetString(o.Flag)
		case *int:
			var d int
			if o.Default != nil {
				d = o.Default.(int)
			}
			flags.IntVarP(destP, o.Flag, short, d, o.Desc)
			if err := v.BindPFlag(o.Flag, flags.Lookup(o.Flag)); err != nil {
				return err
			}
			*destP = v.GetInt(o.Flag)
		case *int64:
			var d int64
			if o.Default != nil {
				d = o.Default.(int64)
			}
			flags.Int64VarP(destP, o.Flag, short, d, o.Desc)
			if err := v.BindPFlag(o.Flag, flags.Lookup(o.Flag)); err != nil {
				return err
			}
			*destP = v.GetInt64(o.Flag)
		case *bool:
			var d bool
			if o.Default != nil {
				d = o.Default.(bool)
			}
			flags.BoolVarP(destP, o.Flag, short, d, o.Desc)
			if err := v.BindPFlag(o.Flag, flags.Lookup(o.Flag)); err != nil {
				return err
			}
			*destP = v.GetBool(o.Flag)
		case *time.Duration:
			var d time.Duration
			if o.Default != nil {
				d = o.Default.(time.Duration)
			}
			flags.DurationVarP(destP, o.Flag, short, d, o.Desc)
			if err := v.BindPFlag(o.Flag, flags.Lookup(o.Flag)); err != nil {
				return err
			}
			*destP = v.GetDuration(o.Flag)
		case *[]string:
			var d []string
			if o.Default != nil {
				d = o.Default.([]string)
			}
			flags.StringSliceVarP(destP, o.Flag, short, d, o.Desc)
			if err := v.BindPFlag(o.Flag, flags.Lookup(o.Flag)); err != nil {
				return err
			}
			*destP = v.GetStringSlice(o.Flag)
		case *zapcore.Level:
			d := zapcore.InfoLevel
			if o.Default != nil {
				d = o.Default.(zapcore.Level)
			}
			LevelVarP(flags, destP, o.Flag, short, d, o.Desc)
			if err := v.BindPFlag(o.Flag, flags.Lookup(o.Flag)); err != nil {
				return err
			}
			if s := v.GetString(o.Flag); s != "" {
				if err := destP.Set(s); err != nil {
					return fmt.Errorf("%s: %w", o.Flag, err)
				}
			}
		case pflag.Value:
			if o.Default != nil {
				if err := destP.Set(fmt.Sprint(o.Default)); err != nil {
					return fmt.Errorf("%s: %w", o.Flag, err)
				}
			}
			flags.VarP(destP, o.Flag, short, o.Desc)
			if err := v.BindPFlag(o.Flag, flags.Lookup(o.Flag)); err != nil {
				return err
			}
			if s := v.GetString(o.Flag); s != "" {
				if err := destP.Set(s); err != nil {
					return fmt.Errorf("%s: %w", o.Flag, err)
				}
			}
		default:
			return fmt.Errorf("unknown destination type %T for flag %q", o.DestP, o.Flag)
		}

		if o.Required {
			if err := cobra.MarkFlagRequired(flags, o.Flag); err != nil {
				return err
			}
		}
	}
	return nil
}
