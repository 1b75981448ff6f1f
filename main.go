package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/marcodamonte/semantics/class-variables/sedan"
	"github.com/marcodamonte/semantics/conditions/size"
	"github.com/marcodamonte/semantics/instance-variables/vehicle"
	"github.com/marcodamonte/semantics/internal/demo"
	"github.com/marcodamonte/semantics/parameter-passing/car"
)

// ErrUnknownDemo is returned by run for a name that matches no program.
var ErrUnknownDemo = errors.New("unknown demo")

// app holds what the persistent flags produce for every subcommand.
type app struct {
	verbose   bool
	sizesPath string

	logger  *zap.Logger
	mapping *size.Mapping
}

// programs lists every topic in the order `all` runs them.
func (a *app) programs() []demo.Program {
	return []demo.Program{
		sedan.Program(),
		size.Program(a.mapping),
		vehicle.Program(),
		car.Program(),
	}
}

func (a *app) lookup(name string) (demo.Program, error) {
	for _, p := range a.programs() {
		if p.Name == name {
			return p, nil
		}
	}
	return demo.Program{}, fmt.Errorf("%w %q (see `semantics list`)", ErrUnknownDemo, name)
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "semantics",
		Short: "Run the shared state, conditionals, instance state and parameter passing demos",
		Long: `semantics runs the same programs found under each topic directory.

Every topic is also a standalone program:

  go run ./class-variables
  go run ./conditions
  go run ./instance-variables
  go run ./parameter-passing`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := demo.NewLogger(a.verbose)
			if err != nil {
				return err
			}
			a.logger = logger

			if a.sizesPath != "" {
				m, err := size.LoadMappingFile(a.sizesPath)
				if err != nil {
					return err
				}
				a.mapping = m
				a.logger.Debug("size mapping loaded", zap.String("path", a.sizesPath), zap.Strings("codes", m.Codes()))
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log every section at debug level")
	root.PersistentFlags().StringVar(&a.sizesPath, "sizes", "", "YAML file replacing the embedded size table")

	root.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List the available demos",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				for _, p := range a.programs() {
					fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s\n", p.Name, p.Summary)
				}
			},
		},
		&cobra.Command{
			Use:   "run <demo>...",
			Short: "Run one or more demos by name",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				// Resolve every name before printing anything.
				progs := make([]demo.Program, 0, len(args))
				for _, name := range args {
					p, err := a.lookup(strings.TrimSpace(name))
					if err != nil {
						return err
					}
					progs = append(progs, p)
				}
				for _, p := range progs {
					p.Run(cmd.OutOrStdout(), a.logger)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "all",
			Short: "Run every demo in order",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				for _, p := range a.programs() {
					p.Run(cmd.OutOrStdout(), a.logger)
				}
			},
		},
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
