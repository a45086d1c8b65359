// Package cmd provides the CLI commands for hexgrid.
package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gravitas-games/eisenhex/internal/config"
	"github.com/gravitas-games/eisenhex/internal/layout"
	"github.com/gravitas-games/eisenhex/internal/logger"
	"github.com/gravitas-games/eisenhex/pkg/eisenstein"
	"github.com/gravitas-games/eisenhex/pkg/hex"
)

// app carries state shared by every subcommand once flags are parsed.
type app struct {
	cfgFile string
	verbose bool

	log    *logrus.Logger
	layout layout.Layout
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "hexgrid",
		Short: "Inspect Eisenstein-integer hex grid coordinates",
		Long: `hexgrid works with hexagonal grid cells addressed by Eisenstein
integers a + bω.

Negative components must follow "--" so they are not read as flags.

Examples:
  hexgrid neighbors 0 0
  hexgrid neighbor -- -1 2 left-above
  hexgrid coords --config ./configs/hexgrid.yaml 2 1
  hexgrid calc mul 1 2 3 4`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $CONFIG_PATH, else built-in defaults)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")

	root.AddCommand(a.neighborsCmd())
	root.AddCommand(a.neighborCmd())
	root.AddCommand(a.coordsCmd())
	root.AddCommand(a.calcCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the CLI
func Execute() error {
	err := NewRootCmd().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	path := a.cfgFile
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}

	log, err := logger.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if path != "" {
		log.Debugf("Configuration loaded from %s", path)
	}

	a.log = log
	a.layout = layout.New(cfg.Layout)
	return nil
}

// parseInteger reads an Eisenstein integer from two integer arguments.
func parseInteger(aArg, bArg string) (eisenstein.Integer, error) {
	a, err := strconv.Atoi(aArg)
	if err != nil {
		return eisenstein.Integer{}, fmt.Errorf("invalid component a %q: %w", aArg, err)
	}
	b, err := strconv.Atoi(bArg)
	if err != nil {
		return eisenstein.Integer{}, fmt.Errorf("invalid component b %q: %w", bArg, err)
	}
	return eisenstein.New(a, b), nil
}

// parseHex reads a hex from two integer arguments.
func parseHex(aArg, bArg string) (hex.Hex, error) {
	z, err := parseInteger(aArg, bArg)
	if err != nil {
		return hex.Hex{}, err
	}
	return hex.FromInteger(z), nil
}

// newVersionCmd prints version information
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "hexgrid version 0.1.0")
		},
	}
}
