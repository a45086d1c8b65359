package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gravitas-games/eisenhex/pkg/eisenstein"
)

func (a *app) calcCmd() *cobra.Command {
	calc := &cobra.Command{
		Use:   "calc",
		Short: "Eisenstein integer arithmetic",
	}

	ops := []struct {
		name, short string
		fn          func(x, y eisenstein.Integer) eisenstein.Integer
	}{
		{"add", "Add two Eisenstein integers", eisenstein.Integer.Add},
		{"mul", "Multiply two Eisenstein integers", eisenstein.Integer.Mul},
	}
	for _, op := range ops {
		op := op
		calc.AddCommand(&cobra.Command{
			Use:   op.name + " <a1> <b1> <a2> <b2>",
			Short: op.short,
			Args:  cobra.ExactArgs(4),
			RunE: func(cmd *cobra.Command, args []string) error {
				x, err := parseInteger(args[0], args[1])
				if err != nil {
					return err
				}
				y, err := parseInteger(args[2], args[3])
				if err != nil {
					return err
				}

				z := op.fn(x, y)
				a.log.Debugf("%s %v %v = %v", op.name, x, y, z)
				fmt.Fprintln(cmd.OutOrStdout(), z)
				return nil
			},
		})
	}
	return calc
}
