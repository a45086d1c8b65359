package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gravitas-games/eisenhex/pkg/hex"
)

func (a *app) neighborsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "neighbors <a> <b>",
		Short: "List the six neighbors of a hex",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := parseHex(args[0], args[1])
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "DIRECTION\tA\tB\tX\tY")
			for _, d := range hex.Directions {
				n := h.Neighbor(d)
				x, y := a.layout.ToPixel(n)
				a.log.WithFields(logrus.Fields{"from": h.String(), "direction": d.String(), "to": n.String()}).Debug("neighbor")
				fmt.Fprintf(w, "%s\t%d\t%d\t%.2f\t%.2f\n", d, n.Integer().A(), n.Integer().B(), x, y)
			}
			return w.Flush()
		},
	}
}

func (a *app) neighborCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "neighbor <a> <b> <direction>",
		Short: "Print the neighbor of a hex in one direction",
		Long: `Print the neighbor of a hex in one direction.

Directions: above, below, left-above, left-below, right-above, right-below.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := parseHex(args[0], args[1])
			if err != nil {
				return err
			}
			d, err := hex.ParseDirection(args[2])
			if err != nil {
				return err
			}

			n := h.Neighbor(d)
			a.log.WithFields(logrus.Fields{"from": h.String(), "direction": d.String(), "to": n.String()}).Debug("neighbor")
			fmt.Fprintf(cmd.OutOrStdout(), "%d %d\n", n.Integer().A(), n.Integer().B())
			return nil
		},
	}
}

func (a *app) coordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "coords <a> <b>",
		Short: "Print the planar and pixel coordinates of a hex",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := parseHex(args[0], args[1])
			if err != nil {
				return err
			}

			ux, uy := h.Coordinates()
			px, py := a.layout.ToPixel(h)
			a.log.WithField("hex", h.String()).Debugf("projected with size %g", a.layout.Size)
			fmt.Fprintf(cmd.OutOrStdout(), "unit  %.4f %.4f\npixel %.2f %.2f\n", ux, uy, px, py)
			return nil
		},
	}
}
