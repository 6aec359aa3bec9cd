package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jsvensson/h2si"
	"github.com/jsvensson/h2si/internal/gradient"
	"github.com/spf13/cobra"
)

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for k, arg := range args {
		f, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", k+1, err)
		}
		out[k] = f
	}
	return out, nil
}

func (a *app) joinFloats(v []float64) string {
	parts := make([]string, len(v))
	for k, f := range v {
		parts[k] = a.float(f)
	}
	return strings.Join(parts, " ")
}

func (a *app) newEncodeCmd() *cobra.Command {
	var form string
	var degrees bool

	cmd := &cobra.Command{
		Use:   "encode H S I",
		Short: "Encode an HSI colour as H2SI",
		Long:  "Encode an HSI colour as H2SI. H is in radians unless --degrees is set; S and I are in [0, 1].",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloats(args)
			if err != nil {
				return err
			}
			in := h2si.HSI{H: v[0], S: v[1], I: v[2]}
			if degrees {
				in.H = in.H * math.Pi / 180
			}

			switch form {
			case "complex":
				x, err := h2si.HSIToH2SI(in)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), x)
			case "components":
				c, err := h2si.HSIToComponents(in)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), a.joinFloats(c.Slice()))
			default:
				return fmt.Errorf("unknown form %q: want complex or components", form)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&form, "form", "components", "output form: complex or components")
	cmd.Flags().BoolVar(&degrees, "degrees", false, "read H in degrees")
	return cmd
}

func (a *app) newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode X1re X1im X2re X2im X3re X3im",
		Short: "Decode six H2SI components to HSI and RGB",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloats(args)
			if err != nil {
				return err
			}
			hsi, err := h2si.ComponentsToHSI(v)
			if err != nil {
				return err
			}

			var c h2si.Components
			copy(c[:], v)
			if err := c.Validate(); err != nil {
				log.Warningf("decoded value was clamped: %s", err)
			}

			color, _ := gradient.Decode(c)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", hsi, color.Hex())
			return nil
		},
	}
}

func (a *app) newRGBCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rgb <hex>",
		Short: "Show the HSI and H2SI coordinates of a hex colour",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := gradient.ParseColor(args[0])
			if err != nil {
				return err
			}
			v, err := gradient.Encode(c)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "hex:  %s\n", c.Hex())
			fmt.Fprintf(out, "hsi:  %s\n", h2si.RGBToHSI(c.R, c.G, c.B))
			fmt.Fprintf(out, "h2si: %s\n", a.joinFloats(v.Slice()))
			return nil
		},
	}
}

func (a *app) newLerpCmd() *cobra.Command {
	var t float64

	cmd := &cobra.Command{
		Use:   "lerp <hexA> <hexB>",
		Short: "Blend two hex colours in H2SI space",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ca, err := gradient.ParseColor(args[0])
			if err != nil {
				return err
			}
			cb, err := gradient.ParseColor(args[1])
			if err != nil {
				return err
			}
			c, err := gradient.Mix(ca, cb, t)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), c.Hex())
			return nil
		},
	}

	cmd.Flags().Float64Var(&t, "t", 0.5, "blend factor; 0 is the first colour, 1 the second")
	return cmd
}

func (a *app) newDistanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "distance <hexA> <hexB>",
		Short: "Print the H2SI distance between two hex colours",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var v [2]h2si.Components
			for k, arg := range args {
				c, err := gradient.ParseColor(arg)
				if err != nil {
					return err
				}
				if v[k], err = gradient.Encode(c); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.float(h2si.Distance(v[0], v[1])))
			return nil
		},
	}
}
