package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jsvensson/h2si/internal/format"
	"github.com/jsvensson/h2si/internal/gradient"
	"github.com/jsvensson/h2si/internal/render"
	"github.com/spf13/cobra"
)

var errNotFormatted = errors.New("some files are not formatted")

func (a *app) newGradientCmd() *cobra.Command {
	var only []string

	cmd := &cobra.Command{
		Use:   "gradient <file>",
		Short: "Sample the gradients in an HCL file and render templates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gradients, err := gradient.Parse(args[0])
			if err != nil {
				return fmt.Errorf("loading gradients: %w", err)
			}

			e := &render.Engine{
				TemplatesDir: a.settings.Templates,
				OutputDir:    a.settings.Out,
				Only:         only,
				Precision:    a.settings.Precision,
			}

			written, err := e.Run(gradients)
			if err != nil {
				return fmt.Errorf("rendering: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d files to %s\n", len(written), a.settings.Out)
			return nil
		},
	}

	cmd.Flags().String("templates", "templates", "templates directory")
	cmd.Flags().String("out", "output", "output directory")
	cmd.Flags().StringArrayVar(&only, "only", nil, "render only the named gradients (can be repeated)")
	a.bind("templates", cmd.Flags().Lookup("templates"))
	a.bind("out", cmd.Flags().Lookup("out"))
	return cmd
}

func (a *app) newFmtCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "fmt [files...]",
		Short: "Format gradient files",
		Long:  "Format one or more gradient files in-place. Prints the name of each file that was modified.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hasErrors := false
			needsFormatting := false

			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Error reading %s: %v\n", path, err)
					hasErrors = true
					continue
				}

				content := string(data)
				if format.IsFormatted(content) {
					continue
				}

				fmt.Fprintln(cmd.OutOrStdout(), path)
				needsFormatting = true

				if !check {
					if err := os.WriteFile(path, []byte(format.Format(content)), 0o644); err != nil {
						fmt.Fprintf(cmd.ErrOrStderr(), "Error writing %s: %v\n", path, err)
						hasErrors = true
					}
				}
			}

			if hasErrors {
				return errors.New("formatting failed")
			}
			if check && needsFormatting {
				return errNotFormatted
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&check, "check", "c", false, "check if files are formatted (do not write changes)")
	return cmd
}
