package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/abhisek/triclass/internal/triangle"
	"github.com/abhisek/triclass/internal/ui/theme"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "triclass <side_1> <side_2> <side_3>",
		Short: "Classify a triangle based on side length",
		Long: `Classify a triangle from its three side lengths.

Reports equilateral, isosceles or scalene, prefixed with "right" when the
sides satisfy the Pythagorean relation. Sides that cannot form a triangle
are reported as invalid.`,
		Example:       "  triclass 3 4 5\n  triclass 2.8 2.8 1",
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          runClassify,
	}
	root.PersistentFlags().Bool("debug", false, "Log parsed sides and the result to stderr")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	root.AddCommand(newVersionCmd())
	return root
}

// Execute runs the command line against os.Args.
func Execute() error {
	return execute(newRootCmd(), os.Args[1:])
}

func execute(root *cobra.Command, args []string) error {
	root.SetArgs(normalizeArgs(args))
	cmd, err := root.ExecuteC()
	if err != nil {
		reportError(root.ErrOrStderr(), cmd, err)
	}
	return err
}

// runClassify parses the three sides and prints the classification.
func runClassify(cmd *cobra.Command, args []string) error {
	sides, err := triangle.ParseSides(args)
	if err != nil {
		return &UsageError{Err: err}
	}

	result := triangle.Classify(sides[0], sides[1], sides[2])
	newLogger(cmd).Debug("classified triangle",
		"side_1", sides[0],
		"side_2", sides[1],
		"side_3", sides[2],
		"result", result,
	)

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "This is a %s triangle.\n", result)
	return err
}

func reportError(w io.Writer, cmd *cobra.Command, err error) {
	_, _ = lipgloss.Fprintln(w, theme.ErrorLabel.Render("Error:"), err.Error())

	var usage *UsageError
	if errors.As(err, &usage) && cmd != nil {
		_, _ = lipgloss.Fprintln(w, theme.Hint.Render("usage: "+cmd.UseLine()))
	}
}
