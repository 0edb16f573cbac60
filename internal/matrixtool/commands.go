// SPDX-License-Identifier: MIT

package matrixtool

import (
	"fmt"
	"io"
	"math/rand"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/matrixkit/matrix"
)

// NewRootCommand assembles the matrixtool command tree: one-shot file
// operations plus the interactive shell. Every subcommand reads and writes
// matrices in the plain text format (first line "rows cols", then the rows).
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "matrixtool",
		Short:        "Dense-matrix arithmetic toolbox",
		Long:         "matrixtool creates, combines and inverts dense float64 matrices stored in a plain text format.",
		SilenceUsage: true,
	}

	root.AddCommand(
		newShowCmd(),
		newBinaryCmd("add", "Add two matrices elementwise", matrix.Add),
		newBinaryCmd("sub", "Subtract the right matrix from the left elementwise", matrix.Sub),
		newBinaryCmd("mul", "Multiply two matrices (left.cols must equal right.rows)", matrix.Mul),
		newTransposeCmd(),
		newDetCmd(),
		newInvCmd(),
		newRandomCmd(),
		newNewCmd(),
		newShellCmd(),
	)

	return root
}

// printMatrix renders m for human consumption, one aligned row per line.
func printMatrix(w io.Writer, m matrix.Matrix) {
	fmt.Fprintf(w, "Matrix %dx%d:\n", m.Rows(), m.Cols())
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				// Shape was just queried; a read failure here is a bug worth surfacing.
				fmt.Fprintf(w, "  <error: %v>", err)

				continue
			}
			fmt.Fprintf(w, "%10.4g ", v)
		}
		fmt.Fprintln(w)
	}
}

// emit writes the result to outPath when given, otherwise pretty-prints it.
func emit(cmd *cobra.Command, m matrix.Matrix, outPath string) error {
	if outPath == "" {
		printMatrix(cmd.OutOrStdout(), m)

		return nil
	}
	if err := matrix.SaveFile(outPath, m); err != nil {
		return errors.WithMessagef(err, "saving result to %s", outPath)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %dx%d matrix to %s\n", m.Rows(), m.Cols(), outPath)

	return nil
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <matrix.txt>",
		Short: "Load a matrix file and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := matrix.LoadFile(args[0])
			if err != nil {
				return errors.WithMessagef(err, "loading %s", args[0])
			}
			printMatrix(cmd.OutOrStdout(), m)

			return nil
		},
	}
}

// newBinaryCmd builds add/sub/mul: two file operands, one result.
func newBinaryCmd(use, short string, op func(a, b matrix.Matrix) (matrix.Matrix, error)) *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   use + " <left.txt> <right.txt>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := matrix.LoadFile(args[0])
			if err != nil {
				return errors.WithMessagef(err, "loading %s", args[0])
			}
			b, err := matrix.LoadFile(args[1])
			if err != nil {
				return errors.WithMessagef(err, "loading %s", args[1])
			}
			res, err := op(a, b)
			if err != nil {
				return err
			}

			return emit(cmd, res, outPath)
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the result to this file instead of stdout")

	return cmd
}

func newTransposeCmd() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "transpose <matrix.txt>",
		Short: "Transpose a matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := matrix.LoadFile(args[0])
			if err != nil {
				return errors.WithMessagef(err, "loading %s", args[0])
			}
			res, err := matrix.Transpose(m)
			if err != nil {
				return err
			}

			return emit(cmd, res, outPath)
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the result to this file instead of stdout")

	return cmd
}

func newDetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "det <matrix.txt>",
		Short: "Determinant of a square matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := matrix.LoadFile(args[0])
			if err != nil {
				return errors.WithMessagef(err, "loading %s", args[0])
			}
			det, err := matrix.Determinant(m)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Determinant = %.12g\n", det)

			return nil
		},
	}
}

func newInvCmd() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "inv <matrix.txt>",
		Short: "Inverse of a square, non-singular matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := matrix.LoadFile(args[0])
			if err != nil {
				return errors.WithMessagef(err, "loading %s", args[0])
			}
			inv, err := matrix.Inverse(m)
			if err != nil {
				return err
			}

			return emit(cmd, inv, outPath)
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the result to this file instead of stdout")

	return cmd
}

func newRandomCmd() *cobra.Command {
	var (
		outPath    string
		minV, maxV float64
		seed       int64
	)
	cmd := &cobra.Command{
		Use:   "random <rows> <cols>",
		Short: "Generate a matrix with uniform random entries in [min,max]",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.WithMessagef(err, "parsing rows %q", args[0])
			}
			cols, err := strconv.Atoi(args[1])
			if err != nil {
				return errors.WithMessagef(err, "parsing cols %q", args[1])
			}

			// A set seed gives a reproducible fill; otherwise time-seeded.
			var rng *rand.Rand
			if cmd.Flags().Changed("seed") {
				rng = rand.New(rand.NewSource(seed))
			}
			m, err := matrix.Random(rows, cols, minV, maxV, rng)
			if err != nil {
				return err
			}

			return emit(cmd, m, outPath)
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the result to this file instead of stdout")
	cmd.Flags().Float64Var(&minV, "min", 0, "lower bound of the uniform range")
	cmd.Flags().Float64Var(&maxV, "max", 1, "upper bound of the uniform range")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for a reproducible fill (default: time-seeded)")

	return cmd
}

func newNewCmd() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Enter a matrix interactively, cell by cell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
			m, err := p.ReadMatrix()
			if err != nil {
				return err
			}

			return emit(cmd, m, outPath)
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the result to this file instead of stdout")

	return cmd
}

func newShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive menu-driven session with a current matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewShell(cmd.InOrStdin(), cmd.OutOrStdout()).Run()
		},
	}
}
