// SPDX-License-Identifier: MIT

package matrixtool

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/pkg/errors"

	"github.com/katalvlaran/matrixkit/matrix"
)

// shellMenu mirrors the classic toolbox menu. A closed input stream quits
// the shell the same way option 0 does.
const shellMenu = `
=== Matrix Toolbox ===
 1) Enter a new matrix
 2) Generate a random matrix
 3) Load a matrix from file
 4) Show the current matrix
 5) Save the current matrix to file
 6) Add another matrix
 7) Subtract another matrix
 8) Multiply by another matrix
 9) Transpose the current matrix
10) Determinant (square only)
11) Inverse (square, non-singular)
12) Drop the current matrix
 0) Quit
`

// Shell drives the interactive session: a menu loop over an explicit Session
// holding the current matrix. Operation failures (shape mismatch, singular
// input, unreadable file) are reported and the loop continues; only a closed
// input stream or option 0 ends it.
type Shell struct {
	sess *Session
	p    *Prompter
	out  io.Writer
	rng  *rand.Rand // nil means time-seeded fills
}

// NewShell builds a shell reading menu choices and values from in and
// writing prompts and results to out.
func NewShell(in io.Reader, out io.Writer) *Shell {
	return &Shell{
		sess: NewSession(),
		p:    NewPrompter(in, out),
		out:  out,
	}
}

// Run executes the menu loop until quit or end of input.
func (sh *Shell) Run() error {
	for {
		fmt.Fprint(sh.out, shellMenu)
		choice, err := sh.p.ReadInt("Select an action: ")
		if err != nil {
			// End of input is a normal way to leave the shell.
			if errors.Is(err, ErrInputClosed) {
				return nil
			}

			return err
		}

		quit, err := sh.dispatch(choice)
		if err != nil {
			if errors.Is(err, ErrInputClosed) {
				return nil
			}
			// Recoverable operation failure: report and keep the session alive.
			fmt.Fprintf(sh.out, "Error: %v\n", err)
		}
		if quit {
			fmt.Fprintln(sh.out, "Bye!")

			return nil
		}
	}
}

// dispatch runs one menu action. It returns quit=true for option 0 and an
// error for recoverable failures (reported by the caller).
func (sh *Shell) dispatch(choice int) (bool, error) {
	switch choice {
	case 1: // enter manually
		m, err := sh.p.ReadMatrix()
		if err != nil {
			return false, err
		}
		sh.sess.Replace(m)
		fmt.Fprintf(sh.out, "Current matrix is now %dx%d.\n", m.Rows(), m.Cols())

	case 2: // random fill
		m, err := sh.promptRandom()
		if err != nil {
			return false, err
		}
		sh.sess.Replace(m)
		fmt.Fprintf(sh.out, "Current matrix is now %dx%d.\n", m.Rows(), m.Cols())

	case 3: // load from file
		path, err := sh.p.ReadString("File to load: ")
		if err != nil {
			return false, err
		}
		m, err := matrix.LoadFile(path)
		if err != nil {
			return false, err
		}
		sh.sess.Replace(m)
		fmt.Fprintf(sh.out, "Loaded %dx%d matrix from %s.\n", m.Rows(), m.Cols(), path)

	case 4: // show
		cur, err := sh.sess.Current()
		if err != nil {
			return false, err
		}
		printMatrix(sh.out, cur)

	case 5: // save
		cur, err := sh.sess.Current()
		if err != nil {
			return false, err
		}
		path, err := sh.p.ReadString("File to save to: ")
		if err != nil {
			return false, err
		}
		if err = matrix.SaveFile(path, cur); err != nil {
			return false, err
		}
		fmt.Fprintf(sh.out, "Saved to %s.\n", path)

	case 6:
		return false, sh.binaryOp("sum", matrix.Add)
	case 7:
		return false, sh.binaryOp("difference", matrix.Sub)
	case 8:
		return false, sh.binaryOp("product", matrix.Mul)

	case 9: // transpose replaces the current matrix
		cur, err := sh.sess.Current()
		if err != nil {
			return false, err
		}
		res, err := matrix.Transpose(cur)
		if err != nil {
			return false, err
		}
		sh.sess.Replace(res)
		fmt.Fprintf(sh.out, "Transposed; the matrix is now %dx%d.\n", res.Rows(), res.Cols())

	case 10: // determinant
		cur, err := sh.sess.Current()
		if err != nil {
			return false, err
		}
		det, err := matrix.Determinant(cur)
		if err != nil {
			return false, err
		}
		fmt.Fprintf(sh.out, "Determinant = %.12g\n", det)

	case 11: // inverse
		cur, err := sh.sess.Current()
		if err != nil {
			return false, err
		}
		inv, err := matrix.Inverse(cur)
		if err != nil {
			return false, err
		}
		fmt.Fprintln(sh.out, "Inverse:")
		printMatrix(sh.out, inv)

	case 12: // drop
		if sh.sess.Clear() {
			fmt.Fprintln(sh.out, "Current matrix dropped.")
		} else {
			fmt.Fprintln(sh.out, "No current matrix.")
		}

	case 0:
		return true, nil

	default:
		fmt.Fprintln(sh.out, "Unknown menu option.")
	}

	return false, nil
}

// binaryOp applies op to (current, second operand) and prints the result.
// The current matrix is left as it was: results are displayed, not adopted.
func (sh *Shell) binaryOp(label string, op func(a, b matrix.Matrix) (matrix.Matrix, error)) error {
	cur, err := sh.sess.Current()
	if err != nil {
		return err
	}
	other, err := sh.secondOperand()
	if err != nil {
		return err
	}
	res, err := op(cur, other)
	if err != nil {
		return err
	}
	fmt.Fprintf(sh.out, "Result (%s):\n", label)
	printMatrix(sh.out, res)

	return nil
}

// secondOperand collects the other matrix for a binary operation.
func (sh *Shell) secondOperand() (matrix.Matrix, error) {
	fmt.Fprintln(sh.out, "Second operand: 1) enter  2) random  3) load from file")
	choice, err := sh.p.ReadInt("Choice: ")
	if err != nil {
		return nil, err
	}
	switch choice {
	case 1:
		return sh.p.ReadMatrix()
	case 2:
		return sh.promptRandom()
	case 3:
		path, err := sh.p.ReadString("File to load: ")
		if err != nil {
			return nil, err
		}

		return matrix.LoadFile(path)
	default:
		return nil, errors.Errorf("unknown operand choice %d", choice)
	}
}

// promptRandom asks for shape and range, then generates the fill.
func (sh *Shell) promptRandom() (*matrix.Dense, error) {
	rows, err := sh.p.ReadPositiveInt("Rows: ")
	if err != nil {
		return nil, err
	}
	cols, err := sh.p.ReadPositiveInt("Cols: ")
	if err != nil {
		return nil, err
	}
	minV, err := sh.p.ReadFloat("Min value: ")
	if err != nil {
		return nil, err
	}
	maxV, err := sh.p.ReadFloat("Max value: ")
	if err != nil {
		return nil, err
	}

	return matrix.Random(rows, cols, minV, maxV, sh.rng)
}
