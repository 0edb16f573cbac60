// SPDX-License-Identifier: MIT

package matrixtool

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/katalvlaran/matrixkit/matrix"
)

// ErrInputClosed signals that the interactive input stream ended while a
// value was still expected. Unlike a typo, this is not recoverable by
// re-prompting.
var ErrInputClosed = errors.New("matrixtool: input closed")

// Prompter reads whitespace-delimited numeric tokens from an interactive
// stream. Non-numeric input is rejected with a message and the prompt is
// repeated; only a closed stream aborts.
type Prompter struct {
	sc  *bufio.Scanner
	out io.Writer
}

// NewPrompter wraps in/out into a Prompter. Tokens are whitespace-delimited,
// so values may be entered one per line or many per line.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)

	return &Prompter{sc: sc, out: out}
}

// token pulls the next token, reporting false when the stream is exhausted.
func (p *Prompter) token() (string, bool) {
	if !p.sc.Scan() {
		return "", false
	}

	return p.sc.Text(), true
}

// ReadInt prompts with label until an integer is entered.
func (p *Prompter) ReadInt(label string) (int, error) {
	for {
		fmt.Fprint(p.out, label)
		tok, ok := p.token()
		if !ok {
			return 0, ErrInputClosed
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			fmt.Fprintln(p.out, "Invalid input, expected an integer. Try again.")

			continue
		}

		return n, nil
	}
}

// ReadPositiveInt prompts with label until a strictly positive integer is entered.
func (p *Prompter) ReadPositiveInt(label string) (int, error) {
	for {
		n, err := p.ReadInt(label)
		if err != nil {
			return 0, err
		}
		if n <= 0 {
			fmt.Fprintln(p.out, "Value must be positive. Try again.")

			continue
		}

		return n, nil
	}
}

// ReadFloat prompts with label until a decimal number is entered.
func (p *Prompter) ReadFloat(label string) (float64, error) {
	for {
		fmt.Fprint(p.out, label)
		tok, ok := p.token()
		if !ok {
			return 0, ErrInputClosed
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			fmt.Fprintln(p.out, "Invalid input, expected a number. Try again.")

			continue
		}

		return v, nil
	}
}

// ReadString prompts with label and returns the next raw token.
func (p *Prompter) ReadString(label string) (string, error) {
	fmt.Fprint(p.out, label)
	tok, ok := p.token()
	if !ok {
		return "", ErrInputClosed
	}

	return tok, nil
}

// ReadMatrix interactively collects a full matrix: shape first, then every
// cell in row-major order.
func (p *Prompter) ReadMatrix() (*matrix.Dense, error) {
	rows, err := p.ReadPositiveInt("Rows: ")
	if err != nil {
		return nil, err
	}
	cols, err := p.ReadPositiveInt("Cols: ")
	if err != nil {
		return nil, err
	}

	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, errors.WithMessage(err, "allocating matrix")
	}
	fmt.Fprintf(p.out, "Enter the %dx%d matrix cell by cell:\n", rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := p.ReadFloat(fmt.Sprintf("A[%d][%d] = ", i, j))
			if err != nil {
				return nil, err
			}
			if err = m.Set(i, j, v); err != nil {
				return nil, errors.WithMessagef(err, "storing A[%d][%d]", i, j)
			}
		}
	}

	return m, nil
}
