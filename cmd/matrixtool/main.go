// SPDX-License-Identifier: MIT

// Command matrixtool is a dense-matrix arithmetic toolbox: elementwise
// operations, matrix product, transpose, determinant and inverse over
// matrices stored in a plain text format, plus an interactive shell.
package main

import (
	"os"

	"github.com/katalvlaran/matrixkit/internal/matrixtool"
)

func main() {
	if err := matrixtool.NewRootCommand().Execute(); err != nil {
		// Cobra has already printed the error; signal failure to the caller.
		os.Exit(1)
	}
}
