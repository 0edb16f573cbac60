// SPDX-License-Identifier: MIT

// Package matrixtool implements the interactive matrix toolbox CLI: cobra
// commands for one-shot file operations and a shell mode that mirrors the
// classic menu loop. The "current matrix" is explicit Session state owned by
// the CLI — the core matrix package stays stateless.
package matrixtool

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/matrixkit/matrix"
)

// ErrNoMatrix signals that an operation needs a current matrix and the
// session does not hold one yet.
var ErrNoMatrix = errors.New("matrixtool: no current matrix")

// Session carries the toolbox state between shell operations. Exactly one
// matrix is current at a time; replacing or clearing it drops the previous
// value (the matrix owns its storage, so nothing else can alias it).
type Session struct {
	cur matrix.Matrix
}

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{}
}

// Has reports whether a current matrix is set.
func (s *Session) Has() bool {
	return s.cur != nil
}

// Current returns the current matrix or ErrNoMatrix.
func (s *Session) Current() (matrix.Matrix, error) {
	if s.cur == nil {
		return nil, ErrNoMatrix
	}

	return s.cur, nil
}

// Replace installs m as the current matrix, dropping any previous one.
func (s *Session) Replace(m matrix.Matrix) {
	s.cur = m
}

// Clear drops the current matrix and reports whether one was set.
func (s *Session) Clear() bool {
	had := s.cur != nil
	s.cur = nil

	return had
}
