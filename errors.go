// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

import "github.com/pkg/errors"

// Sentinel errors. Errors returned by this package wrap one of these,
// so callers match them with errors.Is.
var (
	// ErrNothing is matched by the error of an extraction from an empty [Maybe].
	ErrNothing = errors.New("adt: maybe was nothing")

	// ErrBothBranches is returned by [EitherOf] when both branches are given.
	ErrBothBranches = errors.New("adt: either given both left and right")

	// ErrNoBranch is returned by [EitherOf] when neither branch is given.
	ErrNoBranch = errors.New("adt: either given neither left nor right")
)

// defaultNothingMessage is the message of [Maybe.GetOrErr] and [Maybe.MustGet].
const defaultNothingMessage = "Maybe was Nothing"

// NothingError is the error of an unsafe extraction from an empty [Maybe].
// Its message is the caller-supplied one; it unwraps to [ErrNothing].
type NothingError struct {
	Message string
}

func (e *NothingError) Error() string { return e.Message }

func (e *NothingError) Unwrap() error { return ErrNothing }

func nothingError(message string) error {
	return errors.WithStack(&NothingError{Message: message})
}
