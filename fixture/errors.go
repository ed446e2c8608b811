// SPDX-License-Identifier: EPL-2.0

package fixture

import (
	"errors"
	"fmt"

	"github.com/ik5/fixgen/target"
)

var (
	// ErrInvalidRequest indicates the Request failed validation; nothing was written
	ErrInvalidRequest = errors.New("invalid generation request")

	// ErrSizeTooSmall indicates the drawn size cannot hold the format's fixed header
	ErrSizeTooSmall = errors.New("size smaller than format header")

	// ErrSizeTooLarge indicates a size that a format's length fields cannot describe
	ErrSizeTooLarge = errors.New("size larger than format can describe")

	// ErrNoBuilder indicates no builder and no fallback exist for an extension
	ErrNoBuilder = errors.New("no builder for extension")

	// ErrBuildSize indicates a builder wrote a different number of bytes than asked
	ErrBuildSize = errors.New("builder output size mismatch")

	// ErrIO indicates a directory creation or file write failed.
	// It aborts the remaining batch.
	ErrIO = target.ErrIO
)

// FileError is a failure isolated to a single file of a batch.
type FileError struct {
	Index int
	Name  string
	Err   error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("fixture %d (%s): %v", e.Index, e.Name, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }
