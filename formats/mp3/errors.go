// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

var (
	// ErrNoFrameSync indicates the data does not start with an MPEG frame sync word
	ErrNoFrameSync = errors.New("no MPEG frame sync")

	// ErrInvalidFrameHeader indicates a reserved or forbidden header field
	ErrInvalidFrameHeader = errors.New("invalid MPEG frame header")

	// ErrOnlyLayer3Supported indicates a Layer I or II header
	ErrOnlyLayer3Supported = errors.New("only MPEG Layer III supported")
)
