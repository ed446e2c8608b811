// SPDX-License-Identifier: EPL-2.0

// Package text builds filler-text fixtures.
package text

import (
	"fmt"
	"io"

	"github.com/ik5/fixgen/fixture"
)

// Alphabet is the set of characters fixtures are drawn from. Every character
// is a single byte, so byte length and character length agree.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const chunkSize = 8192

// Builder writes size characters drawn uniformly from Alphabet.
type Builder struct{}

func (Builder) HeaderSize() int { return 0 }

func (Builder) Build(w io.Writer, rnd *fixture.Rand, size int) error {
	if size <= 0 {
		return nil
	}

	buf := make([]byte, min(size, chunkSize))

	for written := 0; written < size; {
		chunk := buf[:min(size-written, len(buf))]
		for i := range chunk {
			chunk[i] = Alphabet[rnd.IntN(len(Alphabet))]
		}

		if _, err := w.Write(chunk); err != nil {
			return fmt.Errorf("%w", err)
		}
		written += len(chunk)
	}

	return nil
}
