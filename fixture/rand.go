// SPDX-License-Identifier: EPL-2.0

package fixture

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/rand/v2"
)

// Rand is the per-file random source handed to builders.
// It offers the math/rand/v2 API plus a fast Read for bulk noise.
type Rand struct {
	*rand.Rand

	src *rand.ChaCha8
}

// NewRand returns a deterministic source for (seed, stream).
// The generator uses the file index as stream, so a file's content does not
// depend on the order in which files are produced.
func NewRand(seed, stream uint64) *Rand {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[0:8], seed)
	binary.LittleEndian.PutUint64(key[8:16], stream)

	src := rand.NewChaCha8(key)

	return &Rand{Rand: rand.New(src), src: src}
}

// Read fills p with random bytes. It never fails.
func (r *Rand) Read(p []byte) (int, error) {
	return r.src.Read(p)
}

const noiseChunkSize = 8192

// WriteNoise writes n random bytes to w in chunks.
func WriteNoise(w io.Writer, rnd *Rand, n int) error {
	if n <= 0 {
		return nil
	}

	buf := make([]byte, min(n, noiseChunkSize))

	for n > 0 {
		chunk := buf[:min(n, len(buf))]
		_, _ = rnd.Read(chunk)

		if _, err := w.Write(chunk); err != nil {
			return fmt.Errorf("%w", err)
		}
		n -= len(chunk)
	}

	return nil
}
