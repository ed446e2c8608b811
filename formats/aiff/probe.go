// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
)

// Info is what an AIFF reader recovers from a file's headers.
type Info struct {
	Format   *goaudio.Format
	BitDepth int
}

// Probe checks that r is a 16-bit AIFF stream as seen by github.com/go-audio/aiff.
func Probe(r io.Reader) (Info, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return Info{}, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return Info{}, ErrNotAiffFile
	}

	dec.ReadInfo()

	if dec.BitDepth != BitsPerSample {
		return Info{}, ErrOnlyPCM16bitSupported
	}

	format := dec.Format()
	if format == nil || format.NumChannels < 1 {
		return Info{}, ErrUnsupportedAiffLayout
	}

	return Info{Format: format, BitDepth: int(dec.BitDepth)}, nil
}
