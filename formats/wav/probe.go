// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// Info is what a RIFF/WAVE reader recovers from a file's headers.
type Info struct {
	Format   *goaudio.Format
	BitDepth int
	// PCMSize is the declared size of the data chunk in bytes.
	PCMSize int
}

// Probe checks that r is a PCM 16-bit WAV stream as seen by github.com/go-audio/wav,
// and reports its header fields. Sample data is not read.
func Probe(r io.ReadSeeker) (Info, error) {
	dec := gowav.NewDecoder(r)

	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return Info{}, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}

	if dec.NumChans < 1 || dec.SampleRate == 0 {
		return Info{}, ErrUnsupportedWavLayout
	}

	if dec.WavAudioFormat != 1 || dec.BitDepth != BitsPerSample {
		return Info{}, ErrOnlyPCM16bitSupported
	}

	if err := dec.FwdToPCM(); err != nil {
		return Info{}, fmt.Errorf("%w: %w", ErrUnsupportedWavChunks, err)
	}

	return Info{
		Format:   dec.Format(),
		BitDepth: int(dec.BitDepth),
		PCMSize:  dec.PCMSize,
	}, nil
}
