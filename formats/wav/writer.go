// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/ik5/fixgen/fixture"
)

// Canonical layout written by Builder: mono 16-bit PCM at 44.1 kHz.
const (
	HeaderSize    = 44
	SampleRate    = 44100
	NumChannels   = 1
	BitsPerSample = 16
)

// WriteHeader writes a 44-byte PCM WAV header announcing dataSize bytes of samples.
func WriteHeader(w io.Writer, sampleRate int, numChannels uint16, bitsPerSample uint16, dataSize uint32) error {
	byteRate := uint32(sampleRate) * uint32(numChannels) * uint32(bitsPerSample/8)
	blockAlign := numChannels * (bitsPerSample / 8)
	riffSize := 36 + dataSize

	header := make([]byte, HeaderSize)

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], 1)  // PCM format
	binary.LittleEndian.PutUint16(header[22:24], numChannels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// Builder produces WAV fixtures: a canonical header followed by random noise
// as sample data. The file is exactly the requested size, so the RIFF size
// field is size-8 and the data size field is size-44.
type Builder struct{}

func (Builder) HeaderSize() int { return HeaderSize }

func (Builder) Build(w io.Writer, rnd *fixture.Rand, size int) error {
	if size < HeaderSize {
		return fmt.Errorf("%w: wav needs %d bytes, got %d", fixture.ErrSizeTooSmall, HeaderSize, size)
	}
	if uint64(size) > math.MaxUint32 {
		return fmt.Errorf("%w: wav sizes stop at %d bytes, got %d", fixture.ErrSizeTooLarge, uint64(math.MaxUint32), size)
	}

	dataSize := size - HeaderSize
	if err := WriteHeader(w, SampleRate, NumChannels, BitsPerSample, uint32(dataSize)); err != nil {
		return err
	}

	return fixture.WriteNoise(w, rnd, dataSize)
}
