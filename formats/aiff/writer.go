// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"math/bits"

	"github.com/ik5/fixgen/fixture"
)

// Layout written by Builder: mono 16-bit PCM at 44.1 kHz.
const (
	HeaderSize    = 54
	SampleRate    = 44100
	NumChannels   = 1
	BitsPerSample = 16
)

// WriteHeader writes a 54-byte AIFF header (FORM, COMM and the SSND chunk
// header) announcing dataSize bytes of big-endian samples.
func WriteHeader(w io.Writer, sampleRate uint32, numChannels uint16, bitsPerSample uint16, dataSize uint32) error {
	frameSize := uint32(numChannels) * uint32(bitsPerSample/8)
	frames := uint32(0)
	if frameSize > 0 {
		frames = dataSize / frameSize
	}

	header := make([]byte, HeaderSize)

	// FORM header (12 bytes)
	copy(header[0:4], "FORM")
	binary.BigEndian.PutUint32(header[4:8], HeaderSize-8+dataSize)
	copy(header[8:12], "AIFF")

	// COMM chunk (26 bytes)
	copy(header[12:16], "COMM")
	binary.BigEndian.PutUint32(header[16:20], 18)
	binary.BigEndian.PutUint16(header[20:22], numChannels)
	binary.BigEndian.PutUint32(header[22:26], frames)
	binary.BigEndian.PutUint16(header[26:28], bitsPerSample)
	putExtended(header[28:38], sampleRate)

	// SSND chunk header (16 bytes): size, offset, block size
	copy(header[38:42], "SSND")
	binary.BigEndian.PutUint32(header[42:46], 8+dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// putExtended stores v as an 80-bit IEEE 754 extended float, as used by the
// COMM chunk's sample rate field.
func putExtended(b []byte, v uint32) {
	clear(b[:10])
	if v == 0 {
		return
	}

	shift := bits.Len32(v) - 1
	binary.BigEndian.PutUint16(b[0:2], uint16(16383+shift))
	binary.BigEndian.PutUint64(b[2:10], uint64(v)<<(63-shift))
}

// Builder produces AIFF fixtures: the header followed by random noise.
// FORM size is size-8 and SSND size is size-46.
type Builder struct{}

func (Builder) HeaderSize() int { return HeaderSize }

func (Builder) Build(w io.Writer, rnd *fixture.Rand, size int) error {
	if size < HeaderSize {
		return fmt.Errorf("%w: aiff needs %d bytes, got %d", fixture.ErrSizeTooSmall, HeaderSize, size)
	}
	if uint64(size) > math.MaxUint32 {
		return fmt.Errorf("%w: aiff sizes stop at %d bytes, got %d", fixture.ErrSizeTooLarge, uint64(math.MaxUint32), size)
	}

	dataSize := size - HeaderSize
	if err := WriteHeader(w, SampleRate, NumChannels, BitsPerSample, uint32(dataSize)); err != nil {
		return err
	}

	return fixture.WriteNoise(w, rnd, dataSize)
}
