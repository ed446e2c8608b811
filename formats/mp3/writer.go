// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	"github.com/ik5/fixgen/fixture"
)

// HeaderSize is the length of the pseudo frame header that starts every fixture.
const HeaderSize = 8

// frameHeader is an MPEG-2 Layer III frame header (no CRC, 48 kbps, 24 kHz,
// mono, original) followed by four reserved zero bytes.
var frameHeader = [HeaderSize]byte{0xFF, 0xF3, 0x64, 0xC4, 0x00, 0x00, 0x00, 0x00}

// FrameHeaderBytes returns a copy of the bytes every MP3 fixture starts with.
func FrameHeaderBytes() [HeaderSize]byte { return frameHeader }

// Builder produces MP3 fixtures: the pseudo frame header followed by size-8
// random bytes. The payload is not decodable audio.
type Builder struct{}

func (Builder) HeaderSize() int { return HeaderSize }

func (Builder) Build(w io.Writer, rnd *fixture.Rand, size int) error {
	if size < HeaderSize {
		return fmt.Errorf("%w: mp3 needs %d bytes, got %d", fixture.ErrSizeTooSmall, HeaderSize, size)
	}

	if _, err := w.Write(frameHeader[:]); err != nil {
		return fmt.Errorf("%w", err)
	}

	return fixture.WriteNoise(w, rnd, size-HeaderSize)
}
