// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"
)

type Version int

const (
	MPEG25 Version = iota
	versionReserved
	MPEG2
	MPEG1
)

func (v Version) String() string {
	switch v {
	case MPEG1:
		return "MPEG-1"
	case MPEG2:
		return "MPEG-2"
	case MPEG25:
		return "MPEG-2.5"
	default:
		return "reserved"
	}
}

type ChannelMode int

const (
	Stereo ChannelMode = iota
	JointStereo
	DualChannel
	Mono
)

func (m ChannelMode) String() string {
	return [...]string{"stereo", "joint stereo", "dual channel", "mono"}[m&3]
}

// FrameHeader holds the fields of a 4-byte MPEG audio frame header.
type FrameHeader struct {
	Version    Version
	Layer      int
	Protected  bool
	Bitrate    int // kbps
	SampleRate int // Hz
	Padding    bool
	Mode       ChannelMode
	Original   bool
}

// Layer III bitrates in kbps, indexed by the 4-bit bitrate field.
var (
	bitratesV1L3 = [16]int{0, 32, 40, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320, -1}
	bitratesV2L3 = [16]int{0, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160, -1}
)

var sampleRates = map[Version][3]int{
	MPEG1:  {44100, 48000, 32000},
	MPEG2:  {22050, 24000, 16000},
	MPEG25: {11025, 12000, 8000},
}

// ParseFrameHeader decodes a Layer III frame header.
func ParseFrameHeader(b [4]byte) (FrameHeader, error) {
	if b[0] != 0xFF || b[1]&0xE0 != 0xE0 {
		return FrameHeader{}, ErrNoFrameSync
	}

	h := FrameHeader{
		Version:   Version((b[1] >> 3) & 0x03),
		Layer:     4 - int((b[1]>>1)&0x03),
		Protected: b[1]&0x01 == 0,
		Padding:   (b[2]>>1)&0x01 == 1,
		Mode:      ChannelMode(b[3] >> 6),
		Original:  (b[3]>>2)&0x01 == 1,
	}

	if h.Version == versionReserved {
		return FrameHeader{}, fmt.Errorf("%w: reserved version", ErrInvalidFrameHeader)
	}
	if h.Layer != 3 {
		return FrameHeader{}, fmt.Errorf("%w: layer %d", ErrOnlyLayer3Supported, h.Layer)
	}

	bitrates := bitratesV2L3
	if h.Version == MPEG1 {
		bitrates = bitratesV1L3
	}
	h.Bitrate = bitrates[b[2]>>4]
	if h.Bitrate <= 0 {
		return FrameHeader{}, fmt.Errorf("%w: bitrate index %d", ErrInvalidFrameHeader, b[2]>>4)
	}

	srIndex := (b[2] >> 2) & 0x03
	if srIndex == 3 {
		return FrameHeader{}, fmt.Errorf("%w: reserved sample rate", ErrInvalidFrameHeader)
	}
	h.SampleRate = sampleRates[h.Version][srIndex]

	return h, nil
}

// Probe reads and decodes the frame header at the start of r.
func Probe(r io.Reader) (FrameHeader, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return FrameHeader{}, fmt.Errorf("%w: %w", ErrNoFrameSync, err)
	}

	return ParseFrameHeader(b)
}
