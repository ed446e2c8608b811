// SPDX-License-Identifier: EPL-2.0

// Package aiff builds AIFF fixtures and checks them with an AIFF reader.
//
// # Fixture Layout
//
// All integers are big-endian:
//   - FORM header (12 bytes): "FORM", size-8, "AIFF"
//   - COMM chunk (26 bytes): 1 channel, frame count, 16-bit, 44100 Hz as 80-bit extended
//   - SSND chunk header (16 bytes): "SSND", size-46, offset 0, block size 0
//   - random noise as sample data
//
// Sizes below HeaderSize fail with fixture.ErrSizeTooSmall.
//
// # Checking Fixtures
//
// Probe uses github.com/go-audio/aiff to confirm a fixture is recognised:
//
//	info, err := aiff.Probe(file)
//	fmt.Println(info.Format.SampleRate, info.BitDepth)
package aiff
