// SPDX-License-Identifier: EPL-2.0

// Package mp3 builds MP3-shaped fixtures and inspects MPEG frame headers.
//
// Fixtures are not playable. They carry one valid-looking frame header so
// that tools sniffing for an MPEG sync word accept the file, followed by
// random bytes.
//
// # Fixture Layout
//
//	offset  bytes                   meaning
//	0       FF F3                   sync, MPEG-2, Layer III, no CRC
//	2       64                      48 kbps, 24000 Hz, no padding
//	3       C4                      mono, original
//	4       00 00 00 00             reserved
//	8       random                  size-8 bytes
//
// # Building Fixtures
//
//	buf := new(bytes.Buffer)
//	err := mp3.Builder{}.Build(buf, fixture.NewRand(seed, 0), 4096)
//
// Sizes below HeaderSize fail with fixture.ErrSizeTooSmall.
//
// # Inspecting Headers
//
// Probe decodes the first four bytes of a stream as a Layer III frame header:
//
//	hdr, err := mp3.Probe(file)
//	fmt.Println(hdr.Version, hdr.Bitrate, hdr.SampleRate, hdr.Mode)
//
// Layer I and II headers are rejected with ErrOnlyLayer3Supported.
package mp3
