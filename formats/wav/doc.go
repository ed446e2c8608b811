// SPDX-License-Identifier: EPL-2.0

// Package wav builds WAV fixtures and checks them with a RIFF/WAVE reader.
//
// # Fixture Layout
//
// Builder writes the canonical 44-byte PCM header followed by random noise
// as sample data:
//   - RIFF header (12 bytes): "RIFF", size-8, "WAVE"
//   - fmt chunk (24 bytes): PCM, 1 channel, 44100 Hz, 88200 B/s, align 2, 16-bit
//   - data chunk header (8 bytes): "data", size-44
//
// The output is exactly the requested size. Sizes below HeaderSize fail
// with fixture.ErrSizeTooSmall.
//
//	buf := new(bytes.Buffer)
//	err := wav.Builder{}.Build(buf, fixture.NewRand(seed, 0), 1024)
//
// WriteHeader is exported for callers that stream their own sample data.
//
// # Checking Fixtures
//
// Probe parses a stream with github.com/go-audio/wav and reports the format
// and declared data size:
//
//	info, err := wav.Probe(file)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    fmt.Println("Not a WAV file")
//	}
//
// # Errors
//
// The package defines several errors:
//   - ErrNotWavFile: The input is not a RIFF/WAVE file
//   - ErrOnlyPCM16bitSupported: Only 16-bit PCM is accepted
//   - ErrUnsupportedWavLayout: No usable fmt chunk
//   - ErrUnsupportedWavChunks: No data chunk
package wav
