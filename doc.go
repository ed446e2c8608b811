// SPDX-License-Identifier: EPL-2.0

// Package fixgen generates synthetic test fixtures: batches of files with
// random or pseudo-structured content, sized within a caller-chosen range.
//
// The load-bearing contract is the boundaries, not the payload: every file
// is exactly its drawn size, and structured formats carry byte-exact headers.
// Payload bytes are random and not meant to be playable or secure.
//
// # Supported Formats
//
// The default registry maps extensions to builders:
//   - txt: letters and digits via formats/text
//   - wav: 44-byte PCM header plus noise via formats/wav
//   - mp3: 8-byte MPEG frame header plus noise via formats/mp3
//   - aiff, aif: 54-byte AIFF header plus noise via formats/aiff
//   - anything else: random bytes via formats/raw
//
// # Quick Start
//
// The simplest way to generate fixtures is GenerateFiles:
//
//	report, err := fixgen.GenerateFiles(ctx, "testdata", fixture.Request{
//	    Count:      10,
//	    Extensions: []string{"txt", "wav", "mp3"},
//	    MinSizeKB:  1,
//	    MaxSizeKB:  64,
//	})
//
//	for _, f := range report.Files {
//	    fmt.Println(f.Name, f.Size)
//	}
//
// Files are named <prefix><index>.<ext>, e.g. mock_file_000003.wav. The
// index keeps names unique within a call.
//
// # Sizes Below a Header
//
// A WAV file cannot be smaller than 44 bytes, nor an MP3 fixture smaller
// than 8. When the drawn size is too small the generator applies a policy:
//   - fixture.Reject (default): that file fails with fixture.ErrSizeTooSmall
//     and is listed in Report.Failures; the rest of the batch continues
//   - fixture.Clamp: the size is raised to the header size and a
//     ConstraintAdjusted notice is emitted
//
// # Observing Progress
//
// Each written file produces a notice, delivered to the WithNotify callback
// and logged through the zap logger given with WithLogger:
//
//	gen := fixture.NewGenerator(fixgen.NewRegistry(),
//	    fixture.WithNotify(func(n fixture.Notice) { fmt.Println(n) }),
//	    fixture.WithLogger(logger),
//	)
//
// # Reproducibility and Concurrency
//
// fixture.WithSeed makes a batch byte-for-byte reproducible. Each file draws
// from its own stream keyed by its index, so fixture.WithWorkers can build
// files concurrently without changing the output; only the order of notices
// changes.
//
// # Checking Output
//
// Verify and VerifyDir re-read structured fixtures with real format readers
// (github.com/go-audio/wav, github.com/go-audio/aiff) to confirm a permissive
// consumer recognises them.
package fixgen
