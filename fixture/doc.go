// SPDX-License-Identifier: EPL-2.0

// Package fixture provides the fixture generation engine.
//
// This package contains the building blocks shared by every format:
//   - Request, the declarative description of one batch
//   - Builder, the interface each format implements
//   - Registry, mapping extensions to builders with a fallback
//   - Generator, which validates, names, sizes, builds and writes files
//   - Rand, a deterministic per-file random source
//
// # Generation Pipeline
//
// For each index i in [0, Count) the generator:
//  1. draws an extension uniformly from Request.Extensions
//  2. draws a size uniformly from [MinSizeKB, MaxSizeKB] KiB
//  3. names the file Prefix + zero-padded i + "." + extension
//  4. asks the registry's builder for exactly that many bytes
//  5. writes them through target.FS, overwriting any existing file
//  6. emits a Completed notice
//
// The request is validated and the target directory created before the
// first file. Each file is independent; a failed file never affects files
// already written.
//
// # Errors
//
//   - ErrInvalidRequest: the request was rejected, nothing was written
//   - ErrIO: directory creation or a write failed; the batch stops
//   - ErrSizeTooSmall: the drawn size cannot hold the format header (Reject policy)
//   - ErrNoBuilder: unknown extension and no fallback registered
//
// Per-file errors are wrapped in *FileError and collected in Report.Failures:
//
//	report, err := gen.Generate(ctx, dir, req)
//	if err != nil {
//	    return err // invalid request, I/O failure or cancellation
//	}
//	for _, f := range report.Failures {
//	    if errors.Is(f.Err, fixture.ErrSizeTooSmall) {
//	        // ...
//	    }
//	}
//
// # Writing a Builder
//
// A builder writes exactly size bytes and reports its fixed header size:
//
//	type zeros struct{}
//
//	func (zeros) HeaderSize() int { return 0 }
//	func (zeros) Build(w io.Writer, _ *fixture.Rand, size int) error {
//	    _, err := w.Write(make([]byte, size))
//	    return err
//	}
//
//	reg.Register("zero", zeros{})
package fixture
