// SPDX-License-Identifier: EPL-2.0

package fixgen

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/ik5/fixgen/fixture"
	"github.com/ik5/fixgen/formats/aiff"
	"github.com/ik5/fixgen/formats/mp3"
	"github.com/ik5/fixgen/formats/wav"
)

// Verification is the outcome of probing one structured fixture.
type Verification struct {
	Path      string
	Extension string
	// Detail summarises the recognised header, empty on failure.
	Detail string
	// Err is nil when the file was recognised.
	Err error
}

// OK reports whether the file was recognised.
func (v Verification) OK() bool { return v.Err == nil }

// VerifyFile probes path according to its extension. The second result is
// false for extensions without a structured format (txt, raw), which carry
// nothing to verify.
func VerifyFile(path string) (Verification, bool) {
	ext := fixture.NormalizeExtension(filepath.Ext(path))
	v := Verification{Path: path, Extension: ext}

	switch ext {
	case "wav", "aiff", "aif", "mp3":
	default:
		return v, false
	}

	f, err := os.Open(path)
	if err != nil {
		v.Err = fmt.Errorf("%w", err)
		return v, true
	}
	defer f.Close()

	switch ext {
	case "wav":
		info, err := wav.Probe(f)
		v.Err = err
		if err == nil {
			v.Detail = fmt.Sprintf("PCM %d Hz, %d ch, %d-bit, %d data bytes",
				info.Format.SampleRate, info.Format.NumChannels, info.BitDepth, info.PCMSize)
		}
	case "aiff", "aif":
		info, err := aiff.Probe(f)
		v.Err = err
		if err == nil {
			v.Detail = fmt.Sprintf("PCM %d Hz, %d ch, %d-bit",
				info.Format.SampleRate, info.Format.NumChannels, info.BitDepth)
		}
	case "mp3":
		hdr, err := mp3.Probe(f)
		v.Err = err
		if err == nil {
			v.Detail = fmt.Sprintf("%s Layer %d, %d kbps, %d Hz, %s",
				hdr.Version, hdr.Layer, hdr.Bitrate, hdr.SampleRate, hdr.Mode)
		}
	}

	return v, true
}

// Verify probes every structured file in files.
func Verify(files []fixture.File) []Verification {
	var out []Verification
	for _, f := range files {
		if v, ok := VerifyFile(f.Path); ok {
			out = append(out, v)
		}
	}
	return out
}

// VerifyDir probes the structured files under dir matching pattern, a
// doublestar glob such as "mock_file_*.{wav,mp3}" or "**/*.aiff".
func VerifyDir(dir, pattern string) ([]Verification, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern %q", pattern)
	}

	matches, err := doublestar.Glob(os.DirFS(dir), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob %s in %s: %w", pattern, dir, err)
	}

	var out []Verification
	for _, m := range matches {
		if v, ok := VerifyFile(filepath.Join(dir, filepath.FromSlash(m))); ok {
			out = append(out, v)
		}
	}

	return out, nil
}
