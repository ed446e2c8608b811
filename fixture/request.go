// SPDX-License-Identifier: EPL-2.0

package fixture

import (
	"fmt"
	"math"
	"strings"
)

// KiB is the unit of MinSizeKB and MaxSizeKB.
const KiB = 1024

// SizeLimitKB is the largest accepted Request.MaxSizeKB. It keeps every size
// representable in the 32-bit length fields of RIFF and AIFF headers.
const SizeLimitKB = math.MaxUint32 / KiB

// DefaultFilePrefix is used when Request.FilePrefix is empty.
const DefaultFilePrefix = "mock_file_"

// Request describes one batch of fixtures.
type Request struct {
	// Count is the number of files to produce. Must be positive.
	Count int
	// Extensions are the format tags to draw from, e.g. "txt", "wav", "mp3".
	// Unknown tags produce opaque random bytes.
	Extensions []string
	// MinSizeKB and MaxSizeKB bound every file's size, inclusive, in KiB.
	MinSizeKB int
	MaxSizeKB int
	// FilePrefix starts every file name. Defaults to DefaultFilePrefix.
	FilePrefix string
}

// Validate checks the request before anything is written.
// Every failure wraps ErrInvalidRequest.
func (r Request) Validate() error {
	if r.Count <= 0 {
		return fmt.Errorf("%w: count must be positive, got %d", ErrInvalidRequest, r.Count)
	}

	if len(r.Extensions) == 0 {
		return fmt.Errorf("%w: extensions must not be empty", ErrInvalidRequest)
	}

	for _, ext := range r.Extensions {
		tag := trimExtension(ext)
		if tag == "" {
			return fmt.Errorf("%w: empty extension in %q", ErrInvalidRequest, r.Extensions)
		}
		if strings.ContainsAny(tag, `/\`) || tag == "." || tag == ".." {
			return fmt.Errorf("%w: extension %q is not a plain tag", ErrInvalidRequest, ext)
		}
	}

	if r.MinSizeKB < 0 {
		return fmt.Errorf("%w: min size must be >= 0, got %d", ErrInvalidRequest, r.MinSizeKB)
	}

	if r.MaxSizeKB > SizeLimitKB {
		return fmt.Errorf("%w: max size %d KB exceeds the %d KB limit", ErrInvalidRequest, r.MaxSizeKB, SizeLimitKB)
	}

	if r.MinSizeKB > r.MaxSizeKB {
		return fmt.Errorf("%w: min size %d KB exceeds max size %d KB", ErrInvalidRequest, r.MinSizeKB, r.MaxSizeKB)
	}

	if strings.ContainsAny(r.FilePrefix, `/\`) {
		return fmt.Errorf("%w: file prefix %q contains a path separator", ErrInvalidRequest, r.FilePrefix)
	}

	return nil
}

// Prefix returns FilePrefix, or DefaultFilePrefix when it is empty.
func (r Request) Prefix() string {
	if r.FilePrefix == "" {
		return DefaultFilePrefix
	}
	return r.FilePrefix
}

// MinBytes and MaxBytes are the size bounds converted to bytes.
func (r Request) MinBytes() int { return r.MinSizeKB * KiB }
func (r Request) MaxBytes() int { return r.MaxSizeKB * KiB }

func (r Request) tags() []string {
	tags := make([]string, len(r.Extensions))
	for i, ext := range r.Extensions {
		tags[i] = trimExtension(ext)
	}
	return tags
}

// trimExtension drops surrounding space and one leading dot, keeping case.
func trimExtension(ext string) string {
	return strings.TrimPrefix(strings.TrimSpace(ext), ".")
}

// NormalizeExtension is the registry key for ext: no leading dot, lower case.
func NormalizeExtension(ext string) string {
	return strings.ToLower(trimExtension(ext))
}
