// SPDX-License-Identifier: EPL-2.0

package fixture

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/ik5/fixgen/target"
)

// SizePolicy decides what happens when a drawn size is smaller than the
// chosen format's header.
type SizePolicy int

const (
	// Reject fails that file with ErrSizeTooSmall and continues the batch.
	Reject SizePolicy = iota
	// Clamp raises the size to the header size and emits ConstraintAdjusted.
	Clamp
)

func (p SizePolicy) String() string {
	switch p {
	case Reject:
		return "reject"
	case Clamp:
		return "clamp"
	default:
		return fmt.Sprintf("SizePolicy(%d)", int(p))
	}
}

// ParseSizePolicy accepts "reject" or "clamp", case-insensitive.
// An empty string yields Reject.
func ParseSizePolicy(s string) (SizePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "reject":
		return Reject, nil
	case "clamp":
		return Clamp, nil
	default:
		return Reject, fmt.Errorf("unknown size policy %q (must be 'reject' or 'clamp')", s)
	}
}

// Option configures a Generator.
type Option func(*Generator)

// WithFS sets the filesystem the generator writes through.
func WithFS(fsys target.FS) Option {
	return func(g *Generator) {
		if fsys != nil {
			g.fsys = fsys
		}
	}
}

// WithLogger sets the logger; nil keeps the no-op default.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithSeed makes output reproducible: the same seed and request produce
// byte-identical files regardless of the worker count.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.seed = seed
		g.seeded = true
	}
}

// WithWorkers bounds the number of files built concurrently.
// Values below 2 keep generation strictly sequential.
func WithWorkers(n int) Option {
	return func(g *Generator) {
		g.workers = max(n, 1)
	}
}

// WithSizePolicy sets how undersized structured files are handled.
func WithSizePolicy(p SizePolicy) Option {
	return func(g *Generator) {
		g.policy = p
	}
}

// WithNotify registers a callback for per-file notices.
// The callback is never invoked concurrently, but with more than one worker
// notices may arrive out of index order.
func WithNotify(fn func(Notice)) Option {
	return func(g *Generator) {
		g.notify = fn
	}
}

// WithFailFast makes a per-file build failure abort the batch.
func WithFailFast(enabled bool) Option {
	return func(g *Generator) {
		g.failFast = enabled
	}
}
