// SPDX-License-Identifier: EPL-2.0

// Package raw builds opaque fixtures of uniformly random bytes. It is the
// fallback for extensions without a dedicated builder.
package raw

import (
	"io"

	"github.com/ik5/fixgen/fixture"
)

type Builder struct{}

func (Builder) HeaderSize() int { return 0 }

func (Builder) Build(w io.Writer, rnd *fixture.Rand, size int) error {
	return fixture.WriteNoise(w, rnd, size)
}
