// SPDX-License-Identifier: EPL-2.0

package fixgen

import (
	"context"

	"github.com/ik5/fixgen/fixture"
	"github.com/ik5/fixgen/formats/aiff"
	"github.com/ik5/fixgen/formats/mp3"
	"github.com/ik5/fixgen/formats/raw"
	"github.com/ik5/fixgen/formats/text"
	"github.com/ik5/fixgen/formats/wav"
	"github.com/ik5/fixgen/target"
)

// NewRegistry returns a registry with every built-in format:
// txt, wav, mp3, aiff and aif, with raw random bytes for anything else.
func NewRegistry() *fixture.Registry {
	reg := fixture.NewRegistry(raw.Builder{})
	reg.Register("txt", text.Builder{})
	reg.Register("wav", wav.Builder{})
	reg.Register("mp3", mp3.Builder{})
	reg.Register("aiff", aiff.Builder{})
	reg.Register("aif", aiff.Builder{})

	return reg
}

// GenerateFiles is a convenience function that writes the fixtures described
// by req into dir using the built-in formats.
//
// dir is resolved to an absolute path and created if missing. opts are passed
// to fixture.NewGenerator, e.g. fixture.WithSeed for reproducible output:
//
//	report, err := fixgen.GenerateFiles(ctx, "testdata/audio", fixture.Request{
//	    Count:      3,
//	    Extensions: []string{"wav"},
//	    MinSizeKB:  1,
//	    MaxSizeKB:  1,
//	}, fixture.WithSeed(42))
func GenerateFiles(ctx context.Context, dir string, req fixture.Request, opts ...fixture.Option) (fixture.Report, error) {
	dst, err := target.New(dir)
	if err != nil {
		return fixture.Report{}, err
	}

	return fixture.NewGenerator(NewRegistry(), opts...).Generate(ctx, dst, req)
}
