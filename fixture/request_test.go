// SPDX-License-Identifier: EPL-2.0

package fixture

import (
	"errors"
	"math"
	"testing"
)

func TestRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := Request{Count: 1, Extensions: []string{"txt"}, MinSizeKB: 1, MaxSizeKB: 2}

	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr bool
	}{
		{"valid", func(*Request) {}, false},
		{"zero sizes", func(r *Request) { r.MinSizeKB, r.MaxSizeKB = 0, 0 }, false},
		{"dotted extension", func(r *Request) { r.Extensions = []string{".wav"} }, false},
		{"zero count", func(r *Request) { r.Count = 0 }, true},
		{"negative count", func(r *Request) { r.Count = -3 }, true},
		{"no extensions", func(r *Request) { r.Extensions = nil }, true},
		{"blank extension", func(r *Request) { r.Extensions = []string{"txt", " "} }, true},
		{"bare dot", func(r *Request) { r.Extensions = []string{"."} }, true},
		{"path in extension", func(r *Request) { r.Extensions = []string{"x/../../y"} }, true},
		{"negative min", func(r *Request) { r.MinSizeKB = -1 }, true},
		{"min above max", func(r *Request) { r.MinSizeKB, r.MaxSizeKB = 3, 2 }, true},
		{"max at limit", func(r *Request) { r.MaxSizeKB = SizeLimitKB }, false},
		{"max above limit", func(r *Request) { r.MaxSizeKB = SizeLimitKB + 1 }, true},
		{"max int", func(r *Request) { r.MinSizeKB, r.MaxSizeKB = 0, math.MaxInt }, true},
		{"min and max above limit", func(r *Request) { r.MinSizeKB, r.MaxSizeKB = math.MaxInt/KiB+1, math.MaxInt/KiB+1 }, true},
		{"prefix with separator", func(r *Request) { r.FilePrefix = "a/b" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := valid
			req.Extensions = append([]string(nil), valid.Extensions...)
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidRequest) {
					t.Errorf("Validate() error = %v, want ErrInvalidRequest", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() error = %v, want nil", err)
			}
		})
	}
}

func TestRequest_Prefix(t *testing.T) {
	t.Parallel()

	if got := (Request{}).Prefix(); got != DefaultFilePrefix {
		t.Errorf("Prefix() = %q, want %q", got, DefaultFilePrefix)
	}
	if got := (Request{FilePrefix: "x_"}).Prefix(); got != "x_" {
		t.Errorf("Prefix() = %q, want %q", got, "x_")
	}
}

func TestRequest_Bytes(t *testing.T) {
	t.Parallel()

	r := Request{MinSizeKB: 2, MaxSizeKB: 5}
	if r.MinBytes() != 2048 || r.MaxBytes() != 5120 {
		t.Errorf("MinBytes/MaxBytes = %d/%d, want 2048/5120", r.MinBytes(), r.MaxBytes())
	}
}

func TestNormalizeExtension(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"wav":    "wav",
		".WAV":   "wav",
		" Mp3 ":  "mp3",
		"tar.gz": "tar.gz",
	}

	for in, want := range tests {
		if got := NormalizeExtension(in); got != want {
			t.Errorf("NormalizeExtension(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseSizePolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    SizePolicy
		wantErr bool
	}{
		{"", Reject, false},
		{"reject", Reject, false},
		{" Clamp ", Clamp, false},
		{"grow", Reject, true},
	}

	for _, tt := range tests {
		got, err := ParseSizePolicy(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseSizePolicy(%q) = %v, %v", tt.in, got, err)
		}
	}

	if Clamp.String() != "clamp" || SizePolicy(9).String() != "SizePolicy(9)" {
		t.Errorf("unexpected String(): %q %q", Clamp, SizePolicy(9))
	}
}

func TestSizeLimitKB_FitsHeaderFields(t *testing.T) {
	t.Parallel()

	if got := uint64(SizeLimitKB) * KiB; got > math.MaxUint32 {
		t.Errorf("SizeLimitKB bytes = %d, exceeds %d", got, uint64(math.MaxUint32))
	}
}
