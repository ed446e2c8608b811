// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/ik5/fixgen/fixture"
)

func build(t *testing.T, size int) []byte {
	t.Helper()

	buf := new(bytes.Buffer)
	if err := (Builder{}).Build(buf, fixture.NewRand(1, 0), size); err != nil {
		t.Fatalf("Build(%d) error = %v", size, err)
	}

	return buf.Bytes()
}

func TestBuilder_ExactSize(t *testing.T) {
	t.Parallel()

	for _, size := range []int{44, 45, 1024, 4096, 10 * 1024} {
		data := build(t, size)
		if len(data) != size {
			t.Errorf("Build(%d) wrote %d bytes", size, len(data))
		}
	}
}

func TestBuilder_CorrectHeader(t *testing.T) {
	t.Parallel()

	data := build(t, 1024)

	markers := []struct {
		start int
		want  string
	}{
		{0, "RIFF"},
		{8, "WAVE"},
		{12, "fmt "},
		{36, "data"},
	}
	for _, m := range markers {
		if got := string(data[m.start : m.start+4]); got != m.want {
			t.Errorf("marker at %d = %q, want %q", m.start, got, m.want)
		}
	}

	fields := []struct {
		name string
		got  uint32
		want uint32
	}{
		{"riff size", binary.LittleEndian.Uint32(data[4:8]), 1024 - 8},
		{"fmt chunk size", binary.LittleEndian.Uint32(data[16:20]), 16},
		{"audio format", uint32(binary.LittleEndian.Uint16(data[20:22])), 1},
		{"channels", uint32(binary.LittleEndian.Uint16(data[22:24])), 1},
		{"sample rate", binary.LittleEndian.Uint32(data[24:28]), 44100},
		{"byte rate", binary.LittleEndian.Uint32(data[28:32]), 88200},
		{"block align", uint32(binary.LittleEndian.Uint16(data[32:34])), 2},
		{"bits per sample", uint32(binary.LittleEndian.Uint16(data[34:36])), 16},
		{"data size", binary.LittleEndian.Uint32(data[40:44]), 1024 - 44},
	}
	for _, f := range fields {
		if f.got != f.want {
			t.Errorf("%s = %d, want %d", f.name, f.got, f.want)
		}
	}
}

func TestBuilder_HeaderOnly(t *testing.T) {
	t.Parallel()

	data := build(t, HeaderSize)

	if got := binary.LittleEndian.Uint32(data[40:44]); got != 0 {
		t.Errorf("data size = %d, want 0", got)
	}
	if got := binary.LittleEndian.Uint32(data[4:8]); got != 36 {
		t.Errorf("riff size = %d, want 36", got)
	}
}

func TestBuilder_SizeTooSmall(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	err := (Builder{}).Build(buf, fixture.NewRand(1, 0), HeaderSize-1)

	if !errors.Is(err, fixture.ErrSizeTooSmall) {
		t.Fatalf("Build() error = %v, want ErrSizeTooSmall", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Build() wrote %d bytes on failure, want 0", buf.Len())
	}
}

func TestBuilder_Deterministic(t *testing.T) {
	t.Parallel()

	a := build(t, 2048)
	b := build(t, 2048)

	if !bytes.Equal(a, b) {
		t.Error("Build() with the same seed produced different output")
	}
}

func TestWriteHeader_VariousLayouts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		sampleRate int
		channels   uint16
		bits       uint16
		byteRate   uint32
		blockAlign uint16
	}{
		{"mono 8kHz", 8000, 1, 16, 16000, 2},
		{"stereo 44.1kHz", 44100, 2, 16, 176400, 4},
		{"stereo 48kHz 24-bit", 48000, 2, 24, 288000, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf := new(bytes.Buffer)
			if err := WriteHeader(buf, tt.sampleRate, tt.channels, tt.bits, 100); err != nil {
				t.Fatalf("WriteHeader() error = %v", err)
			}

			data := buf.Bytes()
			if len(data) != HeaderSize {
				t.Fatalf("header length = %d, want %d", len(data), HeaderSize)
			}
			if got := binary.LittleEndian.Uint32(data[28:32]); got != tt.byteRate {
				t.Errorf("byte rate = %d, want %d", got, tt.byteRate)
			}
			if got := binary.LittleEndian.Uint16(data[32:34]); got != tt.blockAlign {
				t.Errorf("block align = %d, want %d", got, tt.blockAlign)
			}
			if got := binary.LittleEndian.Uint32(data[4:8]); got != 136 {
				t.Errorf("riff size = %d, want 136", got)
			}
		})
	}
}

func BenchmarkBuilder(b *testing.B) {
	rnd := fixture.NewRand(1, 0)
	buf := new(bytes.Buffer)

	b.ReportAllocs()
	for b.Loop() {
		buf.Reset()
		_ = (Builder{}).Build(buf, rnd, 64*1024)
	}
}

func TestBuilder_SizeTooLarge(t *testing.T) {
	t.Parallel()

	if strconv.IntSize < 64 {
		t.Skip("sizes above 4 GiB need a 64-bit int")
	}

	tooLarge := uint64(math.MaxUint32) + 1
	buf := new(bytes.Buffer)
	err := (Builder{}).Build(buf, fixture.NewRand(1, 0), int(tooLarge))

	if !errors.Is(err, fixture.ErrSizeTooLarge) {
		t.Fatalf("Build() error = %v, want ErrSizeTooLarge", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Build() wrote %d bytes on failure, want 0", buf.Len())
	}
}
