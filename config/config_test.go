// SPDX-License-Identifier: EPL-2.0

package config

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/fixgen/fixture"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	assert.Equal(t, DefaultDir, cfg.Dir)
	assert.Equal(t, []string{"txt", "wav", "mp3"}, cfg.Extensions)
	assert.Equal(t, fixture.DefaultFilePrefix, cfg.FilePrefix)
	assert.Equal(t, fixture.Reject, cfg.SizePolicy)
	assert.NoError(t, cfg.Validate())
}

func TestParseFlags(t *testing.T) {
	t.Parallel()

	cfg, err := ParseFlags("fixgen", []string{
		"-dir", "out",
		"-count", "3",
		"-ext", "wav, mp3,,bin",
		"-min-kb", "2",
		"-max-kb", "4",
		"-prefix", "case_",
		"-seed", "99",
		"-workers", "4",
		"-size-policy", "CLAMP",
		"-fail-fast",
		"-verify",
		"-progress",
	}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "out", cfg.Dir)
	assert.Equal(t, []string{"wav", "mp3", "bin"}, cfg.Extensions)
	assert.Equal(t, fixture.Clamp, cfg.SizePolicy)
	assert.Equal(t, uint64(99), cfg.Seed)
	assert.True(t, cfg.SeedSet)
	assert.True(t, cfg.FailFast)
	assert.True(t, cfg.Verify)
	assert.True(t, cfg.Progress)

	assert.Equal(t, fixture.Request{
		Count:      3,
		Extensions: []string{"wav", "mp3", "bin"},
		MinSizeKB:  2,
		MaxSizeKB:  4,
		FilePrefix: "case_",
	}, cfg.Request())
}

func TestParseFlags_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"zero count", []string{"-count", "0"}},
		{"inverted range", []string{"-min-kb", "8", "-max-kb", "2"}},
		{"no extensions", []string{"-ext", " , "}},
		{"bad policy", []string{"-size-policy", "shrink"}},
		{"zero workers", []string{"-workers", "0"}},
		{"empty dir", []string{"-dir", " "}},
		{"unknown flag", []string{"-colour"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseFlags("fixgen", tt.args, io.Discard)
			assert.Error(t, err)
		})
	}
}

func TestParseFlags_YAMLFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "request.yaml", `
dir: generated
count: 5
extensions: [wav, aiff]
min_size_kb: 0
max_size_kb: 2
file_prefix: audio_
seed: 7
size_policy: clamp
verify: true
log:
  level: debug
`)

	cfg, err := ParseFlags("fixgen", []string{"-config", path}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "generated", cfg.Dir)
	assert.Equal(t, 5, cfg.Count)
	assert.Equal(t, []string{"wav", "aiff"}, cfg.Extensions)
	assert.Equal(t, 0, cfg.MinSizeKB)
	assert.Equal(t, 2, cfg.MaxSizeKB)
	assert.Equal(t, "audio_", cfg.FilePrefix)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.True(t, cfg.SeedSet)
	assert.Equal(t, fixture.Clamp, cfg.SizePolicy)
	assert.True(t, cfg.Verify)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, path, cfg.ConfigPath)
}

func TestParseFlags_FlagsOverrideTOML(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "request.toml", `
dir = "from-file"
count = 8
extensions = ["txt"]
max_size_kb = 3
workers = 2
`)

	cfg, err := ParseFlags("fixgen", []string{"-config", path, "-count", "2", "-ext", "mp3"}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.Dir)
	assert.Equal(t, 2, cfg.Count)
	assert.Equal(t, []string{"mp3"}, cfg.Extensions)
	assert.Equal(t, DefaultMinSizeKB, cfg.MinSizeKB)
	assert.Equal(t, 3, cfg.MaxSizeKB)
	assert.Equal(t, 2, cfg.Workers)
}

func TestLoadFile_Errors(t *testing.T) {
	t.Parallel()

	_, err := LoadFile(writeFile(t, "request.json", `{"count": 1}`))
	assert.ErrorIs(t, err, ErrUnknownFileType)

	_, err = LoadFile(writeFile(t, "broken.yaml", "count: [1, 2"))
	assert.Error(t, err)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestApplyFile_BadPolicy(t *testing.T) {
	t.Parallel()

	err := DefaultConfig().applyFile(&File{SizePolicy: "grow"})
	assert.Error(t, err)
}

func TestParseFlags_ZeroValuesInFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"yaml count", "request.yaml", "count: 0\n"},
		{"yaml workers", "request.yaml", "workers: 0\n"},
		{"toml count", "request.toml", "count = 0\n"},
		{"toml workers", "request.toml", "workers = 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeFile(t, tt.file, tt.content)

			_, err := ParseFlags("fixgen", []string{"-config", path}, io.Discard)
			assert.Error(t, err)
		})
	}
}

func TestParseFlags_ZeroCountInFileIsInvalidRequest(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "request.yaml", "count: 0\nextensions: [txt]\n")

	_, err := ParseFlags("fixgen", []string{"-config", path}, io.Discard)
	require.ErrorIs(t, err, fixture.ErrInvalidRequest)
}

func TestParseFlags_Seed(t *testing.T) {
	t.Parallel()

	cfg, err := ParseFlags("fixgen", nil, io.Discard)
	require.NoError(t, err)
	assert.False(t, cfg.SeedSet)

	cfg, err = ParseFlags("fixgen", []string{"-seed", "0"}, io.Discard)
	require.NoError(t, err)
	assert.True(t, cfg.SeedSet)
	assert.Zero(t, cfg.Seed)

	path := writeFile(t, "request.yaml", "seed: 0\n")
	cfg, err = ParseFlags("fixgen", []string{"-config", path}, io.Discard)
	require.NoError(t, err)
	assert.True(t, cfg.SeedSet)
	assert.Zero(t, cfg.Seed)

	path = writeFile(t, "request.toml", "seed = 5\n")
	cfg, err = ParseFlags("fixgen", []string{"-config", path, "-seed", "9"}, io.Discard)
	require.NoError(t, err)
	assert.True(t, cfg.SeedSet)
	assert.Equal(t, uint64(9), cfg.Seed)
}
