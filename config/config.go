// SPDX-License-Identifier: EPL-2.0

// Package config assembles the fixgen command configuration from defaults,
// an optional YAML or TOML request file, and command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/ik5/fixgen/fixture"
	"github.com/ik5/fixgen/internal/logging"
)

// Defaults used when neither a file nor a flag sets a value.
const (
	DefaultDir        = "./fixtures"
	DefaultCount      = 10
	DefaultExtensions = "txt,wav,mp3"
	DefaultMinSizeKB  = 1
	DefaultMaxSizeKB  = 64
	DefaultWorkers    = 1
)

type Config struct {
	Dir        string
	Count      int
	Extensions []string
	MinSizeKB  int
	MaxSizeKB  int
	FilePrefix string
	// Seed makes output reproducible when SeedSet is true, zero included.
	// Otherwise a seed is picked from the clock.
	Seed       uint64
	SeedSet    bool
	Workers    int
	SizePolicy fixture.SizePolicy
	FailFast   bool
	Verify     bool
	// Progress draws a progress bar instead of one line per file.
	Progress   bool
	Log        logging.Config

	// ConfigPath is the request file the values were loaded from, if any.
	ConfigPath string
}

func DefaultConfig() *Config {
	return &Config{
		Dir:        DefaultDir,
		Count:      DefaultCount,
		Extensions: splitList(DefaultExtensions),
		MinSizeKB:  DefaultMinSizeKB,
		MaxSizeKB:  DefaultMaxSizeKB,
		FilePrefix: fixture.DefaultFilePrefix,
		Workers:    DefaultWorkers,
		SizePolicy: fixture.Reject,
	}
}

// bind registers every flag on fs, writing into c.
func (c *Config) bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "Request file (.yaml, .yml or .toml)")
	fs.StringVar(&c.Dir, "dir", c.Dir, "Output directory, created if missing")
	fs.IntVar(&c.Count, "count", c.Count, "Number of files to generate")
	fs.Var((*listValue)(&c.Extensions), "ext", "Comma-separated extensions to draw from (e.g. txt,wav,mp3,aiff,bin)")
	fs.IntVar(&c.MinSizeKB, "min-kb", c.MinSizeKB, "Minimum file size in KiB")
	fs.IntVar(&c.MaxSizeKB, "max-kb", c.MaxSizeKB, "Maximum file size in KiB")
	fs.StringVar(&c.FilePrefix, "prefix", c.FilePrefix, "File name prefix")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "Deterministic seed; when omitted the current time is used")
	fs.IntVar(&c.Workers, "workers", c.Workers, "Files generated concurrently")
	fs.Var((*policyValue)(&c.SizePolicy), "size-policy", "What to do when a size is below a format header: reject or clamp")
	fs.BoolVar(&c.FailFast, "fail-fast", c.FailFast, "Abort the batch on the first per-file failure")
	fs.BoolVar(&c.Verify, "verify", c.Verify, "Probe structured files after generation")
	fs.BoolVar(&c.Progress, "progress", c.Progress, "Show a progress bar instead of per-file lines")
	fs.StringVar(&c.Log.Level, "log-level", c.Log.Level, "Log level (debug, info, warn, error); overrides LOG_LEVEL")
	fs.StringVar(&c.Log.Format, "log-format", c.Log.Format, "Log format (console, json); overrides LOG_FORMAT")
}

// ParseFlags builds a Config from args. When -config names a request file,
// its values replace the defaults and flags given on the command line still
// take precedence over the file.
func ParseFlags(name string, args []string, output io.Writer) (*Config, error) {
	cfg := DefaultConfig()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	cfg.bind(fs)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage of %s:\n\n", name)
		fmt.Fprintf(fs.Output(), "Generate files of random content for tests.\n\nOptions:\n")
		fs.PrintDefaults()
		fmt.Fprintf(fs.Output(), "\nExamples:\n")
		fmt.Fprintf(fs.Output(), "  %s -dir ./testdata -count 20 -ext wav,mp3 -min-kb 4 -max-kb 16\n", name)
		fmt.Fprintf(fs.Output(), "  %s -config fixtures.yaml -seed 42 -verify\n", name)
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg.markSeed(fs)

	if cfg.ConfigPath != "" {
		file, err := LoadFile(cfg.ConfigPath)
		if err != nil {
			return nil, err
		}

		path := cfg.ConfigPath
		cfg = DefaultConfig()
		if err := cfg.applyFile(file); err != nil {
			return nil, err
		}

		// re-apply flags so the command line wins
		again := flag.NewFlagSet(name, flag.ContinueOnError)
		again.SetOutput(io.Discard)
		cfg.bind(again)
		if err := again.Parse(args); err != nil {
			return nil, err
		}
		cfg.markSeed(again)
		cfg.ConfigPath = path
	}

	cfg.Log = cfg.Log.Merge(logging.ConfigFromEnv())

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// markSeed records whether -seed was given on the command line.
func (c *Config) markSeed(fs *flag.FlagSet) {
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			c.SeedSet = true
		}
	})
}

// Request converts the configuration to a generation request.
func (c *Config) Request() fixture.Request {
	return fixture.Request{
		Count:      c.Count,
		Extensions: c.Extensions,
		MinSizeKB:  c.MinSizeKB,
		MaxSizeKB:  c.MaxSizeKB,
		FilePrefix: c.FilePrefix,
	}
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Dir) == "" {
		return errors.New("output directory cannot be empty")
	}

	if c.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0, got %d", c.Workers)
	}

	return c.Request().Validate()
}

// Summary writes a human-readable view of the configuration.
func (c *Config) Summary(w io.Writer) {
	fmt.Fprintf(w, "Output directory: %s\n", c.Dir)
	fmt.Fprintf(w, "Files:            %d\n", c.Count)
	fmt.Fprintf(w, "Extensions:       %s\n", strings.Join(c.Extensions, ", "))
	fmt.Fprintf(w, "Size range:       %d-%d KiB\n", c.MinSizeKB, c.MaxSizeKB)
	fmt.Fprintf(w, "Prefix:           %s\n", c.FilePrefix)
	fmt.Fprintf(w, "Workers:          %d\n", c.Workers)
	fmt.Fprintf(w, "Size policy:      %s\n", c.SizePolicy)
	if c.SeedSet {
		fmt.Fprintf(w, "Seed:             %d\n", c.Seed)
	}
	if c.ConfigPath != "" {
		fmt.Fprintf(w, "Request file:     %s\n", c.ConfigPath)
	}
}

// listValue is a comma-separated flag.Value.
type listValue []string

func (l *listValue) String() string {
	if l == nil {
		return ""
	}
	return strings.Join(*l, ",")
}

func (l *listValue) Set(s string) error {
	*l = splitList(s)
	return nil
}

type policyValue fixture.SizePolicy

func (p *policyValue) String() string {
	if p == nil {
		return fixture.Reject.String()
	}
	return fixture.SizePolicy(*p).String()
}

func (p *policyValue) Set(s string) error {
	policy, err := fixture.ParseSizePolicy(s)
	if err != nil {
		return err
	}
	*p = policyValue(policy)
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
