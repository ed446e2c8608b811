// SPDX-License-Identifier: EPL-2.0

package fixture

import (
	"bytes"
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ik5/fixgen/target"
)

// FilePerm is the mode of written fixtures.
const FilePerm = 0o644

// Generator writes batches of fixtures. It holds no per-call state and is
// safe for concurrent use.
type Generator struct {
	registry *Registry
	fsys     target.FS
	logger   *zap.Logger
	seed     uint64
	seeded   bool
	workers  int
	policy   SizePolicy
	notify   func(Notice)
	failFast bool
}

// NewGenerator returns a Generator drawing builders from registry. Without
// options it writes through target.OSFS, logs nothing, picks a seed from the
// clock on every call, runs one file at a time and rejects undersized files.
func NewGenerator(registry *Registry, opts ...Option) *Generator {
	g := &Generator{
		registry: registry,
		fsys:     target.OSFS{},
		logger:   zap.NewNop(),
		workers:  1,
		policy:   Reject,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Generate writes req.Count fixtures into dir.
//
// Request validation failures return ErrInvalidRequest before anything is
// touched. Directory creation and write failures return ErrIO and stop the
// batch; the Report then lists what was written so far. Per-file build
// failures (ErrSizeTooSmall, ErrNoBuilder) are collected in Report.Failures
// and do not stop the batch unless WithFailFast is set.
func (g *Generator) Generate(ctx context.Context, dir target.Directory, req Request) (Report, error) {
	if err := req.Validate(); err != nil {
		return Report{}, err
	}

	if err := dir.EnsureExists(g.fsys); err != nil {
		return Report{}, err
	}

	seed := g.seed
	if !g.seeded {
		seed = uint64(time.Now().UnixNano())
	}

	r := &run{
		gen:    g,
		dir:    dir,
		req:    req,
		tags:   req.tags(),
		prefix: req.Prefix(),
		seed:   seed,
		report: Report{RunID: uuid.NewString()},
	}
	r.log = g.logger.With(zap.String("run_id", r.report.RunID), zap.String("dir", dir.Path()))

	r.log.Info("generating fixtures",
		zap.Int("count", req.Count),
		zap.Strings("extensions", r.tags),
		zap.Int("min_kb", req.MinSizeKB),
		zap.Int("max_kb", req.MaxSizeKB),
		zap.Int("workers", g.workers),
		zap.Stringer("size_policy", g.policy),
	)

	var err error
	if g.workers > 1 {
		err = r.parallel(ctx)
	} else {
		err = r.sequential(ctx)
	}

	report := r.finish()

	if err != nil {
		r.log.Error("generation aborted", zap.Error(err), zap.Int("written", len(report.Files)))
		return report, err
	}

	r.log.Info("generation finished",
		zap.Int("written", len(report.Files)),
		zap.Int("failed", len(report.Failures)),
		zap.Int64("bytes", report.TotalBytes()),
	)

	return report, nil
}

// run is the state of one Generate call.
type run struct {
	gen    *Generator
	dir    target.Directory
	req    Request
	tags   []string
	prefix string
	seed   uint64
	log    *zap.Logger

	mtx    sync.Mutex
	report Report
	fatal  error
}

// outcome is the result of producing one file.
type outcome struct {
	file     File
	adjusted *Notice
	failure  *FileError
	fatal    error
}

func (r *run) sequential(ctx context.Context) error {
	for i := range r.req.Count {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w", err)
		}
		if err := r.record(r.produce(i)); err != nil {
			return err
		}
	}

	return nil
}

func (r *run) parallel(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan int)
	var wg sync.WaitGroup

	for range min(r.gen.workers, r.req.Count) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if err := r.record(r.produce(i)); err != nil {
					cancel()
				}
			}
		}()
	}

feed:
	for i := range r.req.Count {
		if ctx.Err() != nil {
			break
		}
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	r.mtx.Lock()
	defer r.mtx.Unlock()

	if r.fatal != nil {
		return r.fatal
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// produce builds and writes file i. It touches no shared state.
func (r *run) produce(i int) outcome {
	rnd := NewRand(r.seed, uint64(i))

	tag := r.tags[rnd.IntN(len(r.tags))]
	size := (r.req.MinSizeKB + rnd.IntN(r.req.MaxSizeKB-r.req.MinSizeKB+1)) * KiB
	name := fmt.Sprintf("%s%06d.%s", r.prefix, i, tag)

	fail := func(err error) outcome {
		return outcome{failure: &FileError{Index: i, Name: name, Err: err}}
	}

	builder, ok := r.gen.registry.Lookup(tag)
	if !ok {
		return fail(fmt.Errorf("%w: %q", ErrNoBuilder, tag))
	}

	var adjusted *Notice
	if header := builder.HeaderSize(); size < header {
		if r.gen.policy != Clamp {
			return fail(fmt.Errorf("%w: %s needs %d bytes, drew %d", ErrSizeTooSmall, tag, header, size))
		}
		adjusted = &Notice{Kind: ConstraintAdjusted, Requested: size}
		size = header
	}

	buf := bytes.NewBuffer(make([]byte, 0, size))
	if err := builder.Build(buf, rnd, size); err != nil {
		return fail(err)
	}
	if buf.Len() != size {
		return fail(fmt.Errorf("%w: %s wrote %d bytes, want %d", ErrBuildSize, tag, buf.Len(), size))
	}

	file := File{
		Index:     i,
		Name:      name,
		Path:      r.dir.Join(name),
		Extension: tag,
		Size:      size,
	}

	if err := r.gen.fsys.WriteFile(file.Path, buf.Bytes(), FilePerm); err != nil {
		return outcome{fatal: fmt.Errorf("%w: write %s: %w", ErrIO, file.Path, err)}
	}

	if adjusted != nil {
		adjusted.File = file
	}

	return outcome{file: file, adjusted: adjusted}
}

// record folds o into the report and emits its notices. It returns an error
// when o must stop the batch.
func (r *run) record(o outcome) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	switch {
	case o.fatal != nil:
		if r.fatal == nil {
			r.fatal = o.fatal
		}
		return o.fatal

	case o.failure != nil:
		r.report.Failures = append(r.report.Failures, *o.failure)
		r.log.Warn("fixture skipped",
			zap.Int("index", o.failure.Index),
			zap.String("name", o.failure.Name),
			zap.Error(o.failure.Err),
		)
		if r.gen.failFast {
			if r.fatal == nil {
				r.fatal = o.failure
			}
			return o.failure
		}
		return nil
	}

	if o.adjusted != nil {
		r.report.Adjusted = append(r.report.Adjusted, *o.adjusted)
		r.log.Warn("fixture size adjusted",
			zap.String("name", o.file.Name),
			zap.Int("requested", o.adjusted.Requested),
			zap.Int("size", o.file.Size),
		)
		r.emit(*o.adjusted)
	}

	r.report.Files = append(r.report.Files, o.file)
	r.log.Info("fixture written",
		zap.String("name", o.file.Name),
		zap.Int("size", o.file.Size),
		zap.Float64("kb", o.file.KB()),
	)
	r.emit(Notice{Kind: Completed, File: o.file, Requested: o.file.Size})

	return nil
}

func (r *run) emit(n Notice) {
	if r.gen.notify != nil {
		r.gen.notify(n)
	}
}

func (r *run) finish() Report {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	rep := r.report
	slices.SortFunc(rep.Files, func(a, b File) int { return cmp.Compare(a.Index, b.Index) })
	slices.SortFunc(rep.Failures, func(a, b FileError) int { return cmp.Compare(a.Index, b.Index) })
	slices.SortFunc(rep.Adjusted, func(a, b Notice) int { return cmp.Compare(a.File.Index, b.File.Index) })

	return rep
}
