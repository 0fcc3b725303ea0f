// SPDX-License-Identifier: MIT
//
// File: scan.go
// Role: Separability scanning of line-delimited necklace files.
// Policy:
//   - One necklace per non-empty line; surrounding blanks are ignored.
//   - Output keeps input order whatever the completion order of the workers.
//   - A line that cannot be scanned is reported and skipped; the scan goes on.

package batch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/linstald/master-thesis-scripts/necklace"
)

// maxLineSize bounds a single necklace line.
const maxLineSize = 1 << 20

type config struct {
	workers int
	log     *zap.Logger
	parse   func(string) *necklace.Necklace
}

// Option configures ScanSeparability and ScanDir.
type Option func(*config)

// WithWorkers sets the number of concurrent workers; k < 1 selects runtime.NumCPU().
func WithWorkers(k int) Option {
	return func(c *config) {
		if k < 1 {
			k = runtime.NumCPU()
		}
		c.workers = k
	}
}

// WithLogger sets the logger used for progress and per-line failures.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}

// WithTokens reads lines in the general comma-separated encoding
// (necklace.ParseTokens) instead of the compact letter encoding.
func WithTokens() Option {
	return func(c *config) { c.parse = necklace.ParseTokens }
}

func newConfig(opts []Option) config {
	c := config{workers: runtime.NumCPU(), log: zap.NewNop(), parse: necklace.Parse}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// scanLines calls fn with every non-empty trimmed line of r until fn returns false.
func scanLines(r io.Reader, fn func(line string) bool) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if !fn(line) {
			break
		}
	}
	return sc.Err()
}

// ReadNecklaces returns the non-empty lines of r, trimmed.
func ReadNecklaces(r io.Reader) ([]string, error) {
	var out []string
	err := scanLines(r, func(line string) bool {
		out = append(out, line)
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("ReadNecklaces: %w", err)
	}
	return out, nil
}

type scanJob struct {
	idx  int
	line string
}

type scanResult struct {
	scanJob
	sep int
	err error
}

// ScanSeparability writes "<sep>,<necklace>" for every necklace line of r to w,
// in input order. Lines whose separability cannot be computed are left out
// and their errors combined into the returned error. Cancelling ctx stops
// reading further lines; the lines already queued are still written and
// ctx.Err() is part of the result.
func ScanSeparability(ctx context.Context, r io.Reader, w io.Writer, opts ...Option) error {
	cfg := newConfig(opts)
	pool := NewWorkerPool[scanJob, scanResult](cfg.workers, 2*cfg.workers)
	pool.Start(func(j scanJob) scanResult {
		sep, err := cfg.parse(j.line).Separability()
		return scanResult{scanJob: j, sep: sep, err: err}
	})

	readErr := make(chan error, 1)
	go func() {
		defer pool.Close()
		idx := 0
		readErr <- scanLines(r, func(line string) bool {
			select {
			case <-ctx.Done():
				return false
			default:
			}
			pool.AddJob(scanJob{idx: idx, line: line})
			idx++
			return true
		})
	}()
	go pool.Wait()

	var (
		bw      = bufio.NewWriter(w)
		pending = make(map[int]scanResult)
		next    int
		errs    error
		written int
	)
	for res := range pool.CollectResults() {
		pending[res.idx] = res
		for {
			cur, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			if cur.err != nil {
				cfg.log.Warn("separability failed", zap.Int("line", cur.idx+1), zap.String("necklace", cur.line), zap.Error(cur.err))
				errs = multierr.Append(errs, fmt.Errorf("line %d: %w", cur.idx+1, cur.err))
				continue
			}
			if _, err := fmt.Fprintf(bw, "%d,%s\n", cur.sep, cur.line); err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			written++
		}
	}

	errs = multierr.Combine(errs, <-readErr, bw.Flush(), ctx.Err())
	cfg.log.Info("separability scan done",
		zap.Int("lines", next),
		zap.Int("written", written),
		zap.Int("workers", cfg.workers),
	)
	if errs != nil {
		return fmt.Errorf("ScanSeparability: %w", errs)
	}
	return nil
}

// ScanDir scans every file of dir whose name starts with "neck" and writes
// the results to dir/sep/sep_<name>. Files are processed in name order; the
// errors of all files are combined.
func ScanDir(ctx context.Context, dir string, opts ...Option) error {
	cfg := newConfig(opts)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("ScanDir: %w", err)
	}
	outDir := filepath.Join(dir, "sep")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("ScanDir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() && strings.HasPrefix(e.Name(), "neck") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var errs error
	for _, name := range names {
		if ctx.Err() != nil {
			errs = multierr.Append(errs, ctx.Err())
			break
		}
		cfg.log.Info("scanning file", zap.String("file", name))
		errs = multierr.Append(errs, scanFile(ctx, filepath.Join(dir, name), filepath.Join(outDir, "sep_"+name), opts))
	}
	return errs
}

func scanFile(ctx context.Context, in, out string, opts []Option) (err error) {
	fr, err := os.Open(in)
	if err != nil {
		return err
	}
	defer fr.Close()

	fw, err := os.Create(out)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, fw.Close()) }()

	if err := ScanSeparability(ctx, fr, fw, opts...); err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}
	return nil
}
