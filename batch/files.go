package batch

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"
)

// DefaultChunk is the number of lines per file written by Split when chunk < 1.
const DefaultChunk = 100_000

// Split copies the lines of the file at path into outDir/<name>_<i>.txt,
// i = 0, 1, ..., with at most chunk lines per file, where <name> is the base
// name of path without a ".txt" suffix. The first chunk file is always
// created, even for empty input. It returns the paths written, in order.
func Split(path, outDir string, chunk int) (files []string, err error) {
	if chunk < 1 {
		chunk = DefaultChunk
	}
	fr, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Split: %w", err)
	}
	defer fr.Close()

	name := strings.TrimSuffix(filepath.Base(path), ".txt")
	var (
		fw    *os.File
		bw    *bufio.Writer
		lines int
	)
	open := func() error {
		if fw != nil {
			cerr := closeChunk(fw, bw)
			fw = nil
			if cerr != nil {
				return cerr
			}
		}
		out := filepath.Join(outDir, fmt.Sprintf("%s_%d.txt", name, len(files)))
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		fw, bw, lines = f, bufio.NewWriter(f), 0
		files = append(files, out)
		return nil
	}
	defer func() {
		if fw != nil {
			err = multierr.Append(err, closeChunk(fw, bw))
		}
	}()

	if err := open(); err != nil {
		return nil, fmt.Errorf("Split: %w", err)
	}
	br := bufio.NewReader(fr)
	for {
		line, rerr := br.ReadString('\n')
		if line != "" {
			if lines == chunk {
				if err := open(); err != nil {
					return files, fmt.Errorf("Split: %w", err)
				}
			}
			if _, err := bw.WriteString(line); err != nil {
				return files, fmt.Errorf("Split: %w", err)
			}
			lines++
		}
		if errors.Is(rerr, io.EOF) {
			return files, nil
		}
		if rerr != nil {
			return files, fmt.Errorf("Split: %w", rerr)
		}
	}
}

func closeChunk(f *os.File, bw *bufio.Writer) error {
	return multierr.Combine(bw.Flush(), f.Close())
}

// Combine concatenates the *.txt files of dir, in name order, into out. A
// file whose last line lacks a newline gets one, so lines of consecutive
// files never merge. out itself is skipped when it lies in dir.
func Combine(dir, out string) (err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("Combine: %w", err)
	}
	outAbs, err := filepath.Abs(out)
	if err != nil {
		return fmt.Errorf("Combine: %w", err)
	}

	fw, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("Combine: %w", err)
	}
	bw := bufio.NewWriter(fw)
	defer func() { err = multierr.Append(err, closeChunk(fw, bw)) }()

	for _, e := range entries {
		if !e.Type().IsRegular() || !strings.HasSuffix(e.Name(), ".txt") {
			continue
		}
		in := filepath.Join(dir, e.Name())
		if abs, err := filepath.Abs(in); err == nil && abs == outAbs {
			continue
		}
		if err := appendFile(bw, in); err != nil {
			return fmt.Errorf("Combine: %w", err)
		}
	}
	return nil
}

func appendFile(w *bufio.Writer, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	if data[len(data)-1] != '\n' {
		return w.WriteByte('\n')
	}
	return nil
}
