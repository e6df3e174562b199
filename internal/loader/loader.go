// Package loader discovers content files by directory convention and
// decodes each one into a content record.
//
// A file that cannot be read or decoded never aborts the batch: it becomes a
// Result carrying a *DecodeError and contributes nothing further.
package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/leapstack-labs/contentlint/pkg/content"
	"github.com/leapstack-labs/contentlint/pkg/lint"
)

// DecodeError wraps a read or decode failure for a single file.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return "invalid content: " + flatten(e.Err.Error())
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Result is the outcome of loading one file: exactly one of Record and Err is set.
type Result struct {
	Path   string // display path, relative to the loader root when possible
	Record content.Record
	Err    error
}

// Batch is every file found under one content directory, in lexical path order.
type Batch struct {
	Dir     string // display path of the directory
	Kind    content.Kind
	Results []Result
}

// Empty reports whether the directory yielded no content files.
func (b *Batch) Empty() bool {
	return len(b.Results) == 0
}

// Records returns the successfully decoded records in load order.
func (b *Batch) Records() []content.Record {
	records := make([]content.Record, 0, len(b.Results))
	for _, r := range b.Results {
		if r.Record != nil {
			records = append(records, r.Record)
		}
	}
	return records
}

// Failures returns the number of files that failed to load.
func (b *Batch) Failures() int {
	n := 0
	for _, r := range b.Results {
		if r.Err != nil {
			n++
		}
	}
	return n
}

// Report emits the loader diagnostics for the batch: one error per
// undecodable file and a warning when the directory holds no content.
func (b *Batch) Report(c *lint.Collector) {
	if b.Empty() {
		c.Report(lint.RuleNoContent, b.Dir, "", "no content found")
		return
	}
	for _, r := range b.Results {
		if r.Err != nil {
			c.Report(lint.RuleInvalidContent, r.Path, "", "%s", r.Err.Error())
		}
	}
}

// Loader reads content trees below a project root.
type Loader struct {
	root   string
	logger *slog.Logger
}

// New creates a loader. Paths in results are shown relative to root.
// A nil logger discards log output.
func New(root string, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Loader{root: root, logger: logger}
}

// Load walks dir recursively and decodes every content file as kind.
// A missing directory yields an empty batch. The only error returned is for
// a dir that exists but is not a directory.
func (l *Loader) Load(dir string, kind content.Kind) (*Batch, error) {
	batch := &Batch{Dir: l.display(dir), Kind: kind}

	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		l.logger.Debug("content directory not found", "dir", dir, "kind", kind.String())
		return batch, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	paths, walkFailures := discover(dir)
	for _, p := range paths {
		batch.Results = append(batch.Results, l.loadFile(p, kind))
	}
	for _, wf := range walkFailures {
		batch.Results = append(batch.Results, Result{
			Path: l.display(wf.Path),
			Err:  wf,
		})
	}
	sort.SliceStable(batch.Results, func(i, j int) bool {
		return batch.Results[i].Path < batch.Results[j].Path
	})

	l.logger.Debug("loaded content directory",
		"dir", batch.Dir, "kind", kind.String(),
		"files", len(batch.Results), "failures", batch.Failures())
	return batch, nil
}

func (l *Loader) loadFile(path string, kind content.Kind) Result {
	display := l.display(path)

	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from walking the content directory
	if err != nil {
		l.logger.Debug("content read error", "path", display, "error", err.Error())
		return Result{Path: display, Err: &DecodeError{Path: display, Err: err}}
	}

	record, err := content.Decode(kind, display, data)
	if err != nil {
		l.logger.Debug("content decode error", "path", display, "error", err.Error())
		return Result{Path: display, Err: &DecodeError{Path: display, Err: err}}
	}

	l.logger.Debug("decoded content", "path", display, "id", record.RecordID())
	return Result{Path: display, Record: record}
}

// discover returns content file paths under dir in lexical order. Hidden
// directories are skipped. Unreadable entries are returned as failures.
func discover(dir string) ([]string, []*DecodeError) {
	var paths []string
	var failures []*DecodeError

	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path != dir {
				failures = append(failures, &DecodeError{Path: path, Err: walkErr})
			}
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if content.IsContentFile(path) {
			paths = append(paths, path)
		}
		return nil
	})

	sort.Strings(paths)
	return paths, failures
}

// display returns path relative to the loader root, in slash form.
func (l *Loader) display(path string) string {
	if l.root != "" {
		if rel, err := filepath.Rel(l.root, path); err == nil && !strings.HasPrefix(rel, "..") {
			return filepath.ToSlash(rel)
		}
	}
	return filepath.ToSlash(path)
}

// flatten joins a multi-line decoder message onto one report line.
func flatten(msg string) string {
	return strings.Join(strings.Fields(msg), " ")
}
