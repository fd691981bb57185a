// Package bulkload implements the offline CSV loader for the transactions
// table. It streams the source file, normalizes rows onto the table schema,
// and loads fixed-size chunks through a bulk-copy primitive with a bounded
// retry per chunk.
package bulkload

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
)

const (
	// DefaultChunkSize is the number of rows loaded per copy operation.
	DefaultChunkSize = 20000

	// DefaultMaxAttempts is how many times a failing chunk is tried
	// before the run is aborted.
	DefaultMaxAttempts = 3
)

// ChunkCopier loads one chunk of normalized rows into the target table.
// Each call is expected to be atomic: either every row lands or none do.
type ChunkCopier interface {
	CopyChunk(rows [][]interface{}) error
}

// Summary reports what a completed run loaded.
type Summary struct {
	TotalRows int
	Chunks    int
}

// Loader reads the source CSV and drives the copier chunk by chunk.
type Loader struct {
	copier      ChunkCopier
	chunkSize   int
	maxAttempts int
}

// Option customizes a Loader.
type Option func(*Loader)

// WithChunkSize overrides the default chunk size.
func WithChunkSize(size int) Option {
	return func(l *Loader) {
		if size > 0 {
			l.chunkSize = size
		}
	}
}

// WithMaxAttempts overrides the default per-chunk attempt limit.
func WithMaxAttempts(attempts int) Option {
	return func(l *Loader) {
		if attempts > 0 {
			l.maxAttempts = attempts
		}
	}
}

// NewLoader creates a loader backed by the given copier.
func NewLoader(copier ChunkCopier, opts ...Option) *Loader {
	l := &Loader{
		copier:      copier,
		chunkSize:   DefaultChunkSize,
		maxAttempts: DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run streams the CSV from r and loads every row. The first record must be
// a header row naming all required columns. The run aborts with an error
// when any chunk exhausts its attempts.
func (l *Loader) Run(r io.Reader) (*Summary, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}

	index, err := headerIndex(header)
	if err != nil {
		return nil, err
	}

	summary := &Summary{}
	chunk := make([][]interface{}, 0, l.chunkSize)
	line := 1

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record at line %d: %w", line+1, err)
		}
		line++

		row, err := normalizeRecord(index, record)
		if err != nil {
			return nil, fmt.Errorf("invalid record at line %d: %w", line, err)
		}

		chunk = append(chunk, row)
		summary.TotalRows++

		if len(chunk) >= l.chunkSize {
			if err := l.loadChunk(chunk, summary.Chunks); err != nil {
				return nil, err
			}
			summary.Chunks++
			chunk = chunk[:0]
		}
	}

	if len(chunk) > 0 {
		if err := l.loadChunk(chunk, summary.Chunks); err != nil {
			return nil, err
		}
		summary.Chunks++
	}

	slog.Info("bulk load complete", "rows", summary.TotalRows, "chunks", summary.Chunks)
	return summary, nil
}

func (l *Loader) loadChunk(rows [][]interface{}, chunkIndex int) error {
	var lastErr error

	for attempt := 1; attempt <= l.maxAttempts; attempt++ {
		lastErr = l.copier.CopyChunk(rows)
		if lastErr == nil {
			slog.Info("chunk loaded", "chunk", chunkIndex, "rows", len(rows), "attempt", attempt)
			return nil
		}

		slog.Warn("chunk load failed",
			"chunk", chunkIndex,
			"attempt", attempt,
			"max_attempts", l.maxAttempts,
			"error", lastErr.Error(),
		)
	}

	return fmt.Errorf("chunk %d failed after %d attempts: %w", chunkIndex, l.maxAttempts, lastErr)
}
