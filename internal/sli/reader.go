package sli

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	internalerrors "github.com/olegiv/sli-report/internal/errors"
)

// DefaultMaxLineBytes is the longest line the reader matches by default.
const DefaultMaxLineBytes = 1024 * 1024

// Reader streams a log file through the matcher and the aggregator.
type Reader struct {
	maxLineBytes int
}

// NewReader creates a reader that skips lines longer than maxLineBytes.
// A non-positive value selects DefaultMaxLineBytes.
func NewReader(maxLineBytes int) *Reader {
	if maxLineBytes <= 0 {
		maxLineBytes = DefaultMaxLineBytes
	}
	return &Reader{maxLineBytes: maxLineBytes}
}

// Read aggregates the log file at filePath. Files ending in .gz are
// decompressed on the fly.
//
// The returned error wraps ErrInputUnavailable when the file cannot be read
// and ErrNoValidRecords when no line matched; in the latter case the
// aggregates are still returned for diagnostics.
func (r *Reader) Read(filePath string) (*Aggregates, error) {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, internalerrors.New(internalerrors.ErrInputUnavailable, "log file not found: %s", filePath)
		}
		return nil, internalerrors.Wrapf(internalerrors.ErrInputUnavailable, err, "failed to stat log file")
	}

	if fileInfo.IsDir() {
		return nil, internalerrors.New(internalerrors.ErrInputUnavailable, "log path is a directory: %s", filePath)
	}

	f, err := os.Open(filePath)
	if err != nil {
		return nil, internalerrors.Wrapf(internalerrors.ErrInputUnavailable, err, "failed to open log file")
	}
	defer func() { _ = f.Close() }()

	var src io.Reader = f
	if strings.HasSuffix(filePath, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, internalerrors.Wrapf(internalerrors.ErrInputUnavailable, err, "failed to open gzip stream")
		}
		defer func() { _ = gz.Close() }()
		src = gz
	}

	agg, err := r.ReadFrom(src)
	if err != nil {
		return nil, err
	}

	if err := r.Validate(agg); err != nil {
		return agg, internalerrors.New(internalerrors.ErrNoValidRecords,
			"file '%s' contains no valid log entries (%d lines read, %d skipped)", filePath, agg.Lines, agg.Skipped)
	}

	return agg, nil
}

// ReadFrom aggregates every line of src. It does not check for an empty
// result; use Validate for that.
//
// A line longer than the reader's limit is counted as skipped; only its
// first maxLineBytes are kept and the rest is discarded.
func (r *Reader) ReadFrom(src io.Reader) (*Aggregates, error) {
	agg := NewAggregates()

	br := bufio.NewReaderSize(src, min(64*1024, r.maxLineBytes))
	line := make([]byte, 0, min(64*1024, r.maxLineBytes))
	overlong, pending := false, false

	for {
		chunk, isPrefix, err := br.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				// Unterminated final line that filled the buffer.
				if pending {
					agg.Lines++
					r.consume(agg, string(line), overlong)
				}
				break
			}
			return nil, internalerrors.Wrapf(internalerrors.ErrInputUnavailable, err,
				"failed to read log file at line %d", agg.Lines+1)
		}

		if !overlong {
			if len(line)+len(chunk) > r.maxLineBytes {
				overlong = true
			} else {
				line = append(line, chunk...)
			}
		}
		if pending = isPrefix; pending {
			continue
		}

		agg.Lines++
		r.consume(agg, string(line), overlong)
		line = line[:0]
		overlong = false
	}

	return agg, nil
}

func (r *Reader) consume(agg *Aggregates, line string, overlong bool) {
	if overlong {
		agg.Skip(line)
		return
	}
	if ShouldIgnore(line) {
		agg.Ignore()
		return
	}
	rec, ok := Match(line)
	if !ok {
		agg.Skip(line)
		return
	}
	agg.Add(rec)
}

// Validate rejects aggregates that contain no matched record.
func (r *Reader) Validate(agg *Aggregates) error {
	if agg == nil || agg.Total == 0 {
		return fmt.Errorf("no line matched the log grammar")
	}
	return nil
}

// GetSourceInfo returns metadata about the log file.
func (r *Reader) GetSourceInfo(filePath string) (map[string]interface{}, error) {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, err
	}

	info := map[string]interface{}{
		"size_bytes": fileInfo.Size(),
		"size_mb":    float64(fileInfo.Size()) / 1024 / 1024,
		"modified":   fileInfo.ModTime(),
		"age_hours":  time.Since(fileInfo.ModTime()).Hours(),
		"compressed": strings.HasSuffix(filePath, ".gz"),
	}

	return info, nil
}
