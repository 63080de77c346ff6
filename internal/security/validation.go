// Package security provides input validation and size limits for files read
// by huewheel.
package security

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrSizeLimit is returned once a LimitedReader has been drained.
var ErrSizeLimit = errors.New("input size limit exceeded")

// ValidateInputFile checks that path names an existing regular file.
func ValidateInputFile(path string) error {
	if path == "" {
		return fmt.Errorf("empty file path")
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file not found: %s", path)
		}
		return fmt.Errorf("failed to stat file: %w", err)
	}

	if info.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", path)
	}

	return nil
}

// LimitedReader wraps an io.Reader and limits the total bytes that can be read.
// This prevents decompression bombs when reading compressed scripts.
type LimitedReader struct {
	R         io.Reader
	Remaining int64
}

// Read implements io.Reader with size limits.
func (l *LimitedReader) Read(p []byte) (int, error) {
	if l.Remaining <= 0 {
		return 0, ErrSizeLimit
	}
	if int64(len(p)) > l.Remaining {
		p = p[:l.Remaining]
	}
	n, err := l.R.Read(p)
	l.Remaining -= int64(n)
	return n, err
}

// NewLimitedReader creates a new LimitedReader with the specified size limit.
func NewLimitedReader(r io.Reader, maxBytes int64) *LimitedReader {
	return &LimitedReader{
		R:         r,
		Remaining: maxBytes,
	}
}
