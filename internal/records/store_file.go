package records

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

const maxLineBytes = 16 << 20

// FileStore keeps records in a line-delimited JSON file.
// Appends from separate processes are not coordinated.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore returns a store backed by the file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Append writes rec as one line at the end of the log.
func (s *FileStore) Append(ctx context.Context, rec ResumeRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	line, err := EncodeLine(rec)
	if err != nil {
		return fmt.Errorf("%w: encode: %w", ErrAppend, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: mkdir: %w", ErrAppend, err)
		}
	}
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: open %s: %w", ErrAppend, s.path, err)
	}
	if _, err := f.Write(line); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: write %s: %w", ErrAppend, s.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %w", ErrAppend, s.path, err)
	}
	return nil
}

// LoadAll reads the whole log. A missing file is an empty store.
func (s *FileStore) LoadAll(ctx context.Context) ([]ResumeRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []ResumeRecord{}, nil
		}
		return nil, fmt.Errorf("open record log: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	out := []ResumeRecord{}
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Bytes()
		// Blank lines (a trailing newline, a hand edit) are not records.
		if len(bytes.TrimSpace(raw)) == 0 {
			continue
		}
		rec, err := DecodeLine(raw)
		if err != nil {
			return []ResumeRecord{}, &CorruptLogError{Line: lineNo, Err: err}
		}
		out = append(out, rec)
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return []ResumeRecord{}, &CorruptLogError{Line: lineNo + 1, Err: err}
		}
		return nil, fmt.Errorf("read record log: %w", err)
	}
	return out, nil
}

var _ Store = (*FileStore)(nil)
