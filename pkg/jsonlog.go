// Package pkg provides reusable storage utilities for kitchensink.
package pkg

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// JSONLog is a generic append-only log storing one JSON document per line.
// Every Append is flushed to stable storage before it returns.
type JSONLog[T any] interface {
	Path() string
	Append(item T) error
	AppendBatch(items []T) error
	// Range calls fn for each decodable line in order. Lines that fail to
	// decode are skipped and counted. Opening a missing file returns an
	// error wrapping fs.ErrNotExist.
	Range(fn func(index uint64, item T) error) (malformed int, err error)
}

type jsonLogImpl[T any] struct {
	path string
	mu   sync.Mutex
}

// NewJSONLog returns a JSONLog backed by the file at path. The file is
// created lazily on the first Append.
func NewJSONLog[T any](path string) JSONLog[T] {
	return &jsonLogImpl[T]{path: path}
}

// Path implements JSONLog.
func (l *jsonLogImpl[T]) Path() string {
	return l.path
}

// Append implements JSONLog.
func (l *jsonLogImpl[T]) Append(item T) error {
	return l.AppendBatch([]T{item})
}

// AppendBatch implements JSONLog. Items are written in order and synced once.
func (l *jsonLogImpl[T]) AppendBatch(items []T) error {
	if len(items) == 0 {
		return nil
	}

	var buf bytes.Buffer

	for i, item := range items {
		line, err := json.Marshal(item)
		if err != nil {
			slog.Error("failed to encode item", "path", l.path, "index", i, "error", err)
			return fmt.Errorf("failed to encode item: %w", err)
		}

		buf.Write(line)
		buf.WriteByte('\n')
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(l.path), 0o750); err != nil {
		slog.Error("failed to create log directory", "path", l.path, "error", err)
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_RDWR, 0o640)
	if err != nil {
		slog.Error("failed to open log for append", "path", l.path, "error", err)
		return fmt.Errorf("failed to open log: %w", err)
	}

	data := buf.Bytes()

	torn, err := endsWithoutNewline(file)
	if err != nil {
		_ = file.Close()

		slog.Error("failed to inspect log tail", "path", l.path, "error", err)

		return fmt.Errorf("failed to inspect log tail: %w", err)
	}

	// A torn final line is terminated so it stays a single malformed line.
	if torn {
		slog.Warn("terminating torn final log line", "path", l.path)

		data = append([]byte{'\n'}, data...)
	}

	if _, err := file.Write(data); err != nil {
		_ = file.Close()

		slog.Error("failed to write log", "path", l.path, "error", err)

		return fmt.Errorf("failed to write log: %w", err)
	}

	if err := file.Sync(); err != nil {
		_ = file.Close()

		slog.Error("failed to sync log", "path", l.path, "error", err)

		return fmt.Errorf("failed to sync log: %w", err)
	}

	if err := file.Close(); err != nil {
		slog.Error("failed to close log", "path", l.path, "error", err)
		return fmt.Errorf("failed to close log: %w", err)
	}

	slog.Debug("appended items", "path", l.path, "count", len(items))

	return nil
}

func endsWithoutNewline(file *os.File) (bool, error) {
	info, err := file.Stat()
	if err != nil {
		return false, err
	}

	if info.Size() == 0 {
		return false, nil
	}

	last := make([]byte, 1)
	if _, err := file.ReadAt(last, info.Size()-1); err != nil {
		return false, err
	}

	return last[0] != '\n', nil
}

// Range implements JSONLog.
func (l *jsonLogImpl[T]) Range(fn func(index uint64, item T) error) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	file, err := os.Open(l.path)
	if err != nil {
		slog.Debug("failed to open log for range", "path", l.path, "error", err)
		return 0, fmt.Errorf("failed to open log: %w", err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("failed to close log", "path", l.path, "error", err)
		}
	}()

	reader := bufio.NewReader(file)
	malformed := 0

	var index uint64

	for {
		line, readErr := reader.ReadBytes('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			slog.Error("failed to read log", "path", l.path, "error", readErr)
			return malformed, fmt.Errorf("failed to read log: %w", readErr)
		}

		if trimmed := bytes.TrimSpace(line); len(trimmed) > 0 {
			var item T
			if err := json.Unmarshal(trimmed, &item); err != nil {
				slog.Warn("skipping malformed log line", "path", l.path, "index", index, "error", err)

				malformed++
			} else if err := fn(index, item); err != nil {
				return malformed, err
			}

			index++
		}

		if readErr != nil {
			break
		}
	}

	slog.Debug("range completed", "path", l.path, "lines", index, "malformed", malformed)

	return malformed, nil
}
