// Package fileutil wraps common filesystem operations: creating, updating,
// copying, reading and deleting files, and walking directories of data files.
package fileutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"stonyx-utils/internal/dateutil"
	"stonyx-utils/internal/strutil"

	"gopkg.in/yaml.v3"
)

// Format selects how data passed to CreateFile and UpdateFile is serialized.
type Format int

const (
	// FormatText writes strings and byte slices verbatim.
	FormatText Format = iota
	// FormatJSON writes indented JSON.
	FormatJSON
	// FormatYAML writes YAML.
	FormatYAML
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

type writeOptions struct {
	format Format
}

// WriteOption configures CreateFile and UpdateFile.
type WriteOption func(*writeOptions)

// WithJSON serializes data as JSON.
func WithJSON() WriteOption {
	return func(o *writeOptions) { o.format = FormatJSON }
}

// WithYAML serializes data as YAML.
func WithYAML() WriteOption {
	return func(o *writeOptions) { o.format = FormatYAML }
}

// CreateFile writes data to path, creating parent directories as needed.
// An existing file is truncated.
func CreateFile(path string, data any, opts ...WriteOption) error {
	path, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %q: %w", path, err)
	}

	content, err := encode(data, opts)
	if err != nil {
		return err
	}

	if err := CreateDirectory(filepath.Dir(path)); err != nil {
		return err
	}
	if err := os.WriteFile(path, content, filePerm); err != nil {
		return fmt.Errorf("failed to create file %q: %w", path, err)
	}
	return nil
}

// UpdateFile replaces the contents of an existing file. The new contents are
// written to a swap file next to path which is then renamed over it, so
// readers never observe a partially written file.
func UpdateFile(path string, data any, opts ...WriteOption) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to access file %q: %w", path, err)
	}

	content, err := encode(data, opts)
	if err != nil {
		return err
	}

	swapFile := fmt.Sprintf("%s.temp-%d-%s", path, dateutil.Timestamp(time.Time{}), strutil.RandomID()[:8])
	if err := os.WriteFile(swapFile, content, info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to write swap file %q: %w", swapFile, err)
	}
	if err := os.Rename(swapFile, path); err != nil {
		_ = os.Remove(swapFile)
		return fmt.Errorf("failed to replace file %q: %w", path, err)
	}
	return nil
}

// CopyFile copies src to dst. When dst already exists and overwrite is false
// nothing is copied and false is returned.
func CopyFile(src, dst string, overwrite bool) (bool, error) {
	src, err := filepath.Abs(src)
	if err != nil {
		return false, fmt.Errorf("failed to resolve %q: %w", src, err)
	}
	dst, err = filepath.Abs(dst)
	if err != nil {
		return false, fmt.Errorf("failed to resolve %q: %w", dst, err)
	}

	in, err := os.Open(src)
	if err != nil {
		return false, fmt.Errorf("failed to open source file: %w", err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return false, fmt.Errorf("failed to stat source file: %w", err)
	}

	if FileExists(dst) && !overwrite {
		return false, nil
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return false, fmt.Errorf("failed to open target file: %w", err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return false, fmt.Errorf("failed to copy %q to %q: %w", src, dst, err)
	}
	if err := out.Close(); err != nil {
		return false, fmt.Errorf("failed to close target file: %w", err)
	}
	return true, nil
}

// DeleteFile removes a file. With ignoreMissing, a file that does not exist
// is not an error.
func DeleteFile(path string, ignoreMissing bool) error {
	path, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %q: %w", path, err)
	}
	if err := os.Remove(path); err != nil {
		if ignoreMissing && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to delete file %q: %w", path, err)
	}
	return nil
}

// DeleteDirectory removes dir and everything below it. A missing directory
// is not an error.
func DeleteDirectory(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to delete directory %q: %w", dir, err)
	}
	return nil
}

// CreateDirectory creates dir and any missing parents.
func CreateDirectory(dir string) error {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("failed to create directory %q: %w", dir, err)
	}
	return nil
}

// FileExists reports whether path can be accessed.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func encode(data any, opts []WriteOption) ([]byte, error) {
	o := writeOptions{format: FormatText}
	for _, opt := range opts {
		opt(&o)
	}

	switch o.format {
	case FormatJSON:
		content, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode JSON: %w", err)
		}
		return append(content, '\n'), nil
	case FormatYAML:
		content, err := yaml.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to encode YAML: %w", err)
		}
		return content, nil
	}

	switch v := data.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	default:
		return nil, fmt.Errorf("text data must be a string or []byte, got %T", data)
	}
}
