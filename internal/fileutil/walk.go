package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"stonyx-utils/internal/strutil"
)

// DefaultExtension is the file extension ForEachFile visits when none is set.
const DefaultExtension = ".json"

// ErrNilCallback is returned by ForEachFile when no callback is given.
var ErrNilCallback = errors.New("callback must be a valid function")

// Entry describes a file visited by ForEachFile.
type Entry struct {
	// Name is the file name without extension, camelCased unless RawName is
	// set, and prefixed with the directory path when RecursiveNaming is set.
	Name string
	Path string
	Info fs.FileInfo
}

// WalkOptions controls ForEachFile.
type WalkOptions struct {
	// Extension selects the files to visit, e.g. ".json". Defaults to DefaultExtension.
	Extension string
	// Recursive descends into subdirectories.
	Recursive bool
	// RecursiveNaming prefixes entry names with "dir/" for each directory descended into.
	RecursiveNaming bool
	// RawName keeps file and directory names as-is instead of camelCasing them.
	RawName bool
	// IgnoreAccessFailure returns nil instead of an error when dir cannot be read.
	IgnoreAccessFailure bool
	// NamePrefix is prepended to every entry name.
	NamePrefix string
}

// ForEachFile calls fn for every regular file in dir with the configured
// extension, in lexical order. Returning an error from fn stops the walk and
// the error is returned.
func ForEachFile(dir string, fn func(Entry) error, opts WalkOptions) error {
	if fn == nil {
		return ErrNilCallback
	}
	if opts.Extension == "" {
		opts.Extension = DefaultExtension
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if opts.IgnoreAccessFailure {
			return nil
		}
		return fmt.Errorf("unable to access directory %q: %w", dir, err)
	}

	for _, entry := range entries {
		file := entry.Name()
		path := filepath.Join(dir, file)

		info, err := entry.Info()
		if err != nil {
			return fmt.Errorf("failed to stat %q: %w", path, err)
		}
		// Linked files are visited; linked directories are never followed.
		if info.Mode()&fs.ModeSymlink != 0 {
			target, err := os.Stat(path)
			if err != nil || target.IsDir() {
				continue
			}
			info = target
		}

		if opts.Recursive && info.IsDir() {
			nested := opts
			if opts.RecursiveNaming {
				nested.NamePrefix = opts.NamePrefix + opts.name(file) + "/"
			}
			if err := ForEachFile(path, fn, nested); err != nil {
				return err
			}
			continue
		}

		if !info.Mode().IsRegular() || !strings.HasSuffix(file, opts.Extension) {
			continue
		}

		name := opts.NamePrefix + opts.name(strings.TrimSuffix(file, opts.Extension))
		if err := fn(Entry{Name: name, Path: path, Info: info}); err != nil {
			return err
		}
	}
	return nil
}

func (o WalkOptions) name(raw string) string {
	if o.RawName {
		return raw
	}
	return strutil.KebabToCamel(raw)
}
