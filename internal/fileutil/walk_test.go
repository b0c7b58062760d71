package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, dir string, files ...string) {
	t.Helper()
	for _, f := range files {
		require.NoError(t, CreateFile(filepath.Join(dir, f), "{}"))
	}
}

func collectNames(t *testing.T, dir string, opts WalkOptions) []string {
	t.Helper()
	var names []string
	err := ForEachFile(dir, func(e Entry) error {
		names = append(names, e.Name)
		return nil
	}, opts)
	require.NoError(t, err)
	return names
}

func TestForEachFile(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir,
		"hello-world.json",
		"notes.txt",
		"blog-post.json",
		filepath.Join("admin-area", "user-role.json"),
	)

	t.Run("top level only", func(t *testing.T) {
		assert.Equal(t, []string{"blogPost", "helloWorld"}, collectNames(t, dir, WalkOptions{}))
	})

	t.Run("raw names", func(t *testing.T) {
		assert.Equal(t, []string{"blog-post", "hello-world"}, collectNames(t, dir, WalkOptions{RawName: true}))
	})

	t.Run("recursive without naming", func(t *testing.T) {
		assert.Equal(t, []string{"userRole", "blogPost", "helloWorld"}, collectNames(t, dir, WalkOptions{Recursive: true}))
	})

	t.Run("recursive naming", func(t *testing.T) {
		names := collectNames(t, dir, WalkOptions{Recursive: true, RecursiveNaming: true})
		assert.Equal(t, []string{"adminArea/userRole", "blogPost", "helloWorld"}, names)
	})

	t.Run("recursive raw naming", func(t *testing.T) {
		names := collectNames(t, dir, WalkOptions{Recursive: true, RecursiveNaming: true, RawName: true})
		assert.Equal(t, []string{"admin-area/user-role", "blog-post", "hello-world"}, names)
	})

	t.Run("custom extension", func(t *testing.T) {
		assert.Equal(t, []string{"notes"}, collectNames(t, dir, WalkOptions{Extension: ".txt"}))
	})

	t.Run("entry carries path and info", func(t *testing.T) {
		var entry Entry
		err := ForEachFile(dir, func(e Entry) error {
			if e.Name == "blogPost" {
				entry = e
			}
			return nil
		}, WalkOptions{})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "blog-post.json"), entry.Path)
		require.NotNil(t, entry.Info)
		assert.Equal(t, "blog-post.json", entry.Info.Name())
	})
}

func TestForEachFile_Errors(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, "a.json", "b.json")

	t.Run("nil callback", func(t *testing.T) {
		assert.ErrorIs(t, ForEachFile(dir, nil, WalkOptions{}), ErrNilCallback)
	})

	t.Run("missing directory", func(t *testing.T) {
		err := ForEachFile(filepath.Join(dir, "does-not-exist"), func(Entry) error {
			t.Fatal("should not be called")
			return nil
		}, WalkOptions{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unable to access directory")
	})

	t.Run("missing directory ignored", func(t *testing.T) {
		err := ForEachFile(filepath.Join(dir, "does-not-exist"), func(Entry) error {
			t.Fatal("should not be called")
			return nil
		}, WalkOptions{IgnoreAccessFailure: true})
		assert.NoError(t, err)
	})

	t.Run("callback error stops the walk", func(t *testing.T) {
		stop := errors.New("stop")
		calls := 0
		err := ForEachFile(dir, func(Entry) error {
			calls++
			return stop
		}, WalkOptions{})
		assert.ErrorIs(t, err, stop)
		assert.Equal(t, 1, calls)
	})
}

func TestForEachFile_Symlinks(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, "user.json", filepath.Join("nested", "role.json"))

	if err := os.Symlink(dir, filepath.Join(dir, "nested", "loop")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
	require.NoError(t, os.Symlink(filepath.Join(dir, "user.json"), filepath.Join(dir, "alias.json")))
	require.NoError(t, os.Symlink(filepath.Join(dir, "missing.json"), filepath.Join(dir, "dangling.json")))

	names := collectNames(t, dir, WalkOptions{Recursive: true, RecursiveNaming: true})
	assert.Equal(t, []string{"alias", "nested/role", "user"}, names)
}
