package fileutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("plain text", func(t *testing.T) {
		path := filepath.Join(dir, "test.txt")
		require.NoError(t, CreateFile(path, "hello world"))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "hello world", string(data))
	})

	t.Run("creates parent directories", func(t *testing.T) {
		path := filepath.Join(dir, "a", "b", "c.txt")
		require.NoError(t, CreateFile(path, []byte("nested")))
		assert.True(t, FileExists(path))
	})

	t.Run("json", func(t *testing.T) {
		path := filepath.Join(dir, "test.json")
		require.NoError(t, CreateFile(path, map[string]any{"foo": "bar"}, WithJSON()))

		var out map[string]any
		require.NoError(t, ReadJSON(path, &out))
		assert.Equal(t, map[string]any{"foo": "bar"}, out)
	})

	t.Run("yaml", func(t *testing.T) {
		path := filepath.Join(dir, "test.yaml")
		require.NoError(t, CreateFile(path, map[string]any{"foo": map[string]any{"bar": 1}}, WithYAML()))

		out, err := ReadObject(path)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"foo": map[string]any{"bar": 1}}, out)
	})

	t.Run("text requires string data", func(t *testing.T) {
		err := CreateFile(filepath.Join(dir, "bad.txt"), 42)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be a string")
	})
}

func TestUpdateFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.txt")

	t.Run("fails when file does not exist", func(t *testing.T) {
		err := UpdateFile(path, "data")
		require.Error(t, err)
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})

	t.Run("replaces contents without leaving swap files", func(t *testing.T) {
		require.NoError(t, CreateFile(path, "old"))
		require.NoError(t, UpdateFile(path, "new"))

		data, err := ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new", data)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("json", func(t *testing.T) {
		require.NoError(t, UpdateFile(path, []int{1, 2}, WithJSON()))

		var out []int
		require.NoError(t, ReadJSON(path, &out))
		assert.Equal(t, []int{1, 2}, out)
	})
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "test.txt")
	dst := filepath.Join(dir, "copy.txt")

	t.Run("copies a file", func(t *testing.T) {
		require.NoError(t, CreateFile(src, "data"))

		copied, err := CopyFile(src, dst, false)
		require.NoError(t, err)
		assert.True(t, copied)

		data, err := ReadFile(dst)
		require.NoError(t, err)
		assert.Equal(t, "data", data)
	})

	t.Run("does not overwrite without overwrite", func(t *testing.T) {
		require.NoError(t, CreateFile(src, "data1"))
		require.NoError(t, CreateFile(dst, "data2"))

		copied, err := CopyFile(src, dst, false)
		require.NoError(t, err)
		assert.False(t, copied)

		data, err := ReadFile(dst)
		require.NoError(t, err)
		assert.Equal(t, "data2", data)
	})

	t.Run("overwrites when asked", func(t *testing.T) {
		copied, err := CopyFile(src, dst, true)
		require.NoError(t, err)
		assert.True(t, copied)

		data, err := ReadFile(dst)
		require.NoError(t, err)
		assert.Equal(t, "data1", data)
	})

	t.Run("missing source", func(t *testing.T) {
		_, err := CopyFile(filepath.Join(dir, "missing.txt"), dst, true)
		require.Error(t, err)
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file callback", func(t *testing.T) {
		var gotPath string
		data, err := ReadFile(filepath.Join(dir, "nonexistent.txt"), WithMissingFile(func(path string) (string, error) {
			gotPath = path
			return "fallback", nil
		}))
		require.NoError(t, err)
		assert.Equal(t, "fallback", data)
		assert.Equal(t, filepath.Join(dir, "nonexistent.txt"), gotPath)
	})

	t.Run("missing file without callback", func(t *testing.T) {
		_, err := ReadFile(filepath.Join(dir, "nonexistent.txt"))
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})
}

func TestReadObject(t *testing.T) {
	dir := t.TempDir()

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := ReadObject(filepath.Join(dir, "file.txt"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported file extension")
	})

	t.Run("empty yaml", func(t *testing.T) {
		path := filepath.Join(dir, "empty.yml")
		require.NoError(t, CreateFile(path, ""))

		obj, err := ReadObject(path)
		require.NoError(t, err)
		assert.Empty(t, obj)
	})

	t.Run("invalid json", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, CreateFile(path, "{"))

		_, err := ReadObject(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse JSON")
	})
}

func TestDeleteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.txt")

	require.NoError(t, CreateFile(path, "data"))
	require.NoError(t, DeleteFile(path, false))
	assert.False(t, FileExists(path))

	assert.NoError(t, DeleteFile(path, true))
	assert.ErrorIs(t, DeleteFile(path, false), fs.ErrNotExist)
}

func TestDirectories(t *testing.T) {
	dir := t.TempDir()
	deep := filepath.Join(dir, "a", "b", "c")

	require.NoError(t, CreateDirectory(deep))
	info, err := os.Stat(deep)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	require.NoError(t, DeleteDirectory(filepath.Join(dir, "a")))
	assert.False(t, FileExists(filepath.Join(dir, "a")))
	assert.NoError(t, DeleteDirectory(filepath.Join(dir, "a")))
}
