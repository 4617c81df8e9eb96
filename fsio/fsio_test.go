package fsio

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, size int) (string, []byte) {
	t.Helper()

	content := make([]byte, size)
	for i := range content {
		content[i] = byte('a' + i%26)
	}

	path := filepath.Join(t.TempDir(), "fixture")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	return path, content
}

func TestSize(t *testing.T) {
	path, _ := writeFixture(t, 100)

	n, err := Size(path)
	require.NoError(t, err)
	assert.Equal(t, int64(100), n)
}

func TestSizeNonRegular(t *testing.T) {
	n, err := Size(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestSizeMissing(t *testing.T) {
	_, err := Size(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestReadContents(t *testing.T) {
	for _, size := range []int{0, 1, 100, 4096, 10000} {
		path, content := writeFixture(t, size)

		got, err := ReadContents(path)
		require.NoError(t, err)
		assert.Len(t, got, size)
		assert.True(t, bytes.Equal(content, got))
	}
}

func TestReadExactShortRead(t *testing.T) {
	path, _ := writeFixture(t, 5)

	_, err := ReadExact(path, 10)
	require.Error(t, err)

	var shortRead *ShortReadError
	require.ErrorAs(t, err, &shortRead)
	assert.Equal(t, path, shortRead.Path)
	assert.Equal(t, int64(10), shortRead.Expected)
	assert.Equal(t, int64(5), shortRead.Actual)
}

func TestReadExactMissing(t *testing.T) {
	_, err := ReadExact(filepath.Join(t.TempDir(), "nope"), 1)
	assert.Error(t, err)
}

func TestReadStreaming(t *testing.T) {
	// sizes below, at, and across the chunk boundary
	for _, size := range []int{0, 4095, 4096, 4097, 10000} {
		path, content := writeFixture(t, size)

		got, err := ReadStreaming(path)
		require.NoError(t, err)
		assert.Len(t, got, size)
		assert.True(t, bytes.Equal(content, got))
	}
}

func TestReadStreamingProcFile(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("requires /proc")
	}

	// /proc entries stat as zero bytes but still have contents
	n, err := Size("/proc/self/status")
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	got, err := ReadStreaming("/proc/self/status")
	require.NoError(t, err)
	assert.Contains(t, string(got), "Name:")
}

func TestReadStreamingMissing(t *testing.T) {
	_, err := ReadStreaming(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
	assert.False(t, errors.As(err, new(*ShortReadError)))
}
