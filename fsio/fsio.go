// Package fsio reads whole files into memory, including pseudo-filesystem
// entries that misreport their size and can only be read by streaming.
package fsio

import (
	"fmt"
	"io"
	"os"
)

// chunkSize is how much the streaming read buffer grows per read.
const chunkSize = 4096

// ShortReadError reports a file that ended before the expected number of
// bytes could be read.
type ShortReadError struct {
	Path     string
	Expected int64
	Actual   int64
}

func (e *ShortReadError) Error() string {
	return fmt.Sprintf(
		"'%s' expected to read %d bytes; read only %d",
		e.Path, e.Expected, e.Actual,
	)
}

// Size returns the size of the file at path. Non-regular files report 0,
// meaning the size is unknown and the contents must be streamed.
func Size(path string) (int64, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("stat '%s': %w", path, err)
	}

	if !stat.Mode().IsRegular() {
		return 0, nil
	}

	return stat.Size(), nil
}

// ReadExact reads exactly n bytes from the file at path. If the file ends
// early, it fails with a ShortReadError carrying the expected and actual
// byte counts.
func ReadExact(path string, n int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open '%s': %w", path, err)
	}
	defer f.Close()

	buf := make([]byte, n)

	var done int64
	for done < n {
		read, err := f.Read(buf[done:])
		done += int64(read)

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read '%s': %w", path, err)
		}
	}

	if done < n {
		return nil, &ShortReadError{Path: path, Expected: n, Actual: done}
	}

	return buf, nil
}

// ReadContents returns the contents of a regular file whose size is
// trusted up front. A zero-sized file yields an empty buffer, not an
// error.
func ReadContents(path string) ([]byte, error) {
	n, err := Size(path)
	if err != nil {
		return nil, err
	}

	return ReadExact(path, n)
}

// ReadStreaming returns the contents of a file whose true size cannot be
// determined before reading, such as /proc entries that stat as zero
// bytes. The buffer is grown a chunk at a time until a read returns no
// data.
func ReadStreaming(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open '%s': %w", path, err)
	}
	defer f.Close()

	buf := make([]byte, 0, chunkSize)
	for {
		if len(buf) == cap(buf) {
			grown := make([]byte, len(buf), cap(buf)+chunkSize)
			copy(grown, buf)
			buf = grown
		}

		read, err := f.Read(buf[len(buf):cap(buf)])
		buf = buf[:len(buf)+read]

		if err == io.EOF || (err == nil && read == 0) {
			return buf, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read '%s': %w", path, err)
		}
	}
}
