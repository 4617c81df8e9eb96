package hooks

import (
	"io"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRuntime struct {
	*defaultRuntime
	aborted  bool
	exitCode int
	nthreads int
}

func (r *recordingRuntime) Abort() { r.aborted = true }

func (r *recordingRuntime) Exit(code int) { r.exitCode = code }

func (r *recordingRuntime) NThreads() int { return r.nthreads }

func swapRuntime(t *testing.T, r Runtime) {
	t.Helper()

	orig := current
	origIndex := threadIndex
	Set(r)
	t.Cleanup(func() {
		current = orig
		threadIndex = origIndex
	})
}

func capturePipe(t *testing.T) (*os.File, func() string) {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)

	return w, func() string {
		w.Close()
		out, err := io.ReadAll(r)
		require.NoError(t, err)
		return string(out)
	}
}

func TestDefaultNThreads(t *testing.T) {
	assert.Equal(t, 1, NThreads())
}

func TestAbortPanics(t *testing.T) {
	d := &defaultRuntime{out: os.Stdout, err: os.Stderr}
	assert.Panics(t, d.Abort)
}

func TestOutOfMemoryEscalatesToAbort(t *testing.T) {
	r := &recordingRuntime{
		defaultRuntime: &defaultRuntime{out: os.Stdout, err: os.Stderr},
		nthreads:       1,
	}
	swapRuntime(t, r)

	OutOfMemory()
	assert.True(t, r.aborted)
}

func TestSetOverridesExit(t *testing.T) {
	r := &recordingRuntime{
		defaultRuntime: &defaultRuntime{out: os.Stdout, err: os.Stderr},
		nthreads:       1,
	}
	swapRuntime(t, r)

	Exit(3)
	assert.Equal(t, 3, r.exitCode)
}

func TestPutsSingleThreadNoPrefix(t *testing.T) {
	w, read := capturePipe(t)

	d := &defaultRuntime{out: w, err: w}
	swapRuntime(t, d)

	Puts([]byte("hello\n"), false)
	assert.Equal(t, "hello\n", read())
}

func TestPutsPrefixesWhenMultithreaded(t *testing.T) {
	w, read := capturePipe(t)

	d := &defaultRuntime{out: w, err: w}
	swapRuntime(t, &recordingRuntime{defaultRuntime: d, nthreads: 4})
	SetThreadIndexFunc(func() int { return 2 })

	// call through the default implementation; it reads the installed
	// table's thread count
	d.Puts([]byte("hello\n"), false)
	assert.Equal(t, "2: hello\n", read())
}

func TestPutsErrorStream(t *testing.T) {
	outW, readOut := capturePipe(t)
	errW, readErr := capturePipe(t)

	d := &defaultRuntime{out: outW, err: errW}
	swapRuntime(t, d)

	Puts([]byte("oops\n"), true)
	assert.Equal(t, "", readOut())
	assert.Equal(t, "oops\n", readErr())
}

func TestPutsConcurrentLinesStayIntact(t *testing.T) {
	w, read := capturePipe(t)

	d := &defaultRuntime{out: w, err: w}
	swapRuntime(t, &recordingRuntime{defaultRuntime: d, nthreads: 2})

	var wg sync.WaitGroup
	for _, payload := range []string{"aaaaaaaa\n", "bbbbbbbb\n"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				d.Puts([]byte(payload), false)
			}
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(read(), "\n"), "\n")
	assert.Len(t, lines, 200)
	for _, line := range lines {
		assert.Contains(t, []string{"0: aaaaaaaa", "0: bbbbbbbb"}, line)
	}
}
