// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package copier

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/oomol-lab/secopy/pkg/report"
	"github.com/oomol-lab/secopy/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/windows"
)

type fakeFile struct {
	r      io.Reader
	w      bytes.Buffer
	closed int

	readErr    error // returned once r is drained
	writeErr   error
	shortWrite bool
	maxRead    int
}

func (f *fakeFile) Read(p []byte) (int, error) {
	if len(p) > f.maxRead {
		f.maxRead = len(p)
	}
	n, err := f.r.Read(p)
	if err == io.EOF && f.readErr != nil {
		return n, f.readErr
	}
	return n, err
}

func (f *fakeFile) Write(p []byte) (int, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	if f.shortWrite && len(p) > 1 {
		p = p[:len(p)-1]
	}
	return f.w.Write(p)
}

func (f *fakeFile) Close() error {
	f.closed++
	return nil
}

type fakeFS struct {
	src    *fakeFile
	dst    *fakeFile
	srcErr error
	dstErr error

	srcOpened int
	dstOpened int
}

// openErr mirrors CreateFileW, which fails an empty path with ERROR_PATH_NOT_FOUND
func openErr(path string, err error) error {
	if path == "" {
		return &os.PathError{Op: "open", Path: path, Err: windows.ERROR_PATH_NOT_FOUND}
	}
	return err
}

func (fs *fakeFS) OpenSource(path string) (types.File, error) {
	fs.srcOpened++
	if err := openErr(path, fs.srcErr); err != nil {
		return nil, err
	}
	return fs.src, nil
}

func (fs *fakeFS) CreateDestination(path string) (types.File, error) {
	fs.dstOpened++
	if err := openErr(path, fs.dstErr); err != nil {
		return nil, err
	}
	return fs.dst, nil
}

func newFS(content string) *fakeFS {
	return &fakeFS{
		src: &fakeFile{r: strings.NewReader(content)},
		dst: &fakeFile{r: strings.NewReader("")},
	}
}

func newCopier(fs FileSystem) (*Copier, *bytes.Buffer) {
	var buf bytes.Buffer
	return New(fs, report.New(&buf, nil, nil), nil), &buf
}

func TestCopier_Copy(t *testing.T) {
	fs := newFS("hello world")
	c, out := newCopier(fs)

	n, err := c.Copy("src.txt", "dst.txt")

	require.NoError(t, err)
	assert.Equal(t, int64(11), n)
	assert.Equal(t, "hello world", fs.dst.w.String())
	assert.Equal(t, 1, fs.src.closed)
	assert.Equal(t, 1, fs.dst.closed)
	assert.Empty(t, out.String())
}

func TestCopier_Copy_multipleChunks(t *testing.T) {
	content := strings.Repeat("0123456789abcdef", 3*types.BufferSize/16+5)
	fs := newFS(content)
	c, _ := newCopier(fs)

	n, err := c.Copy("src", "dst")

	require.NoError(t, err)
	assert.Equal(t, int64(len(content)), n)
	assert.Equal(t, content, fs.dst.w.String())
	assert.Equal(t, types.BufferSize, fs.src.maxRead)
}

func TestCopier_Copy_empty(t *testing.T) {
	fs := newFS("")
	c, _ := newCopier(fs)

	n, err := c.Copy("src", "dst")

	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, 1, fs.dst.closed)
}

func TestCopier_Copy_handleEOFError(t *testing.T) {
	fs := newFS("abc")
	fs.src.readErr = windows.ERROR_HANDLE_EOF
	c, out := newCopier(fs)

	_, err := c.Copy("src", "dst")

	require.NoError(t, err)
	assert.Equal(t, "abc", fs.dst.w.String())
	assert.Empty(t, out.String())
}

func TestCopier_Copy_sourceOpenFailure(t *testing.T) {
	fs := newFS("x")
	fs.srcErr = windows.ERROR_FILE_NOT_FOUND
	c, out := newCopier(fs)

	_, err := c.Copy("missing.txt", "dst.txt")

	require.ErrorIs(t, err, windows.ERROR_FILE_NOT_FOUND)
	assert.Zero(t, fs.dstOpened, "destination must not be created")
	assert.Zero(t, fs.src.closed)
	assert.Zero(t, fs.dst.closed)
	assert.Equal(t, "Failed to open source file Error: 2\r\n", out.String())
}

func TestCopier_Copy_destinationOpenFailure(t *testing.T) {
	fs := newFS("x")
	fs.dstErr = windows.ERROR_ACCESS_DENIED
	c, out := newCopier(fs)

	_, err := c.Copy("src", "dst")

	require.ErrorIs(t, err, windows.ERROR_ACCESS_DENIED)
	assert.Equal(t, 1, fs.src.closed)
	assert.Zero(t, fs.dst.closed)
	assert.Equal(t, "Failed to open destination file Error: 5\r\n", out.String())
}

func TestCopier_Copy_readFailure(t *testing.T) {
	fs := newFS("partial")
	fs.src.readErr = windows.ERROR_LOCK_VIOLATION
	c, out := newCopier(fs)

	n, err := c.Copy("src", "dst")

	require.ErrorIs(t, err, windows.ERROR_LOCK_VIOLATION)
	assert.Equal(t, int64(7), n)
	assert.Equal(t, "partial", fs.dst.w.String(), "partial destination is kept")
	assert.Equal(t, 1, fs.src.closed)
	assert.Equal(t, 1, fs.dst.closed)
	assert.Equal(t, "Read failed Error: 33\r\n", out.String())
}

func TestCopier_Copy_writeFailure(t *testing.T) {
	fs := newFS("data")
	fs.dst.writeErr = windows.ERROR_DISK_FULL
	c, out := newCopier(fs)

	_, err := c.Copy("src", "dst")

	require.ErrorIs(t, err, windows.ERROR_DISK_FULL)
	assert.Equal(t, 1, fs.src.closed)
	assert.Equal(t, 1, fs.dst.closed)
	assert.Equal(t, "Write failed Error: 112\r\n", out.String())
}

func TestCopier_Copy_shortWrite(t *testing.T) {
	fs := newFS("data")
	fs.dst.shortWrite = true
	c, out := newCopier(fs)

	n, err := c.Copy("src", "dst")

	require.ErrorIs(t, err, io.ErrShortWrite)
	assert.Equal(t, int64(3), n)
	assert.Equal(t, 1, fs.src.closed)
	assert.Equal(t, 1, fs.dst.closed)
	assert.Equal(t, "Write failed Error: 29\r\n", out.String())
}

func TestCopier_Copy_emptySource(t *testing.T) {
	fs := newFS("x")
	c, out := newCopier(fs)

	_, err := c.Copy("", "dst")

	require.ErrorIs(t, err, windows.ERROR_PATH_NOT_FOUND)
	assert.Equal(t, 1, fs.srcOpened)
	assert.Zero(t, fs.dstOpened, "destination must not be created")
	assert.Equal(t, "Failed to open source file Error: 3\r\n", out.String())
}

func TestCopier_Copy_emptyDestination(t *testing.T) {
	fs := newFS("x")
	c, out := newCopier(fs)

	_, err := c.Copy("src", "")

	require.ErrorIs(t, err, windows.ERROR_PATH_NOT_FOUND)
	assert.Equal(t, 1, fs.src.closed)
	assert.Equal(t, "Failed to open destination file Error: 3\r\n", out.String())
}

func TestHandle_release(t *testing.T) {
	var h handle
	h.release()
	assert.Equal(t, unassigned, h.state)

	f := &fakeFile{r: strings.NewReader("")}
	h.assign(f)
	h.release()
	h.release()
	assert.Equal(t, released, h.state)
	assert.Equal(t, 1, f.closed)
}
