// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package copier

import (
	"errors"
	"fmt"
	"io"

	"github.com/oomol-lab/secopy/pkg/logger"
	"github.com/oomol-lab/secopy/pkg/report"
	"github.com/oomol-lab/secopy/pkg/types"
	"golang.org/x/sys/windows"
)

// FileSystem opens files with backup (source) and restore (destination) semantics.
//
// The backup and restore privileges must already be enabled, they are not checked here.
type FileSystem interface {
	OpenSource(path string) (types.File, error)
	CreateDestination(path string) (types.File, error)
}

type Copier struct {
	fs       FileSystem
	reporter *report.Reporter
	log      *logger.Context
}

func New(fs FileSystem, reporter *report.Reporter, log *logger.Context) *Copier {
	if log == nil {
		log = logger.Discard()
	}
	return &Copier{
		fs:       fs,
		reporter: reporter,
		log:      log,
	}
}

// Copy copies the content of src to dst and returns the number of bytes written.
//
// The destination is only created after the source opened. On failure the destination is left
// as it is, possibly truncated or partially written.
func (c *Copier) Copy(src, dst string) (written int64, err error) {
	var in, out handle
	defer out.release()
	defer in.release()

	f, err := c.fs.OpenSource(src)
	if err != nil {
		c.reporter.ReportErr("Failed to open source file", err)
		return 0, fmt.Errorf("failed to open source file %s: %w", src, err)
	}
	in.assign(f)
	c.log.Infof("source %s is opened with backup semantics", src)

	f, err = c.fs.CreateDestination(dst)
	if err != nil {
		c.reporter.ReportErr("Failed to open destination file", err)
		return 0, fmt.Errorf("failed to open destination file %s: %w", dst, err)
	}
	out.assign(f)
	c.log.Infof("destination %s is created with restore semantics", dst)

	return c.stream(out.f, in.f)
}

func (c *Copier) stream(dst, src types.File) (written int64, err error) {
	buf := make([]byte, types.BufferSize)

	for {
		nr, rerr := src.Read(buf)
		if nr > 0 {
			nw, werr := dst.Write(buf[:nr])
			if nw > 0 {
				written += int64(nw)
			}
			if werr != nil || nw != nr {
				if werr == nil {
					werr = io.ErrShortWrite
					c.reporter.Report("Write failed", uint32(windows.ERROR_WRITE_FAULT))
				} else {
					c.reporter.ReportErr("Write failed", werr)
				}
				return written, fmt.Errorf("write failed after %d bytes: %w", written, werr)
			}
		}

		if isEOF(nr, rerr) {
			return written, nil
		}
		if rerr != nil {
			c.reporter.ReportErr("Read failed", rerr)
			return written, fmt.Errorf("read failed after %d bytes: %w", written, rerr)
		}
	}
}

// isEOF reports whether a read ended the stream normally: io.EOF, ERROR_HANDLE_EOF, or a zero-byte read without error.
func isEOF(n int, err error) bool {
	if err == nil {
		return n == 0
	}
	return errors.Is(err, io.EOF) || errors.Is(err, windows.ERROR_HANDLE_EOF)
}
