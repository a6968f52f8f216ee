// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package report

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"syscall"

	"github.com/oomol-lab/secopy/pkg/logger"
	"golang.org/x/sys/windows"
)

// MessageFunc returns the system message for a Win32 error code, ok is false if there is none
type MessageFunc func(code uint32) (message string, ok bool)

// Reporter writes one diagnostic line per failure to the error stream
type Reporter struct {
	w       io.Writer
	message MessageFunc
	log     *logger.Context
}

func New(w io.Writer, message MessageFunc, log *logger.Context) *Reporter {
	if w == nil {
		w = io.Discard
	}
	if log == nil {
		log = logger.Discard()
	}
	return &Reporter{
		w:       w,
		message: message,
		log:     log,
	}
}

// Report writes "<context> Error: <code> - <message>\r\n", or "<context> Error: <code>\r\n"
// when the system has no message for code.
func (r *Reporter) Report(context string, code uint32) {
	line := Format(context, code, r.lookup(code))
	_, _ = io.WriteString(r.w, line)
	r.log.Error(strings.TrimRight(line, "\r\n"))
}

// ReportErr reports the Win32 error code carried by err
func (r *Reporter) ReportErr(context string, err error) {
	r.Report(context, Code(err))
}

// Print writes a fixed line as is
func (r *Reporter) Print(line string) {
	_, _ = io.WriteString(r.w, line)
	r.log.Error(strings.TrimRight(line, "\r\n"))
}

func (r *Reporter) lookup(code uint32) string {
	if r.message == nil {
		return ""
	}

	m, ok := r.message(code)
	if !ok {
		return ""
	}
	return strings.TrimRight(m, "\r\n")
}

// Format builds a diagnostic line, an empty message selects the short form
func Format(context string, code uint32, message string) string {
	if message == "" {
		return fmt.Sprintf("%s Error: %d\r\n", context, code)
	}
	return fmt.Sprintf("%s Error: %d - %s\r\n", context, code, message)
}

// Code extracts the Win32 error code from err, errors without one map to ERROR_GEN_FAILURE
func Code(err error) uint32 {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return uint32(errno)
	}
	return uint32(windows.ERROR_GEN_FAILURE)
}
