// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package sys

import (
	"golang.org/x/sys/windows"
)

// ConsoleAvailable reports whether the process has a usable standard output handle
//
// Ref: https://learn.microsoft.com/en-us/windows/console/getstdhandle
func ConsoleAvailable() bool {
	h, err := windows.GetStdHandle(windows.STD_OUTPUT_HANDLE)
	if err != nil {
		return false
	}

	return h != windows.InvalidHandle
}

// FormatMessage looks up the system message for a Win32 error code.
//
// Trailing CR/LF added by the message table are removed. ok is false when the system has no message for code.
//
// Ref: https://learn.microsoft.com/en-us/windows/win32/api/winbase/nf-winbase-formatmessagew
func FormatMessage(code uint32) (message string, ok bool) {
	// MAKELANGID(LANG_NEUTRAL, SUBLANG_DEFAULT)
	const langID = 0x01 << 10

	buf := make([]uint16, 512)
	n, err := windows.FormatMessage(
		windows.FORMAT_MESSAGE_FROM_SYSTEM|windows.FORMAT_MESSAGE_IGNORE_INSERTS,
		0,
		code,
		langID,
		buf,
		nil,
	)
	if err != nil || n == 0 {
		return "", false
	}

	for n > 0 && (buf[n-1] == '\n' || buf[n-1] == '\r') {
		n--
	}

	return windows.UTF16ToString(buf[:n]), true
}
