// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package winapi

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

// AdjustTokenPrivileges enables or disables privileges in the specified access token.
//
// Unlike windows.AdjustTokenPrivileges, the last error is returned even when the call succeeds,
// because a successful call still reports ERROR_NOT_ALL_ASSIGNED through it.
//
// Ref: https://learn.microsoft.com/en-us/windows/win32/api/securitybaseapi/nf-securitybaseapi-adjusttokenprivileges
func AdjustTokenPrivileges(token windows.Token, newState *windows.Tokenprivileges) (ok bool, lastErr syscall.Errno) {
	ret, _, e := adjustTokenPrivileges.Call(
		uintptr(token),
		0, // DisableAllPrivileges = FALSE
		uintptr(unsafe.Pointer(newState)),
		uintptr(unsafe.Sizeof(*newState)),
		0,
		0,
	)

	errno, _ := e.(syscall.Errno)
	return ret != 0, errno
}
