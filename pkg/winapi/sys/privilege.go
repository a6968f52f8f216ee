// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package sys

import (
	"fmt"

	"github.com/oomol-lab/secopy/pkg/winapi"
	"golang.org/x/sys/windows"
)

// IsAdmin checks if the current process is running with admin privileges
func IsAdmin() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}

// OpenProcessToken opens the access token of the current process with the rights needed to enable privileges
func OpenProcessToken() (windows.Token, error) {
	var token windows.Token
	if err := windows.OpenProcessToken(windows.CurrentProcess(), windows.TOKEN_ADJUST_PRIVILEGES|windows.TOKEN_QUERY, &token); err != nil {
		return 0, err
	}

	return token, nil
}

// LookupPrivilegeValue resolves a privilege name on the local system to its LUID
func LookupPrivilegeValue(name string) (luid windows.LUID, err error) {
	p, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return luid, fmt.Errorf("invalid privilege name %q: %w", name, err)
	}

	err = windows.LookupPrivilegeValue(nil, p, &luid)
	return luid, err
}

// AdjustTokenPrivileges applies newState to token.
//
// assigned is false when the call succeeded but the token does not hold every requested privilege (ERROR_NOT_ALL_ASSIGNED).
func AdjustTokenPrivileges(token windows.Token, newState *windows.Tokenprivileges) (assigned bool, err error) {
	ok, lastErr := winapi.AdjustTokenPrivileges(token, newState)
	if !ok {
		return false, lastErr
	}

	return lastErr != windows.ERROR_NOT_ALL_ASSIGNED, nil
}
