// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package winapi

import (
	"golang.org/x/sys/windows"
)

var (
	advapi32 *windows.LazyDLL

	adjustTokenPrivileges *windows.LazyProc
)

func init() {
	// lib
	advapi32 = windows.NewLazySystemDLL("advapi32.dll")

	// function
	adjustTokenPrivileges = advapi32.NewProc("AdjustTokenPrivileges")
}
