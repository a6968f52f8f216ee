// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package sys

import (
	"github.com/oomol-lab/secopy/pkg/types"
	"golang.org/x/sys/windows"
)

// System is the Win32 implementation of every system call secopy makes
type System struct{}

func (System) ConsoleAvailable() bool {
	return ConsoleAvailable()
}

func (System) FormatMessage(code uint32) (string, bool) {
	return FormatMessage(code)
}

func (System) OpenProcessToken() (windows.Token, error) {
	return OpenProcessToken()
}

func (System) CloseToken(token windows.Token) error {
	return token.Close()
}

func (System) LookupPrivilegeValue(name string) (windows.LUID, error) {
	return LookupPrivilegeValue(name)
}

func (System) AdjustTokenPrivileges(token windows.Token, newState *windows.Tokenprivileges) (bool, error) {
	return AdjustTokenPrivileges(token, newState)
}

func (System) OpenSource(path string) (types.File, error) {
	f, err := OpenSourceForBackup(path)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (System) CreateDestination(path string) (types.File, error) {
	f, err := CreateForRestore(path)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (System) IsAdmin() bool {
	return IsAdmin()
}

func (System) Version() string {
	return Version()
}
