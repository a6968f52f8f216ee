// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package sys

import (
	"os"

	"github.com/Microsoft/go-winio"
	"golang.org/x/sys/windows"
)

// OpenSourceForBackup opens an existing file for reading with backup semantics.
//
// ACCESS_SYSTEM_SECURITY is granted by SeBackupPrivilege together with FILE_FLAG_BACKUP_SEMANTICS,
// reparse points are opened themselves instead of their targets.
func OpenSourceForBackup(path string) (*os.File, error) {
	return winio.OpenForBackup(
		path,
		windows.GENERIC_READ|windows.ACCESS_SYSTEM_SECURITY,
		windows.FILE_SHARE_READ,
		windows.OPEN_EXISTING,
	)
}

// CreateForRestore creates or truncates path for writing with restore semantics.
//
// The handle is not shared, WRITE_DAC, WRITE_OWNER and ACCESS_SYSTEM_SECURITY are granted by SeRestorePrivilege.
//
// Ref: https://learn.microsoft.com/en-us/windows/win32/api/fileapi/nf-fileapi-createfilew
func CreateForRestore(path string) (*os.File, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return nil, &os.PathError{Op: "open", Path: path, Err: err}
	}

	h, err := windows.CreateFile(
		p,
		windows.GENERIC_WRITE|windows.WRITE_DAC|windows.WRITE_OWNER|windows.ACCESS_SYSTEM_SECURITY,
		0,
		nil,
		windows.CREATE_ALWAYS,
		windows.FILE_ATTRIBUTE_NORMAL|windows.FILE_FLAG_BACKUP_SEMANTICS|windows.FILE_FLAG_OPEN_REPARSE_POINT,
		0,
	)
	if err != nil {
		return nil, &os.PathError{Op: "open", Path: path, Err: err}
	}

	return os.NewFile(uintptr(h), path), nil
}
