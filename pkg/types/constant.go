// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package types

import "github.com/Microsoft/go-winio"

// BufferSize is the size of the staging buffer used for every read/write pair.
const BufferSize = 8192

const (
	PrivilegeBackup  = winio.SeBackupPrivilege
	PrivilegeRestore = winio.SeRestorePrivilege
)

// Fixed console lines. Every line written by secopy ends with CRLF.
const (
	MsgCopied            = "File copied successfully\r\n"
	MsgCopyFailed        = "Failed to copy file\r\n"
	MsgBackupFailed      = "Failed to enable " + PrivilegeBackup + "\r\n"
	MsgRestoreFailed     = "Failed to enable " + PrivilegeRestore + "\r\n"
	UsageFormat          = "Usage: %s <source_path> <destination_file>\r\n"
	LogName              = "secopy"
	AppDirName           = "secopy"
	DefaultProgramName   = "secopy.exe"
	NotAllAssignedReason = "The process does not have the specified privilege"
)
