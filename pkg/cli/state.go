// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package cli

type State int

const (
	StateStart State = iota
	StateTokenAcquired
	StateBackupEnabled
	StateRestoreEnabled
	StateCopying
	StateDone
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateTokenAcquired:
		return "token-acquired"
	case StateBackupEnabled:
		return "backup-enabled"
	case StateRestoreEnabled:
		return "restore-enabled"
	case StateCopying:
		return "copying"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}
