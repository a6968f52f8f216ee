// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package util

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/windows"
)

func LocalAppData() (string, bool) {
	if p := os.Getenv("LOCALAPPDATA"); p != "" {
		return p, true
	}

	if user := os.Getenv("USERPROFILE"); user != "" {
		return filepath.Join(user, "AppData", "Local"), true
	}

	if p, err := windows.KnownFolderPath(windows.FOLDERID_LocalAppData, windows.KF_FLAG_DEFAULT); err == nil {
		return p, true
	}

	return "", false
}

// LogPath is the folder of the audit logs, e.g. C:\Users\bh\AppData\Local\secopy\logs
func LogPath(app string) (string, bool) {
	p, ok := LocalAppData()
	if !ok {
		return "", false
	}

	return filepath.Join(p, app, "logs"), true
}
