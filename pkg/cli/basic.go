// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/oomol-lab/secopy/pkg/types"
	"github.com/oomol-lab/secopy/pkg/util"
)

func setupLogPath(c *types.BasicOpt) error {
	p := c.LogPath
	if p == "" {
		dp, ok := util.LogPath(types.AppDirName)
		if !ok {
			return fmt.Errorf("cannot find local app data folder")
		}
		p = dp
	}

	p, err := filepath.Abs(p)
	if err != nil {
		return fmt.Errorf("failed to get absolute path from %s: %v", p, err)
	}

	if err := os.MkdirAll(p, 0755); err != nil {
		return fmt.Errorf("failed to create log folder %s: %v", p, err)
	}

	c.LogPath = p

	return nil
}
