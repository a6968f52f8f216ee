// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"
	"os"

	"github.com/oomol-lab/secopy/pkg/cli"
	"github.com/oomol-lab/secopy/pkg/types"
	"github.com/oomol-lab/secopy/pkg/util"
	"github.com/oomol-lab/secopy/pkg/winapi/sys"
)

func main() {
	opt := &types.BasicOpt{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}

	util.Exit(cli.Main(context.Background(), sys.System{}, opt, os.Args))
}
