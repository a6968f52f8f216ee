// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/oomol-lab/secopy/pkg/types"
	ucli "github.com/urfave/cli/v3"
)

// Main runs secopy with args, args[0] being the program name, and returns the process exit code.
//
// Without a usable console it returns 1 right away, nothing can be reported.
func Main(ctx context.Context, system System, opt *types.BasicOpt, args []string) int {
	if !system.ConsoleAvailable() {
		return 1
	}

	if opt.ProgramName == "" {
		opt.ProgramName = programName(args)
	}
	if opt.Stdout == nil {
		opt.Stdout = io.Discard
	}
	if opt.Stderr == nil {
		opt.Stderr = io.Discard
	}

	if err := command(system, opt).Run(ctx, args); err != nil {
		return 1
	}
	return 0
}

func command(system System, opt *types.BasicOpt) *ucli.Command {
	return &ucli.Command{
		Name:      opt.ProgramName,
		Usage:     "Copy a file with backup and restore privileges",
		ArgsUsage: "<source_path> <destination_file>",
		Writer:    opt.Stdout,
		ErrWriter: opt.Stderr,
		// paths are positional only, a leading '-' is part of the path
		SkipFlagParsing: true,
		HideHelp:        true,
		HideVersion:     true,
		Action: func(ctx context.Context, cmd *ucli.Command) error {
			if cmd.Args().Len() != 2 {
				_, _ = fmt.Fprintf(opt.Stderr, types.UsageFormat, opt.ProgramName)
				return ErrUsage
			}

			c := CopyCmd(&types.CopyOpt{
				Source:      cmd.Args().Get(0),
				Destination: cmd.Args().Get(1),
				BasicOpt:    *opt,
			}, system)
			c.Setup(ctx)

			return c.Start()
		},
	}
}

func programName(args []string) string {
	if len(args) == 0 || args[0] == "" {
		return types.DefaultProgramName
	}
	return filepath.Base(args[0])
}
