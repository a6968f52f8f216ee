// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package types

import (
	"io"

	"github.com/oomol-lab/secopy/pkg/logger"
)

type BasicOpt struct {
	ProgramName string
	LogPath     string
	Stdout      io.Writer
	Stderr      io.Writer
	Logger      *logger.Context
}

type CopyOpt struct {
	Source      string
	Destination string

	BasicOpt
}

// File is an open file handle owned by the copier
type File interface {
	Read(p []byte) (n int, err error)
	Write(p []byte) (n int, err error)
	Close() error
}
