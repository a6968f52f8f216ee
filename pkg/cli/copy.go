// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/oomol-lab/secopy/pkg/copier"
	"github.com/oomol-lab/secopy/pkg/logger"
	"github.com/oomol-lab/secopy/pkg/privilege"
	"github.com/oomol-lab/secopy/pkg/report"
	"github.com/oomol-lab/secopy/pkg/types"
	"github.com/oomol-lab/secopy/pkg/util"
	"golang.org/x/sys/windows"
)

// System is every system call made by a copy run, sys.System is the Win32 implementation
type System interface {
	ConsoleAvailable() bool
	IsAdmin() bool
	Version() string
	FormatMessage(code uint32) (string, bool)
	OpenProcessToken() (windows.Token, error)
	CloseToken(token windows.Token) error

	privilege.API
	copier.FileSystem
}

var (
	ErrUsage   = errors.New("wrong number of arguments")
	ErrToken   = errors.New("cannot open process token")
	ErrBackup  = errors.New("cannot enable " + types.PrivilegeBackup)
	ErrRestore = errors.New("cannot enable " + types.PrivilegeRestore)
	ErrCopy    = errors.New("cannot copy file")
)

// invokerTimeout bounds the audit lookups of the invoking user and parent process
const invokerTimeout = 3 * time.Second

type CopyContext struct {
	types.CopyOpt

	system   System
	state    State
	reporter *report.Reporter
}

func CopyCmd(p *types.CopyOpt, system System) *CopyContext {
	c := &CopyContext{
		CopyOpt: *p,
		system:  system,
		state:   StateStart,
	}
	if c.Stdout == nil {
		c.Stdout = io.Discard
	}
	if c.Stderr == nil {
		c.Stderr = io.Discard
	}
	return c
}

// Setup opens the audit log and records who runs the copy.
//
// The audit log is best effort, when it cannot be created the copy runs with a discarding logger.
func (c *CopyContext) Setup(ctx context.Context) {
	if c.Logger == nil {
		c.Logger = c.loggerInstance()
	}
	c.reporter = report.New(c.Stderr, c.system.FormatMessage, c.Logger)

	log := c.Logger
	log.Infof("secopy %s -> %s", c.Source, c.Destination)
	log.Infof("Current system version is %s", c.system.Version())

	if c.system.IsAdmin() {
		log.Info("Running as admin")
	} else {
		log.Warn("Running as non-admin, backup and restore privileges are usually only held by an elevated token")
	}

	ctx, cancel := context.WithTimeout(ctx, invokerTimeout)
	defer cancel()
	if i, err := util.CurrentInvoker(ctx); err != nil {
		log.Warnf("Failed to get invoker: %v", err)
	} else {
		log.Infof("Invoked by %s", i)
	}
}

// Start enables the backup and restore privileges on the process token and copies the file.
func (c *CopyContext) Start() (err error) {
	if c.Logger == nil {
		c.Logger = logger.Discard()
	}
	if c.reporter == nil {
		c.reporter = report.New(c.Stderr, c.system.FormatMessage, c.Logger)
	}

	log := c.Logger
	defer func() {
		c.transition(StateDone)
		if err != nil {
			log.Warnf("copy failed: %v", err)
		}
	}()

	token, err := c.system.OpenProcessToken()
	if err != nil {
		c.reporter.ReportErr("OpenProcessToken", err)
		return fmt.Errorf("%w: %w", ErrToken, err)
	}
	defer func() {
		if err := c.system.CloseToken(token); err != nil {
			log.Warnf("Failed to close process token: %v", err)
		}
	}()
	c.transition(StateTokenAcquired)

	privileges := privilege.New(c.system, c.reporter)

	if err := privileges.Enable(token, types.PrivilegeBackup); err != nil {
		c.reporter.Print(types.MsgBackupFailed)
		return fmt.Errorf("%w: %w", ErrBackup, err)
	}
	c.transition(StateBackupEnabled)

	if err := privileges.Enable(token, types.PrivilegeRestore); err != nil {
		c.reporter.Print(types.MsgRestoreFailed)
		return fmt.Errorf("%w: %w", ErrRestore, err)
	}
	c.transition(StateRestoreEnabled)

	c.transition(StateCopying)
	n, err := copier.New(c.system, c.reporter, log).Copy(c.Source, c.Destination)
	if err != nil {
		c.reporter.Print(types.MsgCopyFailed)
		return fmt.Errorf("%w: %w", ErrCopy, err)
	}

	_, _ = io.WriteString(c.Stdout, types.MsgCopied)
	log.Infof("copied %d bytes", n)

	return nil
}

// State returns the state the run has reached
func (c *CopyContext) State() State {
	return c.state
}

func (c *CopyContext) transition(s State) {
	c.Logger.Infof("state %s -> %s", c.state, s)
	c.state = s
}

func (c *CopyContext) loggerInstance() *logger.Context {
	if err := setupLogPath(&c.BasicOpt); err != nil {
		return logger.Discard()
	}

	log, err := logger.New(c.LogPath, types.LogName)
	if err != nil {
		return logger.Discard()
	}
	return log
}
