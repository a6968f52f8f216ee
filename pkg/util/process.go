// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package util

import (
	"context"
	"fmt"
	"os"

	"github.com/shirou/gopsutil/v4/process"
	"golang.org/x/sync/errgroup"
)

// Invoker describes who started the current process
type Invoker struct {
	PID        int32
	User       string
	ParentPID  int32
	ParentName string
}

func (i *Invoker) String() string {
	return fmt.Sprintf("pid %d, user %q, parent %q (pid %d)", i.PID, i.User, i.ParentName, i.ParentPID)
}

// CurrentInvoker collects the user and the parent process of the current process
func CurrentInvoker(ctx context.Context) (*Invoker, error) {
	pid := int32(os.Getpid())
	p, err := process.NewProcessWithContext(ctx, pid)
	if err != nil {
		return nil, fmt.Errorf("cannot open current process %d: %w", pid, err)
	}

	i := &Invoker{PID: pid}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		user, err := p.UsernameWithContext(ctx)
		if err != nil {
			return fmt.Errorf("cannot get user of process %d: %w", pid, err)
		}
		i.User = user
		return nil
	})

	g.Go(func() error {
		parent, err := p.ParentWithContext(ctx)
		if err != nil {
			return fmt.Errorf("cannot get parent of process %d: %w", pid, err)
		}
		i.ParentPID = parent.Pid

		name, err := parent.NameWithContext(ctx)
		if err != nil {
			return fmt.Errorf("cannot get name of parent process %d: %w", parent.Pid, err)
		}
		i.ParentName = name
		return nil
	})

	return i, g.Wait()
}
