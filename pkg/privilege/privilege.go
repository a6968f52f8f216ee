// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package privilege

import (
	"errors"
	"fmt"

	"github.com/oomol-lab/secopy/pkg/report"
	"github.com/oomol-lab/secopy/pkg/types"
	"golang.org/x/sys/windows"
)

var (
	// ErrNotAllAssigned means the adjustment call succeeded but the token does not hold the privilege,
	// usually because the account is not granted it by security policy.
	ErrNotAllAssigned = errors.New("privilege not held by the token")

	ErrInvalidArgument = errors.New("invalid token or privilege name")
)

type Op string

const (
	OpLookup Op = "lookup"
	OpAdjust Op = "adjust"
)

// Error is returned when a privilege could not be enabled
type Error struct {
	Name string
	Op   Op
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("cannot enable %s: %s: %v", e.Name, e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// API is the part of the Win32 security API used to enable a privilege
type API interface {
	LookupPrivilegeValue(name string) (windows.LUID, error)
	AdjustTokenPrivileges(token windows.Token, newState *windows.Tokenprivileges) (assigned bool, err error)
}

type Manager struct {
	api      API
	reporter *report.Reporter
}

func New(api API, reporter *report.Reporter) *Manager {
	return &Manager{
		api:      api,
		reporter: reporter,
	}
}

// Enable enables the named privilege on token for the rest of the process lifetime.
//
// Lookup failures, adjustment failures and tokens that do not hold the privilege are reported
// and returned as *Error, the last one wraps ErrNotAllAssigned.
func (m *Manager) Enable(token windows.Token, name string) error {
	if token == 0 || name == "" {
		return ErrInvalidArgument
	}

	luid, err := m.api.LookupPrivilegeValue(name)
	if err != nil {
		m.reporter.ReportErr("LookupPrivilegeValue", err)
		return &Error{Name: name, Op: OpLookup, Err: err}
	}

	tp := windows.Tokenprivileges{
		PrivilegeCount: 1,
	}
	tp.Privileges[0] = windows.LUIDAndAttributes{
		Luid:       luid,
		Attributes: windows.SE_PRIVILEGE_ENABLED,
	}

	assigned, err := m.api.AdjustTokenPrivileges(token, &tp)
	if err != nil {
		m.reporter.ReportErr("AdjustTokenPrivileges", err)
		return &Error{Name: name, Op: OpAdjust, Err: err}
	}

	if !assigned {
		m.reporter.Report(types.NotAllAssignedReason, uint32(windows.ERROR_NOT_ALL_ASSIGNED))
		return &Error{Name: name, Op: OpAdjust, Err: ErrNotAllAssigned}
	}

	return nil
}
