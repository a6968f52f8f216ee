// SPDX-FileCopyrightText: 2025 OOMOL, Inc. <https://www.oomol.com>
// SPDX-License-Identifier: MPL-2.0

package copier

import "github.com/oomol-lab/secopy/pkg/types"

type handleState int

const (
	unassigned handleState = iota
	open
	released
)

// handle owns one open file and closes it at most once
type handle struct {
	f     types.File
	state handleState
}

func (h *handle) assign(f types.File) {
	h.f = f
	h.state = open
}

func (h *handle) release() {
	if h.state != open {
		return
	}

	_ = h.f.Close()
	h.f = nil
	h.state = released
}
