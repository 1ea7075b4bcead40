// SPDX-FileCopyrightText : © 2026 The raytrace authors
// SPDX-License-Identifier: BSD-2-Clause

//go:build !linux

package term

// isTerminal has no portable cross-platform ioctl available outside
// linux without adding another dependency; non-linux builds assume an
// interactive terminal and let the progress bar redraw unconditionally.
func isTerminal(fd uintptr) bool {
	return true
}
