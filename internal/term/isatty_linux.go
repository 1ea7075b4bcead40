// SPDX-FileCopyrightText : © 2026 The raytrace authors
// SPDX-License-Identifier: BSD-2-Clause

//go:build linux

package term

import "golang.org/x/sys/unix"

// isTerminal reports whether fd refers to a terminal device, queried via
// the same TCGETS ioctl isatty(3) uses under the hood.
func isTerminal(fd uintptr) bool {
	_, err := unix.IoctlGetTermios(int(fd), unix.TCGETS)
	return err == nil
}
