// SPDX-FileCopyrightText : © 2026 The raytrace authors
// SPDX-License-Identifier: BSD-2-Clause

package term

import (
	"fmt"
	"io"
	"strings"

	"github.com/gazed/raytrace"
)

const barWidth = 30

// ProgressBar redraws a single line in place as RowDone events arrive
// from the renderer's row-based worker pool, the same "total known units
// of work, drained by one goroutine" shape as the teacher's eg/rt.go
// render loop. Drawing is skipped entirely when w is not a terminal, so
// piping output to a file or another process never fills it with
// carriage returns.
type ProgressBar struct {
	w      io.Writer
	tty    bool
	total  int
	done   int
}

// NewProgressBar returns a bar that will report completion out of
// totalRows (rows per frame times frame count).
func NewProgressBar(w io.Writer, totalRows int) *ProgressBar {
	return &ProgressBar{w: w, tty: IsTerminal(w), total: totalRows}
}

// Watch drains rows until the channel closes, redrawing after each one.
// It returns once rendering has finished, leaving the cursor on a fresh
// line.
func (p *ProgressBar) Watch(rows <-chan raytrace.RowDone) {
	for range rows {
		p.done++
		p.render()
	}
	if p.tty && p.total > 0 {
		fmt.Fprintln(p.w)
	}
}

func (p *ProgressBar) render() {
	if !p.tty || p.total <= 0 {
		return
	}
	filled := barWidth * p.done / p.total
	if filled > barWidth {
		filled = barWidth
	}
	bar := strings.Repeat("=", filled) + strings.Repeat(" ", barWidth-filled)
	pct := 100 * p.done / p.total
	fmt.Fprintf(p.w, "\r[%s] %3d%%", bar, pct)
}
