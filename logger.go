// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polysolve

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// NopLogger discards every message. Useful as the Logger argument to
// NewSolver when a caller has no observability needs.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Errorf(format string, args ...any) {}

// Printer is a leveled Logger that writes tab-aligned columns to Writer:
// a heading row every HeadingInterval value rows, throttled to at most one
// value row per ValueInterval so a tight retry loop cannot flood the
// output. Error rows are never throttled.
type Printer struct {
	Writer          io.Writer
	HeadingInterval int
	ValueInterval   time.Duration

	rowsSinceHeading int
	lastValue        time.Time
}

// NewPrinter returns a Printer writing to os.Stdout with the default
// heading and value intervals.
func NewPrinter() *Printer {
	return &Printer{
		Writer:          os.Stdout,
		HeadingInterval: 30,
		ValueInterval:   500 * time.Millisecond,
	}
}

var printerHeadings = [2]string{"Level", "Message"}

func (p *Printer) Debugf(format string, args ...any) { p.record("DEBUG", format, args) }
func (p *Printer) Errorf(format string, args ...any) { p.record("ERROR", format, args) }

func (p *Printer) record(level, format string, args []any) {
	if p.Writer == nil {
		p.Writer = os.Stdout
	}
	if p.HeadingInterval == 0 {
		p.HeadingInterval = 30
	}

	msg := fmt.Sprintf(format, args...)
	values := [2]string{level, msg}

	var maxLengths [2]int
	for i := range values {
		maxLengths[i] = len(printerHeadings[i])
		if l := len(values[i]); l > maxLengths[i] {
			maxLengths[i] = l
		}
	}

	if p.rowsSinceHeading >= p.HeadingInterval {
		p.rowsSinceHeading = 0
		io.WriteString(p.Writer, "\n"+constructRow(printerHeadings, maxLengths))
	}

	if time.Since(p.lastValue) > p.ValueInterval || level == "ERROR" {
		p.rowsSinceHeading++
		p.lastValue = time.Now()
		io.WriteString(p.Writer, constructRow(values, maxLengths))
	}
}

func padString(s string, l int) string {
	if len(s) >= l {
		return s
	}
	return s + strings.Repeat(" ", l-len(s))
}

func constructRow(values [2]string, maxLengths [2]int) string {
	var sb strings.Builder
	for i, v := range values {
		sb.WriteString(padString(v, maxLengths[i]))
		if i != len(values)-1 {
			sb.WriteByte('\t')
		}
	}
	sb.WriteByte('\n')
	return sb.String()
}
