// Copyright ©2014 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package polysolve

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestNopLoggerDiscardsEverything(t *testing.T) {
	// Must not panic regardless of arguments; there is nothing else to
	// observe about a no-op.
	var l NopLogger
	l.Debugf("x=%v", 1)
	l.Errorf("boom: %v", "oops")
}

func TestPrinterErrorfAlwaysWrites(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{Writer: &buf, HeadingInterval: 30, ValueInterval: time.Hour}
	p.Errorf("something broke: %d", 42)
	p.Errorf("something else broke")

	out := buf.String()
	if !strings.Contains(out, "ERROR") {
		t.Errorf("output missing ERROR level: %q", out)
	}
	if !strings.Contains(out, "something broke: 42") {
		t.Errorf("output missing first message: %q", out)
	}
	if !strings.Contains(out, "something else broke") {
		t.Errorf("output missing second message (ValueInterval should not throttle ERROR rows): %q", out)
	}
}

func TestPrinterDebugfThrottlesByValueInterval(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{Writer: &buf, HeadingInterval: 30, ValueInterval: time.Hour}
	p.Debugf("first")
	p.Debugf("second")

	out := buf.String()
	if !strings.Contains(out, "first") {
		t.Errorf("output missing first message: %q", out)
	}
	if strings.Contains(out, "second") {
		t.Errorf("second Debugf call within ValueInterval should have been throttled: %q", out)
	}
}

func TestPrinterDefaultsAppliedWhenUnset(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{Writer: &buf}
	p.Debugf("hi")
	if p.HeadingInterval != 30 {
		t.Errorf("HeadingInterval = %d, want default 30", p.HeadingInterval)
	}
}

func TestNewPrinterDefaults(t *testing.T) {
	p := NewPrinter()
	if p.HeadingInterval != 30 {
		t.Errorf("HeadingInterval = %d, want 30", p.HeadingInterval)
	}
	if p.ValueInterval != 500*time.Millisecond {
		t.Errorf("ValueInterval = %v, want 500ms", p.ValueInterval)
	}
	if p.Writer == nil {
		t.Error("Writer should default to os.Stdout, not nil")
	}
}
