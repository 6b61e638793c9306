// Copyright 2024 The ftfy-go Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package search

import (
	clog "unknwon.dev/clog/v2"
)

// Logger receives Trace-level diagnostics about which candidate step the
// search tried, accepted, or rejected. Logging is side-effecting but never
// changes the string/plan the search returns.
type Logger interface {
	Tracef(format string, args ...any)
}

// NoopLogger discards every trace message. It is the default logger, so
// callers that don't care about diagnostics pay nothing for them.
type NoopLogger struct{}

func (NoopLogger) Tracef(string, ...any) {}

// ClogLogger adapts unknwon.dev/clog/v2's package-level Trace logger to
// Logger.
type ClogLogger struct{}

func (ClogLogger) Tracef(format string, args ...any) {
	clog.Trace(format, args...)
}

var activeLogger Logger = NoopLogger{}

// SetLogger installs the Logger the search engine reports candidate
// accept/reject decisions to. Pass NoopLogger{} (the default) to silence
// diagnostics again.
func SetLogger(l Logger) {
	if l == nil {
		l = NoopLogger{}
	}
	activeLogger = l
}
