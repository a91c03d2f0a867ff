// SPDX-License-Identifier: MIT

package badgerdb

import (
	"fmt"
	"log/slog"
)

// Logger matches badger.Logger's shape so callers never need to import
// badger directly just to supply one.
type Logger interface {
	Errorf(string, ...interface{})
	Warningf(string, ...interface{})
	Infof(string, ...interface{})
	Debugf(string, ...interface{})
}

// noopLogger discards everything. It is the default when Options.Logger
// is nil, matching the teacher's "never surprise a caller with stray
// stdout" convention.
type noopLogger struct{}

func (noopLogger) Errorf(string, ...interface{})   {}
func (noopLogger) Warningf(string, ...interface{}) {}
func (noopLogger) Infof(string, ...interface{})    {}
func (noopLogger) Debugf(string, ...interface{})   {}

// SlogLogger adapts an *slog.Logger to badger's Logger interface.
type SlogLogger struct {
	L *slog.Logger
}

func (s SlogLogger) Errorf(format string, args ...interface{}) {
	s.L.Error(fmt.Sprintf(format, args...))
}

func (s SlogLogger) Warningf(format string, args ...interface{}) {
	s.L.Warn(fmt.Sprintf(format, args...))
}

func (s SlogLogger) Infof(format string, args ...interface{}) {
	s.L.Info(fmt.Sprintf(format, args...))
}

func (s SlogLogger) Debugf(format string, args ...interface{}) {
	s.L.Debug(fmt.Sprintf(format, args...))
}
