/*
Copyright 2025 Codenotary Inc. All rights reserved.

SPDX-License-Identifier: BUSL-1.1
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://mariadb.com/bsl11/

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package logger

import (
	"io"
	"log"
	"strings"
)

// SimpleLogger writes plain text lines through the standard library logger.
type SimpleLogger struct {
	Logger   *log.Logger
	LogLevel LogLevel
}

// NewSimpleLogger ...
func NewSimpleLogger(name string, out io.Writer) Logger {
	return NewSimpleLoggerWithLevel(name, out, LogLevelFromEnvironment())
}

// NewSimpleLoggerWithLevel ...
func NewSimpleLoggerWithLevel(name string, out io.Writer, level LogLevel) Logger {
	prefix := strings.TrimSpace(name)
	if prefix != "" {
		prefix += " "
	}

	return &SimpleLogger{
		Logger:   log.New(out, prefix, log.LstdFlags|log.Lmsgprefix),
		LogLevel: level,
	}
}

func (l *SimpleLogger) logf(level LogLevel, tag string, f string, v []interface{}) {
	if level < l.LogLevel {
		return
	}
	l.Logger.Printf(tag+": "+f, v...)
}

// Errorf ...
func (l *SimpleLogger) Errorf(f string, v ...interface{}) {
	l.logf(LogError, "ERROR", f, v)
}

// Warningf ...
func (l *SimpleLogger) Warningf(f string, v ...interface{}) {
	l.logf(LogWarn, "WARNING", f, v)
}

// Infof ...
func (l *SimpleLogger) Infof(f string, v ...interface{}) {
	l.logf(LogInfo, "INFO", f, v)
}

// Debugf ...
func (l *SimpleLogger) Debugf(f string, v ...interface{}) {
	l.logf(LogDebug, "DEBUG", f, v)
}

// Close the logger ...
func (l *SimpleLogger) Close() error {
	return nil
}
