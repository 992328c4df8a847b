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
	"errors"
	"io"
	"os"
	"strings"
)

var ErrInvalidLoggerType = errors.New("invalid logger type")

const (
	LogFormatText = "text"
)

// LogLevel ...
type LogLevel int8

// Log levels
const (
	LogDebug LogLevel = iota
	LogInfo
	LogWarn
	LogError
)

var levelNames = map[string]LogLevel{
	"debug": LogDebug,
	"info":  LogInfo,
	"warn":  LogWarn,
	"error": LogError,
}

// Logger ...
type Logger interface {
	Errorf(string, ...interface{})
	Warningf(string, ...interface{})
	Infof(string, ...interface{})
	Debugf(string, ...interface{})
	Close() error
}

// ParseLogLevel maps a case-insensitive level name to a LogLevel.
func ParseLogLevel(s string) (LogLevel, bool) {
	level, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]
	return level, ok
}

func LogLevelFromEnvironment() LogLevel {
	level, ok := ParseLogLevel(os.Getenv("LOG_LEVEL"))
	if !ok {
		return LogInfo
	}
	return level
}

// Options can be used to configure a new logger.
type Options struct {
	// Name of the subsystem to prefix logs with
	Name string

	// The threshold for the logger. Anything less severe is suppressed
	Level LogLevel

	// Where to write the logs to. Defaults to os.Stderr if nil
	Output io.Writer

	// The format in which logs will be formatted
	LogFormat string
}

// NewLogger is a factory for selecting a logger based on options
func NewLogger(opts *Options) (Logger, error) {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	switch opts.LogFormat {
	case LogFormatText, "":
		return NewSimpleLoggerWithLevel(opts.Name, out, opts.Level), nil
	default:
		return nil, ErrInvalidLoggerType
	}
}
