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
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Run("text logger", func(t *testing.T) {
		var out bytes.Buffer

		l, err := NewLogger(&Options{Name: "foo", LogFormat: LogFormatText, Level: LogWarn, Output: &out})
		require.NoError(t, err)
		require.IsType(t, &SimpleLogger{}, l)
		defer l.Close()

		l.Infof("hidden")
		l.Warningf("shown %d", 1)

		require.NotContains(t, out.String(), "hidden")
		require.Contains(t, out.String(), "foo WARNING: shown 1")
		require.Regexp(t, `^\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2} foo WARNING: shown 1\n$`, out.String())
	})

	t.Run("default format", func(t *testing.T) {
		l, err := NewLogger(&Options{Name: "foo"})
		require.NoError(t, err)
		require.IsType(t, &SimpleLogger{}, l)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := NewLogger(&Options{Name: "foo", LogFormat: "xml"})
		require.ErrorIs(t, err, ErrInvalidLoggerType)
	})
}

func TestParseLogLevel(t *testing.T) {
	for name, expected := range map[string]LogLevel{
		"debug":  LogDebug,
		"INFO":   LogInfo,
		" Warn ": LogWarn,
		"error":  LogError,
	} {
		level, ok := ParseLogLevel(name)
		require.True(t, ok, name)
		require.Equal(t, expected, level)
	}

	_, ok := ParseLogLevel("verbose")
	require.False(t, ok)
}
