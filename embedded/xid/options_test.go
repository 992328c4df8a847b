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
package xid

import (
	"testing"

	"github.com/codenotary/xidledger/embedded/logger"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	require.NoError(t, opts.Validate())
	require.Equal(t, DefaultFileMode, opts.FileMode())
	require.True(t, opts.Synced())
}

func TestInvalidOptions(t *testing.T) {
	var nilOpts *Options
	require.ErrorIs(t, nilOpts.Validate(), ErrInvalidOptions)

	require.ErrorIs(t, DefaultOptions().WithFileMode(0400).Validate(), ErrInvalidOptions)
	require.ErrorIs(t, DefaultOptions().WithLogger(nil).Validate(), ErrInvalidOptions)
	require.ErrorIs(t, DefaultOptions().WithMetrics(nil).Validate(), ErrInvalidOptions)

	require.ErrorIs(t, DefaultOptions().WithMetrics(nil).Validate(), ErrInvalidArgument)
}

func TestOptionsBuilder(t *testing.T) {
	l := logger.NewMemoryLogger()

	opts := DefaultOptions().
		WithFileMode(0600).
		WithSynced(false).
		WithLogger(l).
		WithMetrics(NewNopMetrics())

	require.NoError(t, opts.Validate())
	require.Equal(t, 0600, int(opts.FileMode()))
	require.False(t, opts.Synced())
	require.Same(t, l, opts.logger)
}

func TestCreateWithInvalidOptions(t *testing.T) {
	_, err := Create(t.TempDir()+"/db", nil)
	require.ErrorIs(t, err, ErrInvalidOptions)

	_, err = Open(t.TempDir()+"/db", DefaultOptions().WithLogger(nil))
	require.ErrorIs(t, err, ErrInvalidOptions)
}
