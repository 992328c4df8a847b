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
	"errors"
	"os"
	"testing"

	"github.com/codenotary/xidledger/embedded"
	"github.com/stretchr/testify/require"
)

func TestErrorHierarchy(t *testing.T) {
	require.ErrorIs(t, ErrInvalidOptions, ErrInvalidArgument)
	require.ErrorIs(t, ErrInvalidArgument, embedded.ErrIllegalArguments)
	require.ErrorIs(t, ErrAlreadyClosed, embedded.ErrAlreadyClosed)
	require.ErrorIs(t, ErrIllegalTransition, embedded.ErrIllegalState)
}

func TestWrapIO(t *testing.T) {
	require.NoError(t, wrapIO("noop", nil))

	err := wrapIO("read status", os.ErrPermission)
	require.ErrorIs(t, err, ErrIOFailure)
	require.ErrorIs(t, err, os.ErrPermission)
	require.False(t, errors.Is(err, ErrCorruptLedger))
	require.Equal(t, "xid: io failure: read status: permission denied", err.Error())
}
