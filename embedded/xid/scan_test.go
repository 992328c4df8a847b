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
	"time"

	"github.com/stretchr/testify/require"
)

func TestScan(t *testing.T) {
	m, _ := createLedger(t)
	defer m.Close()

	err := m.Scan(func(xid XID, status Status) error {
		require.Fail(t, "empty ledger must not yield entries")
		return nil
	})
	require.NoError(t, err)

	for i := 0; i < 6; i++ {
		_, err := m.Begin()
		require.NoError(t, err)
	}

	require.NoError(t, m.Commit(1))
	require.NoError(t, m.Commit(2))
	require.NoError(t, m.Abort(4))

	var statuses []Status

	err = m.Scan(func(xid XID, status Status) error {
		require.Equal(t, XID(len(statuses)+1), xid)
		statuses = append(statuses, status)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []Status{Committed, Committed, Active, Aborted, Active, Active}, statuses)

	summary, err := m.Summary()
	require.NoError(t, err)
	require.Equal(t, Summary{Count: 6, Active: 3, Committed: 2, Aborted: 1}, summary)

	active, err := m.ActiveXIDs()
	require.NoError(t, err)
	require.Equal(t, []XID{3, 5, 6}, active)
}

func TestScanStopAndFail(t *testing.T) {
	m, _ := createLedger(t)
	defer m.Close()

	for i := 0; i < 4; i++ {
		_, err := m.Begin()
		require.NoError(t, err)
	}

	visited := 0

	err := m.Scan(func(xid XID, status Status) error {
		visited++
		if xid == 2 {
			return ErrStopScan
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 2, visited)

	errBoom := errors.New("boom")

	err = m.Scan(func(xid XID, status Status) error {
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	err = m.Scan(nil)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestScanCorruptedEntry(t *testing.T) {
	m, prefix := createLedger(t)

	for i := 0; i < 3; i++ {
		_, err := m.Begin()
		require.NoError(t, err)
	}
	require.NoError(t, m.Close())

	f, err := os.OpenFile(LedgerPath(prefix), os.O_WRONLY, 0)
	require.NoError(t, err)
	_, err = f.WriteAt([]byte{9}, HeaderLen+1)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	m, err = Open(prefix, testOptions())
	require.NoError(t, err)
	defer m.Close()

	_, err = m.Summary()
	require.ErrorIs(t, err, ErrCorruptLedger)
	require.Contains(t, err.Error(), "xid 2")

	_, err = m.ActiveXIDs()
	require.ErrorIs(t, err, ErrCorruptLedger)
}

func TestScanClosed(t *testing.T) {
	m, _ := createLedger(t)
	require.NoError(t, m.Close())

	_, err := m.Summary()
	require.ErrorIs(t, err, ErrAlreadyClosed)
}

func TestScanAbortsActive(t *testing.T) {
	m, prefix := createLedger(t)

	for i := 0; i < 5; i++ {
		_, err := m.Begin()
		require.NoError(t, err)
	}
	require.NoError(t, m.Commit(2))

	done := make(chan error, 1)

	go func() {
		done <- m.Scan(func(xid XID, status Status) error {
			if status == Active {
				return m.Abort(xid)
			}
			return nil
		})
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		require.FailNow(t, "scan callback blocked on Abort")
	}

	active, err := m.ActiveXIDs()
	require.NoError(t, err)
	require.Empty(t, active)

	require.NoError(t, m.Close())

	m, err = Open(prefix, testOptions())
	require.NoError(t, err)
	defer m.Close()

	summary, err := m.Summary()
	require.NoError(t, err)
	require.Equal(t, Summary{Count: 5, Committed: 1, Aborted: 4}, summary)
}
