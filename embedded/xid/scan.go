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
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

const scanBufferSize = 4096

// ErrStopScan may be returned by a scan callback to end the scan early
// without failing it.
var ErrStopScan = errors.New("xid: stop scan")

type Summary struct {
	Count     uint64
	Active    uint64
	Committed uint64
	Aborted   uint64
}

// Scan calls fn for every xid allocated when the scan starts, in allocation
// order. Writers are not blocked, so fn may call Commit or Abort. A
// transition made by another goroutine during the scan may or may not be
// observed.
func (m *Manager) Scan(fn func(xid XID, status Status) error) error {
	if fn == nil {
		return fmt.Errorf("%w: nil scan callback", ErrInvalidArgument)
	}

	if m.closed.Load() {
		return ErrAlreadyClosed
	}

	count := m.count.Load()

	r := bufio.NewReaderSize(io.NewSectionReader(m.f, HeaderLen, int64(count)*StatusSize), scanBufferSize)

	for xid := XID(1); uint64(xid) <= count; xid++ {
		b, err := r.ReadByte()
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: status of xid %d missing", ErrCorruptLedger, xid)
		}
		if errors.Is(err, os.ErrClosed) {
			return ErrAlreadyClosed
		}
		if err != nil {
			return wrapIO("scan", err)
		}

		st, err := DecodeStatus(b)
		if err != nil {
			return fmt.Errorf("xid %d: %w", xid, err)
		}

		err = fn(xid, st)
		if errors.Is(err, ErrStopScan) {
			return nil
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (m *Manager) Summary() (Summary, error) {
	var s Summary

	err := m.Scan(func(_ XID, st Status) error {
		s.Count++

		switch st {
		case Active:
			s.Active++
		case Committed:
			s.Committed++
		case Aborted:
			s.Aborted++
		}

		return nil
	})

	return s, err
}

// ActiveXIDs returns the transactions that never reached a terminal status,
// e.g. the ones interrupted by a crash.
func (m *Manager) ActiveXIDs() ([]XID, error) {
	var xids []XID

	err := m.Scan(func(xid XID, st Status) error {
		if st == Active {
			xids = append(xids, xid)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return xids, nil
}
