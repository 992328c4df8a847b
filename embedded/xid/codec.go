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
	"encoding/binary"
	"fmt"
	"math"
)

// Ledger layout:
//
//	offset 0..7 : uint64 big-endian, number of allocated xids
//	offset 8..  : one status byte per xid, xid 1 first
const (
	HeaderLen  = 8
	StatusSize = 1
	FileSuffix = ".xid"
)

// XID identifies a transaction. Allocated xids start at 1.
type XID uint64

// SuperXID is never persisted and always reads as committed.
const SuperXID XID = 0

// maxCount keeps the header representable as a non-negative signed 64-bit
// value and the file length within int64.
const maxCount = uint64(math.MaxInt64 - HeaderLen)

type Status byte

const (
	Active    Status = 0
	Committed Status = 1
	Aborted   Status = 2
)

func (s Status) String() string {
	switch s {
	case Active:
		return "active"
	case Committed:
		return "committed"
	case Aborted:
		return "aborted"
	}
	return fmt.Sprintf("unknown(%d)", byte(s))
}

// IsTerminal reports whether no further transition is allowed from s.
func (s Status) IsTerminal() bool {
	return s == Committed || s == Aborted
}

func DecodeStatus(b byte) (Status, error) {
	switch st := Status(b); st {
	case Active, Committed, Aborted:
		return st, nil
	}
	return 0, fmt.Errorf("%w: unknown status code 0x%02x", ErrCorruptLedger, b)
}

// LedgerPath returns the ledger file path for a database path prefix,
// e.g. /tmp/mydb -> /tmp/mydb.xid
func LedgerPath(prefix string) string {
	return prefix + FileSuffix
}

func StatusOffset(xid XID) (int64, error) {
	if xid == SuperXID {
		return 0, fmt.Errorf("%w: xid must be >= 1", ErrInvalidArgument)
	}
	if uint64(xid) > maxCount {
		return 0, fmt.Errorf("%w: xid %d out of range", ErrInvalidArgument, xid)
	}
	return HeaderLen + int64(xid-1)*StatusSize, nil
}

func ExpectedFileLength(count uint64) (int64, error) {
	if count > maxCount {
		return 0, fmt.Errorf("%w: xid count %d out of range", ErrInvalidArgument, count)
	}
	return HeaderLen + int64(count)*StatusSize, nil
}

func EncodeHeader(count uint64) []byte {
	b := make([]byte, HeaderLen)
	binary.BigEndian.PutUint64(b, count)
	return b
}

func DecodeHeader(b []byte) (uint64, error) {
	if len(b) < HeaderLen {
		return 0, fmt.Errorf("%w: header too short (%d bytes)", ErrCorruptLedger, len(b))
	}

	count := binary.BigEndian.Uint64(b)
	if count > maxCount {
		return 0, fmt.Errorf("%w: bad xid count %d", ErrCorruptLedger, int64(count))
	}

	return count, nil
}
