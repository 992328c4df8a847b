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
	"fmt"

	"github.com/codenotary/xidledger/embedded"
)

var ErrInvalidArgument = fmt.Errorf("xid: %w", embedded.ErrIllegalArguments)
var ErrInvalidOptions = fmt.Errorf("%w: invalid options", ErrInvalidArgument)
var ErrAlreadyExists = errors.New("xid: ledger already exists")
var ErrNotFound = errors.New("xid: ledger not found")
var ErrCorruptLedger = errors.New("xid: corrupt ledger")
var ErrIOFailure = errors.New("xid: io failure")
var ErrAlreadyClosed = fmt.Errorf("xid: %w", embedded.ErrAlreadyClosed)
var ErrIllegalTransition = fmt.Errorf("xid: %w: status transition", embedded.ErrIllegalState)

// ioError keeps both ErrIOFailure and the underlying OS error reachable
// through errors.Is / errors.As.
type ioError struct {
	op  string
	err error
}

func (e *ioError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrIOFailure.Error(), e.op, e.err)
}

func (e *ioError) Unwrap() error {
	return e.err
}

func (e *ioError) Is(target error) bool {
	return target == ErrIOFailure
}

func wrapIO(op string, err error) error {
	if err == nil {
		return nil
	}
	return &ioError{op: op, err: err}
}
