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
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/codenotary/xidledger/embedded/appendable/fileutils"
	"github.com/codenotary/xidledger/embedded/logger"
	"github.com/codenotary/xidledger/embedded/multierr"
	"go.uber.org/atomic"
)

// Manager owns an open xid ledger file.
//
// Begin, Commit, Abort and Close are serialized by a single mutex. Status
// queries do not take it: they read the allocated count atomically and a
// single status byte, which cannot be observed torn.
type Manager struct {
	path string
	f    *os.File

	// count mirrors the persisted header once a Begin has been made durable
	count *atomic.Uint64

	synced  bool
	logger  logger.Logger
	metrics Metrics

	closed *atomic.Bool

	mutex sync.Mutex
}

// syncDir is replaced in tests to fail creation after the file exists
var syncDir = fileutils.SyncDir

// Create initializes a new, empty ledger at LedgerPath(prefix).
func Create(prefix string, opts *Options) (m *Manager, err error) {
	err = opts.Validate()
	if err != nil {
		return nil, err
	}

	path := LedgerPath(prefix)

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, opts.fileMode)
	if errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyExists, path)
	}
	if err != nil {
		return nil, wrapIO("create", err)
	}

	defer func() {
		if err == nil {
			return
		}

		merr := multierr.NewMultiErr().Append(err)
		merr.Append(f.Close())
		merr.Append(os.Remove(path))

		opts.logger.Errorf("xid: unable to create ledger '%s': %v", path, merr)
		opts.metrics.IncErrors("create")

		err = merr.Reduce()
	}()

	err = writeFullAt(f, EncodeHeader(0), 0)
	if err != nil {
		return nil, wrapIO("write header", err)
	}

	err = f.Sync()
	if err != nil {
		return nil, wrapIO("sync", err)
	}

	err = syncDir(filepath.Dir(path))
	if err != nil {
		return nil, wrapIO("sync dir", err)
	}

	opts.logger.Infof("xid: ledger '%s' created", path)

	return newManager(path, f, 0, opts), nil
}

// Open validates and opens the ledger at LedgerPath(prefix). A ledger whose
// length disagrees with its header is rejected; nothing is repaired.
func Open(prefix string, opts *Options) (m *Manager, err error) {
	err = opts.Validate()
	if err != nil {
		return nil, err
	}

	path := LedgerPath(prefix)

	f, err := os.OpenFile(path, os.O_RDWR, opts.fileMode)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, wrapIO("open", err)
	}

	defer func() {
		if err == nil {
			return
		}

		if errors.Is(err, ErrCorruptLedger) {
			opts.logger.Errorf("xid: ledger '%s' is corrupted: %v", path, err)
		}
		opts.metrics.IncErrors("open")

		err = multierr.NewMultiErr().Append(err).Append(f.Close()).Reduce()
	}()

	count, err := readHeader(f)
	if err != nil {
		return nil, err
	}

	expected, err := ExpectedFileLength(count)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptLedger, err)
	}

	stat, err := f.Stat()
	if err != nil {
		return nil, wrapIO("stat", err)
	}

	if stat.Size() != expected {
		return nil, fmt.Errorf("%w: expected length %d, actual length %d", ErrCorruptLedger, expected, stat.Size())
	}

	opts.logger.Infof("xid: ledger '%s' opened with %d xids", path, count)

	return newManager(path, f, count, opts), nil
}

func newManager(path string, f *os.File, count uint64, opts *Options) *Manager {
	opts.metrics.ObserveAllocated(count)

	return &Manager{
		path:    path,
		f:       f,
		count:   atomic.NewUint64(count),
		synced:  opts.synced,
		logger:  opts.logger,
		metrics: opts.metrics,
		closed:  atomic.NewBool(false),
	}
}

func (m *Manager) Path() string {
	return m.path
}

// Count returns the number of allocated xids.
func (m *Manager) Count() uint64 {
	return m.count.Load()
}

// Begin allocates the next xid and persists it as active.
//
// The status byte is written before the header: a crash in between leaves a
// header that does not cover the new byte.
func (m *Manager) Begin() (XID, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.closed.Load() {
		return 0, ErrAlreadyClosed
	}

	count, err := readHeader(m.f)
	if err != nil {
		m.metrics.IncErrors("begin")
		return 0, err
	}

	if count != m.count.Load() {
		m.metrics.IncErrors("begin")
		return 0, fmt.Errorf("%w: header count %d differs from allocated count %d", ErrCorruptLedger, count, m.count.Load())
	}

	xid := XID(count + 1)

	off, err := StatusOffset(xid)
	if err != nil {
		return 0, err
	}

	err = writeFullAt(m.f, []byte{byte(Active)}, off)
	if err != nil {
		m.metrics.IncErrors("begin")
		return 0, wrapIO("write status", err)
	}

	err = writeFullAt(m.f, EncodeHeader(uint64(xid)), 0)
	if err != nil {
		m.metrics.IncErrors("begin")
		return 0, wrapIO("write header", err)
	}

	err = m.sync()
	if err != nil {
		m.metrics.IncErrors("begin")
		return 0, err
	}

	m.count.Store(uint64(xid))

	m.metrics.ObserveTransition(Active)
	m.metrics.ObserveAllocated(uint64(xid))

	m.logger.Debugf("xid: began transaction %d", xid)

	return xid, nil
}

// Commit marks xid as committed. Committing a committed xid is a no-op,
// committing an aborted one fails with ErrIllegalTransition.
func (m *Manager) Commit(xid XID) error {
	return m.transition(xid, Committed)
}

// Abort marks xid as aborted. Aborting an aborted xid is a no-op, aborting a
// committed one fails with ErrIllegalTransition.
func (m *Manager) Abort(xid XID) error {
	return m.transition(xid, Aborted)
}

// transition persists a terminal status. Terminal statuses are never
// rewritten: repeating the same one is a no-op, switching fails.
func (m *Manager) transition(xid XID, status Status) error {
	if xid == SuperXID {
		return nil
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.closed.Load() {
		return ErrAlreadyClosed
	}

	off, err := m.offsetOf(xid)
	if err != nil {
		return err
	}

	current, err := m.readStatus(off)
	if err != nil {
		m.metrics.IncErrors(status.String())
		return err
	}

	if current == status {
		return nil
	}

	if current.IsTerminal() {
		return fmt.Errorf("%w: xid %d is %s, cannot become %s", ErrIllegalTransition, xid, current, status)
	}

	err = writeFullAt(m.f, []byte{byte(status)}, off)
	if err != nil {
		m.metrics.IncErrors(status.String())
		return wrapIO("write status", err)
	}

	err = m.sync()
	if err != nil {
		m.metrics.IncErrors(status.String())
		return err
	}

	m.metrics.ObserveTransition(status)

	m.logger.Debugf("xid: transaction %d %s", xid, status)

	return nil
}

func (m *Manager) IsActive(xid XID) (bool, error) {
	return m.is(xid, Active)
}

func (m *Manager) IsCommitted(xid XID) (bool, error) {
	return m.is(xid, Committed)
}

func (m *Manager) IsAborted(xid XID) (bool, error) {
	return m.is(xid, Aborted)
}

func (m *Manager) is(xid XID, status Status) (bool, error) {
	st, err := m.Status(xid)
	if err != nil {
		return false, err
	}
	return st == status, nil
}

// Status returns the persisted status of xid. The super transaction is
// reported as committed without touching the file.
func (m *Manager) Status(xid XID) (Status, error) {
	if xid == SuperXID {
		return Committed, nil
	}

	if m.closed.Load() {
		return 0, ErrAlreadyClosed
	}

	off, err := m.offsetOf(xid)
	if err != nil {
		return 0, err
	}

	return m.readStatus(off)
}

func (m *Manager) offsetOf(xid XID) (int64, error) {
	count := m.count.Load()
	if uint64(xid) > count {
		return 0, fmt.Errorf("%w: xid %d not allocated (count %d)", ErrInvalidArgument, xid, count)
	}
	return StatusOffset(xid)
}

func (m *Manager) readStatus(off int64) (Status, error) {
	var b [StatusSize]byte

	_, err := m.f.ReadAt(b[:], off)
	if errors.Is(err, os.ErrClosed) {
		return 0, ErrAlreadyClosed
	}
	if err != nil {
		return 0, wrapIO("read status", err)
	}

	return DecodeStatus(b[0])
}

// Close makes pending writes durable and releases the file. Failures are
// logged rather than returned: there is nothing left for the caller to do.
// Closing an already closed manager has no effect besides returning
// ErrAlreadyClosed.
func (m *Manager) Close() error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.closed.Load() {
		return ErrAlreadyClosed
	}

	m.closed.Store(true)

	err := m.f.Sync()
	if err != nil {
		m.metrics.IncErrors("close")
		m.logger.Warningf("xid: unable to sync ledger '%s' on close: %v", m.path, err)
	}

	err = m.f.Close()
	if err != nil {
		m.metrics.IncErrors("close")
		m.logger.Warningf("xid: unable to close ledger '%s': %v", m.path, err)
	}

	m.logger.Infof("xid: ledger '%s' closed with %d xids", m.path, m.count.Load())

	return nil
}

func (m *Manager) sync() error {
	if !m.synced {
		return nil
	}

	start := time.Now()

	err := fileutils.Fdatasync(m.f)
	if err != nil {
		return wrapIO("sync", err)
	}

	m.metrics.ObserveSync(time.Since(start))

	return nil
}

func readHeader(f *os.File) (uint64, error) {
	b := make([]byte, HeaderLen)

	_, err := f.ReadAt(b, 0)
	if errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("%w: file shorter than header", ErrCorruptLedger)
	}
	if err != nil {
		return 0, wrapIO("read header", err)
	}

	return DecodeHeader(b)
}

// writeFullAt retries short writes until bs is written or an error occurs.
func writeFullAt(f *os.File, bs []byte, off int64) error {
	for len(bs) > 0 {
		n, err := f.WriteAt(bs, off)
		if err != nil {
			return err
		}
		if n == 0 {
			return io.ErrShortWrite
		}

		bs = bs[n:]
		off += int64(n)
	}

	return nil
}
