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
	"fmt"
	"os"

	"github.com/codenotary/xidledger/embedded/logger"
)

const DefaultFileMode = os.FileMode(0644)

type Options struct {
	fileMode os.FileMode

	// when disabled writes reach the OS page cache only
	synced bool

	logger  logger.Logger
	metrics Metrics
}

func DefaultOptions() *Options {
	return &Options{
		fileMode: DefaultFileMode,
		synced:   true,
		logger:   logger.NewSimpleLogger("xid", os.Stderr),
		metrics:  NewPrometheusMetrics(),
	}
}

func (opts *Options) Validate() error {
	if opts == nil {
		return fmt.Errorf("%w: nil options", ErrInvalidOptions)
	}
	if opts.fileMode&0600 != 0600 {
		return fmt.Errorf("%w: file mode %v must allow owner read/write", ErrInvalidOptions, opts.fileMode)
	}
	if opts.logger == nil {
		return fmt.Errorf("%w: nil logger", ErrInvalidOptions)
	}
	if opts.metrics == nil {
		return fmt.Errorf("%w: nil metrics", ErrInvalidOptions)
	}
	return nil
}

func (opts *Options) WithFileMode(fileMode os.FileMode) *Options {
	opts.fileMode = fileMode
	return opts
}

func (opts *Options) WithSynced(synced bool) *Options {
	opts.synced = synced
	return opts
}

func (opts *Options) WithLogger(logger logger.Logger) *Options {
	opts.logger = logger
	return opts
}

func (opts *Options) WithMetrics(metrics Metrics) *Options {
	opts.metrics = metrics
	return opts
}

func (opts *Options) FileMode() os.FileMode {
	return opts.fileMode
}

func (opts *Options) Synced() bool {
	return opts.synced
}
