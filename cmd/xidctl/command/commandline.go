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
package command

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/codenotary/xidledger/cmd/helper"
	"github.com/codenotary/xidledger/embedded/logger"
	"github.com/codenotary/xidledger/embedded/xid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
)

var ErrMissingDB = errors.New("missing database path prefix, use --db or XIDCTL_DB")

// Commandline ...
type Commandline struct {
	config *helper.Config

	// overrides the logger built from --log-level
	logger logger.Logger
}

func (cl *Commandline) ConfigChain(post func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) (err error) {
	return func(cmd *cobra.Command, args []string) (err error) {
		if err = cl.config.LoadConfig(cmd); err != nil {
			return err
		}
		if post != nil {
			return post(cmd, args)
		}
		return nil
	}
}

func (cl *Commandline) prefix() (string, error) {
	db := strings.TrimSpace(cl.config.Viper().GetString("db"))
	if db == "" {
		return "", ErrMissingDB
	}
	return db, nil
}

func (cl *Commandline) options() (*xid.Options, error) {
	v := cl.config.Viper()

	l := cl.logger
	if l == nil {
		level, ok := logger.ParseLogLevel(v.GetString("log-level"))
		if !ok {
			return nil, fmt.Errorf("invalid log level '%s'", v.GetString("log-level"))
		}
		l = logger.NewSimpleLoggerWithLevel("xidctl", os.Stderr, level)
	}

	return xid.DefaultOptions().
		WithSynced(v.GetBool("synced")).
		WithLogger(l), nil
}

// withLedger opens the ledger for the duration of fn.
func (cl *Commandline) withLedger(fn func(m *xid.Manager) error) error {
	prefix, err := cl.prefix()
	if err != nil {
		return err
	}

	opts, err := cl.options()
	if err != nil {
		return err
	}

	m, err := xid.Open(prefix, opts)
	if err != nil {
		return err
	}
	defer m.Close()

	return fn(m)
}

// printMetrics writes the ledger metrics gathered during this run.
func (cl *Commandline) printMetrics(cmd *cobra.Command, _ []string) error {
	if !cl.config.Viper().GetBool("print-metrics") {
		return nil
	}

	mfs, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return err
	}

	for _, mf := range mfs {
		if !strings.HasPrefix(mf.GetName(), "xidledger_") {
			continue
		}

		_, err = expfmt.MetricFamilyToText(cmd.OutOrStdout(), mf)
		if err != nil {
			return err
		}
	}

	return nil
}
