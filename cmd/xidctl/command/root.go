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
	"github.com/spf13/cobra"
)

func (cl *Commandline) NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "xidctl",
		Short: "xidctl - create, update and inspect transaction id ledgers",
		Long: `xidctl - create, update and inspect transaction id ledgers.

A ledger lives at <db>.xid and must not be in use by a running engine
while xidctl operates on it.

Settings are read, by increasing precedence, from a config file
(./configs/xidctl.toml, /etc/xidctl/xidctl.toml or $HOME/xidctl.toml),
XIDCTL_* environment variables (e.g. XIDCTL_DB=/var/lib/db/main) and flags.
`,
		SilenceUsage:       true,
		DisableAutoGenTag:  true,
		PersistentPreRunE:  cl.ConfigChain(nil),
		PersistentPostRunE: cl.printMetrics,
	}

	cmd.PersistentFlags().StringVar(&cl.config.CfgFn, "config", "", "config file")
	cmd.PersistentFlags().String("db", "", "database path prefix, the ledger is stored at <db>.xid")
	cmd.PersistentFlags().Bool("synced", true, "make every change durable before returning")
	cmd.PersistentFlags().String("log-level", "warn", "log level: debug, info, warn or error")
	cmd.PersistentFlags().Bool("print-metrics", false, "print ledger metrics once the command completes")

	return cmd
}
