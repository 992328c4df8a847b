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
	"fmt"
	"strconv"

	"github.com/codenotary/xidledger/cmd/helper"
	"github.com/codenotary/xidledger/embedded/xid"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var statusColors = map[xid.Status]*color.Color{
	xid.Active:    color.New(color.FgYellow),
	xid.Committed: color.New(color.FgGreen),
	xid.Aborted:   color.New(color.FgRed),
}

func colorStatus(st xid.Status) string {
	c, ok := statusColors[st]
	if !ok {
		return st.String()
	}
	return c.Sprint(st.String())
}

func parseXIDs(args []string) ([]xid.XID, error) {
	xids := make([]xid.XID, len(args))

	for i, arg := range args {
		n, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: '%s' is not a transaction id", xid.ErrInvalidArgument, arg)
		}
		xids[i] = xid.XID(n)
	}

	return xids, nil
}

// Register adds the ledger commands to cmd.
func (cl *Commandline) Register(cmd *cobra.Command) {
	cmd.AddCommand(
		cl.createCmd(),
		cl.beginCmd(),
		cl.transitionCmd("commit", "Mark transactions as committed", (*xid.Manager).Commit),
		cl.transitionCmd("abort", "Mark transactions as aborted", (*xid.Manager).Abort),
		cl.statusCmd(),
		cl.inspectCmd(),
	)
}

func (cl *Commandline) createCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create a new, empty ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix, err := cl.prefix()
			if err != nil {
				return err
			}

			opts, err := cl.options()
			if err != nil {
				return err
			}

			m, err := xid.Create(prefix, opts)
			if err != nil {
				return err
			}
			defer m.Close()

			fmt.Fprintf(cmd.OutOrStdout(), "ledger created: %s\n", m.Path())

			return nil
		},
	}
}

func (cl *Commandline) beginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "begin",
		Short: "Allocate a new active transaction and print its id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cl.withLedger(func(m *xid.Manager) error {
				id, err := m.Begin()
				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), id)

				return nil
			})
		},
	}
}

func (cl *Commandline) transitionCmd(use, short string, transition func(*xid.Manager, xid.XID) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <xid>...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			xids, err := parseXIDs(args)
			if err != nil {
				return err
			}

			return cl.withLedger(func(m *xid.Manager) error {
				for _, id := range xids {
					err := transition(m, id)
					if err != nil {
						return fmt.Errorf("xid %d: %w", id, err)
					}

					st, err := m.Status(id)
					if err != nil {
						return err
					}

					fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", id, colorStatus(st))
				}
				return nil
			})
		},
	}
}

func (cl *Commandline) statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <xid>...",
		Short: "Print the status of transactions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			xids, err := parseXIDs(args)
			if err != nil {
				return err
			}

			return cl.withLedger(func(m *xid.Manager) error {
				for _, id := range xids {
					st, err := m.Status(id)
					if err != nil {
						return fmt.Errorf("xid %d: %w", id, err)
					}

					fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", id, colorStatus(st))
				}
				return nil
			})
		},
	}
}

func (cl *Commandline) inspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Verify every status entry and print a summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			listActive, err := cmd.Flags().GetBool("active")
			if err != nil {
				return err
			}

			return cl.withLedger(func(m *xid.Manager) error {
				s, err := m.Summary()
				if err != nil {
					return err
				}

				rows := [][]string{
					{colorStatus(xid.Active), strconv.FormatUint(s.Active, 10)},
					{colorStatus(xid.Committed), strconv.FormatUint(s.Committed, 10)},
					{colorStatus(xid.Aborted), strconv.FormatUint(s.Aborted, 10)},
				}

				helper.PrintTable(
					cmd.OutOrStdout(),
					[]string{"Status", "Transactions"},
					len(rows),
					func(i int) []string { return rows[i] },
					fmt.Sprintf("%s: %d xid(s)", m.Path(), s.Count),
				)

				if !listActive {
					return nil
				}

				active, err := m.ActiveXIDs()
				if err != nil {
					return err
				}

				helper.PrintTable(
					cmd.OutOrStdout(),
					[]string{"Active xid"},
					len(active),
					func(i int) []string { return []string{strconv.FormatUint(uint64(active[i]), 10)} },
					"",
				)

				return nil
			})
		},
	}

	cmd.Flags().Bool("active", false, "also list the transactions still active")

	return cmd
}
