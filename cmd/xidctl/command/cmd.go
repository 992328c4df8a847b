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
	"github.com/codenotary/xidledger/cmd/helper"
	"github.com/codenotary/xidledger/cmd/version"
	"github.com/spf13/cobra"
)

func Execute() {
	version.App = "xidctl"

	cmd := newCommand(&Commandline{config: helper.NewConfig("xidctl")})

	if err := cmd.Execute(); err != nil {
		helper.QuitToStdErr(err)
	}
}

func newCommand(cl *Commandline) *cobra.Command {
	cmd := cl.NewRootCmd()

	cl.Register(cmd)
	cmd.AddCommand(version.VersionCmd())

	return cmd
}
