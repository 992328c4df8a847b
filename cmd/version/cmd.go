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
package version

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// Build information, set through -ldflags "-X ...".
var (
	App     string
	Version string
	Commit  string
	BuiltAt string
)

// VersionCmd returns a new version command
func VersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: fmt.Sprintf("Show the %s version", App),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), VersionStr())
		},
	}
}

// VersionStr formats and returns the version string
func VersionStr() string {
	if App == "" || Version == "" {
		return "no version info available"
	}

	const pattern = "%-8s: %s"

	pieces := []string{fmt.Sprintf("%s %s", App, Version)}

	if Commit != "" {
		pieces = append(pieces, fmt.Sprintf(pattern, "Commit", Commit))
	}

	if BuiltAt != "" {
		if secs, err := strconv.ParseInt(BuiltAt, 10, 64); err == nil {
			pieces = append(pieces, fmt.Sprintf(pattern, "Built at", time.Unix(secs, 0).UTC().Format(time.RFC1123)))
		}
	}

	return strings.Join(pieces, "\n")
}
