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
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func setBuildInfo(t *testing.T, app, version, commit, builtAt string) {
	old := []string{App, Version, Commit, BuiltAt}
	t.Cleanup(func() {
		App, Version, Commit, BuiltAt = old[0], old[1], old[2], old[3]
	})

	App, Version, Commit, BuiltAt = app, version, commit, builtAt
}

func TestVersionStr(t *testing.T) {
	setBuildInfo(t, "", "", "", "")
	require.Equal(t, "no version info available", VersionStr())

	setBuildInfo(t, "xidctl", "1.0.0", "abc123", "0")
	require.Equal(t, "xidctl 1.0.0\nCommit  : abc123\nBuilt at: Thu, 01 Jan 1970 00:00:00 UTC", VersionStr())

	setBuildInfo(t, "xidctl", "1.0.0", "", "not-a-number")
	require.Equal(t, "xidctl 1.0.0", VersionStr())
}

func TestVersionCmd(t *testing.T) {
	setBuildInfo(t, "xidctl", "1.0.0", "", "")

	var out bytes.Buffer

	cmd := VersionCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	require.Equal(t, "xidctl 1.0.0\n", out.String())
}
