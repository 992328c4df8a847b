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
package helper

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrintTable(t *testing.T) {
	elements := []string{"one", "two"}

	var out bytes.Buffer
	PrintTable(
		&out,
		[]string{"Status", "Count"},
		len(elements),
		func(i int) []string {
			return []string{elements[i], "1"}
		},
		"",
	)
	require.Contains(t, out.String(), "Status")
	require.Contains(t, out.String(), "one")
	require.Contains(t, out.String(), "two")
	require.Contains(t, out.String(), "2 row(s)")

	out.Reset()
	PrintTable(
		&out,
		[]string{"Status", "Count"},
		1,
		func(i int) []string {
			// short rows are padded
			return []string{"three"}
		},
		"custom caption",
	)
	require.Contains(t, out.String(), "three")
	require.Contains(t, out.String(), "custom caption")
}

func TestPrintTableZeroEle(t *testing.T) {
	var out bytes.Buffer

	PrintTable(&out, []string{"Status"}, 0, nil, "")
	require.Empty(t, out.String())

	PrintTable(&out, nil, 3, nil, "")
	require.Empty(t, out.String())
}
