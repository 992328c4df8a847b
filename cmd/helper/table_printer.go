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
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// PrintTable prints nbRows rows, as produced by getRow, under the cols
// header. Nothing is printed for an empty table.
func PrintTable(
	w io.Writer,
	cols []string,
	nbRows int,
	getRow func(int) []string,
	caption string,
) {
	if nbRows == 0 || len(cols) == 0 {
		return
	}

	if caption == "" {
		caption = fmt.Sprintf("%d row(s)", nbRows)
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(cols)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetCaption(true, caption)

	for i := 0; i < nbRows; i++ {
		row := make([]string, len(cols))
		copy(row, getRow(i))
		table.Append(row)
	}

	table.Render()
}
