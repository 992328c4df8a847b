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
// Package fileutils holds the platform specific pieces needed to make file
// writes durable.
package fileutils

import "os"

// SyncDir flushes the directory entry of a newly created file.
func SyncDir(path string) error {
	return syncDir(path)
}

// Fdatasync flushes file data and the metadata needed to read it back.
func Fdatasync(f *os.File) error {
	return fdatasync(f)
}
