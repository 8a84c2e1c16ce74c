/*
Copyright © 2022-2025 SUSE LLC
SPDX-License-Identifier: Apache-2.0

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package mock

import (
	"github.com/twpayne/go-vfs/v4/vfst"

	"github.com/suse/assetpack/pkg/sys/vfs"
)

// TestFS creates a temporary filesystem populated with the given files, keys
// are paths and values file contents. Parent directories are created as needed.
// The returned cleanup function removes the whole tree.
func TestFS(files map[string]string) (vfs.FS, func(), error) {
	tree := map[string]any{}
	for path, content := range files {
		tree[path] = content
	}

	tfs, cleanup, err := vfst.NewTestFS(tree)
	if err != nil {
		return nil, nil, err
	}
	return tfs, cleanup, nil
}
