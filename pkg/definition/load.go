/*
Copyright © 2025 SUSE LLC
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

package definition

import (
	"errors"
	"fmt"

	"github.com/suse/assetpack/pkg/assetpack"
	"github.com/suse/assetpack/pkg/sys/vfs"
)

// Load reads and builds the definition file at path.
func Load(fs vfs.FS, path string, vars map[string]string) (*assetpack.Config, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading definition file: %w", err)
	}

	file, err := Parse(data)
	if err != nil {
		return nil, err
	}

	cfg, err := file.Build(vars)
	if err != nil {
		return nil, fmt.Errorf("building asset pack configuration from '%s': %w", path, err)
	}
	return cfg, nil
}

// LoadVars reads the variables available to path expansion from an env
// style file. An empty path yields no variables.
func LoadVars(fs vfs.FS, path string) (map[string]string, error) {
	if path == "" {
		return map[string]string{}, nil
	}

	vars, err := vfs.LoadEnvFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("loading variables file: %w", err)
	}
	return vars, nil
}

// VerifyPaths checks that the content of every asset pack exists: AssetBundle
// paths must be regular files and asset pack paths directories. Relative
// paths are resolved against root.
func VerifyPaths(fs vfs.FS, root string, cfg *assetpack.Config) error {
	var errs error
	for _, name := range cfg.Names() {
		pack := cfg.AssetPacks[name]
		if pack == nil {
			continue
		}
		src := pack.Source()
		if src == nil {
			continue
		}

		for _, path := range src.Paths() {
			if err := verifyPath(fs, vfs.Resolve(root, path), src.Slot().Directory()); err != nil {
				errs = errors.Join(errs, fmt.Errorf("asset pack '%s': %s: %w", name, src.Slot(), err))
			}
		}
	}
	return errs
}

func verifyPath(fs vfs.FS, path string, dir bool) error {
	exists, err := vfs.Exists(fs, path, true)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("'%s' does not exist", path)
	}

	isDir, err := vfs.IsDir(fs, path, true)
	if err != nil {
		return err
	}
	switch {
	case dir && !isDir:
		return fmt.Errorf("'%s' is not a directory", path)
	case !dir && isDir:
		return fmt.Errorf("'%s' is not a regular file", path)
	}
	return nil
}
