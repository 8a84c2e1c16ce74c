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

package action

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/suse/assetpack/pkg/assetpack"
	"github.com/suse/assetpack/pkg/definition"
	"github.com/suse/assetpack/pkg/sys"
)

func systemFromContext(ctx *cli.Context) (*sys.System, error) {
	if ctx.App.Metadata == nil || ctx.App.Metadata["system"] == nil {
		return nil, fmt.Errorf("error setting up initial configuration")
	}
	s, ok := ctx.App.Metadata["system"].(*sys.System)
	if !ok {
		return nil, fmt.Errorf("error setting up initial configuration")
	}
	return s, nil
}

func loadConfig(s *sys.System, configFile, varsFile string) (*assetpack.Config, error) {
	vars, err := definition.LoadVars(s.FS(), varsFile)
	if err != nil {
		return nil, err
	}
	s.Logger().Debug("Loaded %d variable(s) from '%s'", len(vars), varsFile)

	return definition.Load(s.FS(), configFile, vars)
}
