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

	"github.com/suse/assetpack/internal/cli/cmd"
	"github.com/suse/assetpack/pkg/definition"
)

func Show(ctx *cli.Context) error {
	s, err := systemFromContext(ctx)
	if err != nil {
		return err
	}
	args := &cmd.ShowArgs

	cfg, err := loadConfig(s, args.ConfigFile, args.VarsFile)
	if err != nil {
		s.Logger().Error("Failed loading asset pack definition: %v", err)
		return err
	}

	data, err := definition.Marshal(definition.FromConfig(cfg))
	if err != nil {
		return err
	}

	if _, err = s.Stdout().Write(data); err != nil {
		return fmt.Errorf("writing asset pack configuration: %w", err)
	}
	return nil
}
