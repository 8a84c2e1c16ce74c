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
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/suse/assetpack/internal/cli/cmd"
	"github.com/suse/assetpack/pkg/definition"
)

func Validate(ctx *cli.Context) error {
	s, err := systemFromContext(ctx)
	if err != nil {
		return err
	}
	args := &cmd.ValidateArgs

	s.Logger().Debug("Starting validate action with args: %+v", args)

	cfg, err := loadConfig(s, args.ConfigFile, args.VarsFile)
	if err != nil {
		s.Logger().Error("Failed loading asset pack definition: %v", err)
		return err
	}

	if err = cfg.Validate(); err != nil {
		s.Logger().Error("Asset pack configuration is invalid: %v", err)
		return fmt.Errorf("invalid asset pack configuration: %w", err)
	}

	if args.CheckPaths {
		root := args.RootDir
		if root == "" {
			root = filepath.Dir(args.ConfigFile)
		}
		s.Logger().Debug("Verifying asset pack content under '%s'", root)

		if err = definition.VerifyPaths(s.FS(), root, cfg); err != nil {
			s.Logger().Error("Asset pack content is missing: %v", err)
			return fmt.Errorf("verifying asset pack content: %w", err)
		}
	}

	for _, name := range cfg.Names() {
		pack := cfg.AssetPacks[name]
		if slot, ok := pack.ActiveSlot(); ok {
			s.Logger().Debug("Asset pack '%s': %s from %s", name, pack.DeliveryMode, slot)
		} else {
			s.Logger().Debug("Asset pack '%s': %s without content", name, pack.DeliveryMode)
		}
	}

	if len(cfg.AssetPacks) == 0 {
		s.Logger().Warn("Asset pack configuration '%s' defines no asset packs", args.ConfigFile)
	}

	s.Logger().Info("Asset pack configuration '%s' is valid, %d asset pack(s) defined", args.ConfigFile, len(cfg.AssetPacks))
	return nil
}
