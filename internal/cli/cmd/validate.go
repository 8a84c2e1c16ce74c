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

package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

type ValidateFlags struct {
	ConfigFile string
	VarsFile   string
	RootDir    string
	CheckPaths bool
}

var ValidateArgs ValidateFlags

func NewValidateCommand(appName string, action func(*cli.Context) error) *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "Validate an asset pack definition file",
		UsageText: fmt.Sprintf("%s validate [OPTIONS]", appName),
		Action:    action,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Asset pack definition file",
				Required:    true,
				Destination: &ValidateArgs.ConfigFile,
			},
			&cli.StringFlag{
				Name:        "vars",
				Usage:       "Env style file with the variables referenced by the definition paths",
				Destination: &ValidateArgs.VarsFile,
			},
			&cli.StringFlag{
				Name:        "root",
				Usage:       "Directory relative content paths are resolved against, defaults to the definition file directory",
				Destination: &ValidateArgs.RootDir,
			},
			&cli.BoolFlag{
				Name:        "check-paths",
				Usage:       "Verify asset bundles and asset folders exist on disk",
				Destination: &ValidateArgs.CheckPaths,
			},
		},
	}
}
