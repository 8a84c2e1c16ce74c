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
	"github.com/urfave/cli/v2"

	"github.com/suse/assetpack/pkg/log"
	"github.com/suse/assetpack/pkg/sys"
)

const Usage = "Validate and inspect asset pack delivery configurations"

func GlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "debug",
			Usage:   "Set logging at debug level",
			EnvVars: []string{"ASSETPACK_DEBUG"},
		},
	}
}

func Setup(ctx *cli.Context) error {
	var opts []log.LoggerOptions
	if ctx.Bool("debug") {
		opts = append(opts, log.WithDebug())
	}
	if ctx.App.ErrWriter != nil {
		opts = append(opts, log.WithOutput(ctx.App.ErrWriter))
	}

	sysOpts := []sys.SystemOpts{sys.WithLogger(log.New(opts...))}
	if ctx.App.Writer != nil {
		sysOpts = append(sysOpts, sys.WithStdout(ctx.App.Writer))
	}

	s, err := sys.NewSystem(sysOpts...)
	if err != nil {
		return err
	}

	if ctx.App.Metadata == nil {
		ctx.App.Metadata = map[string]any{}
	}
	ctx.App.Metadata["system"] = s
	return nil
}
