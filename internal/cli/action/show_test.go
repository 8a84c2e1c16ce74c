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

package action_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/urfave/cli/v2"

	"github.com/suse/assetpack/internal/cli/action"
	"github.com/suse/assetpack/internal/cli/cmd"
	"github.com/suse/assetpack/pkg/log"
	"github.com/suse/assetpack/pkg/sys"
	sysmock "github.com/suse/assetpack/pkg/sys/mock"
)

var _ = Describe("Show action", Label("show"), func() {
	var s *sys.System
	var tfs sys.FS
	var cleanup func()
	var err error
	var ctx *cli.Context
	var stdout *bytes.Buffer

	BeforeEach(func() {
		cmd.ShowArgs = cmd.ShowFlags{}
		stdout = &bytes.Buffer{}
		tfs, cleanup, err = sysmock.TestFS(map[string]string{
			"/project/good.yaml": goodConfig,
			"/project/bad.yaml":  badConfig,
			"/project/vars.env":  "ASSETS=/srv/assets\n",
		})
		Expect(err).NotTo(HaveOccurred())
		s, err = sys.NewSystem(
			sys.WithFS(tfs),
			sys.WithLogger(log.New(log.WithDiscardAll())),
			sys.WithStdout(stdout),
		)
		Expect(err).NotTo(HaveOccurred())
		ctx = cli.NewContext(cli.NewApp(), nil, &cli.Context{})
		if ctx.App.Metadata == nil {
			ctx.App.Metadata = map[string]any{}
		}
		ctx.App.Metadata["system"] = s
	})

	AfterEach(func() {
		cleanup()
	})
	It("fails if no sys.System instance is in metadata", func() {
		ctx.App.Metadata["system"] = nil
		Expect(action.Show(ctx)).NotTo(Succeed())
	})
	It("prints the resolved configuration", func() {
		cmd.ShowArgs.ConfigFile = "/project/good.yaml"
		cmd.ShowArgs.VarsFile = "/project/vars.env"
		Expect(action.Show(ctx)).To(Succeed())
		Expect(stdout.String()).To(ContainSubstring("defaultTextureCompressionFormat: etc2"))
		Expect(stdout.String()).To(ContainSubstring("astc: /srv/assets/astc"))
		Expect(stdout.String()).To(ContainSubstring("assetBundleFilePath: bundles/level1"))
	})
	It("fails on conflicting locations and prints nothing", func() {
		cmd.ShowArgs.ConfigFile = "/project/bad.yaml"
		Expect(action.Show(ctx)).NotTo(Succeed())
		Expect(stdout.String()).To(BeEmpty())
	})
})
