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

package definition_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/suse/assetpack/pkg/assetpack"
	"github.com/suse/assetpack/pkg/definition"
	sysmock "github.com/suse/assetpack/pkg/sys/mock"
	"github.com/suse/assetpack/pkg/sys/vfs"
)

const projectDefinition = `
assetPacks:
  level1:
    deliveryMode: install-time
    assetBundleFilePath: ${BUNDLES}/level1
  raw:
    deliveryMode: fast-follow
    assetPackDirectoryPath: assets/raw
`

var _ = Describe("Loading definitions", Label("definition"), func() {
	var tfs vfs.FS
	var cleanup func()
	var err error

	BeforeEach(func() {
		tfs, cleanup, err = sysmock.TestFS(map[string]string{
			"/project/assetpacks.yaml":      projectDefinition,
			"/project/bad.yaml":             "assetPacks: [",
			"/project/vars.env":             "BUNDLES=/project/bundles\n",
			"/project/bundles/level1":       "bundle",
			"/project/assets/raw/image.png": "png",
		})
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		cleanup()
	})

	It("loads a definition with variables", func() {
		vars, err := definition.LoadVars(tfs, "/project/vars.env")
		Expect(err).NotTo(HaveOccurred())

		cfg, err := definition.Load(tfs, "/project/assetpacks.yaml", vars)
		Expect(err).NotTo(HaveOccurred())
		pack, ok := cfg.AssetPack("level1")
		Expect(ok).To(BeTrue())
		path, _ := pack.AssetBundleFilePath()
		Expect(path).To(Equal("/project/bundles/level1"))
	})

	It("returns no variables for an empty path", func() {
		vars, err := definition.LoadVars(tfs, "")
		Expect(err).NotTo(HaveOccurred())
		Expect(vars).To(BeEmpty())
	})

	It("fails on a missing variables file", func() {
		_, err := definition.LoadVars(tfs, "/project/missing.env")
		Expect(err).To(MatchError(ContainSubstring("loading variables file")))
	})

	It("fails on a missing definition file", func() {
		_, err := definition.Load(tfs, "/project/missing.yaml", nil)
		Expect(err).To(MatchError(ContainSubstring("reading definition file")))
	})

	It("fails on a malformed definition file", func() {
		_, err := definition.Load(tfs, "/project/bad.yaml", nil)
		Expect(err).To(MatchError(ContainSubstring("unmarshaling asset pack definition")))
	})

	It("fails to build without the referenced variables", func() {
		_, err := definition.Load(tfs, "/project/assetpacks.yaml", nil)
		Expect(err).To(MatchError(ContainSubstring("building asset pack configuration from '/project/assetpacks.yaml'")))
	})

	Describe("VerifyPaths", func() {
		var cfg *assetpack.Config

		BeforeEach(func() {
			cfg = assetpack.NewConfig()
		})

		It("accepts existing files and folders relative to the root", func() {
			Expect(cfg.AddAssetBundle("/project/bundles/level1", assetpack.InstallTime)).To(Succeed())
			Expect(cfg.AddAssetsFolder("raw", "assets/raw", assetpack.FastFollow)).To(Succeed())
			cfg.AssetPacks["unused"] = assetpack.New(assetpack.DoNotPackage)
			Expect(definition.VerifyPaths(tfs, "/project", cfg)).To(Succeed())
		})

		It("reports missing paths and kind mismatches", func() {
			Expect(cfg.AddAssetBundlesByDeviceTier("models", map[assetpack.DeviceTier]string{
				0: "bundles/level1",
				1: "bundles/missing",
			}, assetpack.FastFollow)).To(Succeed())
			Expect(cfg.AddAssetsFolder("raw", "bundles/level1", assetpack.FastFollow)).To(Succeed())
			Expect(cfg.AddAssetBundlesByDeviceGroup("ui", map[string]string{"tv": "assets/raw"}, assetpack.OnDemand)).To(Succeed())

			err := definition.VerifyPaths(tfs, "/project", cfg)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring(
				"asset pack 'models': DeviceTierToAssetBundleFilePath: '/project/bundles/missing' does not exist"))
			Expect(err.Error()).To(ContainSubstring(
				"asset pack 'raw': AssetPackDirectoryPath: '/project/bundles/level1' is not a directory"))
			Expect(err.Error()).To(ContainSubstring(
				"asset pack 'ui': DeviceGroupToAssetBundleFilePath: '/project/assets/raw' is not a regular file"))
		})
	})
})
