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

package assetpack_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/suse/assetpack/pkg/assetpack"
)

var _ = Describe("Config", Label("config"), func() {
	var cfg *assetpack.Config

	BeforeEach(func() {
		cfg = assetpack.NewConfig()
	})

	It("names a single bundle pack after its file", func() {
		Expect(cfg.AddAssetBundle("/build/bundles/level1", assetpack.InstallTime)).To(Succeed())
		pack, ok := cfg.AssetPack("level1")
		Expect(ok).To(BeTrue())
		Expect(pack.DeliveryMode).To(Equal(assetpack.InstallTime))
		path, _ := pack.AssetBundleFilePath()
		Expect(path).To(Equal("/build/bundles/level1"))
	})

	It("adds packs for every kind of content source", func() {
		Expect(cfg.AddAssetsFolder("raw", "assets/raw", assetpack.FastFollow)).To(Succeed())
		Expect(cfg.AddAssetBundlesByCompressionFormat("textures", map[assetpack.TextureCompressionFormat]string{
			assetpack.ETC2: "etc2/textures", assetpack.ASTC: "astc/textures",
		}, assetpack.OnDemand)).To(Succeed())
		Expect(cfg.AddAssetsFoldersByCompressionFormat("sprites", map[assetpack.TextureCompressionFormat]string{
			assetpack.ETC1: "etc1/sprites",
		}, assetpack.OnDemand)).To(Succeed())
		Expect(cfg.AddAssetBundlesByDeviceTier("models", map[assetpack.DeviceTier]string{
			0: "low/models", 1: "high/models",
		}, assetpack.FastFollow)).To(Succeed())
		Expect(cfg.AddAssetsFoldersByDeviceTier("music", map[assetpack.DeviceTier]string{0: "music"}, assetpack.OnDemand)).To(Succeed())
		Expect(cfg.AddAssetBundlesByDeviceGroup("ui", map[string]string{"tablets": "ui/tablets"}, assetpack.InstallTime)).To(Succeed())
		Expect(cfg.AddAssetsFoldersByDeviceGroup("video", map[string]string{"tv": "video/tv"}, assetpack.OnDemand)).To(Succeed())

		Expect(cfg.Names()).To(Equal([]string{"models", "music", "raw", "sprites", "textures", "ui", "video"}))
		Expect(cfg.Validate()).To(Succeed())

		pack, _ := cfg.AssetPack("models")
		slot, _ := pack.ActiveSlot()
		Expect(slot).To(Equal(assetpack.SlotDeviceTierToAssetBundleFilePath))
	})

	It("replaces an existing pack with the same name", func() {
		Expect(cfg.AddAssetsFolder("raw", "assets/raw", assetpack.FastFollow)).To(Succeed())
		Expect(cfg.AddAssetBundlesByDeviceGroup("raw", map[string]string{"tv": "tv.bundle"}, assetpack.OnDemand)).To(Succeed())
		pack, _ := cfg.AssetPack("raw")
		Expect(pack.DeviceGroupToAssetBundleFilePath()).To(Equal(map[string]string{"tv": "tv.bundle"}))
	})

	It("refuses a nil map in the add helpers", func() {
		err := cfg.AddAssetBundlesByDeviceTier("models", nil, assetpack.OnDemand)
		Expect(err).To(MatchError("asset pack 'models': no DeviceTierToAssetBundleFilePath given"))
		Expect(cfg.Names()).To(BeEmpty())
	})

	It("refuses invalid pack names", func() {
		Expect(cfg.AddAssetsFolder("1st-pack", "dir", assetpack.OnDemand)).To(MatchError(ContainSubstring("invalid asset pack name '1st-pack'")))
		Expect(cfg.SetAssetPack("ok_name", nil)).To(HaveOccurred())
		Expect(assetpack.ValidPackName("Level_2")).To(BeTrue())
		Expect(assetpack.ValidPackName("_hidden")).To(BeFalse())
	})

	It("removes packs and reports delivery modes in use", func() {
		Expect(cfg.AddAssetsFolder("raw", "assets/raw", assetpack.FastFollow)).To(Succeed())
		Expect(cfg.HasDeliveryMode(assetpack.FastFollow)).To(BeTrue())
		Expect(cfg.HasDeliveryMode(assetpack.OnDemand)).To(BeFalse())
		cfg.Remove("raw")
		Expect(cfg.HasDeliveryMode(assetpack.FastFollow)).To(BeFalse())
	})

	It("skips nil packs when reporting delivery modes", func() {
		cfg := &assetpack.Config{AssetPacks: map[string]*assetpack.AssetPack{"a": nil}}
		Expect(cfg.HasDeliveryMode(assetpack.OnDemand)).To(BeFalse())
		cfg.AssetPacks["b"] = assetpack.New(assetpack.OnDemand)
		Expect(cfg.HasDeliveryMode(assetpack.OnDemand)).To(BeTrue())
	})

	It("reports every validation problem at once", func() {
		cfg.AssetPacks["bad-name"] = assetpack.New(assetpack.DoNotPackage)
		cfg.AssetPacks["empty"] = assetpack.New(assetpack.OnDemand)
		cfg.AssetPacks["unused"] = assetpack.New(assetpack.DoNotPackage)
		Expect(cfg.AddAssetBundlesByCompressionFormat("textures", map[assetpack.TextureCompressionFormat]string{
			assetpack.Default: "textures",
		}, assetpack.OnDemand)).To(Succeed())

		err := cfg.Validate()
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("invalid asset pack name 'bad-name'"))
		Expect(err.Error()).To(ContainSubstring("asset pack 'empty' has delivery mode 'on-demand' but no content"))
		Expect(err.Error()).To(ContainSubstring("can not use the 'default' texture compression format"))
		Expect(err.Error()).NotTo(ContainSubstring("unused"))
	})
})
