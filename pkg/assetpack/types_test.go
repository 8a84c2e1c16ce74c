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

var _ = Describe("DeliveryMode", Label("assetpack"), func() {
	It("is parsed correctly", func() {
		for _, mode := range []assetpack.DeliveryMode{
			assetpack.DoNotPackage, assetpack.InstallTime, assetpack.FastFollow, assetpack.OnDemand,
		} {
			parsed, err := assetpack.ParseDeliveryMode(mode.String())
			Expect(err).NotTo(HaveOccurred())
			Expect(parsed).To(Equal(mode))
		}
	})

	It("defaults to do-not-package for an empty string", func() {
		mode, err := assetpack.ParseDeliveryMode("")
		Expect(err).NotTo(HaveOccurred())
		Expect(mode).To(Equal(assetpack.DoNotPackage))
	})

	It("fails for an unexpected delivery mode", func() {
		_, err := assetpack.ParseDeliveryMode("eventually")
		Expect(err).To(MatchError("delivery mode 'eventually' is not supported. Supported delivery modes: " +
			"'do-not-package', 'install-time', 'fast-follow', 'on-demand'"))
	})
})

var _ = Describe("TextureCompressionFormat", Label("assetpack"), func() {
	It("is parsed case insensitively", func() {
		format, err := assetpack.ParseTextureCompressionFormat("ASTC")
		Expect(err).NotTo(HaveOccurred())
		Expect(format).To(Equal(assetpack.ASTC))

		format, err = assetpack.ParseTextureCompressionFormat("etc2")
		Expect(err).NotTo(HaveOccurred())
		Expect(format).To(Equal(assetpack.ETC2))
	})

	It("fails for an unexpected format", func() {
		_, err := assetpack.ParseTextureCompressionFormat("bc7")
		Expect(err).To(MatchError("texture compression format 'bc7' is not supported. " +
			"Supported formats: default, etc1, etc2, astc, dxt1, pvrtc, atc"))
	})
})

var _ = Describe("DeviceTier", Label("assetpack"), func() {
	It("round trips through its string form", func() {
		tier, err := assetpack.ParseDeviceTier("2")
		Expect(err).NotTo(HaveOccurred())
		Expect(tier).To(Equal(assetpack.DeviceTier(2)))
		Expect(tier.String()).To(Equal("2"))
	})

	It("rejects negative and non numeric tiers", func() {
		_, err := assetpack.ParseDeviceTier("-1")
		Expect(err).To(HaveOccurred())
		_, err = assetpack.ParseDeviceTier("high")
		Expect(err).To(MatchError("invalid device tier 'high': must be a non-negative integer"))
	})
})
