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

package assetpack

import (
	"fmt"
	"strconv"
	"strings"
)

// DeliveryMode indicates how an asset pack is delivered to devices.
type DeliveryMode int

const (
	DoNotPackage DeliveryMode = iota
	InstallTime
	FastFollow
	OnDemand
)

func (d DeliveryMode) String() string {
	switch d {
	case DoNotPackage:
		return "do-not-package"
	case InstallTime:
		return "install-time"
	case FastFollow:
		return "fast-follow"
	case OnDemand:
		return "on-demand"
	default:
		return "unknown"
	}
}

func ParseDeliveryMode(str string) (DeliveryMode, error) {
	switch str {
	case "", DoNotPackage.String():
		return DoNotPackage, nil
	case InstallTime.String():
		return InstallTime, nil
	case FastFollow.String():
		return FastFollow, nil
	case OnDemand.String():
		return OnDemand, nil
	default:
		return DoNotPackage, fmt.Errorf("delivery mode '%s' is not supported. Supported delivery modes: '%s', '%s', '%s', '%s'",
			str, DoNotPackage, InstallTime, FastFollow, OnDemand)
	}
}

// TextureCompressionFormat identifies the texture compression format an asset
// bundle or folder targets.
type TextureCompressionFormat int

const (
	Default TextureCompressionFormat = iota
	ETC1
	ETC2
	ASTC
	DXT1
	PVRTC
	ATC
)

var textureCompressionFormats = []TextureCompressionFormat{Default, ETC1, ETC2, ASTC, DXT1, PVRTC, ATC}

func (t TextureCompressionFormat) String() string {
	switch t {
	case Default:
		return "default"
	case ETC1:
		return "etc1"
	case ETC2:
		return "etc2"
	case ASTC:
		return "astc"
	case DXT1:
		return "dxt1"
	case PVRTC:
		return "pvrtc"
	case ATC:
		return "atc"
	default:
		return "unknown"
	}
}

func ParseTextureCompressionFormat(str string) (TextureCompressionFormat, error) {
	for _, t := range textureCompressionFormats {
		if strings.EqualFold(str, t.String()) {
			return t, nil
		}
	}

	names := make([]string, 0, len(textureCompressionFormats))
	for _, t := range textureCompressionFormats {
		names = append(names, t.String())
	}
	return Default, fmt.Errorf("texture compression format '%s' is not supported. Supported formats: %s",
		str, strings.Join(names, ", "))
}

// DeviceTier is the tier level of a device, 0 being the lowest.
type DeviceTier uint

func (t DeviceTier) String() string {
	return strconv.FormatUint(uint64(t), 10)
}

func ParseDeviceTier(str string) (DeviceTier, error) {
	tier, err := strconv.ParseUint(strings.TrimSpace(str), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid device tier '%s': must be a non-negative integer", str)
	}
	return DeviceTier(tier), nil
}
