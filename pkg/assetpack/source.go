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
	"cmp"
	"maps"
	"slices"

	"github.com/samber/lo"
)

// Slot names one of the mutually exclusive ways of locating the content of
// an asset pack.
type Slot int

const (
	SlotAssetBundleFilePath Slot = iota + 1
	SlotAssetPackDirectoryPath
	SlotCompressionFormatToAssetBundleFilePath
	SlotCompressionFormatToAssetPackDirectoryPath
	SlotDeviceTierToAssetBundleFilePath
	SlotDeviceTierToAssetPackDirectoryPath
	SlotDeviceGroupToAssetBundleFilePath
	SlotDeviceGroupToAssetPackDirectoryPath
)

// Slots returns every content source slot in declaration order.
func Slots() []Slot {
	return []Slot{
		SlotAssetBundleFilePath,
		SlotAssetPackDirectoryPath,
		SlotCompressionFormatToAssetBundleFilePath,
		SlotCompressionFormatToAssetPackDirectoryPath,
		SlotDeviceTierToAssetBundleFilePath,
		SlotDeviceTierToAssetPackDirectoryPath,
		SlotDeviceGroupToAssetBundleFilePath,
		SlotDeviceGroupToAssetPackDirectoryPath,
	}
}

func (s Slot) String() string {
	switch s {
	case SlotAssetBundleFilePath:
		return "AssetBundleFilePath"
	case SlotAssetPackDirectoryPath:
		return "AssetPackDirectoryPath"
	case SlotCompressionFormatToAssetBundleFilePath:
		return "CompressionFormatToAssetBundleFilePath"
	case SlotCompressionFormatToAssetPackDirectoryPath:
		return "CompressionFormatToAssetPackDirectoryPath"
	case SlotDeviceTierToAssetBundleFilePath:
		return "DeviceTierToAssetBundleFilePath"
	case SlotDeviceTierToAssetPackDirectoryPath:
		return "DeviceTierToAssetPackDirectoryPath"
	case SlotDeviceGroupToAssetBundleFilePath:
		return "DeviceGroupToAssetBundleFilePath"
	case SlotDeviceGroupToAssetPackDirectoryPath:
		return "DeviceGroupToAssetPackDirectoryPath"
	default:
		return "unknown"
	}
}

// Directory reports whether the paths held by the slot point to folders of
// raw assets rather than AssetBundle files.
func (s Slot) Directory() bool {
	switch s {
	case SlotAssetPackDirectoryPath,
		SlotCompressionFormatToAssetPackDirectoryPath,
		SlotDeviceTierToAssetPackDirectoryPath,
		SlotDeviceGroupToAssetPackDirectoryPath:
		return true
	default:
		return false
	}
}

// ContentSource is the location of an asset pack's content. Exactly one
// implementation exists per Slot.
type ContentSource interface {
	Slot() Slot
	// Paths returns every path of the source, ordered by key.
	Paths() []string

	// empty is true for map sources holding a nil map, which clear the slot.
	empty() bool
	clone() ContentSource
}

var (
	_ ContentSource = AssetBundleFile("")
	_ ContentSource = AssetPackDirectory("")
	_ ContentSource = CompressionFormatAssetBundles(nil)
	_ ContentSource = CompressionFormatDirectories(nil)
	_ ContentSource = DeviceTierAssetBundles(nil)
	_ ContentSource = DeviceTierDirectories(nil)
	_ ContentSource = DeviceGroupAssetBundles(nil)
	_ ContentSource = DeviceGroupDirectories(nil)
)

// AssetBundleFile is the location on disk of a single AssetBundle file.
type AssetBundleFile string

func (AssetBundleFile) Slot() Slot             { return SlotAssetBundleFilePath }
func (f AssetBundleFile) Paths() []string      { return []string{string(f)} }
func (AssetBundleFile) empty() bool            { return false }
func (f AssetBundleFile) clone() ContentSource { return f }

// AssetPackDirectory is the location on disk of a folder of raw asset files.
type AssetPackDirectory string

func (AssetPackDirectory) Slot() Slot             { return SlotAssetPackDirectoryPath }
func (d AssetPackDirectory) Paths() []string      { return []string{string(d)} }
func (AssetPackDirectory) empty() bool            { return false }
func (d AssetPackDirectory) clone() ContentSource { return d }

// CompressionFormatAssetBundles maps texture compression formats to AssetBundle
// files that only differ in their texture compression format.
type CompressionFormatAssetBundles map[TextureCompressionFormat]string

func (CompressionFormatAssetBundles) Slot() Slot        { return SlotCompressionFormatToAssetBundleFilePath }
func (m CompressionFormatAssetBundles) Paths() []string { return sortedValues(m) }
func (m CompressionFormatAssetBundles) empty() bool     { return m == nil }
func (m CompressionFormatAssetBundles) clone() ContentSource {
	return CompressionFormatAssetBundles(maps.Clone(m))
}

// CompressionFormatDirectories maps texture compression formats to folders of
// raw asset files.
type CompressionFormatDirectories map[TextureCompressionFormat]string

func (CompressionFormatDirectories) Slot() Slot        { return SlotCompressionFormatToAssetPackDirectoryPath }
func (m CompressionFormatDirectories) Paths() []string { return sortedValues(m) }
func (m CompressionFormatDirectories) empty() bool     { return m == nil }
func (m CompressionFormatDirectories) clone() ContentSource {
	return CompressionFormatDirectories(maps.Clone(m))
}

// DeviceTierAssetBundles maps device tiers to AssetBundle files.
type DeviceTierAssetBundles map[DeviceTier]string

func (DeviceTierAssetBundles) Slot() Slot             { return SlotDeviceTierToAssetBundleFilePath }
func (m DeviceTierAssetBundles) Paths() []string      { return sortedValues(m) }
func (m DeviceTierAssetBundles) empty() bool          { return m == nil }
func (m DeviceTierAssetBundles) clone() ContentSource { return DeviceTierAssetBundles(maps.Clone(m)) }

// DeviceTierDirectories maps device tiers to folders of raw asset files.
type DeviceTierDirectories map[DeviceTier]string

func (DeviceTierDirectories) Slot() Slot             { return SlotDeviceTierToAssetPackDirectoryPath }
func (m DeviceTierDirectories) Paths() []string      { return sortedValues(m) }
func (m DeviceTierDirectories) empty() bool          { return m == nil }
func (m DeviceTierDirectories) clone() ContentSource { return DeviceTierDirectories(maps.Clone(m)) }

// DeviceGroupAssetBundles maps device group names to AssetBundle files.
type DeviceGroupAssetBundles map[string]string

func (DeviceGroupAssetBundles) Slot() Slot             { return SlotDeviceGroupToAssetBundleFilePath }
func (m DeviceGroupAssetBundles) Paths() []string      { return sortedValues(m) }
func (m DeviceGroupAssetBundles) empty() bool          { return m == nil }
func (m DeviceGroupAssetBundles) clone() ContentSource { return DeviceGroupAssetBundles(maps.Clone(m)) }

// DeviceGroupDirectories maps device group names to folders of raw asset files.
type DeviceGroupDirectories map[string]string

func (DeviceGroupDirectories) Slot() Slot             { return SlotDeviceGroupToAssetPackDirectoryPath }
func (m DeviceGroupDirectories) Paths() []string      { return sortedValues(m) }
func (m DeviceGroupDirectories) empty() bool          { return m == nil }
func (m DeviceGroupDirectories) clone() ContentSource { return DeviceGroupDirectories(maps.Clone(m)) }

func sortedValues[K cmp.Ordered](m map[K]string) []string {
	keys := lo.Keys(m)
	slices.Sort(keys)
	return lo.Map(keys, func(k K, _ int) string { return m[k] })
}
