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
	"maps"
)

// AssetPack holds the delivery configuration of a single asset pack: how it
// is delivered and where its content is located on disk. At most one content
// source is set at any time.
//
// AssetPack is not safe for concurrent mutation.
type AssetPack struct {
	DeliveryMode DeliveryMode

	source ContentSource
}

// New returns an asset pack with the given delivery mode and no content.
func New(mode DeliveryMode) *AssetPack {
	return &AssetPack{DeliveryMode: mode}
}

// Source returns a copy of the current content source, or nil if none is set.
func (p *AssetPack) Source() ContentSource {
	if p.source == nil {
		return nil
	}
	return p.source.clone()
}

// ActiveSlot returns the slot currently holding the content source.
func (p *AssetPack) ActiveSlot() (Slot, bool) {
	if p.source == nil {
		return 0, false
	}
	return p.source.Slot(), true
}

// SetSource sets the content source of the pack. A map source holding a nil
// map clears its slot and always succeeds. Setting any other source fails with
// an *InvalidConfigurationError if a different slot is already set, in which
// case the pack is left untouched. Setting the slot already in use replaces
// its value.
func (p *AssetPack) SetSource(src ContentSource) error {
	if src == nil {
		return nil
	}
	if src.empty() {
		p.Clear(src.Slot())
		return nil
	}
	if p.source != nil && p.source.Slot() != src.Slot() {
		return &InvalidConfigurationError{Slot: src.Slot(), Conflict: p.source.Slot()}
	}
	p.source = src.clone()
	return nil
}

// Clear unsets the given slot. Other slots are not affected.
func (p *AssetPack) Clear(slot Slot) {
	if p.source != nil && p.source.Slot() == slot {
		p.source = nil
	}
}

// Reset unsets whichever content source is set.
func (p *AssetPack) Reset() {
	p.source = nil
}

// AssetBundleFilePath returns the location of a single AssetBundle file. The
// boolean is false when the slot is unset; an empty path is a valid value.
func (p *AssetPack) AssetBundleFilePath() (string, bool) {
	f, ok := p.source.(AssetBundleFile)
	return string(f), ok
}

// SetAssetBundleFilePath sets the AssetBundle file location. It fails if
// any other content source is already set.
func (p *AssetPack) SetAssetBundleFilePath(path string) error {
	return p.SetSource(AssetBundleFile(path))
}

// ClearAssetBundleFilePath unsets the AssetBundle file location.
func (p *AssetPack) ClearAssetBundleFilePath() {
	p.Clear(SlotAssetBundleFilePath)
}

// AssetPackDirectoryPath returns the location of a folder of raw asset files.
func (p *AssetPack) AssetPackDirectoryPath() (string, bool) {
	d, ok := p.source.(AssetPackDirectory)
	return string(d), ok
}

// SetAssetPackDirectoryPath sets the raw assets folder. It fails if any other
// content source is already set.
func (p *AssetPack) SetAssetPackDirectoryPath(path string) error {
	return p.SetSource(AssetPackDirectory(path))
}

// ClearAssetPackDirectoryPath unsets the raw assets folder.
func (p *AssetPack) ClearAssetPackDirectoryPath() {
	p.Clear(SlotAssetPackDirectoryPath)
}

// CompressionFormatToAssetBundleFilePath returns AssetBundle files keyed by
// texture compression format. Only the bundle matching the device's preferred
// format is delivered. A nil map means the slot is unset.
func (p *AssetPack) CompressionFormatToAssetBundleFilePath() map[TextureCompressionFormat]string {
	m, _ := p.source.(CompressionFormatAssetBundles)
	return maps.Clone(m)
}

// SetCompressionFormatToAssetBundleFilePath sets the slot, or clears it when
// m is nil. The same applies to all map setters below.
func (p *AssetPack) SetCompressionFormatToAssetBundleFilePath(m map[TextureCompressionFormat]string) error {
	return p.SetSource(CompressionFormatAssetBundles(m))
}

// CompressionFormatToAssetPackDirectoryPath returns raw asset folders keyed by
// texture compression format.
func (p *AssetPack) CompressionFormatToAssetPackDirectoryPath() map[TextureCompressionFormat]string {
	m, _ := p.source.(CompressionFormatDirectories)
	return maps.Clone(m)
}

func (p *AssetPack) SetCompressionFormatToAssetPackDirectoryPath(m map[TextureCompressionFormat]string) error {
	return p.SetSource(CompressionFormatDirectories(m))
}

// DeviceTierToAssetBundleFilePath returns AssetBundle files keyed by device
// tier. Only the bundle for the device's tier is delivered.
func (p *AssetPack) DeviceTierToAssetBundleFilePath() map[DeviceTier]string {
	m, _ := p.source.(DeviceTierAssetBundles)
	return maps.Clone(m)
}

func (p *AssetPack) SetDeviceTierToAssetBundleFilePath(m map[DeviceTier]string) error {
	return p.SetSource(DeviceTierAssetBundles(m))
}

// DeviceTierToAssetPackDirectoryPath returns raw asset folders keyed by device
// tier.
func (p *AssetPack) DeviceTierToAssetPackDirectoryPath() map[DeviceTier]string {
	m, _ := p.source.(DeviceTierDirectories)
	return maps.Clone(m)
}

func (p *AssetPack) SetDeviceTierToAssetPackDirectoryPath(m map[DeviceTier]string) error {
	return p.SetSource(DeviceTierDirectories(m))
}

// DeviceGroupToAssetBundleFilePath returns AssetBundle files keyed by device
// group name.
func (p *AssetPack) DeviceGroupToAssetBundleFilePath() map[string]string {
	m, _ := p.source.(DeviceGroupAssetBundles)
	return maps.Clone(m)
}

func (p *AssetPack) SetDeviceGroupToAssetBundleFilePath(m map[string]string) error {
	return p.SetSource(DeviceGroupAssetBundles(m))
}

// DeviceGroupToAssetPackDirectoryPath returns raw asset folders keyed by device
// group name.
func (p *AssetPack) DeviceGroupToAssetPackDirectoryPath() map[string]string {
	m, _ := p.source.(DeviceGroupDirectories)
	return maps.Clone(m)
}

func (p *AssetPack) SetDeviceGroupToAssetPackDirectoryPath(m map[string]string) error {
	return p.SetSource(DeviceGroupDirectories(m))
}
