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
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"slices"

	"github.com/samber/lo"
)

var packNameRegexp = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// Config is the set of asset packs of an app bundle together with the
// bundle wide delivery defaults.
type Config struct {
	AssetPacks map[string]*AssetPack

	// DefaultTextureCompressionFormat is used by devices whose preferred
	// format has no dedicated bundle or folder.
	DefaultTextureCompressionFormat TextureCompressionFormat
	// DefaultDeviceTier is used by devices with no tier assigned.
	DefaultDeviceTier DeviceTier
	// SplitBaseModuleAssets moves the base module assets into their own
	// install-time asset pack.
	SplitBaseModuleAssets bool
}

// NewConfig returns an empty configuration with default delivery settings.
func NewConfig() *Config {
	return &Config{AssetPacks: map[string]*AssetPack{}}
}

// ValidPackName reports whether name can be used as an asset pack name.
func ValidPackName(name string) bool {
	return packNameRegexp.MatchString(name)
}

// SetAssetPack adds pack under name, replacing any pack of that name.
func (c *Config) SetAssetPack(name string, pack *AssetPack) error {
	if !ValidPackName(name) {
		return fmt.Errorf("invalid asset pack name '%s': must start with a letter and contain only letters, digits and underscores", name)
	}
	if pack == nil {
		return fmt.Errorf("nil asset pack '%s'", name)
	}
	if c.AssetPacks == nil {
		c.AssetPacks = map[string]*AssetPack{}
	}
	c.AssetPacks[name] = pack
	return nil
}

// AssetPack returns the pack registered under name.
func (c *Config) AssetPack(name string) (*AssetPack, bool) {
	p, ok := c.AssetPacks[name]
	return p, ok
}

// Remove deletes the pack registered under name, if any.
func (c *Config) Remove(name string) {
	delete(c.AssetPacks, name)
}

// Names returns the asset pack names in lexical order.
func (c *Config) Names() []string {
	names := lo.Keys(c.AssetPacks)
	slices.Sort(names)
	return names
}

// HasDeliveryMode reports whether any pack uses the given delivery mode.
func (c *Config) HasDeliveryMode(mode DeliveryMode) bool {
	return lo.SomeBy(lo.Values(c.AssetPacks), func(p *AssetPack) bool {
		return p != nil && p.DeliveryMode == mode
	})
}

// AddAssetBundle adds a pack made of a single AssetBundle file. The pack is
// named after the file.
func (c *Config) AddAssetBundle(path string, mode DeliveryMode) error {
	return c.add(filepath.Base(path), AssetBundleFile(path), mode)
}

// AddAssetsFolder adds a pack made of a folder of raw asset files.
func (c *Config) AddAssetsFolder(name, dir string, mode DeliveryMode) error {
	return c.add(name, AssetPackDirectory(dir), mode)
}

// AddAssetBundlesByCompressionFormat adds a pack delivering one AssetBundle
// per texture compression format. The same pattern applies to the helpers
// below, keyed by compression format, device tier or device group.
func (c *Config) AddAssetBundlesByCompressionFormat(name string, paths map[TextureCompressionFormat]string, mode DeliveryMode) error {
	return c.add(name, CompressionFormatAssetBundles(paths), mode)
}

func (c *Config) AddAssetsFoldersByCompressionFormat(name string, dirs map[TextureCompressionFormat]string, mode DeliveryMode) error {
	return c.add(name, CompressionFormatDirectories(dirs), mode)
}

func (c *Config) AddAssetBundlesByDeviceTier(name string, paths map[DeviceTier]string, mode DeliveryMode) error {
	return c.add(name, DeviceTierAssetBundles(paths), mode)
}

func (c *Config) AddAssetsFoldersByDeviceTier(name string, dirs map[DeviceTier]string, mode DeliveryMode) error {
	return c.add(name, DeviceTierDirectories(dirs), mode)
}

func (c *Config) AddAssetBundlesByDeviceGroup(name string, paths map[string]string, mode DeliveryMode) error {
	return c.add(name, DeviceGroupAssetBundles(paths), mode)
}

func (c *Config) AddAssetsFoldersByDeviceGroup(name string, dirs map[string]string, mode DeliveryMode) error {
	return c.add(name, DeviceGroupDirectories(dirs), mode)
}

func (c *Config) add(name string, src ContentSource, mode DeliveryMode) error {
	if src.empty() {
		return fmt.Errorf("asset pack '%s': no %s given", name, src.Slot())
	}

	pack := New(mode)
	if err := pack.SetSource(src); err != nil {
		return fmt.Errorf("asset pack '%s': %w", name, err)
	}
	return c.SetAssetPack(name, pack)
}

// Validate checks the whole configuration and returns every problem found.
func (c *Config) Validate() error {
	var errs error
	for _, name := range c.Names() {
		pack := c.AssetPacks[name]
		if !ValidPackName(name) {
			errs = errors.Join(errs, fmt.Errorf("invalid asset pack name '%s'", name))
		}
		if pack == nil {
			errs = errors.Join(errs, fmt.Errorf("asset pack '%s' is nil", name))
			continue
		}

		slot, ok := pack.ActiveSlot()
		if !ok {
			if pack.DeliveryMode != DoNotPackage {
				errs = errors.Join(errs, fmt.Errorf("asset pack '%s' has delivery mode '%s' but no content", name, pack.DeliveryMode))
			}
			continue
		}

		var formats []TextureCompressionFormat
		switch slot {
		case SlotCompressionFormatToAssetBundleFilePath:
			formats = lo.Keys(pack.CompressionFormatToAssetBundleFilePath())
		case SlotCompressionFormatToAssetPackDirectoryPath:
			formats = lo.Keys(pack.CompressionFormatToAssetPackDirectoryPath())
		}
		if slices.Contains(formats, Default) {
			errs = errors.Join(errs, fmt.Errorf("asset pack '%s': %s can not use the '%s' texture compression format", name, slot, Default))
		}
	}
	return errs
}
