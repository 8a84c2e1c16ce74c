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

package definition

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/suse/assetpack/pkg/assetpack"
)

// Build turns the definition into an asset pack configuration. Every
// location is applied through the validating setters, so a pack defining
// more than one location fails. Paths may reference ${VAR} entries of vars.
// All problems found are returned joined.
func (f *File) Build(vars map[string]string) (*assetpack.Config, error) {
	cfg := assetpack.NewConfig()

	var errs error
	if f.DefaultTextureCompressionFormat != "" {
		format, err := assetpack.ParseTextureCompressionFormat(f.DefaultTextureCompressionFormat)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("parsing default texture compression format: %w", err))
		}
		cfg.DefaultTextureCompressionFormat = format
	}
	cfg.DefaultDeviceTier = assetpack.DeviceTier(f.DefaultDeviceTier)
	cfg.SplitBaseModuleAssets = f.SplitBaseModuleAssets

	names := lo.Keys(f.AssetPacks)
	slices.Sort(names)
	for _, name := range names {
		pack, err := f.AssetPacks[name].build(vars)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("asset pack '%s': %w", name, err))
			continue
		}
		if err = cfg.SetAssetPack(name, pack); err != nil {
			errs = errors.Join(errs, err)
		}
	}

	if errs != nil {
		return nil, errs
	}
	return cfg, nil
}

func (p *Pack) build(vars map[string]string) (*assetpack.AssetPack, error) {
	if p == nil {
		return assetpack.New(assetpack.DoNotPackage), nil
	}

	mode, err := assetpack.ParseDeliveryMode(p.DeliveryMode)
	if err != nil {
		return nil, err
	}
	pack := assetpack.New(mode)

	sources, err := p.sources(vars)
	if err != nil {
		return nil, err
	}
	for _, src := range sources {
		if err = pack.SetSource(src); err != nil {
			return nil, fmt.Errorf("setting %s: %w", src.Slot(), err)
		}
	}
	return pack, nil
}

// sources returns the locations defined in the pack in slot order.
func (p *Pack) sources(vars map[string]string) ([]assetpack.ContentSource, error) {
	var sources []assetpack.ContentSource
	var errs error

	exp := func(path string) string {
		expanded, err := expand(path, vars)
		errs = errors.Join(errs, err)
		return expanded
	}

	if p.AssetBundleFilePath != nil {
		sources = append(sources, assetpack.AssetBundleFile(exp(*p.AssetBundleFilePath)))
	}
	if p.AssetPackDirectoryPath != nil {
		sources = append(sources, assetpack.AssetPackDirectory(exp(*p.AssetPackDirectoryPath)))
	}
	if p.CompressionFormatToAssetBundleFilePath != nil {
		m, err := byFormat(p.CompressionFormatToAssetBundleFilePath, exp)
		errs = errors.Join(errs, err)
		sources = append(sources, assetpack.CompressionFormatAssetBundles(m))
	}
	if p.CompressionFormatToAssetPackDirectoryPath != nil {
		m, err := byFormat(p.CompressionFormatToAssetPackDirectoryPath, exp)
		errs = errors.Join(errs, err)
		sources = append(sources, assetpack.CompressionFormatDirectories(m))
	}
	if p.DeviceTierToAssetBundleFilePath != nil {
		m, err := byTier(p.DeviceTierToAssetBundleFilePath, exp)
		errs = errors.Join(errs, err)
		sources = append(sources, assetpack.DeviceTierAssetBundles(m))
	}
	if p.DeviceTierToAssetPackDirectoryPath != nil {
		m, err := byTier(p.DeviceTierToAssetPackDirectoryPath, exp)
		errs = errors.Join(errs, err)
		sources = append(sources, assetpack.DeviceTierDirectories(m))
	}
	if p.DeviceGroupToAssetBundleFilePath != nil {
		sources = append(sources, assetpack.DeviceGroupAssetBundles(lo.MapValues(p.DeviceGroupToAssetBundleFilePath, expValue(exp))))
	}
	if p.DeviceGroupToAssetPackDirectoryPath != nil {
		sources = append(sources, assetpack.DeviceGroupDirectories(lo.MapValues(p.DeviceGroupToAssetPackDirectoryPath, expValue(exp))))
	}

	if errs != nil {
		return nil, errs
	}
	return sources, nil
}

func expValue(exp func(string) string) func(string, string) string {
	return func(path string, _ string) string {
		return exp(path)
	}
}

func byFormat(in map[string]string, exp func(string) string) (map[assetpack.TextureCompressionFormat]string, error) {
	out := make(map[assetpack.TextureCompressionFormat]string, len(in))
	for key, path := range in {
		format, err := assetpack.ParseTextureCompressionFormat(key)
		if err != nil {
			return nil, err
		}
		if _, dup := out[format]; dup {
			return nil, fmt.Errorf("duplicate texture compression format '%s'", key)
		}
		out[format] = exp(path)
	}
	return out, nil
}

func byTier(in map[string]string, exp func(string) string) (map[assetpack.DeviceTier]string, error) {
	out := make(map[assetpack.DeviceTier]string, len(in))
	for key, path := range in {
		tier, err := assetpack.ParseDeviceTier(key)
		if err != nil {
			return nil, err
		}
		if _, dup := out[tier]; dup {
			return nil, fmt.Errorf("duplicate device tier '%s'", key)
		}
		out[tier] = exp(path)
	}
	return out, nil
}

// expand replaces ${VAR} and $VAR references with the values in vars.
// Referencing an undefined variable is an error.
func expand(path string, vars map[string]string) (string, error) {
	var missing []string
	expanded := os.Expand(path, func(key string) string {
		value, ok := vars[key]
		if !ok {
			missing = append(missing, key)
		}
		return value
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("undefined variable(s) %s in path '%s'", strings.Join(missing, ", "), path)
	}
	return expanded, nil
}

// FromConfig returns the definition describing cfg.
func FromConfig(cfg *assetpack.Config) *File {
	file := &File{
		DefaultDeviceTier:     uint(cfg.DefaultDeviceTier),
		SplitBaseModuleAssets: cfg.SplitBaseModuleAssets,
		AssetPacks:            map[string]*Pack{},
	}
	if cfg.DefaultTextureCompressionFormat != assetpack.Default {
		file.DefaultTextureCompressionFormat = cfg.DefaultTextureCompressionFormat.String()
	}

	for name, pack := range cfg.AssetPacks {
		if pack == nil {
			continue
		}
		p := &Pack{DeliveryMode: pack.DeliveryMode.String()}
		switch src := pack.Source().(type) {
		case assetpack.AssetBundleFile:
			p.AssetBundleFilePath = lo.ToPtr(string(src))
		case assetpack.AssetPackDirectory:
			p.AssetPackDirectoryPath = lo.ToPtr(string(src))
		case assetpack.CompressionFormatAssetBundles:
			p.CompressionFormatToAssetBundleFilePath = lo.MapKeys(src, formatKey)
		case assetpack.CompressionFormatDirectories:
			p.CompressionFormatToAssetPackDirectoryPath = lo.MapKeys(src, formatKey)
		case assetpack.DeviceTierAssetBundles:
			p.DeviceTierToAssetBundleFilePath = lo.MapKeys(src, tierKey)
		case assetpack.DeviceTierDirectories:
			p.DeviceTierToAssetPackDirectoryPath = lo.MapKeys(src, tierKey)
		case assetpack.DeviceGroupAssetBundles:
			p.DeviceGroupToAssetBundleFilePath = src
		case assetpack.DeviceGroupDirectories:
			p.DeviceGroupToAssetPackDirectoryPath = src
		}
		file.AssetPacks[name] = p
	}
	return file
}

func formatKey(_ string, format assetpack.TextureCompressionFormat) string {
	return format.String()
}

func tierKey(_ string, tier assetpack.DeviceTier) string {
	return tier.String()
}
