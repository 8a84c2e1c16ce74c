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
	"bytes"
	"errors"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"
)

// File is the on disk representation of an asset pack configuration.
type File struct {
	DefaultTextureCompressionFormat string           `yaml:"defaultTextureCompressionFormat,omitempty"`
	DefaultDeviceTier               uint             `yaml:"defaultDeviceTier,omitempty"`
	SplitBaseModuleAssets           bool             `yaml:"splitBaseModuleAssets,omitempty"`
	AssetPacks                      map[string]*Pack `yaml:"assetPacks"`
}

// Pack describes a single asset pack. Only one of the location fields is
// expected to be set.
type Pack struct {
	DeliveryMode string `yaml:"deliveryMode,omitempty"`

	AssetBundleFilePath                       *string           `yaml:"assetBundleFilePath,omitempty"`
	AssetPackDirectoryPath                    *string           `yaml:"assetPackDirectoryPath,omitempty"`
	CompressionFormatToAssetBundleFilePath    map[string]string `yaml:"compressionFormatToAssetBundleFilePath,omitempty"`
	CompressionFormatToAssetPackDirectoryPath map[string]string `yaml:"compressionFormatToAssetPackDirectoryPath,omitempty"`
	DeviceTierToAssetBundleFilePath           map[string]string `yaml:"deviceTierToAssetBundleFilePath,omitempty"`
	DeviceTierToAssetPackDirectoryPath        map[string]string `yaml:"deviceTierToAssetPackDirectoryPath,omitempty"`
	DeviceGroupToAssetBundleFilePath          map[string]string `yaml:"deviceGroupToAssetBundleFilePath,omitempty"`
	DeviceGroupToAssetPackDirectoryPath       map[string]string `yaml:"deviceGroupToAssetPackDirectoryPath,omitempty"`
}

// Parse decodes a definition file. Unknown fields are rejected.
func Parse(data []byte) (*File, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	file := &File{}
	if err := decoder.Decode(file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unmarshaling asset pack definition: %w", err)
	}
	return file, nil
}

func Marshal(file *File) ([]byte, error) {
	buf := &bytes.Buffer{}
	encoder := yaml.NewEncoder(buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(file); err != nil {
		return nil, fmt.Errorf("marshaling asset pack definition: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("marshaling asset pack definition: %w", err)
	}
	return buf.Bytes(), nil
}
