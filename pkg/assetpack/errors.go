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
)

var ErrInvalidConfiguration = errors.New("invalid asset pack configuration")

// InvalidConfigurationError is returned when a content source is set while a
// different one is already set. Slot is the slot the caller tried to set and
// Conflict the slot holding a value.
type InvalidConfigurationError struct {
	Slot     Slot
	Conflict Slot
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("%s is already set", e.Conflict)
}

func (e *InvalidConfigurationError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}
