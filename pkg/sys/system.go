/*
Copyright © 2022-2025 SUSE LLC
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

package sys

import (
	"fmt"
	"io"
	"os"

	"github.com/suse/assetpack/pkg/log"
	"github.com/suse/assetpack/pkg/sys/vfs"
)

type FS = vfs.FS

// System bundles the collaborators every action needs: a logger, the
// filesystem asset pack definitions and content are read from, and the
// writer results are printed to.
type System struct {
	logger log.Logger
	fs     FS
	stdout io.Writer
}

type SystemOpts func(a *System) error

func WithFS(fs FS) SystemOpts {
	return func(s *System) error {
		if fs == nil {
			return fmt.Errorf("nil filesystem")
		}
		s.fs = fs
		return nil
	}
}

func WithLogger(logger log.Logger) SystemOpts {
	return func(s *System) error {
		if logger == nil {
			return fmt.Errorf("nil logger")
		}
		s.logger = logger
		return nil
	}
}

func WithStdout(w io.Writer) SystemOpts {
	return func(s *System) error {
		s.stdout = w
		return nil
	}
}

func NewSystem(opts ...SystemOpts) (*System, error) {
	sysObj := &System{
		fs:     vfs.New(),
		logger: log.New(),
		stdout: os.Stdout,
	}

	for _, o := range opts {
		err := o(sysObj)
		if err != nil {
			return nil, err
		}
	}
	return sysObj, nil
}

func (s System) FS() FS {
	return s.fs
}

func (s System) Logger() log.Logger {
	return s.logger
}

func (s System) Stdout() io.Writer {
	return s.stdout
}
