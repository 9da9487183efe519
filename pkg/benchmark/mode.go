// Copyright (c) 2017 Intel Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package benchmark describes a single benchmark invocation and drives the
// external benchmark binary once per compression mode.
package benchmark

import (
	"github.com/pkg/errors"
)

// Mode is a compression mode understood by the benchmark binary.
type Mode string

const (
	// Uncompressed stores keys as they are.
	Uncompressed Mode = "uncompressed"
	// Zstd stores zstd compressed keys.
	Zstd Mode = "zstd"
	// MD5 stores md5 digests of keys.
	MD5 Mode = "md5"
	// SHA256 stores sha256 digests of keys.
	SHA256 Mode = "sha256"
)

// Modes returns all supported compression modes in the order they are benchmarked and plotted.
func Modes() []Mode {
	return []Mode{Uncompressed, Zstd, MD5, SHA256}
}

// ParseMode returns Mode for its name.
func ParseMode(name string) (Mode, error) {
	for _, mode := range Modes() {
		if string(mode) == name {
			return mode, nil
		}
	}
	return "", errors.Errorf("unknown compression mode %q", name)
}

func (m Mode) String() string {
	return string(m)
}
