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

// Package keystore is an in-memory key store benchmarked with differently encoded keys.
// It backs the rusage-keystore binary, which produces result files for every compression mode.
package keystore

import (
	"crypto/md5"
	"crypto/sha256"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
	"github.com/zddlsm/rusage/pkg/benchmark"
)

// Compressor encodes a key before it is stored.
type Compressor interface {
	Compress(key []byte) []byte
	Close() error
}

// NewCompressor returns Compressor of given mode.
func NewCompressor(mode benchmark.Mode) (Compressor, error) {
	switch mode {
	case benchmark.Uncompressed:
		return identity{}, nil
	case benchmark.Zstd:
		encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression), zstd.WithEncoderConcurrency(1))
		if err != nil {
			return nil, errors.Wrap(err, "cannot create zstd encoder")
		}
		return zstdCompressor{encoder: encoder}, nil
	case benchmark.MD5:
		return md5Digest{}, nil
	case benchmark.SHA256:
		return sha256Digest{}, nil
	}
	return nil, errors.Errorf("no compressor for mode %q", mode)
}

type identity struct{}

func (identity) Compress(key []byte) []byte {
	return append([]byte(nil), key...)
}

func (identity) Close() error { return nil }

type zstdCompressor struct {
	encoder *zstd.Encoder
}

func (z zstdCompressor) Compress(key []byte) []byte {
	return z.encoder.EncodeAll(key, nil)
}

func (z zstdCompressor) Close() error {
	return z.encoder.Close()
}

type md5Digest struct{}

func (md5Digest) Compress(key []byte) []byte {
	sum := md5.Sum(key)
	return sum[:]
}

func (md5Digest) Close() error { return nil }

type sha256Digest struct{}

func (sha256Digest) Compress(key []byte) []byte {
	sum := sha256.Sum256(key)
	return sum[:]
}

func (sha256Digest) Close() error { return nil }
