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

package keystore

// Store keeps encoded keys with their values.
type Store struct {
	compressor Compressor
	entries    map[string]uint32
	bytes      int
}

// NewStore returns empty Store encoding keys with compressor.
func NewStore(compressor Compressor) *Store {
	return &Store{
		compressor: compressor,
		entries:    make(map[string]uint32),
	}
}

// Set stores value under encoded key, replacing previous one.
func (s *Store) Set(key string, value uint32) {
	encoded := string(s.compressor.Compress([]byte(key)))
	if _, ok := s.entries[encoded]; !ok {
		s.bytes += len(encoded)
	}
	s.entries[encoded] = value
}

// Get returns value stored under key.
func (s *Store) Get(key string) (uint32, bool) {
	value, ok := s.entries[string(s.compressor.Compress([]byte(key)))]
	return value, ok
}

// Len returns number of distinct encoded keys.
func (s *Store) Len() int {
	return len(s.entries)
}

// KeyBytes returns total length of distinct encoded keys.
func (s *Store) KeyBytes() int {
	return s.bytes
}
