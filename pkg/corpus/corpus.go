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

// Package corpus generates the input keys file read by the benchmark binary.
package corpus

import (
	"bufio"
	"crypto/rand"
	"io"
	"math/big"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	letters     = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits      = "0123456789"
	punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

	// Alphabet contains every character a generated key can be made of.
	Alphabet = letters + digits + punctuation
)

var alphabetSize = big.NewInt(int64(len(Alphabet)))

// GenerateKey returns key of given length with characters drawn uniformly from Alphabet.
// Random source should be cryptographically secure, e.g. crypto/rand.Reader.
func GenerateKey(random io.Reader, length int) (string, error) {
	if length <= 0 {
		return "", errors.Errorf("key length must be positive, got %d", length)
	}

	key := make([]byte, length)
	for i := range key {
		n, err := rand.Int(random, alphabetSize)
		if err != nil {
			return "", errors.Wrap(err, "cannot read random source")
		}
		key[i] = Alphabet[n.Int64()]
	}
	return string(key), nil
}

// Write writes count followed by count random keys of given length, one per line.
func Write(w io.Writer, random io.Reader, count, length int) error {
	if count <= 0 {
		return errors.Errorf("keys count must be positive, got %d", count)
	}

	buffered := bufio.NewWriter(w)
	if _, err := buffered.WriteString(strconv.Itoa(count) + "\n"); err != nil {
		return errors.Wrap(err, "cannot write keys count")
	}

	for i := 0; i < count; i++ {
		key, err := GenerateKey(random, length)
		if err != nil {
			return err
		}
		if _, err := buffered.WriteString(key + "\n"); err != nil {
			return errors.Wrapf(err, "cannot write key %d", i)
		}
	}

	return errors.Wrap(buffered.Flush(), "cannot flush keys")
}

// WriteFile generates the corpus file at path using crypto/rand, overwriting existing one.
func WriteFile(path string, count, length int) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "cannot create corpus file %q", path)
	}

	if err := Write(f, rand.Reader, count, length); err != nil {
		f.Close()
		return errors.Wrapf(err, "cannot generate corpus file %q", path)
	}

	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "cannot close corpus file %q", path)
	}

	logrus.Infof("Generated %d keys of %d bytes in %q", count, length, path)
	return nil
}
