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

import (
	"bufio"
	"io"
	"strings"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/zddlsm/rusage/pkg/results"
)

// DefaultStep is number of keys inserted between samples.
const DefaultStep = 1000

// PeakMemory returns maximum resident set size of the process in megabytes.
// Linux reports it in kilobytes.
func PeakMemory() (float64, error) {
	var usage syscall.Rusage
	if err := syscall.Getrusage(syscall.RUSAGE_SELF, &usage); err != nil {
		return 0, errors.Wrap(err, "getrusage failed")
	}
	return float64(usage.Maxrss) / 1000, nil
}

// Benchmark inserts keys into Store sampling time and memory every Step keys.
type Benchmark struct {
	Store  *Store
	Step   int
	Memory func() (float64, error)
	Now    func() time.Time
}

// NewBenchmark returns Benchmark sampling peak memory of the process.
func NewBenchmark(store *Store) Benchmark {
	return Benchmark{
		Store:  store,
		Step:   DefaultStep,
		Memory: PeakMemory,
		Now:    time.Now,
	}
}

// Run inserts testSize keys read from corpus, one per line after the count line.
// Samples are taken before the first key and after every Step keys, time is
// measured per batch with millisecond resolution.
func (b Benchmark) Run(corpus io.Reader, testSize int) (*results.ResultFile, error) {
	if b.Step <= 0 {
		return nil, errors.Errorf("sampling step must be positive, got %d", b.Step)
	}

	scanner := bufio.NewScanner(corpus)
	if !scanner.Scan() {
		return nil, errors.Wrap(scannerErr(scanner), "missing keys count")
	}

	rf := &results.ResultFile{}
	start := b.Now()
	for i := 0; i <= testSize; i++ {
		if i%b.Step == 0 {
			memory, err := b.Memory()
			if err != nil {
				return nil, err
			}
			now := b.Now()
			elapsed := float64(now.Sub(start).Milliseconds()) / 1000
			logrus.Debugf("Inserted %d keys: %vs, %vMB", i, elapsed, memory)

			rf.X = append(rf.X, float64(i))
			rf.Time = append(rf.Time, elapsed)
			rf.Memory = append(rf.Memory, memory)
			start = now
		}
		if i == testSize {
			break
		}

		if !scanner.Scan() {
			return nil, errors.Wrapf(scannerErr(scanner), "corpus ends after %d keys", i)
		}
		b.Store.Set(strings.TrimSuffix(scanner.Text(), "\r"), 1)
	}
	rf.Count = len(rf.X)

	return rf, nil
}

func scannerErr(scanner *bufio.Scanner) error {
	if err := scanner.Err(); err != nil {
		return err
	}
	return io.ErrUnexpectedEOF
}
