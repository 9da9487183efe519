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
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/zddlsm/rusage/pkg/benchmark"
)

func TestCompressors(t *testing.T) {
	Convey("For every mode compressor is available", t, func() {
		key := []byte(strings.Repeat("abcd", 16))

		for _, mode := range benchmark.Modes() {
			compressor, err := NewCompressor(mode)
			So(err, ShouldBeNil)
			So(compressor.Compress(key), ShouldResemble, compressor.Compress(key))
			So(compressor.Close(), ShouldBeNil)
		}

		Convey("Uncompressed keeps the key", func() {
			compressor, _ := NewCompressor(benchmark.Uncompressed)
			So(compressor.Compress(key), ShouldResemble, key)
		})

		Convey("Digests have fixed length", func() {
			md5, _ := NewCompressor(benchmark.MD5)
			So(md5.Compress(key), ShouldHaveLength, 16)
			sha, _ := NewCompressor(benchmark.SHA256)
			So(sha.Compress(key), ShouldHaveLength, 32)
		})

		Convey("Zstd output decodes to the key", func() {
			compressor, _ := NewCompressor(benchmark.Zstd)
			defer compressor.Close()

			decoder, err := zstd.NewReader(nil)
			So(err, ShouldBeNil)
			defer decoder.Close()

			decoded, err := decoder.DecodeAll(compressor.Compress(key), nil)
			So(err, ShouldBeNil)
			So(decoded, ShouldResemble, key)
		})

		Convey("Unknown mode is rejected", func() {
			_, err := NewCompressor(benchmark.Mode("lz4"))
			So(err, ShouldNotBeNil)
		})
	})
}

func TestStore(t *testing.T) {
	Convey("While storing digested keys", t, func() {
		compressor, _ := NewCompressor(benchmark.SHA256)
		store := NewStore(compressor)

		store.Set("first", 1)
		store.Set("second", 2)
		store.Set("first", 3)

		So(store.Len(), ShouldEqual, 2)
		So(store.KeyBytes(), ShouldEqual, 64)

		value, ok := store.Get("first")
		So(ok, ShouldBeTrue)
		So(value, ShouldEqual, 3)

		_, ok = store.Get("third")
		So(ok, ShouldBeFalse)
	})
}

func keysCorpus(count int) string {
	lines := []string{fmt.Sprint(count)}
	for i := 0; i < count; i++ {
		lines = append(lines, fmt.Sprintf("key%06d", i))
	}
	return strings.Join(lines, "\n") + "\n"
}

func TestBenchmark(t *testing.T) {
	Convey("While benchmarking with fake clock and memory", t, func() {
		compressor, _ := NewCompressor(benchmark.Uncompressed)
		store := NewStore(compressor)

		clock := time.Unix(0, 0)
		memory := 0.0
		b := Benchmark{
			Store: store,
			Step:  DefaultStep,
			Memory: func() (float64, error) {
				memory += 1.5
				return memory, nil
			},
			Now: func() time.Time {
				clock = clock.Add(250 * time.Millisecond)
				return clock
			},
		}

		Convey("Sample is taken before first key and after every batch", func() {
			rf, err := b.Run(strings.NewReader(keysCorpus(2500)), 2500)
			So(err, ShouldBeNil)
			So(rf.Count, ShouldEqual, 3)
			So(rf.X, ShouldResemble, []float64{0, 1000, 2000})
			So(rf.Time, ShouldResemble, []float64{0.25, 0.25, 0.25})
			So(rf.Memory, ShouldResemble, []float64{1.5, 3, 4.5})
			So(store.Len(), ShouldEqual, 2500)
		})

		Convey("Test size multiple of step is sampled at the end", func() {
			rf, err := b.Run(strings.NewReader(keysCorpus(2000)), 2000)
			So(err, ShouldBeNil)
			So(rf.X, ShouldResemble, []float64{0, 1000, 2000})
		})

		Convey("Short corpus is reported", func() {
			_, err := b.Run(strings.NewReader(keysCorpus(10)), 2000)
			So(err, ShouldNotBeNil)
			So(errors.Cause(err), ShouldEqual, io.ErrUnexpectedEOF)
		})

		Convey("Memory sampling failure stops the benchmark", func() {
			b.Memory = func() (float64, error) { return 0, errors.New("getrusage failed") }
			_, err := b.Run(strings.NewReader(keysCorpus(10)), 10)
			So(err, ShouldNotBeNil)
		})
	})

	Convey("Peak memory of the process is positive", t, func() {
		memory, err := PeakMemory()
		So(err, ShouldBeNil)
		So(memory, ShouldBeGreaterThan, 0)
	})
}
