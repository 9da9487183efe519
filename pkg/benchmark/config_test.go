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

package benchmark

import (
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestModes(t *testing.T) {
	Convey("Compression modes", t, func() {
		Convey("Should be listed in the fixed order", func() {
			So(Modes(), ShouldResemble, []Mode{Uncompressed, Zstd, MD5, SHA256})
		})

		Convey("Should not be shared between callers", func() {
			modes := Modes()
			modes[0] = SHA256
			So(Modes()[0], ShouldEqual, Uncompressed)
		})

		Convey("Should be parsed by name", func() {
			mode, err := ParseMode("zstd")
			So(err, ShouldBeNil)
			So(mode, ShouldEqual, Zstd)

			_, err = ParseMode("lz4")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestConfig(t *testing.T) {
	Convey("When creating config", t, func() {
		Convey("Invalid input should be rejected", func() {
			_, err := NewConfig(0, 1000, "results", "bin")
			So(err, ShouldNotBeNil)
			_, err = NewConfig(16, -1, "results", "bin")
			So(err, ShouldNotBeNil)
			_, err = NewConfig(16, 1000, "", "bin")
			So(err, ShouldNotBeNil)
			_, err = NewConfig(16, 1000, "results", "")
			So(err, ShouldNotBeNil)
		})

		Convey("Valid config should derive all paths from directory and test name", func() {
			config, err := NewConfig(16, 1000, "results/", "./build/rusage_test")
			So(err, ShouldBeNil)
			So(config.TestName, ShouldEqual, "test_16_1000")
			So(config.ResultDirectory, ShouldEqual, "results")
			So(config.ResultPath(Zstd), ShouldEqual, filepath.Join("results", "test_16_1000_zstd.out"))
			So(config.CorpusPath(), ShouldEqual, filepath.Join("results", "test_16_1000"))
			So(config.ChartPath(PNG, "time"), ShouldEqual, filepath.Join("results", "png", "test_16_1000_time.png"))
			So(config.ChartPath(EPS, "memory"), ShouldEqual, filepath.Join("results", "eps", "test_16_1000_memory.eps"))
			So(config.DirArgument(), ShouldEqual, "results/")

			Convey("And the command should pass positional arguments in order", func() {
				So(config.Command(MD5), ShouldEqual, "./build/rusage_test 16 1000 md5 results/ test_16_1000")
			})
		})

		Convey("Paths with spaces should be quoted in the command", func() {
			config, err := NewConfig(8, 10, "my results", "/opt/bench tool")
			So(err, ShouldBeNil)
			So(config.Command(SHA256), ShouldEqual, "'/opt/bench tool' 8 10 sha256 'my results/' test_8_10")
		})
	})
}
