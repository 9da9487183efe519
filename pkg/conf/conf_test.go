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

package conf

import (
	"bytes"
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/sirupsen/logrus"
)

const testAppName = "testAppName"

var (
	customFlag = NewStringFlag("custom_arg", "help", "default")

	keyLenArg = NewIntArg("test_key_len", "key length", true, 0)
	sizeArg   = NewIntArg("test_size", "test size", true, 0)
	dirArg    = NewStringArg("test_dir", "results directory", false, "results/")
)

func clearEnv() {
	// Clear all environment variables in context of that test.
	logLevelFlag.clear()
	customFlag.clear()
}

func TestConf(t *testing.T) {
	Convey("While using Conf pkg", t, func() {
		clearEnv()
		defer clearEnv()

		SetAppName(testAppName)

		Convey("Name should match to specified one", func() {
			So(AppName(), ShouldEqual, testAppName)
		})

		Convey("Log level can be fetched from env", func() {
			err := ParseEnv()
			So(err, ShouldBeNil)
			So(LogLevel(), ShouldEqual, logrus.ErrorLevel)

			os.Setenv(logLevelFlag.envName(), "debug")

			err = ParseEnv()
			So(err, ShouldBeNil)
			So(LogLevel(), ShouldEqual, logrus.DebugLevel)
		})

		Convey("When custom environment variable is defined it is returned after parse", func() {
			os.Setenv(customFlag.envName(), "customContent")

			err := ParseEnv()
			So(err, ShouldBeNil)
			So(customFlag.Value(), ShouldEqual, "customContent")
			So(GetFlags()["custom_arg"], ShouldEqual, "customContent")
		})
	})
}

func TestPositionalArgs(t *testing.T) {
	Convey("While parsing positional arguments", t, func() {
		clearEnv()
		defer clearEnv()

		Convey("Required arguments are parsed as integers and optional one falls back to default", func() {
			err := ParseArgs([]string{"16", "1000"})
			So(err, ShouldBeNil)
			So(keyLenArg.Value(), ShouldEqual, 16)
			So(sizeArg.Value(), ShouldEqual, 1000)
			So(dirArg.IsSet(), ShouldBeFalse)
			So(dirArg.Value(), ShouldEqual, "results/")
		})

		Convey("Optional argument overrides the default when given", func() {
			err := ParseArgs([]string{"16", "1000", "out/"})
			So(err, ShouldBeNil)
			So(dirArg.Value(), ShouldEqual, "out/")
		})

		Convey("Flags can be mixed with arguments", func() {
			err := ParseArgs([]string{"--log", "info", "32", "2000"})
			So(err, ShouldBeNil)
			So(LogLevel(), ShouldEqual, logrus.InfoLevel)
			So(keyLenArg.Value(), ShouldEqual, 32)
		})

		Convey("Missing arguments fail the parse", func() {
			So(ParseArgs([]string{}), ShouldNotBeNil)
			So(ParseArgs([]string{"16"}), ShouldNotBeNil)
		})

		Convey("Too many arguments fail the parse", func() {
			So(ParseArgs([]string{"16", "1000", "out/", "extra", "more"}), ShouldNotBeNil)
		})

		Convey("Non-integer value fails the parse", func() {
			So(ParseArgs([]string{"sixteen", "1000"}), ShouldNotBeNil)
		})

		Convey("Values from a previous parse do not leak into the next one", func() {
			So(ParseArgs([]string{"16", "1000", "out/"}), ShouldBeNil)
			So(ParseArgs([]string{"16", "1000"}), ShouldBeNil)
			So(dirArg.Value(), ShouldEqual, "results/")
		})

		Convey("Usage names every argument", func() {
			buf := &bytes.Buffer{}
			Usage(buf)
			So(buf.String(), ShouldContainSubstring, "test_key_len")
			So(buf.String(), ShouldContainSubstring, "test_dir")
		})

		Convey("Usage brackets only optional arguments", func() {
			buf := &bytes.Buffer{}
			Usage(buf)
			So(buf.String(), ShouldContainSubstring, " <test_key_len> <test_size> [<test_dir>]")
			So(buf.String(), ShouldNotContainSubstring, "[<test_key_len>]")
		})
	})
}
