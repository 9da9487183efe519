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

package experiment

import (
	"bytes"
	"io/ioutil"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/zddlsm/rusage/pkg/conf"
)

const (
	configureChildEnv  = "CONFIGURE_EXIT_CHILD"
	configureArgsEnv   = "CONFIGURE_EXIT_ARGS"
	configureMarkerEnv = "CONFIGURE_EXIT_MARKER"
)

// runConfigureChild plays the role of an experiment main in a separate process:
// anything after Configure must not happen when the command line is malformed.
func runConfigureChild() {
	os.Args = append([]string{"rusage-comparison"}, strings.Fields(os.Getenv(configureArgsEnv))...)
	conf.SetAppName("rusage-comparison")
	Configure()
	ioutil.WriteFile(os.Getenv(configureMarkerEnv), []byte("configured"), 0644)
	os.Exit(0)
}

func TestConfigureExitCode(t *testing.T) {
	if os.Getenv(configureChildEnv) == "1" {
		runConfigureChild()
		return
	}

	Convey("While configuring experiment in a separate process", t, func() {
		dir, err := ioutil.TempDir("", "configure")
		So(err, ShouldBeNil)
		defer os.RemoveAll(dir)
		marker := filepath.Join(dir, "marker")

		run := func(args string) (int, string) {
			cmd := exec.Command(os.Args[0], "-test.run=^TestConfigureExitCode$")
			cmd.Env = append(os.Environ(),
				configureChildEnv+"=1",
				configureArgsEnv+"="+args,
				configureMarkerEnv+"="+marker,
			)
			stderr := &bytes.Buffer{}
			cmd.Stderr = stderr
			err := cmd.Run()
			if exitErr, ok := err.(*exec.ExitError); ok {
				return exitErr.ExitCode(), stderr.String()
			}
			So(err, ShouldBeNil)
			return 0, stderr.String()
		}

		Convey("Missing arguments exit with usage code and stop the experiment", func() {
			code, stderr := run("")
			So(code, ShouldEqual, ExUsage)
			So(stderr, ShouldContainSubstring, "usage: rusage-comparison")
			_, err := os.Stat(marker)
			So(os.IsNotExist(err), ShouldBeTrue)
		})

		Convey("Too many arguments exit with usage code and stop the experiment", func() {
			code, _ := run("16 1000 results extra more")
			So(code, ShouldEqual, ExUsage)
			_, err := os.Stat(marker)
			So(os.IsNotExist(err), ShouldBeTrue)
		})

		Convey("Valid arguments let the experiment carry on", func() {
			code, _ := run("16 1000")
			So(code, ShouldEqual, 0)
			_, err := os.Stat(marker)
			So(err, ShouldBeNil)
		})
	})
}
