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
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/zddlsm/rusage/pkg/benchmark"
	"github.com/zddlsm/rusage/pkg/conf"
	"github.com/zddlsm/rusage/pkg/executor"
	"github.com/zddlsm/rusage/pkg/results"
)

// fakeBenchmark mimics the benchmark binary: it writes a result file with one sample per 1000 keys.
const fakeBenchmark = `#!/bin/sh
case "$3" in
%s) exit 2 ;;
%s) exit 0 ;;
esac
if [ "%t" = "true" ] && [ ! -f "$4$5" ]; then
	exit 3
fi
samples=$(($2 / 1000))
{
printf '%%d\n' "$samples"
i=1; while [ $i -le $samples ]; do printf '%%d ' $((i * 1000)); i=$((i + 1)); done; printf '\n'
i=1; while [ $i -le $samples ]; do printf '0.0%%d ' $i; i=$((i + 1)); done; printf '\n'
i=1; while [ $i -le $samples ]; do printf '%%d ' $((i + 1)); i=$((i + 1)); done
} > "$4$5_$3.out"
`

type fakeBehaviour struct {
	failMode    string
	silentMode  string
	needsCorpus bool
}

func writeFakeBenchmark(dir string, b fakeBehaviour) string {
	if b.failMode == "" {
		b.failMode = "none"
	}
	if b.silentMode == "" {
		b.silentMode = "none"
	}
	path := filepath.Join(dir, "rusage_test")
	script := fmt.Sprintf(fakeBenchmark, b.failMode, b.silentMode, b.needsCorpus)
	So(ioutil.WriteFile(path, []byte(script), 0755), ShouldBeNil)
	return path
}

func TestComparison(t *testing.T) {
	Convey("While running comparison with fake benchmark", t, func() {
		tmp, err := ioutil.TempDir("", "comparison")
		So(err, ShouldBeNil)
		defer os.RemoveAll(tmp)

		resultsDir := filepath.Join(tmp, "results")
		outputDir := filepath.Join(tmp, "output")
		So(os.MkdirAll(resultsDir, 0755), ShouldBeNil)
		So(os.MkdirAll(outputDir, 0755), ShouldBeNil)

		newComparison := func(b fakeBehaviour) Comparison {
			config, err := benchmark.NewConfig(16, 3000, resultsDir, writeFakeBenchmark(tmp, b))
			So(err, ShouldBeNil)
			return Comparison{
				Config:   config,
				Modes:    benchmark.Modes(),
				Executor: executor.NewLocal(outputDir),
			}
		}

		Convey("All modes are benchmarked and both charts are saved in both formats", func() {
			summary := &bytes.Buffer{}
			comparison := newComparison(fakeBehaviour{})
			comparison.Summary = summary

			report, err := comparison.Run()
			So(err, ShouldBeNil)

			So(report.Dataset.X, ShouldResemble, []float64{1000, 2000, 3000})
			So(report.Dataset.Modes, ShouldResemble, benchmark.Modes())
			So(report.Dataset.Values(results.MetricMemory, benchmark.SHA256), ShouldResemble, []float64{2, 3, 4})

			So(report.Charts, ShouldHaveLength, 4)
			for _, chart := range report.Charts {
				info, err := os.Stat(chart)
				So(err, ShouldBeNil)
				So(info.Size(), ShouldBeGreaterThan, 0)
			}
			So(report.Charts[0], ShouldEqual, filepath.Join(resultsDir, "png", "test_16_3000_time.png"))
			So(report.Charts[3], ShouldEqual, filepath.Join(resultsDir, "eps", "test_16_3000_memory.eps"))

			So(summary.String(), ShouldContainSubstring, "sha256")
		})

		Convey("Failing mode stops the run before any chart is rendered", func() {
			_, err := newComparison(fakeBehaviour{failMode: "zstd"}).Run()
			So(err, ShouldNotBeNil)
			So(benchmark.IsInvocationError(err), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "zstd")

			_, err = os.Stat(filepath.Join(resultsDir, "png"))
			So(os.IsNotExist(err), ShouldBeTrue)
			_, err = os.Stat(filepath.Join(resultsDir, "test_16_3000_md5.out"))
			So(os.IsNotExist(err), ShouldBeTrue)
		})

		Convey("Missing result file is reported", func() {
			_, err := newComparison(fakeBehaviour{silentMode: "md5"}).Run()
			So(err, ShouldNotBeNil)
			So(os.IsNotExist(errors.Cause(err)), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "test_16_3000_md5.out")
		})

		Convey("Benchmark which needs keys fails without generated corpus", func() {
			_, err := newComparison(fakeBehaviour{needsCorpus: true}).Run()
			So(benchmark.IsInvocationError(err), ShouldBeTrue)
		})

		Convey("Generated corpus is read by benchmark", func() {
			comparison := newComparison(fakeBehaviour{needsCorpus: true})
			comparison.Config.ResultDirectory = filepath.Join(tmp, "fresh", "results")
			comparison.GenerateCorpus = true

			report, err := comparison.Run()
			So(err, ShouldBeNil)
			So(report.Charts, ShouldHaveLength, 4)

			corpus, err := ioutil.ReadFile(comparison.Config.CorpusPath())
			So(err, ShouldBeNil)
			So(bytes.Count(corpus, []byte("\n")), ShouldEqual, 3001)
		})
	})
}

var (
	keyLen = conf.NewIntArg("cmd_key_len", "key byte length", true, 0)
	size   = conf.NewIntArg("cmd_size", "test size", true, 0)
	dir    = conf.NewStringArg("cmd_dir", "results directory", false, "results/")
)

func TestParseCommandLine(t *testing.T) {
	Convey("With positional arguments defined", t, func() {
		output := &bytes.Buffer{}

		Convey("Valid arguments are parsed", func() {
			So(ParseCommandLine([]string{"8", "1000"}, output), ShouldBeNil)
			So(keyLen.Value(), ShouldEqual, 8)
			So(size.Value(), ShouldEqual, 1000)
			So(dir.Value(), ShouldEqual, "results/")
			So(output.Len(), ShouldEqual, 0)
		})

		Convey("Missing arguments print usage", func() {
			So(ParseCommandLine([]string{}, output), ShouldNotBeNil)
			So(output.String(), ShouldContainSubstring, "cmd_key_len")
		})

		Convey("Too many arguments print usage", func() {
			So(ParseCommandLine([]string{"8", "1000", "dir", "extra", "more"}, output), ShouldNotBeNil)
			So(output.String(), ShouldContainSubstring, "usage")
		})
	})
}
