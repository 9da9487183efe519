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

package main

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/zddlsm/rusage/pkg/benchmark"
	"github.com/zddlsm/rusage/pkg/conf"
	"github.com/zddlsm/rusage/pkg/executor"
	"github.com/zddlsm/rusage/pkg/experiment"
	"github.com/zddlsm/rusage/pkg/experiment/logger"
	"github.com/zddlsm/rusage/pkg/utils/errutil"
)

var (
	appName          = os.Args[0]
	keyByteLengthArg = conf.NewIntArg("key_byte_length", "Length of every key in bytes.", true, 0)
	testSizeArg      = conf.NewIntArg("test_size", "Number of keys inserted by the benchmark.", true, 0)
	resultsDirArg    = conf.NewStringArg("results_directory", "Existing directory the benchmark writes result files to.", true, "")
)

func main() {
	conf.SetAppName(filepath.Base(appName))
	conf.SetHelp("Benchmarks memory usage and insertion time of a key store for every key compression mode and plots the results.")
	progress := experiment.Configure()

	config, err := benchmark.NewConfig(keyByteLengthArg.Value(), testSizeArg.Value(), resultsDirArg.Value(), benchmark.BinaryFlag.Value())
	errutil.CheckWithContext(err, "Invalid benchmark configuration")

	runDir, err := logger.Initialize(appName, config.ResultDirectory)
	errutil.CheckWithContext(err, "Cannot initialize logger")

	// Benchmark binary is stopped when the harness is interrupted.
	stopAll := executor.RegisterInterruptHandle()
	defer stopAll()

	comparison := experiment.Comparison{
		Config:      config,
		Modes:       benchmark.Modes(),
		Executor:    executor.NewLocal(runDir),
		ProgressBar: progress,
	}
	if benchmark.SummaryFlag.Value() {
		comparison.Summary = os.Stdout
	}

	report, err := comparison.Run()
	errutil.CheckWithContext(err, "Comparison failed")

	logrus.Infof("Charts saved: %v", report.Charts)
}
