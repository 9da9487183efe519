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
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/zddlsm/rusage/pkg/benchmark"
	"github.com/zddlsm/rusage/pkg/corpus"
	"github.com/zddlsm/rusage/pkg/executor"
	"github.com/zddlsm/rusage/pkg/results"
	"github.com/zddlsm/rusage/pkg/utils/errutil"
	"github.com/zddlsm/rusage/pkg/utils/fs"
	"github.com/zddlsm/rusage/pkg/visualization"
)

// Comparison benchmarks every compression mode and renders the results.
type Comparison struct {
	Config   benchmark.Config
	Modes    []benchmark.Mode
	Executor executor.Executor
	// GenerateCorpus prepares directories and writes random keys before benchmarking.
	GenerateCorpus bool
	ProgressBar    bool
	// Summary receives the results table, nil disables it.
	Summary io.Writer
}

// Report is the outcome of a Comparison.
type Report struct {
	Dataset *results.Dataset
	Charts  []string
}

// Run executes the driver phase to completion and only then reads result files and renders charts.
func (c Comparison) Run() (*Report, error) {
	if c.GenerateCorpus {
		if err := c.prepareCorpus(); err != nil {
			return nil, err
		}
	}

	driver := benchmark.NewDriver(c.Executor, c.Modes)
	if c.ProgressBar {
		driver.EnableProgressBar()
	}
	if err := driver.Run(c.Config); err != nil {
		return nil, err
	}

	dataset, err := results.LoadDataset(c.Config, c.Modes)
	if err != nil {
		return nil, errors.Wrap(err, "cannot load results")
	}

	charts, err := visualization.RenderCharts(dataset, c.Config)
	if err != nil {
		return nil, errors.Wrap(err, "cannot render charts")
	}

	if c.Summary != nil {
		if err := visualization.DrawSummary(c.Summary, dataset); err != nil {
			return nil, errors.Wrap(err, "cannot draw summary")
		}
	}

	return &Report{Dataset: dataset, Charts: charts}, nil
}

// prepareCorpus creates result directories and the input keys file.
// Failing to create directories is only reported.
func (c Comparison) prepareCorpus() error {
	err := fs.CreateDirs(
		c.Config.ResultDirectory,
		c.Config.FormatDir(benchmark.PNG),
		c.Config.FormatDir(benchmark.EPS),
	)
	errutil.Warn(err, "Cannot prepare results directory")

	logrus.Infof("Generating %d keys of %d bytes", c.Config.SampleCount, c.Config.KeyByteLength)
	return corpus.WriteFile(c.Config.CorpusPath(), c.Config.SampleCount, c.Config.KeyByteLength)
}
