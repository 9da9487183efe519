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

package visualization

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/zddlsm/rusage/pkg/benchmark"
	"github.com/zddlsm/rusage/pkg/results"
	"github.com/zddlsm/rusage/pkg/utils/fs"
)

// Formats returns chart formats every chart is saved in.
func Formats() []string {
	return []string{benchmark.PNG, benchmark.EPS}
}

// RenderCharts saves chart of every metric in every format under the results directory,
// overwriting previous charts of the same run. It returns paths of written files.
func RenderCharts(dataset *results.Dataset, config benchmark.Config) ([]string, error) {
	var dirs []string
	for _, format := range Formats() {
		dirs = append(dirs, config.FormatDir(format))
	}
	if err := fs.CreateDirs(dirs...); err != nil {
		return nil, errors.Wrap(err, "cannot create chart directories")
	}

	palette := DefaultPalette()
	var paths []string
	for _, metric := range results.Metrics() {
		chart, err := NewChart(dataset, metric, config.KeyByteLength, palette)
		if err != nil {
			return paths, err
		}

		for _, format := range Formats() {
			path := config.ChartPath(format, string(metric))
			if err := chart.Save(path); err != nil {
				return paths, err
			}
			logrus.Infof("Saved %s chart to %q", metric, path)
			paths = append(paths, path)
		}
	}

	return paths, nil
}
