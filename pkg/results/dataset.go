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

package results

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/zddlsm/rusage/pkg/benchmark"
	"gonum.org/v1/gonum/floats"
)

// Metric is a measured quantity plotted against the x-axis.
type Metric string

const (
	// MetricTime is elapsed time in seconds per batch.
	MetricTime Metric = "time"
	// MetricMemory is memory usage in megabytes.
	MetricMemory Metric = "memory"
)

// Metrics returns all metrics in the order they are rendered.
func Metrics() []Metric {
	return []Metric{MetricTime, MetricMemory}
}

// AxisMismatchError is returned when result files of two modes do not share the x-axis.
type AxisMismatchError struct {
	Reference benchmark.Mode
	Mode      benchmark.Mode
	Expected  []float64
	Got       []float64
}

func (e *AxisMismatchError) Error() string {
	if len(e.Expected) != len(e.Got) {
		return fmt.Sprintf("x-axis of %s mode has %d values, %s mode has %d",
			e.Mode, len(e.Got), e.Reference, len(e.Expected))
	}
	for i := range e.Expected {
		if e.Expected[i] != e.Got[i] {
			return fmt.Sprintf("x-axis of %s mode differs from %s mode at index %d: %v != %v",
				e.Mode, e.Reference, i, e.Got[i], e.Expected[i])
		}
	}
	return fmt.Sprintf("x-axis of %s mode differs from %s mode", e.Mode, e.Reference)
}

// Dataset combines result files of all modes over the shared x-axis.
type Dataset struct {
	X      []float64
	Modes  []benchmark.Mode
	values map[Metric]map[benchmark.Mode][]float64
}

// LoadDataset reads result files of given modes. First mode establishes the x-axis
// and every other mode has to match it.
func LoadDataset(config benchmark.Config, modes []benchmark.Mode) (*Dataset, error) {
	if len(modes) == 0 {
		return nil, errors.New("no compression modes to load")
	}

	dataset := NewDataset(nil)
	axes := map[benchmark.Mode][]float64{}

	for _, mode := range modes {
		path := config.ResultPath(mode)
		rf, err := Load(path)
		if err != nil {
			return nil, err
		}
		logrus.Debugf("Loaded %d samples of %q mode from %q", rf.Count, mode, path)

		if len(dataset.Modes) == 0 {
			dataset.X = rf.X
		}
		axes[mode] = rf.X
		dataset.Modes = append(dataset.Modes, mode)
		dataset.values[MetricTime][mode] = rf.Time
		dataset.values[MetricMemory][mode] = rf.Memory
	}

	if err := dataset.checkAxes(axes); err != nil {
		return nil, err
	}
	return dataset, nil
}

// NewDataset returns dataset without any series over given x-axis.
func NewDataset(x []float64) *Dataset {
	return &Dataset{
		X: x,
		values: map[Metric]map[benchmark.Mode][]float64{
			MetricTime:   {},
			MetricMemory: {},
		},
	}
}

// Add appends series of a mode. Series have to be aligned with the x-axis.
func (d *Dataset) Add(mode benchmark.Mode, time, memory []float64) error {
	if len(time) != len(d.X) || len(memory) != len(d.X) {
		return errors.Wrapf(ErrMisaligned, "%s mode has %d time and %d memory values for %d x-axis values",
			mode, len(time), len(memory), len(d.X))
	}
	d.Modes = append(d.Modes, mode)
	d.values[MetricTime][mode] = time
	d.values[MetricMemory][mode] = memory
	return nil
}

func (d *Dataset) checkAxes(axes map[benchmark.Mode][]float64) error {
	reference := d.Modes[0]
	for _, mode := range d.Modes[1:] {
		if !floats.Equal(d.X, axes[mode]) {
			return &AxisMismatchError{Reference: reference, Mode: mode, Expected: d.X, Got: axes[mode]}
		}
	}
	return nil
}

// Values returns series of metric for mode aligned with X.
func (d *Dataset) Values(metric Metric, mode benchmark.Mode) []float64 {
	return d.values[metric][mode]
}

// BatchSize returns number of keys inserted between consecutive samples.
func (d *Dataset) BatchSize() (float64, error) {
	return BatchSize(d.X)
}
