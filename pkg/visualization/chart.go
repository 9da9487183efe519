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

// Package visualization renders benchmark results as line charts and tables.
package visualization

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/pkg/errors"
	"github.com/zddlsm/rusage/pkg/benchmark"
	"github.com/zddlsm/rusage/pkg/results"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const (
	// MaxTicks is the maximum number of tick marks on each axis.
	MaxTicks = 20

	chartWidth  = 6.4 * vg.Inch
	chartHeight = 4.8 * vg.Inch
)

// Palette maps compression modes to line colors.
type Palette map[benchmark.Mode]color.RGBA

// DefaultPalette returns a new palette: uncompressed red, zstd green, md5 yellow, sha256 orange.
func DefaultPalette() Palette {
	return Palette{
		benchmark.Uncompressed: {R: 255, A: 255},
		benchmark.Zstd:         {G: 128, A: 255},
		benchmark.MD5:          {R: 255, G: 255, A: 255},
		benchmark.SHA256:       {R: 255, G: 165, A: 255},
	}
}

// Color returns line color of the mode. Unknown modes are drawn black.
func (p Palette) Color(mode benchmark.Mode) color.RGBA {
	c, ok := p[mode]
	if !ok {
		return color.RGBA{A: 255}
	}
	return c
}

// SeriesColor returns line color of the mode in the default palette.
func SeriesColor(mode benchmark.Mode) color.RGBA {
	return DefaultPalette().Color(mode)
}

// Series is a single line of a chart.
type Series struct {
	Mode   benchmark.Mode
	Color  color.RGBA
	Points plotter.XYs
}

// Chart is a metric of all modes plotted against number of keys.
type Chart struct {
	Metric results.Metric
	Title  string
	XLabel string
	YLabel string
	Series []Series
}

var metricDescriptions = map[results.Metric]struct{ name, unit string }{
	results.MetricTime:   {"time", "s"},
	results.MetricMemory: {"memory", "MB"},
}

// NewChart builds chart of the metric with one series per mode of the dataset, colored by palette.
func NewChart(dataset *results.Dataset, metric results.Metric, keyByteLength int, palette Palette) (*Chart, error) {
	description, ok := metricDescriptions[metric]
	if !ok {
		return nil, errors.Errorf("unknown metric %q", metric)
	}

	yLabel := fmt.Sprintf("%s(%s) per batch", description.name, description.unit)
	if batchSize, err := dataset.BatchSize(); err == nil {
		yLabel = fmt.Sprintf("%s of size %g", yLabel, batchSize)
	}

	chart := &Chart{
		Metric: metric,
		Title:  fmt.Sprintf("%s%s(%s) for %d-byte keys", strings.ToUpper(description.name[:1]), description.name[1:], description.unit, keyByteLength),
		XLabel: "keys number",
		YLabel: yLabel,
	}

	for _, mode := range dataset.Modes {
		values := dataset.Values(metric, mode)
		if len(values) != len(dataset.X) {
			return nil, errors.Wrapf(results.ErrMisaligned, "%s of %s mode", metric, mode)
		}

		points := make(plotter.XYs, len(values))
		for i := range values {
			points[i].X = dataset.X[i]
			points[i].Y = values[i]
		}
		chart.Series = append(chart.Series, Series{Mode: mode, Color: palette.Color(mode), Points: points})
	}

	return chart, nil
}

// Plot returns gonum plot of the chart.
func (c *Chart) Plot() (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel
	p.X.Tick.Marker = maxTicks{n: MaxTicks, format: scientificLabel}
	p.Y.Tick.Marker = maxTicks{n: MaxTicks, format: plainLabel}
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	for _, series := range c.Series {
		line, err := plotter.NewLine(series.Points)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot plot %s series", series.Mode)
		}
		line.Color = series.Color
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(series.Mode.String(), line)
	}

	return p, nil
}

// Save writes the chart to path. Format is taken from the extension, e.g. png or eps.
func (c *Chart) Save(path string) error {
	p, err := c.Plot()
	if err != nil {
		return err
	}
	if err := p.Save(chartWidth, chartHeight, path); err != nil {
		return errors.Wrapf(err, "cannot save %s chart to %q", c.Metric, path)
	}
	return nil
}
