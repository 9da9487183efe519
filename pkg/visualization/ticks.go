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
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

// niceMultipliers are the mantissas allowed for the distance between ticks.
var niceMultipliers = []float64{1, 2, 2.5, 5, 10}

// maxTicks places at most n evenly spaced ticks at round values.
type maxTicks struct {
	n      int
	format func(float64) string
}

// Ticks implements plot.Ticker.
func (t maxTicks) Ticks(min, max float64) []plot.Tick {
	if t.n < 2 || !(max > min) {
		return []plot.Tick{{Value: min, Label: t.format(min)}}
	}

	step := niceStep((max - min) / float64(t.n-1))
	first := math.Ceil(min/step) * step

	var ticks []plot.Tick
	for i := 0; i < t.n; i++ {
		value := round(first + float64(i)*step)
		if value > max+step*1e-9 {
			break
		}
		ticks = append(ticks, plot.Tick{Value: value, Label: t.format(value)})
	}
	return ticks
}

// niceStep returns the smallest round number not lower than raw.
func niceStep(raw float64) float64 {
	magnitude := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, multiplier := range niceMultipliers {
		if step := multiplier * magnitude; step >= raw*(1-1e-9) {
			return step
		}
	}
	return 10 * magnitude
}

// round drops floating point noise, e.g. 0.30000000000000004 becomes 0.3.
func round(v float64) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'g', 12, 64), 64)
	if err != nil {
		return v
	}
	return rounded
}

func scientificLabel(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'e', -1, 64)
}

func plainLabel(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
