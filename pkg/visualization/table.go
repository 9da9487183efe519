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
	"fmt"
	"io"

	"code.cloudfoundry.org/bytefmt"
	"github.com/montanaflynn/stats"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/zddlsm/rusage/pkg/results"
)

// Table is a model for data.
type Table struct {
	headers []string
	data    [][]string
}

// NewTable creates new model of data representation.
func NewTable(headers []string, data [][]string) *Table {
	return &Table{
		headers,
		data,
	}
}

// DrawTable draws a struct with headers and data rows.
func DrawTable(w io.Writer, table *Table) {
	output := tablewriter.NewWriter(w)
	output.SetHeader(table.headers)
	for _, v := range table.data {
		output.Append(v)
	}
	output.Render()
}

var summaryHeaders = []string{"Mode", "Keys", "Total time [s]", "Mean time per batch [s]", "Peak RSS"}

// SummaryTable aggregates every mode of the dataset into one row.
func SummaryTable(dataset *results.Dataset) (*Table, error) {
	var keys float64
	if len(dataset.X) > 0 {
		keys = dataset.X[len(dataset.X)-1]
	}

	var rows [][]string
	for _, mode := range dataset.Modes {
		times := dataset.Values(results.MetricTime, mode)
		memory := dataset.Values(results.MetricMemory, mode)

		total, err := stats.Sum(times)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot sum time of %s mode", mode)
		}

		// First sample is taken before any key is inserted.
		batches := times
		if len(batches) > 1 {
			batches = batches[1:]
		}
		mean, err := stats.Mean(batches)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot average time of %s mode", mode)
		}

		peak, err := stats.Max(memory)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot find peak memory of %s mode", mode)
		}

		rows = append(rows, []string{
			mode.String(),
			fmt.Sprintf("%g", keys),
			fmt.Sprintf("%.3f", total),
			fmt.Sprintf("%.6f", mean),
			bytefmt.ByteSize(maxRSSBytes(peak)),
		})
	}

	return NewTable(summaryHeaders, rows), nil
}

// maxRSSBytes converts memory sample back to bytes. Samples are ru_maxrss
// divided by 1000, and ru_maxrss is given in kilobytes of 1024 bytes.
func maxRSSBytes(sample float64) uint64 {
	return uint64(sample * 1000 * bytefmt.KILOBYTE)
}

// DrawSummary writes summary table of the dataset to w.
func DrawSummary(w io.Writer, dataset *results.Dataset) error {
	table, err := SummaryTable(dataset)
	if err != nil {
		return err
	}
	DrawTable(w, table)
	return nil
}
