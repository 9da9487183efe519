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

// Package results reads and writes result files produced by the benchmark binary.
//
// A result file consists of four lines:
//   - number of samples,
//   - x-axis: number of keys inserted at each sample,
//   - elapsed time in seconds per batch, aligned with the x-axis,
//   - memory usage in megabytes, aligned with the x-axis.
package results

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var (
	// ErrTruncated is returned when result file has less than four lines.
	ErrTruncated = errors.New("result file is truncated")
	// ErrMisaligned is returned when values lines have different lengths.
	ErrMisaligned = errors.New("result file lines are misaligned")
	// ErrNotIncreasing is returned when the x-axis is not strictly increasing.
	ErrNotIncreasing = errors.New("x-axis is not strictly increasing")
)

// ResultFile is a parsed result file of a single compression mode.
type ResultFile struct {
	Count  int
	X      []float64
	Time   []float64
	Memory []float64
}

// Load parses result file at path. Missing file is returned as wrapped os error.
func Load(path string) (*ResultFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open result file %q", path)
	}
	defer f.Close()

	rf, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot parse result file %q", path)
	}
	return rf, nil
}

// Parse reads a result file.
func Parse(r io.Reader) (*ResultFile, error) {
	reader := bufio.NewReader(r)

	countLine, err := readLine(reader, "samples count")
	if err != nil {
		return nil, err
	}
	count, err := strconv.Atoi(strings.TrimSpace(countLine))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid samples count %q", countLine)
	}

	rf := &ResultFile{Count: count}
	for _, line := range []struct {
		name   string
		values *[]float64
	}{
		{"x-axis", &rf.X},
		{"time", &rf.Time},
		{"memory", &rf.Memory},
	} {
		text, err := readLine(reader, line.name)
		if err != nil {
			return nil, err
		}
		if *line.values, err = parseValues(text); err != nil {
			return nil, errors.Wrapf(err, "invalid %s line", line.name)
		}
	}

	if err := rf.validate(); err != nil {
		return nil, err
	}
	return rf, nil
}

func readLine(reader *bufio.Reader, name string) (string, error) {
	line, err := reader.ReadString('\n')
	if err == io.EOF && line != "" {
		// Last line does not have to be terminated.
		return line, nil
	}
	if err == io.EOF {
		return "", errors.Wrapf(ErrTruncated, "missing %s line", name)
	}
	if err != nil {
		return "", errors.Wrapf(err, "cannot read %s line", name)
	}
	return line, nil
}

// parseValues parses whitespace separated numbers keeping exactly the printed precision.
func parseValues(line string) ([]float64, error) {
	tokens := strings.Fields(line)
	values := make([]float64, 0, len(tokens))
	for _, token := range tokens {
		d, err := decimal.NewFromString(token)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid value %q", token)
		}
		value, _ := d.Float64()
		values = append(values, value)
	}
	return values, nil
}

func (rf *ResultFile) validate() error {
	if len(rf.X) != rf.Count {
		return errors.Wrapf(ErrMisaligned, "samples count is %d but x-axis has %d values", rf.Count, len(rf.X))
	}
	if len(rf.Time) != len(rf.X) {
		return errors.Wrapf(ErrMisaligned, "x-axis has %d values but time line has %d", len(rf.X), len(rf.Time))
	}
	if len(rf.Memory) != len(rf.X) {
		return errors.Wrapf(ErrMisaligned, "x-axis has %d values but memory line has %d", len(rf.X), len(rf.Memory))
	}
	for i := 1; i < len(rf.X); i++ {
		if rf.X[i] <= rf.X[i-1] {
			return errors.Wrapf(ErrNotIncreasing, "value %v at index %d follows %v", rf.X[i], i, rf.X[i-1])
		}
	}
	return nil
}

// Write writes result file in the format produced by the benchmark binary.
func Write(w io.Writer, rf *ResultFile) error {
	if err := rf.validate(); err != nil {
		return err
	}

	buffered := bufio.NewWriter(w)
	fmt.Fprintf(buffered, "%d\n", rf.Count)
	for i, values := range [][]float64{rf.X, rf.Time, rf.Memory} {
		for _, v := range values {
			buffered.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
			buffered.WriteByte(' ')
		}
		if i < 2 {
			buffered.WriteByte('\n')
		}
	}
	return errors.Wrap(buffered.Flush(), "cannot write result file")
}

// BatchSize returns the step of the x-axis, i.e. number of keys inserted between samples.
func BatchSize(x []float64) (float64, error) {
	if len(x) < 2 {
		return 0, errors.Errorf("batch size needs at least two samples, got %d", len(x))
	}
	return x[1] - x[0], nil
}
