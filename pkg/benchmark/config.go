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

package benchmark

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

const (
	// PNG is the raster chart format and its subdirectory name.
	PNG = "png"
	// EPS is the vector chart format and its subdirectory name.
	EPS = "eps"
)

// Config describes a single benchmark run. It is created once from the command line
// and never modified.
type Config struct {
	KeyByteLength   int
	SampleCount     int
	ResultDirectory string
	TestName        string
	Binary          string
}

// DefaultTestName names result files of a run, e.g. test_16_1000.
func DefaultTestName(keyByteLength, sampleCount int) string {
	return fmt.Sprintf("test_%d_%d", keyByteLength, sampleCount)
}

// NewConfig validates input and returns Config with default test name.
func NewConfig(keyByteLength, sampleCount int, resultDirectory, binary string) (Config, error) {
	if keyByteLength <= 0 {
		return Config{}, errors.Errorf("key byte length must be positive, got %d", keyByteLength)
	}
	if sampleCount <= 0 {
		return Config{}, errors.Errorf("test size must be positive, got %d", sampleCount)
	}
	if resultDirectory == "" {
		return Config{}, errors.New("results directory cannot be empty")
	}
	if binary == "" {
		return Config{}, errors.New("benchmark binary cannot be empty")
	}

	return Config{
		KeyByteLength:   keyByteLength,
		SampleCount:     sampleCount,
		ResultDirectory: filepath.Clean(resultDirectory),
		TestName:        DefaultTestName(keyByteLength, sampleCount),
		Binary:          binary,
	}, nil
}

// ResultPath returns path of the result file written by the binary for given mode.
func (c Config) ResultPath(mode Mode) string {
	return filepath.Join(c.ResultDirectory, fmt.Sprintf("%s_%s.out", c.TestName, mode))
}

// CorpusPath returns path of the input keys file read by the binary.
func (c Config) CorpusPath() string {
	return filepath.Join(c.ResultDirectory, c.TestName)
}

// FormatDir returns directory for charts in given format.
func (c Config) FormatDir(format string) string {
	return filepath.Join(c.ResultDirectory, format)
}

// ChartPath returns path of the chart for a metric in given format.
func (c Config) ChartPath(format, metric string) string {
	return filepath.Join(c.FormatDir(format), fmt.Sprintf("%s_%s.%s", c.TestName, metric, format))
}

// DirArgument returns results directory with trailing separator,
// as the binary concatenates it with the test name.
func (c Config) DirArgument() string {
	return strings.TrimSuffix(c.ResultDirectory, string(os.PathSeparator)) + string(os.PathSeparator)
}

// Command returns the shell command which benchmarks given mode.
func (c Config) Command(mode Mode) string {
	return strings.Join([]string{
		shellQuote(c.Binary),
		fmt.Sprintf("%d", c.KeyByteLength),
		fmt.Sprintf("%d", c.SampleCount),
		shellQuote(mode.String()),
		shellQuote(c.DirArgument()),
		shellQuote(c.TestName),
	}, " ")
}

const shellSpecialChars = " \t\n'\"$`\\;&|<>()*?[]#~!{}"

func shellQuote(s string) string {
	if s != "" && !strings.ContainsAny(s, shellSpecialChars) {
		return s
	}
	return "'" + strings.Replace(s, "'", `'\''`, -1) + "'"
}
