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
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/zddlsm/rusage/pkg/executor"
	"gopkg.in/cheggaaa/pb.v1"
)

// Driver invokes the benchmark binary once per compression mode, sequentially.
type Driver struct {
	executor    executor.Executor
	modes       []Mode
	progressBar    bool
	progressOutput io.Writer
}

// NewDriver returns Driver running given modes, in given order, on the executor.
func NewDriver(exec executor.Executor, modes []Mode) *Driver {
	return &Driver{
		executor: exec,
		modes:    append([]Mode(nil), modes...),
	}
}

// EnableProgressBar makes Run render a progress bar over the modes.
func (d *Driver) EnableProgressBar() *Driver {
	d.progressBar = true
	d.progressOutput = os.Stdout
	return d
}

// Run benchmarks every mode and waits for each invocation to finish before starting the next.
// There is no timeout, a hanging binary hangs the driver.
// It stops on the first failed invocation returning *InvocationError.
func (d *Driver) Run(config Config) error {
	var bar *pb.ProgressBar
	if d.progressBar {
		bar = pb.New(len(d.modes))
		bar.ShowCounters = false
		bar.ShowTimeLeft = true
		bar.Output = d.progressOutput
		bar.Start()
		defer bar.Finish()
	}

	for _, mode := range d.modes {
		if err := d.invoke(config, mode); err != nil {
			return err
		}
		if bar != nil {
			bar.Increment()
		}
	}

	return nil
}

func (d *Driver) invoke(config Config, mode Mode) error {
	command := config.Command(mode)
	logrus.Infof("Benchmarking %q mode: %s", mode, command)

	handle, err := d.executor.Execute(command)
	if err != nil {
		return &InvocationError{Mode: mode, Command: command, ExitCode: -1, Err: err}
	}
	defer handle.Clean()

	handle.Wait(0)

	exitCode, err := executor.CheckExitCode(command, d.executor.Name(), handle)
	if err != nil {
		return &InvocationError{Mode: mode, Command: command, ExitCode: exitCode, Err: err}
	}

	logrus.Debugf("Result of %q mode expected in %q", mode, config.ResultPath(mode))
	return nil
}
