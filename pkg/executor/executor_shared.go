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

package executor

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// CheckExitCode should be called once the task terminated.
// It returns the exit code and an error when the code is not zero or cannot be read,
// logging the tail of the task output in the latter cases.
//
// Commands usually fail because of wrong parameters or binary that is not installed properly.
func CheckExitCode(command string, executorName string, handle TaskHandle) (int, error) {
	if handle.Status() != TERMINATED {
		return -1, errors.Errorf("task %q launched on %q is still running", command, executorName)
	}

	exitCode, err := handle.ExitCode()
	if err != nil {
		log.Errorf("task %q launched on %q failed, cannot get exit code: %s", command, executorName, err.Error())
		LogUnsucessfulExecution(command, executorName, handle)
		return -1, errors.Wrapf(err, "task %q launched on %q failed, cannot get exit code", command, executorName)
	}

	if exitCode != 0 {
		log.Errorf("task %q launched on %q failed: exit code %d", command, executorName, exitCode)
		LogUnsucessfulExecution(command, executorName, handle)
		return exitCode, errors.Errorf("task %q launched on %q failed with exit code %d", command, executorName, exitCode)
	}

	log.Debugf("task %q launched on %q has ended successfully", command, executorName)
	LogSuccessfulExecution(command, executorName, handle)
	return exitCode, nil
}
