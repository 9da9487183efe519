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

package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/nu7hatch/gouuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/zddlsm/rusage/pkg/utils/fs"
)

const logFileName = "master.log"

// Initialize creates run directory under <resultsDir>/logs and configures logrus to write
// both to stderr and the log file in it. It returns the run directory, which keeps
// output of invoked commands as well. When the directory cannot be created logs go to stderr only
// and empty run directory is returned.
func Initialize(appName, resultsDir string) (runDir string, err error) {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "2006-01-02 15:04:05.000"})
	logrus.SetOutput(os.Stderr)

	id, err := uuid.NewV4()
	if err != nil {
		return "", errors.Wrap(err, "cannot generate run ID")
	}

	runDir = filepath.Join(resultsDir, "logs", fmt.Sprintf("%s_%s", filepath.Base(appName), id.String()))
	if err := fs.CreateDirs(runDir); err != nil {
		logrus.Warnf("Cannot create run directory, logging to stderr only: %v", err)
		return "", nil
	}

	logFile, err := os.Create(filepath.Join(runDir, logFileName))
	if err != nil {
		logrus.Warnf("Cannot create log file in %q, logging to stderr only: %v", runDir, err)
		return runDir, nil
	}

	logrus.SetOutput(io.MultiWriter(logFile, os.Stderr))
	logrus.Infof("Working directory %q", runDir)
	logrus.Info("Starting ", appName, " with uuid ", id.String())

	return runDir, nil
}
