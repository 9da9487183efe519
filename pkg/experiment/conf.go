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

package experiment

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/zddlsm/rusage/pkg/conf"
)

// ExUsage is the exit code of malformed command line (see sysexits.h).
const ExUsage = 64

// ParseCommandLine parses args and on failure writes the reason followed by usage to w.
func ParseCommandLine(args []string, w io.Writer) error {
	if err := conf.ParseArgs(args); err != nil {
		fmt.Fprintf(w, "%s: %v\n", conf.AppName(), err)
		conf.Usage(w)
		return err
	}
	return nil
}

// Configure handles command line parsing and sets log level.
// It exits with ExUsage when command line is malformed.
// It returns true when only errors are logged, so progress can be rendered instead.
func Configure() bool {
	if err := ParseCommandLine(os.Args[1:], os.Stderr); err != nil {
		os.Exit(ExUsage)
	}

	logrus.SetLevel(conf.LogLevel())
	conf.LogFlags()
	return conf.LogLevel() == logrus.ErrorLevel
}
