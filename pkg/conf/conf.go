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

package conf

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

// EnvironmentPrefix is prepended to every flag name to build its environment variable.
const EnvironmentPrefix = "RUSAGE"

var (
	app = kingpin.New("rusage", "No help available")
	// Default flags and values.
	logLevelFlag = NewStringFlag(
		"log",
		"Log level: debug, info, warn, error, fatal, panic",
		"error", // Default Error log level.
	)
	isEnvParsed = false
)

func init() {
	// Usage is printed by the caller, kingpin must not exit on its own.
	app.Terminate(nil)
	// Required positional arguments are checked after parsing, so kingpin
	// does not know about them. Ask the argument value instead.
	app.UsageTemplate(strings.Replace(kingpin.DefaultUsageTemplate, "{{if not .Required}}", "{{if .Value.Optional}}", -1))
	app.UsageWriter(os.Stderr)
	app.ErrorWriter(os.Stderr)
}

// SetHelp sets the help message for the CLI.
func SetHelp(help string) {
	app.Help = help
}

// SetAppName sets application name for CLI output.
func SetAppName(name string) {
	app.Name = name
}

// AppName returns specified app name.
func AppName() string {
	return app.Name
}

// LogLevel returns configured logLevel from input option or env variable.
// If it cannot parse the log level, it returns default value.
func LogLevel() logrus.Level {
	level, err := logrus.ParseLevel(logLevelFlag.Value())
	if err == nil {
		return level
	}

	level, err = logrus.ParseLevel(logLevelFlag.defaultValue)
	if err == nil {
		return level
	}

	// Programmer error.
	panic(errors.Wrap(err, "parsing log level failed"))
}

// ParseFlags parses the command line of the process together with the environment.
func ParseFlags() error {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parses given command line arguments and environment variables.
// Missing required positional arguments and surplus arguments are reported as errors.
func ParseArgs(args []string) error {
	resetArgs()

	_, err := app.Parse(args)
	if err != nil {
		return errors.Wrapf(err, "could not parse command line arguments")
	}

	if err := checkRequiredArgs(); err != nil {
		return err
	}

	isEnvParsed = true
	return nil
}

// ParseEnv parses the environment only.
func ParseEnv() error {
	resetArgs()

	_, err := app.Parse([]string{})
	if err == nil {
		isEnvParsed = true
		return nil
	}

	return errors.Wrapf(err, "could not parse environment flags")
}

// Usage writes the usage message of the application to w.
func Usage(w io.Writer) {
	app.UsageWriter(w)
	app.Usage([]string{})
	app.UsageWriter(os.Stderr)
}

// GetFlags returns flags as map with current values.
func GetFlags() map[string]string {
	flagsMap := map[string]string{}
	for name, flag := range definedFlags {
		flagsMap[name] = flag.valueString()
	}
	return flagsMap
}

// LogFlags prints current values of all defined flags in the debug log, sorted by name.
func LogFlags() {
	flags := GetFlags()
	names := make([]string, 0, len(flags))
	for name := range flags {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		logrus.Debugf("flag %s=%s", name, flags[name])
	}
}

func envName(name string) string {
	return fmt.Sprintf("%s_%s", EnvironmentPrefix, strings.ToUpper(name))
}
