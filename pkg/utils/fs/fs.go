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

package fs

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/zddlsm/rusage/pkg/utils/err_collection"
)

// DirMode is used for every directory created by the harness.
const DirMode = 0755

// CreateDirs creates given directories with their parents.
// Paths which already exist are skipped. Permission and other errors are logged
// and returned combined, but never stop creation of the remaining paths.
func CreateDirs(paths ...string) error {
	var errs errcollection.ErrorCollection

	for _, path := range paths {
		if info, err := os.Stat(path); err == nil {
			if !info.IsDir() {
				logrus.Warnf("%q already exists and is not a directory", path)
			}
			continue
		}

		err := os.MkdirAll(path, DirMode)
		switch {
		case err == nil:
			logrus.Debugf("created directory %q", path)
		case os.IsExist(err):
			// Created in the meantime.
		case os.IsPermission(err):
			logrus.Errorf("permission denied: unable to create %q", path)
			errs.Add(errors.Wrapf(err, "permission denied for %q", path))
		default:
			logrus.Errorf("unable to create %q: %v", path, err)
			errs.Add(errors.Wrapf(err, "cannot create %q", path))
		}
	}

	return errs.GetErrIfAny()
}
