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

package main

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/zddlsm/rusage/pkg/benchmark"
	"github.com/zddlsm/rusage/pkg/conf"
	"github.com/zddlsm/rusage/pkg/experiment"
	"github.com/zddlsm/rusage/pkg/keystore"
	"github.com/zddlsm/rusage/pkg/results"
	"github.com/zddlsm/rusage/pkg/utils/errutil"
)

var (
	keyByteLengthArg = conf.NewIntArg("key_byte_length", "Length of every key in bytes.", true, 0)
	testSizeArg      = conf.NewIntArg("test_size", "Number of keys to insert.", true, 0)
	modeArg          = conf.NewStringArg("mode", "Compression mode: uncompressed, zstd, md5 or sha256.", true, "")
	directoryArg     = conf.NewStringArg("directory", "Prefix of the keys file and the result file, usually a directory with trailing slash.", true, "")
	testNameArg      = conf.NewStringArg("test_name", "Name of the keys file; result file is <test_name>_<mode>.out.", true, "")
)

func main() {
	conf.SetAppName(filepath.Base(os.Args[0]))
	conf.SetHelp("Inserts keys from <directory><test_name> into an in-memory key store and records time and peak memory every 1000 keys.")
	experiment.Configure()

	mode, err := benchmark.ParseMode(modeArg.Value())
	errutil.CheckWithContext(err, "Invalid mode")

	compressor, err := keystore.NewCompressor(mode)
	errutil.CheckWithContext(err, "Cannot create compressor")
	defer compressor.Close()

	corpusPath := directoryArg.Value() + testNameArg.Value()
	corpus, err := os.Open(corpusPath)
	errutil.CheckWithContext(err, "Cannot open keys file")
	defer corpus.Close()

	logrus.Infof("Inserting %d keys of %d bytes from %q in %s mode", testSizeArg.Value(), keyByteLengthArg.Value(), corpusPath, mode)
	rf, err := keystore.NewBenchmark(keystore.NewStore(compressor)).Run(corpus, testSizeArg.Value())
	errutil.CheckWithContext(err, "Benchmark failed")

	resultPath := directoryArg.Value() + testNameArg.Value() + "_" + mode.String() + ".out"
	errutil.CheckWithContext(writeResult(resultPath, rf), "Cannot save results")
	logrus.Infof("Results saved to %q", resultPath)
}

func writeResult(path string, rf *results.ResultFile) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "cannot create %q", path)
	}
	if err := results.Write(f, rf); err != nil {
		f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "cannot close %q", path)
}
