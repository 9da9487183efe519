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
	"github.com/zddlsm/rusage/pkg/conf"
)

var (
	// BinaryFlag points to the benchmark executable.
	BinaryFlag = conf.NewStringFlag("binary", "Path to the benchmark executable.", "./build/rusage_test")
	// SummaryFlag enables summary table of the results on stdout.
	SummaryFlag = conf.NewBoolFlag("summary", "Print summary table of the results.", false)
)
