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
	"os"
	"os/signal"
	"sync"
	"syscall"

	log "github.com/sirupsen/logrus"
)

// taskHandleStopper stops tasks still running when the process is interrupted.
type taskHandleStopper struct {
	sync.Mutex
	enabled     bool
	taskHandles []TaskHandle
}

var globalTaskHandleStopper = &taskHandleStopper{}

// RegisterInterruptHandle stops all running tasks on SIGINT or SIGTERM and exits.
// Returned function stops them on demand.
func RegisterInterruptHandle() func() {
	return globalTaskHandleStopper.registerInterruptHandle()
}

func register(t TaskHandle) {
	globalTaskHandleStopper.register(t)
}

func (ths *taskHandleStopper) registerInterruptHandle() func() {
	ths.Lock()
	defer ths.Unlock()
	if !ths.enabled {
		ths.enabled = true
		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			log.Debugf("clean: stopping all tasks on signal '%v'", <-c)
			ths.stopAllTaskHandles()
			os.Exit(1)
		}()
	}
	return ths.stopAllTaskHandles
}

func (ths *taskHandleStopper) stopAllTaskHandles() {
	ths.Lock()
	defer ths.Unlock()
	// Stop in reverse order.
	for i := len(ths.taskHandles) - 1; i >= 0; i-- {
		taskHandle := ths.taskHandles[i]
		if taskHandle.Status() == TERMINATED {
			continue
		}
		if err := taskHandle.Stop(); err != nil {
			log.Warnf("clean: cannot stop task: %v", err)
		}
	}
	ths.taskHandles = nil
}

func (ths *taskHandleStopper) register(t TaskHandle) {
	ths.Lock()
	defer ths.Unlock()
	if !ths.enabled {
		return
	}
	// Forget tasks which already finished.
	running := ths.taskHandles[:0]
	for _, handle := range ths.taskHandles {
		if handle.Status() != TERMINATED {
			running = append(running, handle)
		}
	}
	ths.taskHandles = append(running, t)
}
