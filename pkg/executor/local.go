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
	"os/exec"
	"path/filepath"
	"syscall"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Local provisioning is responsible for providing the execution environment
// on local machine via exec.Command.
// It runs command as current user.
type Local struct {
	outputDir string
}

// NewLocal returns a Local instance which keeps task output under outputDir.
// Empty outputDir means current working directory.
func NewLocal(outputDir string) Local {
	return Local{outputDir: outputDir}
}

// Name returns user-friendly name of executor.
func (l Local) Name() string {
	return "Local"
}

// Execute runs the command given as input.
// Returned TaskHandle is able to stop & monitor the provisioned process.
func (l Local) Execute(command string) (TaskHandle, error) {
	stdoutFile, stderrFile, err := createExecutorOutputFiles(l.outputDir, command, "local")
	if err != nil {
		return nil, err
	}

	log.Debug("Starting ", command)

	cmd := exec.Command("sh", "-c", command)
	// It is important to set additional Process Group ID for parent process and his children
	// to have ability to kill all the children processes.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Stdout = stdoutFile
	cmd.Stderr = stderrFile

	if err := cmd.Start(); err != nil {
		stdoutFile.Close()
		stderrFile.Close()
		return nil, errors.Wrapf(err, "command %q failed to start", command)
	}

	log.Debug("Started with pid ", cmd.Process.Pid)

	t := newLocalTaskHandle(cmd, stdoutFile, stderrFile)

	// Wait for local task in goroutine.
	go t.waitForExit(command)
	register(t)

	return t, nil
}

// localTaskHandle implements TaskHandle interface.
type localTaskHandle struct {
	cmd        *exec.Cmd
	stdoutFile *os.File
	stderrFile *os.File
	// done is closed when the process exits, exitCode is valid afterwards.
	done     chan struct{}
	exitCode int
}

func newLocalTaskHandle(cmd *exec.Cmd, stdoutFile, stderrFile *os.File) *localTaskHandle {
	return &localTaskHandle{
		cmd:        cmd,
		stdoutFile: stdoutFile,
		stderrFile: stderrFile,
		done:       make(chan struct{}),
	}
}

func (t *localTaskHandle) waitForExit(command string) {
	// Wait() error is ignored since the exit status is taken from the process state below.
	t.cmd.Wait()

	status := t.cmd.ProcessState.Sys().(syscall.WaitStatus)
	if status.Exited() {
		t.exitCode = status.ExitStatus()
	} else {
		// Show what signal caused the termination.
		t.exitCode = -int(status.Signal())
	}

	log.Debug(
		"Ended ", command,
		" with output in file: ", t.stdoutFile.Name(),
		" with err output in file: ", t.stderrFile.Name(),
		" with status code: ", t.exitCode)

	close(t.done)
}

func (t *localTaskHandle) isTerminated() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

// Stop terminates the whole process group of the task.
func (t *localTaskHandle) Stop() error {
	if t.isTerminated() {
		return nil
	}

	// The kill syscall interprets a negated PID N as the process group N belongs to.
	pid := t.cmd.Process.Pid
	log.Debug("Sending SIGTERM to PID ", -pid)
	if err := syscall.Kill(-pid, syscall.SIGTERM); err != nil {
		return errors.Wrapf(err, "cannot terminate process group %d", pid)
	}

	<-t.done
	return nil
}

// Status returns a state of the task.
func (t *localTaskHandle) Status() TaskState {
	if t.isTerminated() {
		return TERMINATED
	}
	return RUNNING
}

// ExitCode returns the exit code of terminated task.
func (t *localTaskHandle) ExitCode() (int, error) {
	if !t.isTerminated() {
		return -1, errors.New("task is not terminated")
	}
	return t.exitCode, nil
}

// StdoutFile opens the task's stdout file for reading.
func (t *localTaskHandle) StdoutFile() (*os.File, error) {
	return os.Open(t.stdoutFile.Name())
}

// StderrFile opens the task's stderr file for reading.
func (t *localTaskHandle) StderrFile() (*os.File, error) {
	return os.Open(t.stderrFile.Name())
}

// Wait blocks until process is terminated or timeout appeared.
// Returns true when process terminates before timeout, otherwise false.
func (t *localTaskHandle) Wait(timeout time.Duration) bool {
	if timeout == 0 {
		<-t.done
		return true
	}

	select {
	case <-t.done:
		return true
	case <-time.After(timeout):
		return false
	}
}

// Clean closes files to which stdout and stderr of executed command was written.
func (t *localTaskHandle) Clean() error {
	if err := t.stdoutFile.Close(); err != nil {
		return err
	}
	return t.stderrFile.Close()
}

// EraseOutput removes the task's output directory.
func (t *localTaskHandle) EraseOutput() error {
	return os.RemoveAll(filepath.Dir(t.stdoutFile.Name()))
}

// Address returns the loopback address, since task runs on local machine.
func (t *localTaskHandle) Address() string {
	return "127.0.0.1"
}
