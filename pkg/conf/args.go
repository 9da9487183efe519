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
	"strconv"

	"github.com/pkg/errors"
)

// argValue implements kingpin.Value and remembers whether the argument was given.
type argValue struct {
	raw      string
	set      bool
	required bool
	parse    func(string) error
}

func (v *argValue) Set(s string) error {
	if v.parse != nil {
		if err := v.parse(s); err != nil {
			return err
		}
	}
	v.raw = s
	v.set = true
	return nil
}

func (v *argValue) String() string {
	return v.raw
}

// Optional is used by the usage template to bracket optional arguments.
func (v *argValue) Optional() bool {
	return !v.required
}

type positionalArg struct {
	name     string
	required bool
	value    *argValue
}

// definedArgs keeps positional arguments in registration order.
var definedArgs []*positionalArg

func newPositionalArg(name, description string, required bool, parse func(string) error) *positionalArg {
	for _, a := range definedArgs {
		if a.name == name {
			panic(fmt.Sprintf("argument %q was already defined", name))
		}
	}

	a := &positionalArg{
		name:     name,
		required: required,
		value:    &argValue{required: required, parse: parse},
	}
	app.Arg(name, description).SetValue(a.value)
	definedArgs = append(definedArgs, a)
	return a
}

// IsSet returns true when the argument was given on the command line.
func (a *positionalArg) IsSet() bool {
	return a.value.set
}

func resetArgs() {
	for _, a := range definedArgs {
		a.value.set = false
		a.value.raw = ""
	}
}

func checkRequiredArgs() error {
	for _, a := range definedArgs {
		if a.required && !a.value.set {
			return errors.Errorf("required argument %q not provided", a.name)
		}
	}
	return nil
}

// StringArg represents a positional argument with string value.
type StringArg struct {
	*positionalArg
	defaultValue string
}

// NewStringArg is a constructor of StringArg struct. Optional arguments fall back to defaultValue.
func NewStringArg(name string, description string, required bool, defaultValue string) *StringArg {
	return &StringArg{
		positionalArg: newPositionalArg(name, description, required, nil),
		defaultValue:  defaultValue,
	}
}

// Value returns the given argument or the default one.
func (s StringArg) Value() string {
	if !s.IsSet() {
		return s.defaultValue
	}
	return s.value.raw
}

// IntArg represents a positional argument with integer value.
type IntArg struct {
	*positionalArg
	defaultValue int
	parsed       int
}

// NewIntArg is a constructor of IntArg struct. Non-integer input fails the parse.
func NewIntArg(name string, description string, required bool, defaultValue int) *IntArg {
	arg := &IntArg{defaultValue: defaultValue}
	arg.positionalArg = newPositionalArg(name, description, required, func(s string) error {
		v, err := strconv.Atoi(s)
		if err != nil {
			return errors.Errorf("argument %q expects an integer, got %q", name, s)
		}
		arg.parsed = v
		return nil
	})
	return arg
}

// Value returns the given argument or the default one.
func (i IntArg) Value() int {
	if !i.IsSet() {
		return i.defaultValue
	}
	return i.parsed
}
