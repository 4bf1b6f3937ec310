// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"errors"
	"strings"
)

var (
	// ErrMissing is returned when a declared symbol has no bound value
	ErrMissing = errors.New("symbol not bound")

	// ErrShape is returned when a value's shape does not fit its use
	ErrShape = errors.New("incompatible shape")

	// ErrUnknown is returned when an expression reads an undeclared symbol
	ErrUnknown = errors.New("unknown symbol")

	// ErrNotLeaf is returned when a Group is evaluated as a single value
	ErrNotLeaf = errors.New("expression is a group, not a leaf")
)

// EvalError reports where an evaluation failed: the expression path,
// and the namespace and symbol involved if any.
type EvalError struct {
	Path string
	NS   string
	Sym  string
	Err  error
}

func (ee *EvalError) Error() string {
	var b strings.Builder
	b.WriteString("expr")
	if ee.Path != "" {
		b.WriteString(" " + ee.Path)
	}
	if ee.Sym != "" {
		b.WriteString(" [" + ee.NS + "." + ee.Sym + "]")
	}
	b.WriteString(": ")
	b.WriteString(ee.Err.Error())
	return b.String()
}

func (ee *EvalError) Unwrap() error {
	return ee.Err
}

// withPath annotates err with the expression path, keeping any existing
// symbol context
func withPath(err error, path string) error {
	var ee *EvalError
	if errors.As(err, &ee) {
		if ee.Path == "" {
			ee.Path = path
		}
		return err
	}
	return &EvalError{Path: path, Err: err}
}
