// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cli

import "errors"

var (
	// ErrCommandNotRecognized is returned when no subcommand, or an unknown
	// one, is given.
	ErrCommandNotRecognized = errors.New("command not recognized")
	// ErrBadParameter is returned when a parameter fails structural
	// validation, such as a base-58 value of the wrong width.
	ErrBadParameter = errors.New("bad parameter")
)
