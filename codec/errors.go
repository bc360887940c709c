// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import "errors"

var (
	ErrEmptyMessage = errors.New("empty message")
	ErrUnknownKind  = errors.New("unknown message kind")
	ErrTooLarge     = errors.New("message too large")
)
