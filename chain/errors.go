// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import "errors"

var (
	ErrInvalidSignature = errors.New("invalid signature")
	ErrInvalidKind      = errors.New("invalid transaction kind")
)
