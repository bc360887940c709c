// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import "errors"

var (
	// ErrAccountNotFound is returned when the node answers a balance query
	// with no record for the account. The account has never been funded.
	ErrAccountNotFound    = errors.New("account not found")
	ErrUnexpectedResponse = errors.New("unexpected response")
)
