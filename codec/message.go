// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"fmt"

	"github.com/near/borsh-go"

	"github.com/ava-labs/hypersdk-wallet/consts"
)

// Marshal encodes [body] with borsh and prefixes it with [kind]. The result
// must fit in [maxSize] bytes.
func Marshal(kind byte, body any, maxSize int) ([]byte, error) {
	b, err := borsh.Serialize(body)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize kind %d: %w", kind, err)
	}
	if consts.ByteLen+len(b) > maxSize {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooLarge, consts.ByteLen+len(b), maxSize)
	}
	msg := make([]byte, consts.ByteLen, consts.ByteLen+len(b))
	msg[0] = kind
	return append(msg, b...), nil
}

// Kind returns the kind prefix of [msg].
func Kind(msg []byte) (byte, error) {
	if len(msg) < consts.ByteLen {
		return 0, ErrEmptyMessage
	}
	return msg[0], nil
}

// Unmarshal decodes the body of [msg] into [body], which must be a pointer.
// The kind prefix is not checked.
func Unmarshal(msg []byte, body any) error {
	if len(msg) < consts.ByteLen {
		return ErrEmptyMessage
	}
	if err := borsh.Deserialize(body, msg[consts.ByteLen:]); err != nil {
		return fmt.Errorf("failed to deserialize kind %d: %w", msg[0], err)
	}
	return nil
}
