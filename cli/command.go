// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/ava-labs/hypersdk-wallet/crypto/ed25519"
)

const (
	AddressCmd = "address"
	BalanceCmd = "balance"
	AirDropCmd = "airdrop"
	PayCmd     = "pay"
	ConfirmCmd = "confirm"
)

var (
	_ Command = Address{}
	_ Command = Balance{}
	_ Command = AirDrop{}
	_ Command = Pay{}
	_ Command = Confirm{}
)

// Command is one of Address, Balance, AirDrop, Pay or Confirm. A Command
// value is always valid: every parameter is checked when it is parsed.
type Command interface {
	Name() string

	isCommand()
}

// Address prints the caller's public key.
type Address struct{}

// Balance prints the caller's balance.
type Balance struct{}

// AirDrop requests [Tokens] from the faucet and prints the new balance.
type AirDrop struct {
	Tokens int64
}

// Pay sends [Tokens] to [To] and prints the transaction signature.
type Pay struct {
	Tokens int64
	To     ed25519.PublicKey
}

// Confirm reports whether a transaction with [Signature] was accepted.
type Confirm struct {
	Signature ed25519.Signature
}

func (Address) Name() string { return AddressCmd }
func (Balance) Name() string { return BalanceCmd }
func (AirDrop) Name() string { return AirDropCmd }
func (Pay) Name() string     { return PayCmd }
func (Confirm) Name() string { return ConfirmCmd }

func (Address) isCommand() {}
func (Balance) isCommand() {}
func (AirDrop) isCommand() {}
func (Pay) isCommand()     {}
func (Confirm) isCommand() {}

// Args holds the raw text parameters of a subcommand.
type Args struct {
	// Tokens is the --tokens value of airdrop and pay.
	Tokens string
	// To is the --to value of pay. It is only read when ToSet is true.
	To    string
	ToSet bool
	// Signature is the positional argument of confirm.
	Signature string
}

// ParseCommand validates [args] for subcommand [name]. When pay is given no
// recipient, the payment goes to [self]. If the subcommand is missing or
// unknown, or a parameter has the wrong shape, the command summary is written
// to [w].
//
// Amounts are not range checked: zero and negative values are left for the
// node to reject.
func ParseCommand(w io.Writer, name string, args Args, self ed25519.PublicKey) (Command, error) {
	switch name {
	case AddressCmd:
		return Address{}, nil
	case BalanceCmd:
		return Balance{}, nil
	case AirDropCmd:
		tokens, err := parseTokens(args.Tokens)
		if err != nil {
			return nil, err
		}
		return AirDrop{Tokens: tokens}, nil
	case PayCmd:
		to := self
		if args.ToSet {
			pk, err := ed25519.ParsePublicKey(args.To)
			if err != nil {
				DisplayActions(w)
				return nil, fmt.Errorf("%w: %w", ErrBadParameter, err)
			}
			to = pk
		}
		tokens, err := parseTokens(args.Tokens)
		if err != nil {
			return nil, err
		}
		return Pay{Tokens: tokens, To: to}, nil
	case ConfirmCmd:
		sig, err := ed25519.ParseSignature(args.Signature)
		if err != nil {
			DisplayActions(w)
			return nil, fmt.Errorf("%w: %w", ErrBadParameter, err)
		}
		return Confirm{Signature: sig}, nil
	case "":
		DisplayActions(w)
		return nil, fmt.Errorf("%w: no subcommand given", ErrCommandNotRecognized)
	default:
		DisplayActions(w)
		return nil, fmt.Errorf("%w: %q", ErrCommandNotRecognized, name)
	}
}

func parseTokens(s string) (int64, error) {
	tokens, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse tokens: %w", err)
	}
	return tokens, nil
}

// DisplayActions writes the command summary to [w].
func DisplayActions(w io.Writer) {
	fmt.Fprint(w, `
Commands:
  address   Get your public key
  balance   Get your account balance
  airdrop   Request a batch of tokens
  pay       Send tokens to a public key
  confirm   Confirm your last payment by signature

`)
}
