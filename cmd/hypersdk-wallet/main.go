// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// "hypersdk-wallet" checks balances, requests airdrops and sends payments.
package main

import (
	"context"
	"os"

	"github.com/ava-labs/hypersdk-wallet/utils"

	formatter "github.com/onsi/ginkgo/v2/formatter"
)

func main() {
	if err := newRootCmd(formatter.ColorableStdOut).ExecuteContext(context.Background()); err != nil {
		utils.Outf("{{red}}hypersdk-wallet exited with error:{{/}} %+v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}
