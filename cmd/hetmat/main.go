// SPDX-License-Identifier: MIT

// Command hetmat builds matrix stores of heterogeneous networks and computes
// degree-weighted path counts with permutation-based significance.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
