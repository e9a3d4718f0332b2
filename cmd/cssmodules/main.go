// Package main provides the cssmodules CLI: a thin harness over the
// cssmodules Locator for loading a stylesheet's tokens and emitting a
// TypeScript declaration file for it.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
