package main

import (
	"os"
)

var version = "dev" // Injected at build time via ldflags

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
