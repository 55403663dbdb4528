package main

import (
	"fmt"
	"os"
	"runtime"

	"dnshell/internal/platform"
)

func main() {
	// Detected once per run; every command uses the same verdict.
	p := platform.Current()
	if p == platform.Unsupported {
		fmt.Fprintf(os.Stderr, "unsupported operating system: %s\n", runtime.GOOS)
		os.Exit(1)
	}

	runCLI(p)
}
