package main

import (
	"os"

	"github.com/arthur-debert/respath/cmd/respath"
)

func main() {
	rootCmd := respath.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		respath.ReportError(rootCmd, err)
		os.Exit(1)
	}
}
