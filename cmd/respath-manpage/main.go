package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/respath/cmd/respath"
	"github.com/arthur-debert/respath/internal/version"
)

func main() {
	rootCmd := respath.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "RESPATH",
		Section: "1",
		Source:  "respath " + version.Version,
		Manual:  "respath manual",
	}

	// With a directory argument, one page per command is written there
	if len(os.Args) > 1 {
		if err := doc.GenManTree(rootCmd, header, os.Args[1]); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating man pages: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
