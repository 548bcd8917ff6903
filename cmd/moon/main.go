package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╔╦╗┌─┐┌─┐┌┐┌
  ║║║│ ││ ││││
  ╩ ╩└─┘└─┘┘└┘
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "moon",
		Short: "Minimal UI reconciliation engine",
		Long: `Moon is a minimal UI reconciliation engine for Go.

It builds an in-memory tree describing the desired interface state and
mutates a live rendered tree to match it with minimal operations. The CLI
serves a live preview of a reconciled tree and exports rendered snapshots.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		previewCmd(),
		exportCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

// printBanner prints the Moon ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}
