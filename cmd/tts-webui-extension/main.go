package main

import (
	"os"

	"github.com/rsxdalv/ttsext/internal/commands"
)

func main() {
	rootCmd := commands.RootCmd()

	if err := rootCmd.Execute(); err != nil {
		commands.ReportError(err)
		os.Exit(1)
	}
}
