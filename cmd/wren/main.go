package main

import (
	"os"

	"github.com/wrenkit/wren/internal/commands"
)

func main() {
	rootCmd := commands.RootCmd()

	rootCmd.AddCommand(commands.InitCmd())
	rootCmd.AddCommand(commands.RenderCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
