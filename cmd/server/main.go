// Package main is the entry point for the battle server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "battle-api",
	Short: "Turn-based battle server",
	Long:  `battle-api runs turn-based text battles over websockets: players type commands, monsters strike back.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
