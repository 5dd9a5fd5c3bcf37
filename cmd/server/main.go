// Package main is the entry point for the StoryForge API server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "storyforge-api",
	Short: "StoryForge API Server",
	Long:  `StoryForge provides a REST interface for AI-assisted tabletop RPG worlds, characters, sessions, and turn resolution.`,
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
