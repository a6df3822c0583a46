package main

import (
	"fmt"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"

	"packlift/cmd"
)

var rootCmd = &cobra.Command{
	Use:   "packlift",
	Short: "Packlift - Recover plaintext assets from encrypted resource packs.",
	Long: `Packlift reconstructs a usable asset tree from a packaged, access-controlled
content bundle, given its top-level master key.

Features:
  - Decrypt a pack's content index and every listed asset
  - Inspect a pack's file list without extracting anything
  - Remember master keys per pack UUID

Usage:
  packlift <command> [flags]

Available Commands:
  decrypt    Recover the plaintext asset tree from a pack
  inspect    List a pack's contents without extracting
  keys       Manage stored master keys

Run 'packlift help <command>' for more details on a specific command.
`,
	Run: func(c *cobra.Command, args []string) {
		myFigure := figure.NewColorFigure("Packlift", "alligator2", "green", true)
		myFigure.Print()
		fmt.Println()
		fmt.Println("Run 'packlift --help' to see available commands.")
	},
}

func init() {
	rootCmd.AddCommand(cmd.DecryptCmd)
	rootCmd.AddCommand(cmd.InspectCmd)
	rootCmd.AddCommand(cmd.KeysCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
