package cmd

import (
	"github.com/spf13/cobra"
)

var KeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Manage stored master keys",
	Long: `Remembers master keys per pack UUID so decrypt and inspect can resolve them
automatically from a pack's manifest. Keys are kept in a TOML file under
your user config directory.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogger()
		Logger.Debugf("Initializing keys command with verbose=%t, debug=%t", verbose, debug)
	},
}

func init() {
	KeysCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	KeysCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	KeysCmd.AddCommand(keysAddCmd)
	KeysCmd.AddCommand(keysListCmd)
	KeysCmd.AddCommand(keysRemoveCmd)
}

func resetKeysCommandState() {
	keysAddForce = false
}
