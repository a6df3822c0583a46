package cmd

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"packlift/internal/keystore"
	"packlift/internal/pack"
	"packlift/internal/ui"
)

var keysAddForce bool

func init() {
	keysAddCmd.Flags().BoolVarP(&keysAddForce, "force", "f", false, "overwrite an existing stored key")
}

var keysAddCmd = &cobra.Command{
	Use:   "add <pack-uuid> <key>",
	Short: "Stores a master key for a pack UUID",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		s, cleanup := startSpinner("Storing key...")
		defer cleanup()

		id, err := uuid.Parse(args[0])
		if err != nil {
			s.FinalMSG = ui.Error.Sprint("✗") + " " + ui.Highlight.Sprint(args[0]) + " is not a valid pack UUID\n"
			return
		}

		key := args[1]
		if len(key) < pack.KeySize {
			s.FinalMSG = ui.Error.Sprint("✗") + " Key is too short: the cipher needs at least 32 bytes\n"
			return
		}

		store, err := keystore.Load()
		if err != nil {
			s.FinalMSG = ui.Error.Sprint("✗") + " Failed to load the key store\n" +
				ui.Error.Sprint("Error: ") + err.Error() + "\n"
			return
		}

		if err := store.Add(id, key, keysAddForce); err != nil {
			s.FinalMSG = ui.Error.Sprint("✗") + " " + err.Error() + "\n" +
				ui.Info.Sprint("→") + " Re-run with " + ui.Flag.Sprint("--force") + " to replace it\n"
			return
		}

		if err := store.Save(); err != nil {
			s.FinalMSG = ui.Error.Sprint("✗") + " Failed to save the key store\n" +
				ui.Error.Sprint("Error: ") + err.Error() + "\n"
			return
		}

		s.FinalMSG = ui.Success.Sprint("✓") + " Key stored for pack " + ui.Highlight.Sprint(id.String()) + "\n"
	},
}
