package cmd

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"packlift/internal/keystore"
	"packlift/internal/ui"
)

var keysRemoveCmd = &cobra.Command{
	Use:   "remove <pack-uuid>",
	Short: "Removes the stored master key for a pack",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, cleanup := startSpinner("Updating key store...")
		defer cleanup()

		id, err := uuid.Parse(args[0])
		if err != nil {
			s.FinalMSG = ui.Error.Sprint("✗") + " " + ui.Highlight.Sprint(args[0]) + " is not a valid pack UUID\n"
			return
		}

		store, err := keystore.Load()
		if err != nil {
			s.FinalMSG = ui.Error.Sprint("✗") + " Failed to load the key store\n" +
				ui.Error.Sprint("Error: ") + err.Error() + "\n"
			return
		}

		if !store.Remove(id) {
			s.FinalMSG = ui.Error.Sprint("✗") + " No key stored for pack " + ui.Highlight.Sprint(id.String()) + "\n"
			return
		}

		if err := store.Save(); err != nil {
			s.FinalMSG = ui.Error.Sprint("✗") + " Failed to save the key store\n" +
				ui.Error.Sprint("Error: ") + err.Error() + "\n"
			return
		}

		s.FinalMSG = ui.Success.Sprint("✓") + " Key removed for pack " + ui.Highlight.Sprint(id.String()) + "\n"
	},
}
