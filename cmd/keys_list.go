package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"packlift/internal/keystore"
	"packlift/internal/ui"
)

var keysListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists packs with a stored master key",
	Run: func(cmd *cobra.Command, args []string) {
		s, cleanup := startSpinner("Reading key store...")
		defer cleanup()

		store, err := keystore.Load()
		if err != nil {
			s.FinalMSG = ui.Error.Sprint("✗") + " Failed to load the key store\n" +
				ui.Error.Sprint("Error: ") + err.Error() + "\n"
			return
		}

		ids := store.IDs()
		if len(ids) == 0 {
			s.FinalMSG = "No keys stored yet\n" +
				ui.Info.Sprint("→") + " Add one with " + ui.Code.Sprint("packlift keys add <pack-uuid> <key>") + "\n"
			return
		}

		var b strings.Builder
		for _, id := range ids {
			entry := store.Packs[id]
			b.WriteString("    - " + ui.Highlight.Sprint(id) +
				" " + ui.Muted.Sprint(maskKey(entry.Key)) +
				" added " + entry.AddedAt.Format("2006-01-02") + "\n")
		}
		s.FinalMSG = b.String()
	},
}

// maskKey keeps enough of a key to recognize it without printing the secret.
func maskKey(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return key[:4] + strings.Repeat("*", 8)
}
