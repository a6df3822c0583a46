package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"packlift/internal/pack"
	"packlift/internal/ui"
	"packlift/internal/utils"
)

var (
	inspectKey  string
	inspectPack string
)

func init() {
	InspectCmd.Flags().StringVarP(&inspectKey, "key", "k", "", "master key for the pack's content index")
	InspectCmd.Flags().StringVarP(&inspectPack, "pack", "p", ".", "path to the pack directory")
	InspectCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	InspectCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
}

func resetInspectCommandState() {
	inspectKey = ""
	inspectPack = "."
}

var InspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Lists the contents of an encrypted pack without extracting it",
	Long: `Decrypts only the content index and prints every listed entry along with
whether it carries its own encryption key. Nothing is written to disk.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogger()
	},
	Run: func(cmd *cobra.Command, args []string) {
		s, cleanup := startSpinner("Reading pack index...")
		defer cleanup()

		packDir := filepath.Clean(inspectPack)

		manifest, err := pack.LoadManifest(packDir)
		if err != nil {
			s.FinalMSG = ui.Error.Sprint("✗") + " Failed to read the pack manifest\n" +
				ui.Error.Sprint("Error: ") + err.Error() + "\n"
			return
		}

		key, err := resolveMasterKey(packDir, inspectKey)
		if err != nil {
			s.FinalMSG = keyHint(err)
			return
		}

		index, err := pack.DecodeContentIndex(filepath.Join(packDir, pack.IndexFileName), key)
		if err != nil {
			s.FinalMSG = ui.Error.Sprint("✗") + " Failed to decode the content index\n" +
				ui.Error.Sprint("Error: ") + err.Error() + "\n"
			return
		}

		encrypted := 0
		paths := make([]string, 0, len(index.Content))
		for _, entry := range index.Content {
			display := entry.Path
			if entry.Key != nil {
				encrypted++
				display += " [encrypted]"
			}
			paths = append(paths, display)
		}

		var b strings.Builder
		b.WriteString(ui.Success.Sprint("✓") + " " + ui.Highlight.Sprint(manifest.Header.Name) +
			" " + ui.Muted.Sprint(manifest.Header.UUID))
		b.WriteString(utils.FormatPaths(paths))
		b.WriteString(fmt.Sprintf("%d entries, %d encrypted\n", len(index.Content), encrypted))

		s.FinalMSG = b.String()
	},
}
