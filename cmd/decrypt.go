package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"packlift/internal/pack"
	"packlift/internal/ui"
)

var (
	decryptKey  string
	decryptPack string
	decryptOut  string
	decryptOnly []string
)

func init() {
	DecryptCmd.Flags().StringVarP(&decryptKey, "key", "k", "", "master key for the pack's content index")
	DecryptCmd.Flags().StringVarP(&decryptPack, "pack", "p", ".", "path to the pack directory")
	DecryptCmd.Flags().StringVarP(&decryptOut, "out", "o", "", "output directory (default: <pack>_decrypted)")
	DecryptCmd.Flags().StringArrayVar(&decryptOnly, "only", nil, "only process index entries matching this glob (repeatable)")
	DecryptCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	DecryptCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
}

func resetDecryptCommandState() {
	decryptKey = ""
	decryptPack = "."
	decryptOut = ""
	decryptOnly = nil
}

var DecryptCmd = &cobra.Command{
	Use:   "decrypt",
	Short: "Recovers the plaintext asset tree from an encrypted pack",
	Long: `Decrypts the content index of a pack with the master key, then copies or
decrypts every listed file into the output directory. The manifest and icon
are copied verbatim. JSON assets are validated and prettified on the way out.

If --key is omitted, the key store is consulted using the pack's manifest
UUID (see 'packlift keys').`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogger()
	},
	Run: func(cmd *cobra.Command, args []string) {
		s, cleanup := startSpinner("Decrypting pack contents...")
		defer cleanup()

		packDir := filepath.Clean(decryptPack)
		outDir := decryptOut
		if outDir == "" {
			outDir = packDir + "_decrypted"
		}

		key, err := resolveMasterKey(packDir, decryptKey)
		if err != nil {
			s.FinalMSG = keyHint(err)
			return
		}

		opts := pack.Options{
			Only:   decryptOnly,
			Logger: Logger,
		}
		if err := pack.Decrypt(key, packDir, outDir, opts); err != nil {
			s.FinalMSG = ui.Error.Sprint("✗") + " Failed to decrypt the pack\n" +
				ui.Error.Sprint("Error: ") + err.Error() + "\n" +
				ui.Warning.Sprint("!") + " Do not trust the contents of " + ui.Path.Sprint(outDir) + "\n"
			return
		}

		s.FinalMSG = ui.Success.Sprint("✓") + " Pack decrypted successfully!\n" +
			ui.Info.Sprint("→") + " Recovered assets are in " + ui.Path.Sprint(outDir) + "\n"
	},
}
