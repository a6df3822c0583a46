package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/briandowns/spinner"

	kerrors "packlift/internal/errors"
	"packlift/internal/keystore"
	logger "packlift/internal/logging"
	"packlift/internal/pack"
	"packlift/internal/ui"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger
)

// initLogger builds the shared logger from the current flag values. Each
// command calls it from its PersistentPreRun.
func initLogger() {
	Logger = logger.Logger{
		Verbose: verbose,
		Debug:   debug,
	}
}

// startSpinner creates and starts a spinner with the given message when not
// in verbose or debug mode. Returns the spinner and a function that should
// be deferred to clean up.
//
// IMPORTANT: spinner.FinalMSG values do NOT need trailing newlines. The
// cleanup function automatically calls ui.EnsureNewline() on the final
// message before printing it, keeping output formatting consistent across
// all commands.
func startSpinner(message string) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		// If we can't set spinner color, just continue without it.
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	if !verbose && !debug {
		s.Start()
		// Ensure log output is discarded unless in verbose mode.
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		// Restore log output first.
		if !verbose && !debug {
			log.SetOutput(os.Stdout)
		}

		// Ensure the final message ends with a newline.
		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		// Stop the spinner first to clear the spinner line.
		if !verbose && !debug {
			s.Stop()
		}

		// Print final message to stdout (for tests to capture).
		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// resolveMasterKey returns the key to use for the pack at packDir. An
// explicit --key wins; otherwise the key store is consulted using the
// pack's manifest UUID.
func resolveMasterKey(packDir, keyFlag string) (string, error) {
	if keyFlag != "" {
		return keyFlag, nil
	}

	manifest, err := pack.LoadManifest(packDir)
	if err != nil {
		return "", fmt.Errorf("cannot look up a stored key without a readable manifest: %w", err)
	}
	id, err := manifest.ID()
	if err != nil {
		return "", err
	}

	store, err := keystore.Load()
	if err != nil {
		return "", err
	}

	key, err := store.Lookup(id)
	if err != nil {
		return "", err
	}
	Logger.Debugf("using stored key for pack %s", id)
	return key, nil
}

// keyHint renders the follow-up suggestion shown when no key could be
// resolved for a pack.
func keyHint(err error) string {
	msg := ui.Error.Sprint("✗") + " " + err.Error() + "\n"
	if errors.Is(err, kerrors.ErrKeyNotFound) {
		msg += ui.Info.Sprint("→") + " Pass the key with " + ui.Code.Sprint("--key") +
			" or store it with " + ui.Code.Sprint("packlift keys add") + "\n"
	}
	return msg
}

// Helper functions for testing

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	resetDecryptCommandState()
	resetInspectCommandState()
	resetKeysCommandState()
}

// SetVerbose sets the verbose flag for testing.
func SetVerbose(v bool) {
	verbose = v
}

// SetDebug sets the debug flag for testing.
func SetDebug(d bool) {
	debug = d
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}
