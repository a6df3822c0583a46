package keystore

import (
	"log"
	"os"
	"path/filepath"
)

type UserSettings struct {
	UserConfigsPath string
}

var UserPackliftSettings *UserSettings

func init() {
	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Fatalf("error getting config directory: %s", err)
	}

	// This is independent of which pack is being worked on, so it is ok to
	// init here.
	UserPackliftSettings = &UserSettings{
		UserConfigsPath: filepath.Join(configDir, "packlift"),
	}
}

func storePath() string {
	return filepath.Join(UserPackliftSettings.UserConfigsPath, "keys.toml")
}
