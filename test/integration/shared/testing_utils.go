// Package shared contains testing utilities shared between integration tests.
// This file provides common functions for setting up test environments,
// capturing output, and building encrypted pack fixtures on disk.
package shared

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"packlift/cmd"
	"packlift/internal/keystore"
	logger "packlift/internal/logging"
	"packlift/internal/pack"
)

// TestMasterKey is a 32-byte ASCII master key used across fixtures.
const TestMasterKey = "s5s5ejuDru4uchuF2drUFuthaspAbepE"

// TestEntryKey is a 32-byte per-entry key used across fixtures.
const TestEntryKey = "AnotherKeyAnotherKeyAnotherKey32"

// TestPackUUID is the manifest header UUID used across fixtures.
const TestPackUUID = "e1a9d4ff-3b0c-4a6e-9f1d-6b2c8a7e5d40"

// SetupTestEnvironment points the key store at a temporary directory and
// restores the original settings when the test finishes.
func SetupTestEnvironment(t *testing.T, tempUserDir string) {
	t.Helper()

	originalSettings := keystore.UserPackliftSettings
	keystore.UserPackliftSettings = &keystore.UserSettings{
		UserConfigsPath: filepath.Join(tempUserDir, "config", "packlift"),
	}

	t.Cleanup(func() {
		keystore.UserPackliftSettings = originalSettings
		cmd.ResetGlobalState()
	})
}

// CaptureOutput captures both stdout and stderr during function execution.
func CaptureOutput(fn func() error) (string, error) {
	// Save original stdout and stderr
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	// Create pipes to capture output
	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	// Replace stdout and stderr
	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	// Channel to collect output
	outputChan := make(chan string, 2)

	// Start goroutines to read from pipes
	go func() {
		var buf bytes.Buffer
		_, err := io.Copy(&buf, stdoutReader)
		if err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		outputChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		_, err := io.Copy(&buf, stderrReader)
		if err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		outputChan <- buf.String()
	}()

	// Execute the function
	err := fn()

	// Close writers to signal EOF
	stdoutWriter.Close()
	stderrWriter.Close()

	// Restore original stdout and stderr
	os.Stdout = originalStdout
	os.Stderr = originalStderr

	// Collect output
	stdout := <-outputChan
	stderr := <-outputChan

	return stdout + stderr, err
}

// CreateTestCLI creates a fresh CLI instance wired with the real commands
// and the given arguments.
func CreateTestCLI(args ...string) *cobra.Command {
	// Reset command state so flag values from earlier tests don't leak.
	cmd.ResetGlobalState()
	cmd.SetLogger(logger.Logger{})

	rootCmd := &cobra.Command{
		Use:   "packlift",
		Short: "Packlift - Recover plaintext assets from encrypted resource packs.",
	}
	rootCmd.AddCommand(cmd.DecryptCmd)
	rootCmd.AddCommand(cmd.InspectCmd)
	rootCmd.AddCommand(cmd.KeysCmd)
	rootCmd.SetArgs(args)
	return rootCmd
}

// EncryptBytes encrypts plaintext the way the pack format does: first 32
// bytes of key as the AES key, first 16 of the same bytes as the IV.
func EncryptBytes(t *testing.T, key string, plaintext []byte) []byte {
	t.Helper()

	raw := []byte(key)
	stream, err := pack.NewCFB8Encrypter(raw[:pack.KeySize], raw[:pack.IVSize])
	if err != nil {
		t.Fatalf("Failed to create encrypter: %v", err)
	}

	out := make([]byte, len(plaintext))
	stream.XORKeyStream(out, plaintext)
	return out
}

// BuildPack writes a complete pack fixture into dir: manifest, icon, an
// encrypted index listing a plaintext a.json and an encrypted b.dat, and
// both content files.
func BuildPack(t *testing.T, dir string) {
	t.Helper()

	WriteFile(t, filepath.Join(dir, "manifest.json"),
		[]byte(`{"header":{"name":"Fixture Pack","uuid":"`+TestPackUUID+`"}}`))
	WriteFile(t, filepath.Join(dir, "pack_icon.png"), []byte{0x89, 'P', 'N', 'G'})

	payload := []byte(`{"content":[` +
		`{"path":"a.json","key":null},` +
		`{"path":"b.dat","key":"` + TestEntryKey + `"}]}`)
	index := make([]byte, 256, 256+len(payload))
	index = append(index, EncryptBytes(t, TestMasterKey, payload)...)
	WriteFile(t, filepath.Join(dir, "contents.json"), index)

	WriteFile(t, filepath.Join(dir, "a.json"), []byte(`{"x":1}`))
	WriteFile(t, filepath.Join(dir, "b.dat"), EncryptBytes(t, TestEntryKey, []byte(`{"y":2}`)))
}

// WriteFile writes data to path, creating parent directories as needed.
func WriteFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}
