package inspect_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"packlift/test/integration/shared"
)

// Tests that inspect lists every index entry without writing anything.
func TestInspectBasic(t *testing.T) {
	tempDir := t.TempDir()
	tempUserDir := t.TempDir()
	shared.SetupTestEnvironment(t, tempUserDir)

	packDir := filepath.Join(tempDir, "pack")
	shared.BuildPack(t, packDir)

	output, err := shared.CaptureOutput(func() error {
		cli := shared.CreateTestCLI("inspect",
			"--key", shared.TestMasterKey,
			"--pack", packDir)
		return cli.Execute()
	})
	if err != nil {
		t.Fatalf("Command failed: %v\nOutput: %s", err, output)
	}

	if !strings.Contains(output, "Fixture Pack") {
		t.Errorf("Expected the pack name in output, got: %s", output)
	}
	if !strings.Contains(output, "    - a.json") {
		t.Errorf("Expected a bulleted a.json entry, got: %s", output)
	}
	if !strings.Contains(output, "    - b.dat [encrypted]") {
		t.Errorf("Expected b.dat marked encrypted, got: %s", output)
	}
	if strings.Contains(output, "a.json [encrypted]") {
		t.Errorf("Keyless entry must not be marked encrypted, got: %s", output)
	}
	if !strings.Contains(output, "2 entries, 1 encrypted") {
		t.Errorf("Expected the entry summary, got: %s", output)
	}

	// Read-only: no output tree, no decrypted files on disk.
	if _, err := os.Stat(packDir + "_decrypted"); !os.IsNotExist(err) {
		t.Error("Inspect must not create an output directory")
	}
}

// Tests that a wrong key fails inspect with an index diagnostic.
func TestInspectWrongKey(t *testing.T) {
	tempDir := t.TempDir()
	tempUserDir := t.TempDir()
	shared.SetupTestEnvironment(t, tempUserDir)

	packDir := filepath.Join(tempDir, "pack")
	shared.BuildPack(t, packDir)

	output, err := shared.CaptureOutput(func() error {
		cli := shared.CreateTestCLI("inspect",
			"--key", "WRONGKEYwrongkeyWRONGKEYwrongkey",
			"--pack", packDir)
		return cli.Execute()
	})
	if err != nil {
		t.Fatalf("Command returned unexpected error: %v", err)
	}

	if !strings.Contains(output, "Failed to decode the content index") {
		t.Errorf("Expected index decode failure message, got: %s", output)
	}
}
