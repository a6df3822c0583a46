package keys_test

import (
	"strings"
	"testing"

	"packlift/test/integration/shared"
)

// Tests storing, listing, and removing a key.
func TestKeysLifecycle(t *testing.T) {
	tempUserDir := t.TempDir()
	shared.SetupTestEnvironment(t, tempUserDir)

	output, err := shared.CaptureOutput(func() error {
		cli := shared.CreateTestCLI("keys", "add", shared.TestPackUUID, shared.TestMasterKey)
		return cli.Execute()
	})
	if err != nil {
		t.Fatalf("keys add failed: %v\nOutput: %s", err, output)
	}
	if !strings.Contains(output, "Key stored for pack") {
		t.Errorf("Expected stored confirmation, got: %s", output)
	}

	output, err = shared.CaptureOutput(func() error {
		cli := shared.CreateTestCLI("keys", "list")
		return cli.Execute()
	})
	if err != nil {
		t.Fatalf("keys list failed: %v\nOutput: %s", err, output)
	}
	if !strings.Contains(output, shared.TestPackUUID) {
		t.Errorf("Expected the pack UUID in the listing, got: %s", output)
	}
	if strings.Contains(output, shared.TestMasterKey) {
		t.Errorf("The full key must never be printed, got: %s", output)
	}

	output, err = shared.CaptureOutput(func() error {
		cli := shared.CreateTestCLI("keys", "remove", shared.TestPackUUID)
		return cli.Execute()
	})
	if err != nil {
		t.Fatalf("keys remove failed: %v\nOutput: %s", err, output)
	}
	if !strings.Contains(output, "Key removed for pack") {
		t.Errorf("Expected removal confirmation, got: %s", output)
	}
}

// Tests that re-adding a pack's key requires --force.
func TestKeysAddDuplicate(t *testing.T) {
	tempUserDir := t.TempDir()
	shared.SetupTestEnvironment(t, tempUserDir)

	if _, err := shared.CaptureOutput(func() error {
		cli := shared.CreateTestCLI("keys", "add", shared.TestPackUUID, shared.TestMasterKey)
		return cli.Execute()
	}); err != nil {
		t.Fatalf("First add failed: %v", err)
	}

	output, err := shared.CaptureOutput(func() error {
		cli := shared.CreateTestCLI("keys", "add", shared.TestPackUUID, shared.TestEntryKey)
		return cli.Execute()
	})
	if err != nil {
		t.Fatalf("Command returned unexpected error: %v", err)
	}
	if !strings.Contains(output, "already stored") {
		t.Errorf("Expected duplicate rejection, got: %s", output)
	}
	if !strings.Contains(output, "--force") {
		t.Errorf("Expected --force hint, got: %s", output)
	}

	output, err = shared.CaptureOutput(func() error {
		cli := shared.CreateTestCLI("keys", "add", "--force", shared.TestPackUUID, shared.TestEntryKey)
		return cli.Execute()
	})
	if err != nil {
		t.Fatalf("Forced add failed: %v", err)
	}
	if !strings.Contains(output, "Key stored for pack") {
		t.Errorf("Expected stored confirmation after --force, got: %s", output)
	}
}

// Tests input validation on the add arguments.
func TestKeysAddValidation(t *testing.T) {
	tempUserDir := t.TempDir()
	shared.SetupTestEnvironment(t, tempUserDir)

	output, err := shared.CaptureOutput(func() error {
		cli := shared.CreateTestCLI("keys", "add", "not-a-uuid", shared.TestMasterKey)
		return cli.Execute()
	})
	if err != nil {
		t.Fatalf("Command returned unexpected error: %v", err)
	}
	if !strings.Contains(output, "not a valid pack UUID") {
		t.Errorf("Expected UUID validation message, got: %s", output)
	}

	output, err = shared.CaptureOutput(func() error {
		cli := shared.CreateTestCLI("keys", "add", shared.TestPackUUID, "too-short")
		return cli.Execute()
	})
	if err != nil {
		t.Fatalf("Command returned unexpected error: %v", err)
	}
	if !strings.Contains(output, "Key is too short") {
		t.Errorf("Expected key length validation message, got: %s", output)
	}
}
