package deps_test

import (
	"os"
	"path/filepath"
	"testing"

	"reelkit/internal/deps"
)

func stubBinary(t *testing.T, dir, name string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
}

func TestCheckReportsAvailability(t *testing.T) {
	dir := t.TempDir()
	stubBinary(t, dir, "dcpomatic2_kdm_cli")
	t.Setenv("PATH", dir)

	statuses := deps.Check(deps.Toolset("dcpomatic2_kdm_cli", "dcpomatic2_cli", "dcpomatic2_create"))
	if len(statuses) != 3 {
		t.Fatalf("expected three statuses, got %d", len(statuses))
	}
	if !statuses[0].Available {
		t.Fatalf("stubbed KDM tool should be available: %+v", statuses[0])
	}
	for _, status := range statuses[1:] {
		if status.Available {
			t.Fatalf("missing tool reported available: %+v", status)
		}
		if status.Detail == "" {
			t.Fatalf("missing tool needs a detail message: %+v", status)
		}
	}
}

func TestCheckAbsolutePathOverride(t *testing.T) {
	dir := t.TempDir()
	stubBinary(t, dir, "kdm-override")
	t.Setenv("PATH", "")

	override := filepath.Join(dir, "kdm-override")
	statuses := deps.Check([]deps.Requirement{{Name: "KDM tool", Command: override}})
	if !statuses[0].Available {
		t.Fatalf("absolute override should be available: %+v", statuses[0])
	}
}

func TestCheckEmptyCommand(t *testing.T) {
	statuses := deps.Check([]deps.Requirement{{Name: "KDM tool", Command: "  "}})
	if statuses[0].Available {
		t.Fatalf("blank command reported available: %+v", statuses[0])
	}
	if statuses[0].Detail != "command not configured" {
		t.Fatalf("unexpected detail %q", statuses[0].Detail)
	}
}
