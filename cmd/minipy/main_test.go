package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunCLIHelp(t *testing.T) {
	if err := runCLI([]string{"minipy", "help"}); err != nil {
		t.Fatalf("help: %v", err)
	}
}

func TestRunCLIUnknownCommand(t *testing.T) {
	if err := runCLI([]string{"minipy", "bogus"}); err == nil {
		t.Fatal("unknown command should fail")
	}
}

func TestRunCommandCheckOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ok.mpy")
	if err := os.WriteFile(path, []byte("print \"hi\"\n"), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	if err := runCommand([]string{"-check", path}); err != nil {
		t.Fatalf("check: %v", err)
	}
}

func TestRunCommandCheckReportsParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.mpy")
	if err := os.WriteFile(path, []byte("x + 1 = 2\n"), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	if err := runCommand([]string{"-check", path}); err == nil {
		t.Fatal("broken script should fail to parse")
	}
}

func TestRunCommandMissingScript(t *testing.T) {
	if err := runCommand(nil); err == nil {
		t.Fatal("missing path should fail")
	}
	if err := runCommand([]string{filepath.Join(t.TempDir(), "absent.mpy")}); err == nil {
		t.Fatal("absent file should fail")
	}
}
