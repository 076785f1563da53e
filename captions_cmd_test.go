package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCaptionsCheckCommand(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(good, []byte("label: Volume\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(bad, []byte("lable: oops\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	out, err := runRoot(t, "captions", "check", good)
	if err != nil {
		t.Fatalf("check good: %v", err)
	}
	if !strings.Contains(out, "good.yaml: ok, defaults used for") {
		t.Fatalf("unexpected output %q", out)
	}

	out, err = runRoot(t, "captions", "check", good, bad)
	if err == nil {
		t.Fatalf("expected failure for unknown key")
	}
	if !strings.Contains(out, "bad.yaml: invalid") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestCaptionsShowCommand(t *testing.T) {
	out, err := runRoot(t, "captions", "show")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.Contains(out, "label: Volume and mute") || !strings.Contains(out, "class_name_prefix: v-") {
		t.Fatalf("unexpected output %q", out)
	}
}
