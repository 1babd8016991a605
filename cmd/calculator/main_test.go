package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRootRunsDemoByDefault(t *testing.T) {
	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	if !strings.HasPrefix(out.String(), "Hello, Go Calculator!\n") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
	if !strings.HasSuffix(out.String(), "30 + 3 = 10\n") {
		t.Fatalf("expected history to end with the division entry, got:\n%s", out.String())
	}
}

func TestDemoNameFlag(t *testing.T) {
	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"demo", "--name", "Test"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	if !strings.HasPrefix(out.String(), "Hello, Test!\n") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}
