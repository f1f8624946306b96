package cli

import (
	"bytes"
	"context"
	"testing"
)

func TestRootCommandAttachesContextLogger(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)
	root := c.RootCommand()

	root.SetContext(context.Background())
	if root.PersistentPreRunE == nil {
		t.Fatal("root command has no persistent pre-run")
	}
	if err := root.PersistentPreRunE(root, nil); err != nil {
		t.Fatalf("persistent pre-run: %v", err)
	}

	if got := loggerFromContext(root.Context()); got != c.Logger {
		t.Error("command context must carry the CLI logger")
	}
}

func TestRootCommandStructure(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)
	root := c.RootCommand()

	if root.Use != "gridboard" {
		t.Errorf("root use = %q", root.Use)
	}

	want := map[string]bool{
		"edit":       false,
		"check":      false,
		"render":     false,
		"layouts":    false,
		"serve":      false,
		"completion": false,
	}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestOpenStoreUnknownBackend(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)
	if _, err := c.openStore(context.Background(), "carrier-pigeon"); err == nil {
		t.Error("unknown backend must be rejected")
	}
}

func TestOpenStoreMemory(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)
	st, err := c.openStore(context.Background(), "memory")
	if err != nil {
		t.Fatalf("openStore: %v", err)
	}
	defer st.Close()

	if names, err := st.List(context.Background()); err != nil || len(names) != 0 {
		t.Errorf("fresh memory store: names=%v err=%v", names, err)
	}
}
