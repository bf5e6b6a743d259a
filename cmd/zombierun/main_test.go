package main

import "testing"

func TestRootPersistentFlags(t *testing.T) {
	flags := rootCmd.PersistentFlags()
	for _, name := range []string{"fps", "db", "config", "difficulty", "log-file", "log-level"} {
		if flags.Lookup(name) == nil {
			t.Errorf("missing --%s", name)
		}
	}
	// Gameplay has no randomness, so there is nothing to seed.
	if flags.Lookup("seed") != nil {
		t.Error("--seed should not be offered")
	}
}

func TestSubcommands(t *testing.T) {
	want := map[string]bool{"play": false, "window": false, "serve": false, "scores": false, "config": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}
