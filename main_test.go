package main

import "testing"

func TestBuildDefaults(t *testing.T) {
	if Version == "" || GitCommit == "" || BuildTime == "" {
		t.Errorf("build info should have defaults, got %q %q %q", Version, GitCommit, BuildTime)
	}
}
