package version

import (
	"strings"
	"testing"
)

func TestResolveNeverEmpty(t *testing.T) {
	if got := Resolve(); got.Version == "" {
		t.Fatal("Resolve returned an empty version")
	}
}

func TestStringWithLinkedValues(t *testing.T) {
	oldV, oldC, oldB := Version, Commit, BuildTime
	t.Cleanup(func() { Version, Commit, BuildTime = oldV, oldC, oldB })

	Version = "1.2.3"
	Commit = "0123456789abcdef"
	if got := String(); got != "1.2.3 (0123456789ab)" {
		t.Fatalf("String() = %q", got)
	}

	Commit = "abc"
	if got := String(); got != "1.2.3 (abc)" {
		t.Fatalf("String() = %q", got)
	}
}

func TestBuildTimeFallback(t *testing.T) {
	oldV, oldC, oldB := Version, Commit, BuildTime
	t.Cleanup(func() { Version, Commit, BuildTime = oldV, oldC, oldB })

	Version = ""
	Commit = ""
	BuildTime = "20260101T000000Z"
	got := Resolve()
	if got.Version != BuildTime && !strings.HasPrefix(got.Version, "v") {
		t.Fatalf("Resolve().Version = %q, want build time or module version", got.Version)
	}
}
