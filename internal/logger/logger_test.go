package logger

import (
	"bytes"
	"os"
	"testing"
)

// capture redirects stdout for the duration of fn so tests stay quiet.
func capture(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	w.Close()
	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestLevels_IncludeTagAndMessage(t *testing.T) {
	out := capture(t, func() {
		Info("Catalog", "loading")
		Success("Catalog", "ready")
		Warn("Catalog", "odd quantity")
		Error("DB", "open failed")
	})
	for _, want := range []string{"[Catalog]", "[DB]", "loading", "ready", "odd quantity", "open failed"} {
		if !bytes.Contains([]byte(out), []byte(want)) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestBanner_DefaultsVersion(t *testing.T) {
	out := capture(t, func() {
		Banner("")
		Banner("v1.2.3")
	})
	if !bytes.Contains([]byte(out), []byte("dev")) {
		t.Errorf("empty version should print dev:\n%s", out)
	}
	if !bytes.Contains([]byte(out), []byte("v1.2.3")) {
		t.Errorf("explicit version missing:\n%s", out)
	}
}

func TestSectionStatsServer_NoPanic(t *testing.T) {
	out := capture(t, func() {
		Section("Catalog Statistics")
		Stats("Items", 42)
		Stats("Recipes", 7)
		Server("127.0.0.1:13380")
	})
	if !bytes.Contains([]byte(out), []byte("42")) {
		t.Errorf("stats value missing:\n%s", out)
	}
}
