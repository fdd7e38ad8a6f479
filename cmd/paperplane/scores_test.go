package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/paper-plane/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestPrintScores(t *testing.T) {
	store := openTestStore(t)
	for _, s := range []int{300, 900, 500} {
		if _, err := store.SaveScore("paperplane", "ace", s, 2); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	var buf bytes.Buffer
	if err := printScores(&buf, store, "paperplane", "Paper Plane", 2); err != nil {
		t.Fatalf("printScores() failed: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "Flight Log - Paper Plane") {
		t.Errorf("missing title in %q", out)
	}
	if !strings.Contains(out, "900") || !strings.Contains(out, "500") || strings.Contains(out, "300") {
		t.Errorf("limit 2 should list 900 and 500 only:\n%s", out)
	}
	if !strings.Contains(out, "Best: 900") || !strings.Contains(out, "Flights: 3") {
		t.Errorf("missing summary in %q", out)
	}

	buf.Reset()
	if err := printScores(&buf, store, "paperplane", "Paper Plane", 0); err != nil {
		t.Fatalf("printScores() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "300") {
		t.Errorf("listing every run should include 300:\n%s", buf.String())
	}
}

func TestPrintScoresAfterClear(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveScore("paperplane", "ace", 400, 1); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if err := store.ClearScores("paperplane"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	var buf bytes.Buffer
	if err := printScores(&buf, store, "paperplane", "Paper Plane", 10); err != nil {
		t.Fatalf("printScores() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No flights recorded yet.") {
		t.Errorf("output = %q, expected an empty log", buf.String())
	}
}
