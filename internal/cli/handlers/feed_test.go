package handlers

import (
	"os"
	"path/filepath"
	"testing"
)

func TestImportFeed(t *testing.T) {
	s := setupTestDeps(t)
	src := filepath.Join(s.dir, "scraped.json")
	if err := os.WriteFile(src, []byte(sampleFeed), 0644); err != nil {
		t.Fatal(err)
	}

	ImportFeed(s.deps, src)

	if *s.exitCode != 0 {
		t.Errorf("expected exit code 0, got %d", *s.exitCode)
	}
	assertContains(t, s.stdout.String(), "Imported 2 records (2 shifts, ¥13,160)")

	s.reset()
	ListMonth(s.deps, 2026, 6)
	assertContains(t, s.stdout.String(), "新宿校")
}

func TestImportFeed_SkippedRecords(t *testing.T) {
	s := setupTestDeps(t)
	src := filepath.Join(s.dir, "scraped.json")
	content := `[{"details": "x", "startDate": "soon", "endDate": "later"}]`
	if err := os.WriteFile(src, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	ImportFeed(s.deps, src)

	assertContains(t, s.stdout.String(), "Imported 1 record (0 shifts, ¥0)")
	assertContains(t, s.stderr.String(), "Warning: 1 record with unreadable dates skipped")
}

func TestImportFeed_Invalid(t *testing.T) {
	s := setupTestDeps(t)
	src := filepath.Join(s.dir, "broken.json")
	if err := os.WriteFile(src, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}

	ImportFeed(s.deps, src)

	if *s.exitCode != 1 {
		t.Errorf("expected exit code 1, got %d", *s.exitCode)
	}
	assertContains(t, s.stderr.String(), "Error: Failed to import feed")
}
