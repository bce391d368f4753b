package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing fixture: %s", err)
	}
	return path
}

func TestReadPlainText(t *testing.T) {
	for _, ext := range []string{"txt", "md"} {
		t.Run(ext, func(t *testing.T) {
			path := writeFixture(t, "resume."+ext, "Senior engineer with 6 years of experience.")

			got, err := Read(path)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if !strings.Contains(got, "FILE: resume."+ext) {
				t.Fatalf("missing file header:\n%s", got)
			}
			if !strings.Contains(got, "Senior engineer with 6 years of experience.") {
				t.Fatalf("missing content:\n%s", got)
			}
		})
	}
}

func TestReadJSON(t *testing.T) {
	path := writeFixture(t, "profile.json", `{"name":"Sarah","skills":["go","aws"]}`)

	got, err := Read(path)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !strings.Contains(got, "\"name\": \"Sarah\"") {
		t.Fatalf("expected pretty-printed json:\n%s", got)
	}
}

func TestReadInvalidJSON(t *testing.T) {
	path := writeFixture(t, "broken.json", `{"name":`)

	if _, err := Read(path); err == nil {
		t.Fatalf("expected a parse error")
	}
}

func TestReadCSV(t *testing.T) {
	path := writeFixture(t, "candidates.csv", "name,score\nSarah,92.8\nMarcus,77.3\n")

	got, err := Read(path)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	for _, fragment := range []string{
		"CSV Data Preview (first 2 rows):",
		"name | score",
		"Sarah | 92.8",
		"Total Rows: 2",
		"Columns: name, score",
	} {
		if !strings.Contains(got, fragment) {
			t.Fatalf("expected %q in:\n%s", fragment, got)
		}
	}
}

func TestReadCSVLimitsPreview(t *testing.T) {
	var b strings.Builder
	b.WriteString("id\n")
	for i := 0; i < 80; i++ {
		fmt.Fprintf(&b, "%d\n", i)
	}
	path := writeFixture(t, "big.csv", b.String())

	got, err := Read(path)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !strings.Contains(got, "CSV Data Preview (first 50 rows):") {
		t.Fatalf("expected a capped preview:\n%s", got)
	}
	if !strings.Contains(got, "Total Rows: 80") {
		t.Fatalf("expected the full row count:\n%s", got)
	}
	if strings.Contains(got, "\n79\n") {
		t.Fatalf("rows beyond the preview cap must not be rendered:\n%s", got)
	}
}

func TestReadEmptyCSV(t *testing.T) {
	path := writeFixture(t, "empty.csv", "")

	got, err := Read(path)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !strings.Contains(got, "CSV file is empty.") {
		t.Fatalf("unexpected output:\n%s", got)
	}
}

func TestReadPDFNotice(t *testing.T) {
	path := writeFixture(t, "resume.pdf", "%PDF-1.4")

	got, err := Read(path)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !strings.Contains(got, "Text extraction for PDF is not supported") {
		t.Fatalf("expected the pdf notice:\n%s", got)
	}
}

func TestReadUnsupportedType(t *testing.T) {
	path := writeFixture(t, "photo.png", "not really a png")

	if _, err := Read(path); err == nil {
		t.Fatalf("expected an error for an unsupported type")
	}
}

func TestReadMissingFile(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}
