// Package document extracts text from uploaded files so they can be fed to
// the AI assistant as prompt context.
package document

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const csvPreviewRows = 50

// Read loads a file and returns its content rendered as plain text, prefixed
// with the file name. Unsupported formats return an error; PDF returns an
// explicit notice instead, matching the upload behavior users already know.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading document: %w", err)
	}

	name := filepath.Base(path)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md":
		return fmt.Sprintf("FILE: %s\n\n%s", name, string(data)), nil
	case ".json":
		return renderJSON(name, data)
	case ".csv":
		return renderCSV(name, data)
	case ".pdf":
		return fmt.Sprintf("FILE: %s\n\nPDF file provided. Text extraction for PDF is not supported; convert it to plain text first.", name), nil
	default:
		return "", fmt.Errorf("unsupported file type: %s", name)
	}
}

func renderJSON(name string, data []byte) (string, error) {
	var content any
	if err := json.Unmarshal(data, &content); err != nil {
		return "", fmt.Errorf("parsing json document %s: %w", name, err)
	}

	pretty, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("FILE: %s\n\n%s", name, pretty), nil
}

func renderCSV(name string, data []byte) (string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return "", fmt.Errorf("parsing csv document %s: %w", name, err)
	}

	if len(rows) == 0 {
		return fmt.Sprintf("FILE: %s\n\nCSV file is empty.", name), nil
	}

	header := rows[0]
	records := rows[1:]

	preview := records
	if len(preview) > csvPreviewRows {
		preview = preview[:csvPreviewRows]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "FILE: %s\n\nCSV Data Preview (first %d rows):\n", name, len(preview))
	b.WriteString(strings.Join(header, " | "))
	b.WriteString("\n")
	for _, row := range preview {
		b.WriteString(strings.Join(row, " | "))
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\nTotal Rows: %d\nColumns: %s", len(records), strings.Join(header, ", "))

	return b.String(), nil
}
