// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export serializes paper records: CSV files for the -f flag, a
// human-readable table for stdout, and YAML run files.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdiddy/pubfetch/pkg/types"
)

// Header lists the six output columns in their fixed order. WriteCSV
// emits record fields in exactly this order.
var Header = []string{
	"PubmedID",
	"Title",
	"Publication Date",
	"Non-academic Author(s)",
	"Company Affiliation(s)",
	"Corresponding Author Email",
}

// WriteCSV writes the header row followed by one row per record to path,
// overwriting any existing file. The full record list is materialized by
// the caller before this runs; nothing is streamed.
func WriteCSV(path string, records []types.PaperRecord) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(Header); err != nil {
		return fmt.Errorf("encoding header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.PubmedID,
			r.Title,
			r.PubDate,
			strings.Join(r.NonAcademicAuthors, "; "),
			strings.Join(r.CompanyAffiliations, "; "),
			r.CorrespondingAuthorEmail,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("encoding record %s: %w", r.PubmedID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("encoding CSV: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// FormatTable writes records as a human-readable table to w.
func FormatTable(records []types.PaperRecord, w io.Writer) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintf(w, "%-10s  %-70s  %s\n", "PubmedID", "Title", "Publication Date")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for _, r := range records {
		title := r.Title
		if len(title) > 70 {
			title = title[:67] + "..."
		}
		fmt.Fprintf(w, "%-10s  %-70s  %s\n", r.PubmedID, title, r.PubDate)
	}

	fmt.Fprintf(w, "\n%d result(s)\n", len(records))
}
