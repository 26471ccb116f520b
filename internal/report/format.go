package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// Formats accepted by Render.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Render writes the report in the requested format.
func Render(w io.Writer, rep *Report, format string) error {
	switch format {
	case FormatTable, "":
		renderTable(w, rep)
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case FormatYAML:
		return yaml.NewEncoder(w).Encode(rep)
	default:
		return fmt.Errorf("unknown output format: %s (expected table, json, or yaml)", format)
	}
}

func renderTable(w io.Writer, rep *Report) {
	fmt.Fprintf(w, "Database Version: %s\n\n", rep.Version)

	for _, sr := range rep.Schemas {
		color.New(color.FgCyan, color.Bold).Fprintf(w, "SCHEMA: %s\n", sr.Schema)
		fmt.Fprintln(w, strings.Repeat("-", 50))

		if len(sr.Tables) == 0 {
			fmt.Fprintln(w, "    No tables found.")
			fmt.Fprintln(w)
			continue
		}

		for _, tc := range sr.Tables {
			if tc.Err != "" {
				fmt.Fprintf(w, "    %-30s | Rows: %10s\n", tc.Name, "Error")
				continue
			}
			fmt.Fprintf(w, "    %-30s | Rows: %10s\n", tc.Name, FormatCount(tc.Rows))
		}
		fmt.Fprintf(w, "    %s\n", strings.Repeat("-", 45))
		fmt.Fprintf(w, "    Total tables in %s: %d\n", sr.Schema, len(sr.Tables))
		fmt.Fprintf(w, "    Total rows in %s: %s\n\n", sr.Schema, FormatCount(sr.TotalRows))
	}

	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintln(w, "SUMMARY")
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintf(w, "Total Schemas: %d\n", len(rep.Schemas))
	fmt.Fprintf(w, "Total Tables: %d\n", rep.TotalTables)
	fmt.Fprintf(w, "Total Rows: %s\n", FormatCount(rep.TotalRows))
	fmt.Fprintf(w, "Completed at: %s\n", rep.GeneratedAt.Format("2006-01-02 15:04:05"))
}

// FormatCount renders a row count with thousand separators.
func FormatCount(n int64) string {
	s := fmt.Sprint(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}

	out := b.String()
	if neg {
		out = "-" + out
	}
	return out
}
