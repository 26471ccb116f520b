package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func sampleReport() *Report {
	return &Report{
		Version: "PostgreSQL 16.4",
		Schemas: []SchemaReport{
			{
				Schema: "public",
				Tables: []TableCount{
					{Name: "customers", Rows: 1200},
					{Name: "orders", Rows: 34567},
					{Name: "broken", Err: "permission denied"},
				},
				TotalRows: 35767,
			},
		},
		TotalTables: 3,
		TotalRows:   35767,
		GeneratedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestFormatCount(t *testing.T) {
	cases := map[int64]string{
		0:        "0",
		7:        "7",
		999:      "999",
		1000:     "1,000",
		1234567:  "1,234,567",
		-9876543: "-9,876,543",
	}
	for n, want := range cases {
		if got := FormatCount(n); got != want {
			t.Errorf("FormatCount(%d) = %s, want %s", n, got, want)
		}
	}
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, sampleReport(), FormatJSON); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	var decoded Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if decoded.TotalRows != 35767 {
		t.Errorf("Expected total_rows 35767, got %d", decoded.TotalRows)
	}
	if decoded.Schemas[0].Tables[2].Err != "permission denied" {
		t.Error("Per-table error lost in JSON output")
	}
}

func TestRenderYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, sampleReport(), FormatYAML); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	var decoded Report
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Output is not valid YAML: %v", err)
	}
	if decoded.TotalTables != 3 {
		t.Errorf("Expected total_tables 3, got %d", decoded.TotalTables)
	}
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, sampleReport(), FormatTable); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"SCHEMA: public",
		"customers",
		"34,567",
		"Error",
		"Total Rows: 35,767",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Table output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, sampleReport(), "xml"); err == nil {
		t.Error("Expected an error for an unknown format")
	}
}
