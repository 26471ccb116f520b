package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestSchemaRejectsTablesOnlyWithSequencesOnly(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"schema", "--tables-only", "--sequences-only"})

	err := rootCmd.Execute()
	if err == nil {
		t.Fatal("Expected an error when both --tables-only and --sequences-only are set")
	}
	if !strings.Contains(err.Error(), "tables-only") || !strings.Contains(err.Error(), "sequences-only") {
		t.Errorf("Error should name the conflicting flags, got: %v", err)
	}
}
