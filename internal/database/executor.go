package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/jackc/pgx/v5"
)

// Executor runs DDL statements honoring the dry-run and verbose modes and
// the warning taxonomy: "already exists" on create and "does not exist" on
// drop are warnings, everything else aborts the run.
type Executor struct {
	Conn    *pgx.Conn
	DryRun  bool
	Verbose bool
}

// Create executes one CREATE statement. kind is the object kind used in
// console output ("table", "sequence", "index").
func (e *Executor) Create(ctx context.Context, kind, name, ddl string) error {
	if e.Verbose || e.DryRun {
		fmt.Printf("  Creating %s: %s\n", kind, name)
		if e.Verbose {
			fmt.Printf("    SQL: %s\n", strings.TrimSpace(ddl))
		}
	}

	if e.DryRun {
		fmt.Printf("  [DRY RUN] Would create %s: %s\n", kind, name)
		return nil
	}

	if _, err := e.Conn.Exec(ctx, ddl); err != nil {
		if IsDuplicateObject(err) {
			color.Yellow("  ⚠ %s %s already exists", capitalize(kind), name)
			return nil
		}
		color.Red("  ✗ Error creating %s %s: %s", kind, name, ErrorText(err))
		return fmt.Errorf("failed to create %s %s: %w", kind, name, err)
	}

	color.Green("  ✓ Created %s: %s", kind, name)
	return nil
}

// Drop executes one DROP statement, tolerating missing objects.
func (e *Executor) Drop(ctx context.Context, kind, name, sql string) error {
	if e.Verbose {
		fmt.Printf("  Executing: %s\n", sql)
	}

	if e.DryRun {
		fmt.Printf("  [DRY RUN] Would drop %s: %s\n", kind, name)
		return nil
	}

	if _, err := e.Conn.Exec(ctx, sql); err != nil {
		if IsUndefinedObject(err) {
			if e.Verbose {
				fmt.Printf("  %s %s does not exist (skipping)\n", capitalize(kind), name)
			}
			return nil
		}
		color.Yellow("  Warning: error dropping %s %s: %s", kind, name, ErrorText(err))
		return nil
	}

	fmt.Printf("  Dropped %s: %s\n", kind, name)
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
