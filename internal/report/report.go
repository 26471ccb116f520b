// Package report produces row counts per schema and table, the read-only
// counterpart of the data generators.
package report

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type TableCount struct {
	Name string `json:"name" yaml:"name"`
	Rows int64  `json:"rows" yaml:"rows"`
	// Err records a per-table count failure; counting continues with the
	// remaining tables.
	Err string `json:"error,omitempty" yaml:"error,omitempty"`
}

type SchemaReport struct {
	Schema    string       `json:"schema" yaml:"schema"`
	Tables    []TableCount `json:"tables" yaml:"tables"`
	TotalRows int64        `json:"total_rows" yaml:"total_rows"`
}

type Report struct {
	Version     string         `json:"database_version" yaml:"database_version"`
	Schemas     []SchemaReport `json:"schemas" yaml:"schemas"`
	TotalTables int            `json:"total_tables" yaml:"total_tables"`
	TotalRows   int64          `json:"total_rows" yaml:"total_rows"`
	GeneratedAt time.Time      `json:"generated_at" yaml:"generated_at"`
}

// Collect enumerates user schemas (or just the one named) and counts the
// rows of every base table.
func Collect(ctx context.Context, db DB, onlySchema string) (*Report, error) {
	rep := &Report{GeneratedAt: time.Now()}

	if err := db.QueryRow(ctx, "SELECT version()").Scan(&rep.Version); err != nil {
		return nil, fmt.Errorf("query database version: %w", err)
	}

	schemas, err := listSchemas(ctx, db, onlySchema)
	if err != nil {
		return nil, err
	}

	for _, schemaName := range schemas {
		tables, err := listTables(ctx, db, schemaName)
		if err != nil {
			return nil, err
		}

		sr := SchemaReport{Schema: schemaName}
		for _, table := range tables {
			tc := TableCount{Name: table}
			if err := countRows(ctx, db, schemaName, table, &tc.Rows); err != nil {
				tc.Err = err.Error()
			} else {
				sr.TotalRows += tc.Rows
				rep.TotalRows += tc.Rows
			}
			sr.Tables = append(sr.Tables, tc)
		}
		rep.TotalTables += len(tables)
		rep.Schemas = append(rep.Schemas, sr)
	}

	return rep, nil
}

func listSchemas(ctx context.Context, db DB, only string) ([]string, error) {
	if only != "" {
		return []string{only}, nil
	}

	rows, err := db.Query(ctx,
		`SELECT nspname FROM pg_catalog.pg_namespace
		 WHERE nspname NOT LIKE 'pg\_%' AND nspname <> 'information_schema'
		 ORDER BY nspname`)
	if err != nil {
		return nil, fmt.Errorf("list schemas: %w", err)
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

func listTables(ctx context.Context, db DB, schemaName string) ([]string, error) {
	sqlText, args, err := qb.Select("table_name").
		From("information_schema.tables").
		Where(sq.Eq{"table_schema": schemaName, "table_type": "BASE TABLE"}).
		OrderBy("table_name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build table list query: %w", err)
	}

	rows, err := db.Query(ctx, sqlText, args...)
	if err != nil {
		return nil, fmt.Errorf("list tables in %s: %w", schemaName, err)
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

func countRows(ctx context.Context, db DB, schemaName, table string, out *int64) error {
	ident := pgx.Identifier{schemaName, table}.Sanitize()
	return db.QueryRow(ctx, "SELECT COUNT(*) FROM "+ident).Scan(out)
}
