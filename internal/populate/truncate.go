package populate

import (
	"context"
	"fmt"

	"petstore-tools/internal/database"
	"petstore-tools/internal/schema"
)

// Truncate clears all data tables and restarts their identities and the
// standalone sequences, giving real-time runs a fresh key space. Tables or
// sequences that do not exist yet are skipped.
func Truncate(ctx context.Context, db DB) error {
	fmt.Println("Truncating existing data and resetting sequences...")

	for _, table := range schema.TruncateOrder {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table))
		if err != nil {
			if database.IsUndefinedObject(err) {
				continue
			}
			return fmt.Errorf("truncate %s: %w", table, err)
		}
	}

	for _, seq := range schema.SequenceOrder {
		_, err := db.Exec(ctx, fmt.Sprintf("ALTER SEQUENCE %s RESTART", seq))
		if err != nil {
			if database.IsUndefinedObject(err) {
				continue
			}
			return fmt.Errorf("restart sequence %s: %w", seq, err)
		}
	}
	return nil
}
