//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Tables in FK dependency order so a single TRUNCATE can cascade
// cleanly between tests.
var allTables = []string{
	"payment_transactions",
	"rewards",
	"referrals",
	"support_tickets",
	"eco_impact",
	"water_usage",
	"reminders",
	"installations",
	"subscriptions",
	"users",
}

// ResetDB truncates every application table, returning the database to
// its post-migration state.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stmt := "TRUNCATE TABLE " + strings.Join(allTables, ", ") + " RESTART IDENTITY CASCADE"
	if _, err := pool.Exec(ctx, stmt); err != nil {
		return fmt.Errorf("failed to reset database: %w", err)
	}
	return nil
}
