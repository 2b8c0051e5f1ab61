package db_test

import (
	"context"
	"testing"

	"github.com/mind-engage/mindengage-quiz/internal/db"
)

func TestOpenSQLiteCreatesSchema(t *testing.T) {
	ctx := context.Background()
	dbh, err := db.Open(ctx, db.DriverSQLite, "file:connect_test?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer dbh.Close()

	for _, table := range []string{"quizzes", "event_log"} {
		var n int
		if err := dbh.GetContext(ctx, &n, dbh.Rebind(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`), table); err != nil {
			t.Fatalf("lookup %s: %v", table, err)
		}
		if n != 1 {
			t.Fatalf("table %s missing", table)
		}
	}

	// schema creation is idempotent
	again, err := db.Open(ctx, db.DriverSQLite, "file:connect_test?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	_ = again.Close()
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	if _, err := db.Open(context.Background(), db.DriverMemory, ""); err == nil {
		t.Fatalf("memory driver has no database; Open should fail")
	}
}
