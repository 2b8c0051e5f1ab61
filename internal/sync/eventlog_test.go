package syncx_test

import (
	"context"
	"testing"

	"github.com/mind-engage/mindengage-quiz/internal/db"
	syncx "github.com/mind-engage/mindengage-quiz/internal/sync"
)

func TestEventRepoAppendList(t *testing.T) {
	ctx := context.Background()
	dbh, err := db.Open(ctx, db.DriverSQLite, "file:eventlog?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer dbh.Close()
	repo := syncx.NewEventRepo(dbh)

	for _, typ := range []string{syncx.TypeQuizCreated, syncx.TypeQuizCompleted} {
		e, err := syncx.NewEvent(typ, "q1", map[string]int{"questions": 3})
		if err != nil {
			t.Fatalf("new event: %v", err)
		}
		if err := repo.Append(ctx, e); err != nil {
			t.Fatalf("append %s: %v", typ, err)
		}
	}
	other, _ := syncx.NewEvent(syncx.TypeQuizCreated, "q2", nil)
	if err := repo.Append(ctx, other); err != nil {
		t.Fatalf("append other: %v", err)
	}

	got, err := repo.List(ctx, "q1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("events = %d, want 2", len(got))
	}
	if got[0].Type != syncx.TypeQuizCreated || got[1].Type != syncx.TypeQuizCompleted {
		t.Fatalf("order = %s, %s", got[0].Type, got[1].Type)
	}
	if got[0].Offset >= got[1].Offset {
		t.Fatalf("offsets not increasing: %d, %d", got[0].Offset, got[1].Offset)
	}
	if got[0].DataJSON != `{"questions":3}` || got[0].SiteID != "local" {
		t.Fatalf("event = %+v", got[0])
	}
}

func TestDiscard(t *testing.T) {
	if err := (syncx.Discard{}).Append(context.Background(), syncx.Event{}); err != nil {
		t.Fatalf("discard: %v", err)
	}
}
